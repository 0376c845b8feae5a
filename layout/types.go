package layout

// 该文件定义布局结果，供布局计算、渲染后端与调试 JSON 共用。
// 所有坐标与尺寸均为英寸，字号与段前距为磅（pt）。

import "encoding/json"

// Result 保存布局后的幻灯片序列与文档信息。
type Result struct {
	Width  float64 `json:"width"`  // 画布宽度（in）
	Height float64 `json:"height"` // 画布高度（in）
	Slides []Slide `json:"slides"`
	Meta   Meta    `json:"meta"`
}

// Meta 保存输出文件的元信息。
type Meta struct {
	Title   string `json:"title"`
	Creator string `json:"creator"`
}

// Slide 是一张已定位完毕的幻灯片。
// Shapes 的先后顺序即绘制顺序（z 序 = 插入序），后端不得重排。
type Slide struct {
	Shapes []Shape
}

// Shape 是定位图元的密封接口：Rect、Oval、TextBox、ImageBox。
type Shape interface {
	Kind() string
	Bounds() Box
}

// Box 图元的外接矩形。
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Bounds 实现 Shape。
func (b Box) Bounds() Box { return b }

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Rect 矩形或圆角矩形。Radius > 0 时为圆角矩形。
type Rect struct {
	Box
	Fill   *Color  `json:"fill,omitempty"`
	Stroke *Color  `json:"stroke,omitempty"` // 为空表示无描边
	Radius float64 `json:"radius,omitempty"` // 圆角半径（in）
}

// Oval 椭圆（徽章圆等）。
type Oval struct {
	Box
	Fill   *Color `json:"fill,omitempty"`
	Stroke *Color `json:"stroke,omitempty"`
}

// ImageBox 图片占位。W <= 0 时由后端按图片纵横比从 H 推算宽度。
// 资源缺失或解码失败时后端静默跳过，不影响其他图元。
type ImageBox struct {
	Box
	Path string `json:"path"`
}

// TextBox 文本区域，内含一个或多个段落。
// 区域高度只是声明值：内容超出时不裁剪、不缩放（接受的外观缺陷）。
type TextBox struct {
	Box
	WordWrap   bool        `json:"wordWrap"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Align 文本水平对齐。
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Paragraph 一段带样式的文本。样式绑定在段落上而不是文本框上，
// 与来源文稿逐段设置字体属性的习惯保持一致。
type Paragraph struct {
	Text        string  `json:"text"`
	Size        float64 `json:"size"` // pt
	Bold        bool    `json:"bold,omitempty"`
	Italic      bool    `json:"italic,omitempty"`
	Color       Color   `json:"color"`
	Align       Align   `json:"align,omitempty"`
	SpaceBefore float64 `json:"spaceBefore,omitempty"` // pt
}

func (Rect) Kind() string     { return "rect" }
func (Oval) Kind() string     { return "oval" }
func (ImageBox) Kind() string { return "image" }
func (TextBox) Kind() string  { return "text" }

func (s *Slide) add(sh Shape) { s.Shapes = append(s.Shapes, sh) }

// MarshalJSON 输出带 kind 标签的图元列表，保持绘制顺序。
func (s Slide) MarshalJSON() ([]byte, error) {
	type tagged struct {
		Kind  string `json:"kind"`
		Shape Shape  `json:"shape"`
	}
	out := struct {
		Shapes []tagged `json:"shapes"`
	}{Shapes: make([]tagged, 0, len(s.Shapes))}
	for _, sh := range s.Shapes {
		out.Shapes = append(out.Shapes, tagged{Kind: sh.Kind(), Shape: sh})
	}
	return json.Marshal(out)
}
