package deck

// 该包定义幻灯片的声明式描述（Slide Spec）。
// 每张幻灯片是一个带标签的变体，由 layout.Build 统一分派渲染，
// 而不是逐张硬编码绘制调用。

// Deck 描述一份完整的演示文稿：画布尺寸、主题色与有序的幻灯片列表。
type Deck struct {
	Name   string
	Width  float64 // 画布宽度（英寸）
	Height float64 // 画布高度（英寸）
	Theme  Theme
	Logo   string // 徽标图片路径，可为空；加载失败时静默省略
	Slides []Slide
}

// Slide 是幻灯片变体的密封接口，仅本包内的类型可实现。
type Slide interface {
	slideSpec()
}

// TitleSlide 封面页：整版背景、细饰条、超大标题、副标题、底部色带与可选标语。
type TitleSlide struct {
	Title    string
	Subtitle string
	Tagline  string // 可为空；为空时不生成标语文本框
}

// TwoColumnSlide 双栏对比页：标题带 + 左右两个对比填充色的面板。
type TwoColumnSlide struct {
	Title string
	Left  Column
	Right Column
}

// Column 单个面板的表头与条目列表，条目逐段竖排。
type Column struct {
	Header string
	Items  []string
}

// SectionedSlide 分节卡片页：标题带、可选个性化备注与 N 张等宽卡片。
type SectionedSlide struct {
	Title    string
	Note     string // 可为空；小号斜体个性化备注
	Sections []Section
}

// Section 一张卡片：编号圆形徽章、表头与项目符号列表。
type Section struct {
	Header string
	Items  []string
}

func (TitleSlide) slideSpec()     {}
func (TwoColumnSlide) slideSpec() {}
func (SectionedSlide) slideSpec() {}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Theme 品牌配色。字段命名按用途而非色相，便于整套换色。
type Theme struct {
	Primary   Color // 深色主底（标题背景、右侧面板）
	Secondary Color // 次级强调（底部色带、徽章圆）
	Accent    Color // 高亮饰条与副标题
	Body      Color // 正文
	Panel     Color // 浅色面板底
	Border    Color // 面板描边
	White     Color
}

// DefaultTheme 返回内置品牌配色（取自 Panagora 站点色板）。
func DefaultTheme() Theme {
	return Theme{
		Primary:   Color{0, 51, 102},
		Secondary: Color{0, 102, 153},
		Accent:    Color{0, 153, 153},
		Body:      Color{51, 51, 51},
		Panel:     Color{240, 243, 245},
		Border:    Color{200, 200, 200},
		White:     Color{255, 255, 255},
	}
}

// 默认画布为 16:9 宽屏（13.333in × 7.5in）。
const (
	DefaultWidth  = 13.333
	DefaultHeight = 7.5
)

// New 构造一个空 Deck，使用默认画布与主题。
func New(name string) *Deck {
	return &Deck{
		Name:   name,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Theme:  DefaultTheme(),
	}
}

// Append 追加幻灯片并返回自身，便于链式组装。
func (d *Deck) Append(slides ...Slide) *Deck {
	d.Slides = append(d.Slides, slides...)
	return d
}
