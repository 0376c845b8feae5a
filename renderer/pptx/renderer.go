// Package pptxrenderer 通过 github.com/VantageDataChat/GoPPT 将布局结果写成 .pptx。
package pptxrenderer

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/ByLCY/prospectus/layout"
	"github.com/ByLCY/prospectus/renderer"
)

// Renderer 把每个图元按插入顺序映射为 OOXML 形状，
// 保证 pptx 里的 z 序与布局的绘制顺序一致。
type Renderer struct {
	baseDir string
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer 创建 pptx 渲染器，baseDir 用于解析相对图片路径。
func NewRenderer(baseDir string) *Renderer {
	return &Renderer{baseDir: baseDir}
}

// Render 渲染为 pptx 字节切片。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(result.Slides) == 0 {
		return nil, fmt.Errorf("缺少可渲染的幻灯片")
	}

	p := ppt.New()
	p.GetDocumentProperties().Title = result.Meta.Title
	p.GetDocumentProperties().Creator = result.Meta.Creator

	// 画布尺寸（EMU）。16:9 参考实例为 13.333in × 7.5in。
	dl := p.GetLayout()
	dl.CX = layout.InchesToEMU(result.Width)
	dl.CY = layout.InchesToEMU(result.Height)

	for i, s := range result.Slides {
		slide := p.GetActiveSlide()
		if i > 0 {
			slide = p.CreateSlide()
		}
		for _, shape := range s.Shapes {
			switch sh := shape.(type) {
			case layout.Rect:
				r.drawRect(slide, sh)
			case layout.Oval:
				r.drawOval(slide, sh)
			case layout.TextBox:
				r.drawTextBox(slide, sh)
			case layout.ImageBox:
				r.drawImage(slide, sh) // best-effort：失败时静默省略
			default:
				return nil, fmt.Errorf("未知图元类型 %T", shape)
			}
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("创建 pptx writer 失败: %w", err)
	}
	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("写入 pptx 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawRect(slide *ppt.Slide, rc layout.Rect) {
	shape := slide.CreateAutoShape()
	if rc.Radius > 0 {
		shape.SetAutoShapeType(ppt.AutoShapeRoundedRect)
	} else {
		shape.SetAutoShapeType(ppt.AutoShapeRectangle)
	}
	r.placeAuto(shape, rc.Box)
	if rc.Fill != nil {
		shape.SetSolidFill(argb(*rc.Fill))
	}
	if rc.Stroke != nil {
		shape.SetBorder(&ppt.Border{Color: argb(*rc.Stroke), Style: ppt.BorderSolid, Width: 1})
	}
}

func (r *Renderer) drawOval(slide *ppt.Slide, ov layout.Oval) {
	shape := slide.CreateAutoShape()
	shape.SetAutoShapeType(ppt.AutoShapeEllipse)
	r.placeAuto(shape, ov.Box)
	if ov.Fill != nil {
		shape.SetSolidFill(argb(*ov.Fill))
	}
	if ov.Stroke != nil {
		shape.SetBorder(&ppt.Border{Color: argb(*ov.Stroke), Style: ppt.BorderSolid, Width: 1})
	}
}

func (r *Renderer) placeAuto(shape *ppt.AutoShape, box layout.Box) {
	shape.SetPosition(layout.InchesToEMU(box.X), layout.InchesToEMU(box.Y))
	shape.SetSize(layout.InchesToEMU(box.W), layout.InchesToEMU(box.H))
}

func (r *Renderer) drawTextBox(slide *ppt.Slide, tb layout.TextBox) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(layout.InchesToEMU(tb.X)).SetOffsetY(layout.InchesToEMU(tb.Y))
	shape.SetWidth(layout.InchesToEMU(tb.W)).SetHeight(layout.InchesToEMU(tb.H))

	for i, para := range tb.Paragraphs {
		p := shape.GetActiveParagraph()
		if i > 0 {
			p = shape.CreateParagraph()
		}
		switch para.Align {
		case layout.AlignCenter:
			p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
		case layout.AlignRight:
			p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
		}
		if para.SpaceBefore > 0 {
			// OOXML spcPts 以百分之一磅计
			p.SetSpaceBefore(int(para.SpaceBefore * 100))
		}
		// 内容中的显式换行转为同段落内的换行元素
		for j, line := range strings.Split(para.Text, "\n") {
			if j > 0 {
				p.CreateBreak()
			}
			tr := p.CreateTextRun(line)
			f := tr.GetFont()
			f.SetSize(int(para.Size)).SetColor(argb(para.Color))
			if para.Bold {
				f.SetBold(true)
			}
			if para.Italic {
				f.SetItalic(true)
			}
		}
	}
}

// drawImage 尽力而为地放置图片：读不到或解不出就当没有这回事，
// 其余图元的数量与位置不受影响。
func (r *Renderer) drawImage(slide *ppt.Slide, img layout.ImageBox) {
	data, err := r.loadImageBytes(img.Path)
	if err != nil {
		return
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Height <= 0 {
		return
	}

	width := img.W
	if width <= 0 {
		width = img.H * float64(cfg.Width) / float64(cfg.Height)
	}

	shape := slide.CreateDrawingShape()
	shape.SetImageData(data, mimeFromPath(img.Path))
	shape.SetOffsetX(layout.InchesToEMU(img.X)).SetOffsetY(layout.InchesToEMU(img.Y))
	shape.SetWidth(layout.InchesToEMU(width)).SetHeight(layout.InchesToEMU(img.H))
}

func (r *Renderer) loadImageBytes(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("图片路径为空")
	}
	if !filepath.IsAbs(path) {
		if r.baseDir == "" {
			return nil, fmt.Errorf("未指定资源目录: %s", path)
		}
		path = filepath.Join(r.baseDir, path)
	}
	return os.ReadFile(path)
}

func mimeFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}

// argb 将 RGB 颜色转成 GoPPT 的 AARRGGBB 表示（不透明）。
func argb(c layout.Color) ppt.Color {
	return ppt.NewColor(fmt.Sprintf("FF%02X%02X%02X", c.R, c.G, c.B))
}
