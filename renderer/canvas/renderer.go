// Package canvasrenderer 通过 github.com/tdewolff/canvas 将布局结果输出为 PDF，
// 用于打印校对同一份 Result。
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/prospectus/layout"
	"github.com/ByLCY/prospectus/renderer"
)

const defaultStrokeWidth = 0.2 // mm

// 行高取字号的 1.2 倍，接近 PowerPoint 的单倍行距。
const lineHeightFactor = 1.2

// StyleKey 标识一种字体样式组合（常规/粗体/斜体）。
type StyleKey struct {
	Bold   bool
	Italic bool
}

// Renderer draws layout results via github.com/tdewolff/canvas.
type Renderer struct {
	baseDir string

	// injected resources
	fontBlobs map[StyleKey][]byte

	fontMu sync.Mutex
	family *canvas.FontFamily
	loaded map[StyleKey]canvas.FontStyle // 样式 → 实际载入的字体样式
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the canvas renderer.
type Options struct {
	BaseDir string
	// Fonts 按样式注入字体字节；缺省时按系统字体回退。
	Fonts map[StyleKey][]byte
}

// 系统字体候选，按顺序尝试。
var systemFontCandidates = []string{"Helvetica", "Arial", "Liberation Sans", "DejaVu Sans"}

// NewRenderer creates a canvas-based renderer rooted at baseDir for resolving assets.
func NewRenderer(baseDir string) *Renderer { return NewRendererWithOptions(Options{BaseDir: baseDir}) }

// NewRendererWithOptions creates a renderer with injected font resources.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{
		baseDir:   opts.BaseDir,
		fontBlobs: map[StyleKey][]byte{},
		loaded:    map[StyleKey]canvas.FontStyle{},
	}
	for key, blob := range opts.Fonts {
		if len(blob) > 0 {
			r.fontBlobs[key] = blob
		}
	}
	return r
}

// Render renders the result into a PDF byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(result.Slides) == 0 {
		return nil, fmt.Errorf("缺少可渲染的幻灯片")
	}

	wMM := layout.InchesToMM(result.Width)
	hMM := layout.InchesToMM(result.Height)

	var buf bytes.Buffer
	writer := pdf.New(&buf, wMM, hMM, nil)
	writer.SetInfo(result.Meta.Title, "", "", "", result.Meta.Creator)
	for i, slide := range result.Slides {
		if i > 0 {
			writer.NewPage(wMM, hMM)
		}
		c := canvas.New(wMM, hMM)
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

		if err := r.drawSlide(ctx, slide); err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// drawSlide 按插入顺序绘制图元，z 序与布局一致。
func (r *Renderer) drawSlide(ctx *canvas.Context, slide layout.Slide) error {
	for _, shape := range slide.Shapes {
		switch sh := shape.(type) {
		case layout.Rect:
			r.drawRect(ctx, sh)
		case layout.Oval:
			r.drawOval(ctx, sh)
		case layout.TextBox:
			if err := r.drawTextBox(ctx, sh); err != nil {
				return err
			}
		case layout.ImageBox:
			r.drawImage(ctx, sh) // best-effort：失败时静默省略
		default:
			return fmt.Errorf("未知图元类型 %T", shape)
		}
	}
	return nil
}

func (r *Renderer) drawRect(ctx *canvas.Context, rc layout.Rect) {
	setPaint(ctx, rc.Fill, rc.Stroke)
	x, y := layout.InchesToMM(rc.X), layout.InchesToMM(rc.Y)
	w, h := layout.InchesToMM(rc.W), layout.InchesToMM(rc.H)
	var p *canvas.Path
	if rc.Radius > 0 {
		p = canvas.RoundedRectangle(w, h, layout.InchesToMM(rc.Radius))
	} else {
		p = canvas.Rectangle(w, h)
	}
	ctx.DrawPath(x, y, p)
}

func (r *Renderer) drawOval(ctx *canvas.Context, ov layout.Oval) {
	setPaint(ctx, ov.Fill, ov.Stroke)
	rx := layout.InchesToMM(ov.W) / 2
	ry := layout.InchesToMM(ov.H) / 2
	cx := layout.InchesToMM(ov.X) + rx
	cy := layout.InchesToMM(ov.Y) + ry
	ctx.DrawPath(cx, cy, canvas.Ellipse(rx, ry))
}

func setPaint(ctx *canvas.Context, fill, stroke *layout.Color) {
	if fill != nil {
		ctx.SetFillColor(colorFromLayout(*fill))
	} else {
		ctx.SetFillColor(color.RGBA{})
	}
	if stroke != nil {
		ctx.SetStrokeColor(colorFromLayout(*stroke))
		ctx.SetStrokeWidth(defaultStrokeWidth)
	} else {
		ctx.SetStrokeColor(color.RGBA{})
		ctx.SetStrokeWidth(0)
	}
}

func (r *Renderer) drawTextBox(ctx *canvas.Context, tb layout.TextBox) error {
	widthMM := layout.InchesToMM(tb.W)
	cursorY := layout.InchesToMM(tb.Y)

	for _, para := range tb.Paragraphs {
		face, err := r.fontFace(para)
		if err != nil {
			return err
		}
		cursorY += layout.PtToMM(para.SpaceBefore)

		lines := splitLines(para.Text, widthMM, face, tb.WordWrap)
		lineHeight := layout.PtToMM(para.Size) * lineHeightFactor
		metrics := face.Metrics()
		if metrics.LineHeight > lineHeight {
			lineHeight = metrics.LineHeight
		}

		var textAlign canvas.TextAlign
		var anchorX float64
		switch para.Align {
		case layout.AlignCenter:
			textAlign = canvas.Center
			anchorX = layout.InchesToMM(tb.X) + widthMM/2
		case layout.AlignRight:
			textAlign = canvas.Right
			anchorX = layout.InchesToMM(tb.X) + widthMM
		default:
			textAlign = canvas.Left
			anchorX = layout.InchesToMM(tb.X)
		}

		for _, line := range lines {
			// 基线位置：行顶部加上字体上升部
			baseline := cursorY + metrics.Ascent
			ctx.DrawText(anchorX, baseline, canvas.NewTextLine(face, line, textAlign))
			cursorY += lineHeight
		}
	}
	return nil
}

// drawImage 尽力而为地放置图片；读不到就跳过，不报错。
func (r *Renderer) drawImage(ctx *canvas.Context, img layout.ImageBox) {
	path := img.Path
	if path == "" {
		return
	}
	if !filepath.IsAbs(path) {
		if r.baseDir == "" {
			return
		}
		path = filepath.Join(r.baseDir, path)
	}
	file, err := os.Open(path)
	if err != nil {
		return
	}
	imgData, _, err := image.Decode(file)
	file.Close()
	if err != nil {
		return
	}

	bounds := imgData.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return
	}
	widthMM := layout.InchesToMM(img.W)
	if widthMM <= 0 {
		widthMM = layout.InchesToMM(img.H) * float64(bounds.Dx()) / float64(bounds.Dy())
	}
	dpmm := float64(bounds.Dx()) / widthMM
	ctx.DrawImage(layout.InchesToMM(img.X), layout.InchesToMM(img.Y), imgData, canvas.DPMM(dpmm))
}

// fontFace 按段落样式返回字体面。字号单位为 pt，canvas 在内部换算。
func (r *Renderer) fontFace(para layout.Paragraph) (*canvas.FontFace, error) {
	key := StyleKey{Bold: para.Bold, Italic: para.Italic}
	r.fontMu.Lock()
	style, err := r.ensureStyle(key)
	r.fontMu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.family.Face(para.Size, colorFromLayout(para.Color), style, canvas.FontNormal), nil
}

// ensureStyle 惰性加载指定样式的字体：优先注入的字节，其次系统字体，
// 最后回退到常规体（保证粗体/斜体请求不会让渲染整体失败）。
// 返回实际可用的样式；调用方须持有 fontMu。
func (r *Renderer) ensureStyle(key StyleKey) (canvas.FontStyle, error) {
	if r.family == nil {
		r.family = canvas.NewFontFamily("deck")
	}
	if style, ok := r.loaded[key]; ok {
		return style, nil
	}

	style := fontStyle(key)
	if err := r.loadStyle(key, style); err == nil {
		r.loaded[key] = style
		return style, nil
	}

	// 该样式缺失时复用常规体
	regular := StyleKey{}
	if key != regular {
		if _, ok := r.loaded[regular]; !ok {
			if err := r.loadStyle(regular, canvas.FontRegular); err != nil {
				return canvas.FontRegular, fmt.Errorf("找不到可用字体: %w", err)
			}
			r.loaded[regular] = canvas.FontRegular
		}
		r.loaded[key] = canvas.FontRegular
		return canvas.FontRegular, nil
	}
	return canvas.FontRegular, fmt.Errorf("找不到可用字体（尝试了 %s）", strings.Join(systemFontCandidates, ", "))
}

// loadStyle 将一种样式的字体载入家族：注入字节优先，其后为系统字体候选。
func (r *Renderer) loadStyle(key StyleKey, style canvas.FontStyle) error {
	if blob, ok := r.fontBlobs[key]; ok {
		if err := r.family.LoadFont(blob, 0, style); err != nil {
			return fmt.Errorf("加载注入字体失败: %w", err)
		}
		return nil
	}
	var lastErr error
	for _, name := range systemFontCandidates {
		err := r.family.LoadSystemFont(name, style)
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("无系统字体候选")
	}
	return lastErr
}

func fontStyle(key StyleKey) canvas.FontStyle {
	style := canvas.FontRegular
	if key.Bold {
		style = canvas.FontBold
	}
	if key.Italic {
		style |= canvas.FontItalic
	}
	return style
}

// splitLines 折行：wrap 为真时按宽度贪心换行，否则只按显式换行拆分。
func splitLines(content string, widthMM float64, face *canvas.FontFace, wrap bool) []string {
	if !wrap {
		return strings.Split(content, "\n")
	}
	return greedyWrap(content, widthMM, face)
}

// greedyWrap 贪心换行：优先在空白处分割，尊重显式换行。
// 单词超宽时不再细拆（接受的外观缺陷，与来源实现一致）。
func greedyWrap(content string, limit float64, face *canvas.FontFace) []string {
	if limit <= 0 {
		return strings.Split(content, "\n")
	}

	var lines []string
	var builder strings.Builder
	currentWidth := 0.0

	emit := func(force bool) {
		if builder.Len() == 0 {
			if force {
				lines = append(lines, "")
			}
			return
		}
		lines = append(lines, strings.TrimRight(builder.String(), " \t"))
		builder.Reset()
		currentWidth = 0
	}

	for _, token := range tokenize(content) {
		if token == "\n" {
			emit(true)
			continue
		}
		tokenWidth := face.TextWidth(token)
		if currentWidth > 0 && currentWidth+tokenWidth > limit {
			emit(false)
			if strings.TrimSpace(token) == "" {
				continue // 行首不吞空白
			}
		}
		builder.WriteString(token)
		currentWidth += tokenWidth
	}
	emit(false)
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// tokenize 把内容拆成空白段、词段与显式换行。
func tokenize(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}

	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			lastWasSpace = false
			continue
		}
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}
