package layout

import (
	"fmt"
	"strconv"

	"github.com/ByLCY/prospectus/binding"
	"github.com/ByLCY/prospectus/deck"
)

// 本文件把声明式的 Slide Spec 翻译成已定位的图元序列。
// 同一份 Spec 与数据必定产出相同的 Result；所有坐标都是字面常量（英寸）。

// BuildOptions 配置布局阶段的可选依赖。
type BuildOptions struct {
	// Data 为 ${path} 插值提供数据源，可为 nil。
	Data any
}

// 字号（pt）。
const (
	titleSize    = 54
	subtitleSize = 22
	taglineSize  = 16
	headingSize  = 30
	panelHead    = 20
	panelItem    = 14
	noteSize     = 12
	badgeSize    = 18
	cardHead     = 15
	cardItem     = 12
)

// 分节卡片的横向排布：x(i) = sectionStartX + i*(sectionWidth+sectionGap)。
const (
	sectionWidth  = 3.9
	sectionGap    = 0.3
	sectionStartX = 0.5
)

// 圆角矩形的圆角半径（in）。
const cornerRadius = 0.1

// 卡片内项目符号前缀。
const bulletPrefix = "» "

// Build 将 Deck 逐张分派给对应的布局函数，产出可渲染的 Result。
func Build(d *deck.Deck, opts BuildOptions) (*Result, error) {
	if d == nil {
		return nil, fmt.Errorf("deck 不能为空")
	}
	width, height := d.Width, d.Height
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("画布尺寸非法: %gx%g", width, height)
	}
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("文稿不含任何幻灯片")
	}

	b := &builder{
		deck:  d,
		theme: d.Theme,
		data:  opts.Data,
		w:     width,
		h:     height,
	}

	res := &Result{
		Width:  width,
		Height: height,
		Meta:   Meta{Title: b.text(d.Name), Creator: "prospectus"},
	}
	for i, spec := range d.Slides {
		var (
			slide Slide
			err   error
		)
		switch s := spec.(type) {
		case deck.TitleSlide:
			slide = b.buildTitle(s)
		case deck.TwoColumnSlide:
			slide = b.buildTwoColumn(s)
		case deck.SectionedSlide:
			slide, err = b.buildSectioned(s)
		default:
			err = fmt.Errorf("未知的幻灯片类型 %T", spec)
		}
		if err != nil {
			return nil, fmt.Errorf("第 %d 张幻灯片: %w", i+1, err)
		}
		if err := b.checkBounds(slide); err != nil {
			return nil, fmt.Errorf("第 %d 张幻灯片: %w", i+1, err)
		}
		res.Slides = append(res.Slides, slide)
	}
	return res, nil
}

type builder struct {
	deck  *deck.Deck
	theme deck.Theme
	data  any
	w, h  float64
}

// text 对内容字符串做 ${path} 插值。
func (b *builder) text(s string) string {
	return binding.Interpolate(s, b.data)
}

func themeColor(c deck.Color) *Color { return &Color{R: c.R, G: c.G, B: c.B} }

// buildTitle 封面页：整版底、饰条、可选徽标、大标题、副标题、底部色带与可选标语。
func (b *builder) buildTitle(s deck.TitleSlide) Slide {
	t := b.theme
	var slide Slide

	slide.add(Rect{Box: Box{0, 0, b.w, b.h}, Fill: themeColor(t.Primary)})
	slide.add(Rect{Box: Box{0, 0, b.w, 0.15}, Fill: themeColor(t.Accent)})
	b.addLogo(&slide, 10.5, 0.4, 0.8)

	slide.add(TextBox{
		Box:      Box{0.8, 2.2, 11.733, 1.8},
		WordWrap: true,
		Paragraphs: []Paragraph{
			{Text: b.text(s.Title), Size: titleSize, Bold: true, Color: asColor(t.White), Align: AlignLeft},
		},
	})
	slide.add(TextBox{
		Box: Box{0.8, 4.0, 11.733, 0.8},
		Paragraphs: []Paragraph{
			{Text: b.text(s.Subtitle), Size: subtitleSize, Color: asColor(t.Accent), Align: AlignLeft},
		},
	})
	slide.add(Rect{Box: Box{0, 6.8, b.w, 0.7}, Fill: themeColor(t.Secondary)})
	if s.Tagline != "" {
		slide.add(TextBox{
			Box: Box{0.8, 6.9, 11.733, 0.5},
			Paragraphs: []Paragraph{
				{Text: b.text(s.Tagline), Size: taglineSize, Color: asColor(t.White), Align: AlignLeft},
			},
		})
	}
	return slide
}

// buildTwoColumn 双栏对比页：标题带加左右两块对比填充色的面板。
func (b *builder) buildTwoColumn(s deck.TwoColumnSlide) Slide {
	t := b.theme
	var slide Slide

	b.addHeaderBand(&slide, s.Title)

	// 左面板：浅底深字
	slide.add(Rect{Box: Box{0.5, 1.9, 5.9, 5.0}, Fill: themeColor(t.Panel), Stroke: themeColor(t.Border), Radius: cornerRadius})
	slide.add(TextBox{
		Box: Box{0.7, 2.1, 5.5, 0.5},
		Paragraphs: []Paragraph{
			{Text: b.text(s.Left.Header), Size: panelHead, Bold: true, Color: asColor(t.Primary)},
		},
	})
	slide.add(b.itemList(Box{0.7, 2.7, 5.5, 4.0}, s.Left.Items, asColor(t.Body)))

	// 右面板：深底浅字
	slide.add(Rect{Box: Box{6.9, 1.9, 5.9, 5.0}, Fill: themeColor(t.Primary), Radius: cornerRadius})
	slide.add(TextBox{
		Box: Box{7.1, 2.1, 5.5, 0.5},
		Paragraphs: []Paragraph{
			{Text: b.text(s.Right.Header), Size: panelHead, Bold: true, Color: asColor(t.Accent)},
		},
	})
	slide.add(b.itemList(Box{7.1, 2.7, 5.5, 4.0}, s.Right.Items, asColor(t.White)))

	return slide
}

// buildSectioned 分节卡片页。卡片数受画布宽度约束，超出即报错（见 checkBounds 注释）。
func (b *builder) buildSectioned(s deck.SectionedSlide) (Slide, error) {
	t := b.theme
	var slide Slide

	b.addHeaderBand(&slide, s.Title)

	if s.Note != "" {
		slide.add(TextBox{
			Box: Box{0.6, 1.1, 10, 0.3},
			Paragraphs: []Paragraph{
				{Text: b.text(s.Note), Size: noteSize, Italic: true, Color: asColor(t.Accent), Align: AlignLeft},
			},
		})
	}

	for i, section := range s.Sections {
		x := sectionStartX + float64(i)*(sectionWidth+sectionGap)
		if x+sectionWidth > b.w {
			return Slide{}, fmt.Errorf("第 %d 张卡片超出画布（%d 节，画布宽 %gin）", i+1, len(s.Sections), b.w)
		}

		slide.add(Rect{Box: Box{x, 1.85, sectionWidth, 5.3}, Fill: themeColor(t.Panel), Stroke: themeColor(t.Border), Radius: cornerRadius})
		slide.add(Oval{Box: Box{x + 0.15, 2.0, 0.45, 0.45}, Fill: themeColor(t.Secondary)})
		slide.add(TextBox{
			Box: Box{x + 0.15, 2.05, 0.45, 0.4},
			Paragraphs: []Paragraph{
				{Text: strconv.Itoa(i + 1), Size: badgeSize, Bold: true, Color: asColor(t.White), Align: AlignCenter},
			},
		})
		slide.add(TextBox{
			Box:      Box{x + 0.7, 2.0, sectionWidth - 0.9, 0.6},
			WordWrap: true,
			Paragraphs: []Paragraph{
				{Text: b.text(section.Header), Size: cardHead, Bold: true, Color: asColor(t.Primary)},
			},
		})

		items := TextBox{Box: Box{x + 0.2, 2.65, sectionWidth - 0.4, 4.3}, WordWrap: true}
		for j, item := range section.Items {
			p := Paragraph{Text: bulletPrefix + b.text(item), Size: cardItem, Color: asColor(t.Body)}
			if j > 0 {
				p.SpaceBefore = 8
			}
			items.Paragraphs = append(items.Paragraphs, p)
		}
		slide.add(items)
	}
	return slide, nil
}

// addHeaderBand 内容页共用的标题带：深色底、高亮细线、可选徽标与标题。
func (b *builder) addHeaderBand(slide *Slide, title string) {
	t := b.theme
	slide.add(Rect{Box: Box{0, 0, b.w, 1.5}, Fill: themeColor(t.Primary)})
	slide.add(Rect{Box: Box{0, 1.5, b.w, 0.06}, Fill: themeColor(t.Accent)})
	b.addLogo(slide, 11.5, 0.35, 0.7)
	slide.add(TextBox{
		Box: Box{0.6, 0.4, 10.5, 0.9},
		Paragraphs: []Paragraph{
			{Text: b.text(title), Size: headingSize, Bold: true, Color: asColor(t.White), Align: AlignLeft},
		},
	})
}

// addLogo 追加徽标占位。宽度留空，由后端按图片纵横比推算；
// 资源缺失属于后端静默处理的情况，布局阶段不关心文件是否存在。
func (b *builder) addLogo(slide *Slide, x, y, height float64) {
	if b.deck.Logo == "" {
		return
	}
	slide.add(ImageBox{Box: Box{X: x, Y: y, H: height}, Path: b.deck.Logo})
}

// itemList 生成逐段竖排的条目文本框，条目间距固定为 10pt。
func (b *builder) itemList(box Box, items []string, color Color) TextBox {
	tb := TextBox{Box: box, WordWrap: true}
	for i, item := range items {
		p := Paragraph{Text: b.text(item), Size: panelItem, Color: color}
		if i > 0 {
			p.SpaceBefore = 10
		}
		tb.Paragraphs = append(tb.Paragraphs, p)
	}
	return tb
}

// checkBounds 校验不变式：所有图元的外接矩形必须落在画布内。
// 文本内容超出其声明高度不在此列（接受的外观缺陷，不视为错误）。
func (b *builder) checkBounds(slide Slide) error {
	const eps = 1e-6
	for _, sh := range slide.Shapes {
		box := sh.Bounds()
		if box.X < -eps || box.Y < -eps {
			return fmt.Errorf("%s 图元起点越界: (%g, %g)", sh.Kind(), box.X, box.Y)
		}
		if box.W > 0 && box.X+box.W > b.w+eps {
			return fmt.Errorf("%s 图元超出画布右缘: x=%g w=%g", sh.Kind(), box.X, box.W)
		}
		if box.H > 0 && box.Y+box.H > b.h+eps {
			return fmt.Errorf("%s 图元超出画布下缘: y=%g h=%g", sh.Kind(), box.Y, box.H)
		}
	}
	return nil
}

func asColor(c deck.Color) Color { return Color{R: c.R, G: c.G, B: c.B} }
