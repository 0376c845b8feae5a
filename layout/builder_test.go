package layout

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ByLCY/prospectus/deck"
)

// buildSlides 是测试辅助：构建 Deck 并返回布局结果。
func buildSlides(t *testing.T, d *deck.Deck, data any) *Result {
	t.Helper()
	res, err := Build(d, BuildOptions{Data: data})
	if err != nil {
		t.Fatalf("布局计算失败: %v", err)
	}
	return res
}

// countKinds 按图元类型统计数量。
func countKinds(s Slide) map[string]int {
	counts := map[string]int{}
	for _, sh := range s.Shapes {
		counts[sh.Kind()]++
	}
	return counts
}

func textBoxes(s Slide) []TextBox {
	var out []TextBox
	for _, sh := range s.Shapes {
		if tb, ok := sh.(TextBox); ok {
			out = append(out, tb)
		}
	}
	return out
}

func rects(s Slide) []Rect {
	var out []Rect
	for _, sh := range s.Shapes {
		if r, ok := sh.(Rect); ok {
			out = append(out, r)
		}
	}
	return out
}

// TestBuiltinDeckCardinality 内置文稿应产出四张幻灯片，元信息取自文稿名。
func TestBuiltinDeckCardinality(t *testing.T) {
	res := buildSlides(t, deck.Builtin(), nil)
	if len(res.Slides) != 4 {
		t.Fatalf("幻灯片数量应为 4，实际 %d", len(res.Slides))
	}
	if res.Meta.Title != "Panagora Growth Strategies" {
		t.Fatalf("文档标题不符: %q", res.Meta.Title)
	}
	if res.Width != deck.DefaultWidth || res.Height != deck.DefaultHeight {
		t.Fatalf("画布尺寸不符: %gx%g", res.Width, res.Height)
	}
}

// TestTitleSlideWithoutTagline 无标语、无徽标时封面页恰好 5 个图元：
// 3 个矩形（整版底、饰条、底部色带）加 2 个文本框（标题、副标题）。
func TestTitleSlideWithoutTagline(t *testing.T) {
	d := deck.New("T")
	d.Append(deck.TitleSlide{Title: "Big Title", Subtitle: "Sub"})
	res := buildSlides(t, d, nil)

	s := res.Slides[0]
	counts := countKinds(s)
	if counts["rect"] != 3 || counts["text"] != 2 || counts["oval"] != 0 || counts["image"] != 0 {
		t.Fatalf("封面页图元统计不符: %v", counts)
	}

	// 第一个图元必须是整版背景（z 序最底层）
	bg, ok := s.Shapes[0].(Rect)
	if !ok || bg.X != 0 || bg.Y != 0 || bg.W != res.Width || bg.H != res.Height {
		t.Fatalf("首个图元应为整版背景矩形，实际 %#v", s.Shapes[0])
	}

	tbs := textBoxes(s)
	if !tbs[0].Paragraphs[0].Bold || tbs[0].Paragraphs[0].Size != titleSize {
		t.Fatalf("标题段样式不符: %#v", tbs[0].Paragraphs[0])
	}
	if tbs[1].Paragraphs[0].Size != subtitleSize {
		t.Fatalf("副标题字号不符: %g", tbs[1].Paragraphs[0].Size)
	}
}

// TestTitleSlideTagline 标语仅在非空时生成，多出一个文本框。
func TestTitleSlideTagline(t *testing.T) {
	d := deck.New("T")
	d.Append(deck.TitleSlide{Title: "Big", Subtitle: "Sub", Tagline: "Line"})
	res := buildSlides(t, d, nil)

	counts := countKinds(res.Slides[0])
	if counts["text"] != 3 {
		t.Fatalf("含标语的封面页应有 3 个文本框，实际 %d", counts["text"])
	}
	tbs := textBoxes(res.Slides[0])
	last := tbs[len(tbs)-1]
	if last.Paragraphs[0].Text != "Line" || last.Paragraphs[0].Size != taglineSize {
		t.Fatalf("标语段不符: %#v", last.Paragraphs[0])
	}
}

// TestLogoPlacement 设置徽标后每张幻灯片出现一个宽度留空的图片占位；
// 不设置则一个也没有。布局阶段不校验文件是否存在。
func TestLogoPlacement(t *testing.T) {
	d := deck.New("T")
	d.Logo = "logo.png"
	d.Append(deck.TitleSlide{Title: "A", Subtitle: "B"})
	res := buildSlides(t, d, nil)

	var images []ImageBox
	for _, sh := range res.Slides[0].Shapes {
		if img, ok := sh.(ImageBox); ok {
			images = append(images, img)
		}
	}
	if len(images) != 1 {
		t.Fatalf("应恰有一个徽标占位，实际 %d", len(images))
	}
	if images[0].W != 0 || images[0].H != 0.8 || images[0].Path != "logo.png" {
		t.Fatalf("徽标占位不符: %#v", images[0])
	}

	d.Logo = ""
	res = buildSlides(t, d, nil)
	if countKinds(res.Slides[0])["image"] != 0 {
		t.Fatalf("未设置徽标时不应有图片占位")
	}
}

// TestTwoColumnPanels 双栏页的两块面板填充色必须不同（浅底 vs 深底），
// 条目逐段竖排且自第二段起带 10pt 段前距。
func TestTwoColumnPanels(t *testing.T) {
	d := deck.New("T")
	d.Append(deck.TwoColumnSlide{
		Title: "Compare",
		Left:  deck.Column{Header: "L", Items: []string{"l1", "l2", "l3"}},
		Right: deck.Column{Header: "R", Items: []string{"r1", "r2"}},
	})
	res := buildSlides(t, d, nil)

	s := res.Slides[0]
	counts := countKinds(s)
	// 标题带 2 矩形 + 2 面板矩形；标题 + 2 表头 + 2 条目列表共 5 文本框
	if counts["rect"] != 4 || counts["text"] != 5 {
		t.Fatalf("双栏页图元统计不符: %v", counts)
	}

	rcs := rects(s)
	left, right := rcs[2], rcs[3]
	if *left.Fill == *right.Fill {
		t.Fatalf("左右面板填充色不应相同: %v", *left.Fill)
	}
	if left.Radius != cornerRadius || right.Radius != cornerRadius {
		t.Fatalf("面板应为圆角矩形: %g %g", left.Radius, right.Radius)
	}
	if left.Stroke == nil || right.Stroke != nil {
		t.Fatalf("左面板应有描边、右面板不应有")
	}

	tbs := textBoxes(s)
	leftItems, rightItems := tbs[2], tbs[4]
	if len(leftItems.Paragraphs) != 3 || len(rightItems.Paragraphs) != 2 {
		t.Fatalf("条目段数不符: %d / %d", len(leftItems.Paragraphs), len(rightItems.Paragraphs))
	}
	if leftItems.Paragraphs[0].SpaceBefore != 0 {
		t.Fatalf("首段不应有段前距")
	}
	for _, p := range leftItems.Paragraphs[1:] {
		if p.SpaceBefore != 10 {
			t.Fatalf("条目段前距应为 10pt，实际 %g", p.SpaceBefore)
		}
	}
}

// TestSectionedCards 分节卡片：横向位置严格递增且间距恒定，
// 徽章编号从 1 起居中显示，条目带 "» " 前缀。
func TestSectionedCards(t *testing.T) {
	d := deck.New("T")
	d.Append(deck.SectionedSlide{
		Title: "Plan",
		Note:  "for someone",
		Sections: []deck.Section{
			{Header: "One", Items: []string{"a", "b"}},
			{Header: "Two", Items: []string{"c"}},
			{Header: "Three", Items: []string{"d"}},
		},
	})
	res := buildSlides(t, d, nil)
	s := res.Slides[0]

	var cards []Rect
	for _, r := range rects(s) {
		if r.H == 5.3 {
			cards = append(cards, r)
		}
	}
	if len(cards) != 3 {
		t.Fatalf("应有 3 张卡片，实际 %d", len(cards))
	}
	for i := 1; i < len(cards); i++ {
		gap := cards[i].X - cards[i-1].X
		if diff := gap - (sectionWidth + sectionGap); diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("卡片间距应为 %g，实际 %g", sectionWidth+sectionGap, gap)
		}
	}

	counts := countKinds(s)
	if counts["oval"] != 3 {
		t.Fatalf("应有 3 个徽章圆，实际 %d", counts["oval"])
	}

	var badges, items []Paragraph
	for _, tb := range textBoxes(s) {
		for _, p := range tb.Paragraphs {
			switch {
			case p.Align == AlignCenter && p.Size == badgeSize:
				badges = append(badges, p)
			case strings.HasPrefix(p.Text, bulletPrefix):
				items = append(items, p)
			}
		}
	}
	want := []string{"1", "2", "3"}
	if len(badges) != len(want) {
		t.Fatalf("徽章数量不符: %d", len(badges))
	}
	for i, p := range badges {
		if p.Text != want[i] || !p.Bold {
			t.Fatalf("徽章 %d 不符: %#v", i+1, p)
		}
	}
	if len(items) != 4 {
		t.Fatalf("带项目符号的条目应为 4 段，实际 %d", len(items))
	}

	// 个性化备注为小号斜体
	note := textBoxes(s)[1]
	if !note.Paragraphs[0].Italic || note.Paragraphs[0].Size != noteSize {
		t.Fatalf("备注样式不符: %#v", note.Paragraphs[0])
	}
}

// TestSectionedOverflow 默认画布最多容纳三张卡片，第四张越界即报错。
func TestSectionedOverflow(t *testing.T) {
	d := deck.New("T")
	d.Append(deck.SectionedSlide{
		Title: "Plan",
		Sections: []deck.Section{
			{Header: "1"}, {Header: "2"}, {Header: "3"}, {Header: "4"},
		},
	})
	if _, err := Build(d, BuildOptions{}); err == nil {
		t.Fatalf("四节卡片应因超出画布而报错")
	}
}

// TestInterpolation 备注中的 ${path} 占位符按传入数据替换；缺失路径保留原样。
func TestInterpolation(t *testing.T) {
	d := deck.New("${company} Strategies")
	d.Append(deck.SectionedSlide{
		Title:    "Plan",
		Note:     "Created for Discussion with ${prospect.name}",
		Sections: []deck.Section{{Header: "One", Items: []string{"x"}}},
	})
	data := map[string]any{
		"company":  "Panagora",
		"prospect": map[string]any{"name": "Tim Stanton"},
	}
	res := buildSlides(t, d, data)

	if res.Meta.Title != "Panagora Strategies" {
		t.Fatalf("文档标题未插值: %q", res.Meta.Title)
	}
	note := textBoxes(res.Slides[0])[1].Paragraphs[0].Text
	if note != "Created for Discussion with Tim Stanton" {
		t.Fatalf("备注未插值: %q", note)
	}

	// 无数据时占位符原样保留
	res = buildSlides(t, d, nil)
	note = textBoxes(res.Slides[0])[1].Paragraphs[0].Text
	if note != "Created for Discussion with ${prospect.name}" {
		t.Fatalf("无数据时应保留占位符: %q", note)
	}
}

// TestBuildDeterministic 同一份文稿与数据必定产出相同的 Result。
func TestBuildDeterministic(t *testing.T) {
	data := map[string]any{"prospect": map[string]any{"name": "Tim"}}
	a := buildSlides(t, deck.Builtin(), data)
	b := buildSlides(t, deck.Builtin(), data)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("两次布局结果不一致")
	}
}

// TestBuildRejectsInvalidDeck 空文稿、零尺寸与 nil 均应报错。
func TestBuildRejectsInvalidDeck(t *testing.T) {
	if _, err := Build(nil, BuildOptions{}); err == nil {
		t.Fatalf("nil Deck 应报错")
	}
	if _, err := Build(deck.New("empty"), BuildOptions{}); err == nil {
		t.Fatalf("无幻灯片的文稿应报错")
	}
	d := deck.New("bad")
	d.Width = 0
	d.Append(deck.TitleSlide{Title: "A", Subtitle: "B"})
	if _, err := Build(d, BuildOptions{}); err == nil {
		t.Fatalf("零宽画布应报错")
	}
}

// TestBoundsInvariant 内置文稿的所有图元必须落在画布内。
func TestBoundsInvariant(t *testing.T) {
	res := buildSlides(t, deck.Builtin(), nil)
	for i, s := range res.Slides {
		for _, sh := range s.Shapes {
			box := sh.Bounds()
			if box.X < 0 || box.Y < 0 {
				t.Fatalf("第 %d 张幻灯片 %s 图元起点越界: %#v", i+1, sh.Kind(), box)
			}
			if box.W > 0 && box.X+box.W > res.Width+1e-6 {
				t.Fatalf("第 %d 张幻灯片 %s 图元超出右缘: %#v", i+1, sh.Kind(), box)
			}
			if box.H > 0 && box.Y+box.H > res.Height+1e-6 {
				t.Fatalf("第 %d 张幻灯片 %s 图元超出下缘: %#v", i+1, sh.Kind(), box)
			}
		}
	}
}
