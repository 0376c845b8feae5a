package dsl

import (
	"fmt"

	"github.com/ByLCY/prospectus/deck"
	"github.com/ByLCY/prospectus/layout"
)

// Decode 将解析后的 AST 转换为可布局的 Deck，并做结构校验。
func Decode(doc *Document) (*deck.Deck, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}
	name := string(doc.Name)
	if name == "" {
		return nil, fmt.Errorf("deck 名称不能为空")
	}
	d := deck.New(name)

	slideIdx := 0
	for _, decl := range doc.Decls {
		switch {
		case decl.Size != nil:
			w := layout.ParseLength(decl.Size.Width).ToInches()
			h := layout.ParseLength(decl.Size.Height).ToInches()
			if w <= 0 || h <= 0 {
				return nil, fmt.Errorf("size 声明非法: %s %s", decl.Size.Width, decl.Size.Height)
			}
			d.Width, d.Height = w, h
		case decl.Logo != nil:
			d.Logo = string(decl.Logo.Path)
		case decl.Slide != nil:
			slideIdx++
			slide, err := decodeSlide(decl.Slide)
			if err != nil {
				return nil, fmt.Errorf("第 %d 张幻灯片: %w", slideIdx, err)
			}
			d.Append(slide)
		}
	}
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("文稿不含任何幻灯片")
	}
	return d, nil
}

func decodeSlide(sd *SlideDecl) (deck.Slide, error) {
	switch sd.Kind {
	case "title":
		return decodeTitle(sd)
	case "columns":
		return decodeColumns(sd)
	case "sections":
		return decodeSections(sd)
	default:
		return nil, fmt.Errorf("未知的幻灯片类型 %q", sd.Kind)
	}
}

func decodeTitle(sd *SlideDecl) (deck.Slide, error) {
	var s deck.TitleSlide
	for _, entry := range sd.Entries {
		if entry.Group != nil {
			return nil, fmt.Errorf("title 幻灯片不支持 %s 分组", entry.Group.Kind)
		}
		a := entry.Assign
		switch a.Key {
		case "title":
			s.Title = string(a.Value)
		case "subtitle":
			s.Subtitle = string(a.Value)
		case "tagline":
			s.Tagline = string(a.Value)
		default:
			return nil, fmt.Errorf("title 幻灯片不支持键 %q", a.Key)
		}
	}
	if s.Title == "" {
		return nil, fmt.Errorf("缺少 title")
	}
	return s, nil
}

func decodeColumns(sd *SlideDecl) (deck.Slide, error) {
	var s deck.TwoColumnSlide
	var haveLeft, haveRight bool
	for _, entry := range sd.Entries {
		switch {
		case entry.Assign != nil:
			if entry.Assign.Key != "title" {
				return nil, fmt.Errorf("columns 幻灯片不支持键 %q", entry.Assign.Key)
			}
			s.Title = string(entry.Assign.Value)
		case entry.Group != nil:
			col := deck.Column{Header: string(entry.Group.Header), Items: toStrings(entry.Group.Items)}
			switch entry.Group.Kind {
			case "left":
				if haveLeft {
					return nil, fmt.Errorf("left 分组重复")
				}
				s.Left, haveLeft = col, true
			case "right":
				if haveRight {
					return nil, fmt.Errorf("right 分组重复")
				}
				s.Right, haveRight = col, true
			default:
				return nil, fmt.Errorf("columns 幻灯片不支持 %s 分组", entry.Group.Kind)
			}
		}
	}
	if s.Title == "" {
		return nil, fmt.Errorf("缺少 title")
	}
	if !haveLeft || !haveRight {
		return nil, fmt.Errorf("columns 幻灯片需要 left 与 right 两个分组")
	}
	return s, nil
}

func decodeSections(sd *SlideDecl) (deck.Slide, error) {
	var s deck.SectionedSlide
	for _, entry := range sd.Entries {
		switch {
		case entry.Assign != nil:
			switch entry.Assign.Key {
			case "title":
				s.Title = string(entry.Assign.Value)
			case "note":
				s.Note = string(entry.Assign.Value)
			default:
				return nil, fmt.Errorf("sections 幻灯片不支持键 %q", entry.Assign.Key)
			}
		case entry.Group != nil:
			if entry.Group.Kind != "section" {
				return nil, fmt.Errorf("sections 幻灯片不支持 %s 分组", entry.Group.Kind)
			}
			s.Sections = append(s.Sections, deck.Section{
				Header: string(entry.Group.Header),
				Items:  toStrings(entry.Group.Items),
			})
		}
	}
	if s.Title == "" {
		return nil, fmt.Errorf("缺少 title")
	}
	if len(s.Sections) == 0 {
		return nil, fmt.Errorf("sections 幻灯片至少需要一个 section")
	}
	return s, nil
}

func toStrings(in []StringLiteral) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, string(s))
	}
	return out
}
