package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// .deck 文稿描述文件的语法：
//
//	deck "Panagora Growth Strategies" {
//	  size 13.333in 7.5in
//	  logo "panagora_logo.png"
//	  slide title {
//	    title: "Accelerating Growth"
//	    subtitle: "..."
//	  }
//	  slide columns {
//	    title: "..."
//	    left "MARKET DYNAMICS" { "item" "item" }
//	    right "DIFFERENTIATORS" { "item" }
//	  }
//	  slide sections {
//	    title: "..."
//	    note: "Created for ${prospect.name}"
//	    section "Predictive Lead Scoring" { "item" }
//	  }
//	}

var (
	deckLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:pt|mm|cm|in)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[:;,]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(deckLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Document is the root AST node for a .deck file.
type Document struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Name  StringLiteral  `parser:"Newline* 'deck' @String '{' Newline*"`
	Decls []*Decl        `parser:"( @@ Newline* )* '}' Newline*"`
}

// Decl 顶层声明：画布尺寸、徽标或一张幻灯片。
type Decl struct {
	Size  *SizeDecl  `parser:"  @@"`
	Logo  *LogoDecl  `parser:"| @@"`
	Slide *SlideDecl `parser:"| @@"`
}

// SizeDecl 画布尺寸，两个带单位的长度（宽、高）。
type SizeDecl struct {
	Width  string `parser:"'size' @Number"`
	Height string `parser:"@Number"`
}

// LogoDecl 徽标图片路径。
type LogoDecl struct {
	Path StringLiteral `parser:"'logo' @String"`
}

// SlideDecl 一张幻灯片：变体标签加上键值与分组条目。
type SlideDecl struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Kind    string         `parser:"'slide' @('title' | 'columns' | 'sections')"`
	Entries []*Entry       `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Entry 幻灯片体内的一条语句。
type Entry struct {
	Assign *Assignment `parser:"  @@"`
	Group  *Group      `parser:"| @@"`
}

// Assignment 键值语句（key: "value"）。键集合固定，
// 便于和分组语句在首个 token 处区分。
type Assignment struct {
	Key   string        `parser:"@('title' | 'subtitle' | 'tagline' | 'note') ':'"`
	Value StringLiteral `parser:"Newline* @String"`
}

// Group 带表头与条目列表的分组（left/right/section）。
type Group struct {
	Kind   string          `parser:"@('left' | 'right' | 'section')"`
	Header StringLiteral   `parser:"@String"`
	Items  []StringLiteral `parser:"'{' Newline* ( @String ( ';' | Newline )* )* '}'"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses deck DSL content from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses deck DSL content from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}
