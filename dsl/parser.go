// Package dsl parses a text description of a split layout.
//
//	// header over a two column body
//	rows 1 {
//	  text "TITLE" bold align center
//	  columns 0.3 {
//	    box rounded "nav" { text "one\ntwo" }
//	    box single { text "content" wrap }
//	  }
//	}
//
// Split nodes take a size (N, N%, N/M, fill, or a 0.0-1.0 offset) and
// exactly two children. Leaves are text, box, fill and empty.
package dsl

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	// Colors are only lexed right after fg, bg or fill so # comments can start with hex
	dslLexer = lexer.MustStateful(lexer.Rules{
		"Root": {
			{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
			{Name: "LineComment", Pattern: `//[^\n]*`},
			{Name: "HashComment", Pattern: `#[^\n]*`},
			{Name: "ColorKey", Pattern: `(?:fg|bg|fill)\b`, Action: lexer.Push("Colored")},
			{Name: "Ratio", Pattern: `\d+/\d+`},
			{Name: "Percent", Pattern: `\d+%`},
			{Name: "Float", Pattern: `\d+\.\d+`},
			{Name: "Int", Pattern: `\d+`},
			{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
			{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
			{Name: "Punct", Pattern: `[{}]`},
		},
		"Colored": {
			{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
			{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`, Action: lexer.Pop()},
			{Name: "BadColor", Pattern: `#[0-9A-Za-z]+`, Action: lexer.Pop()},
			lexer.Return(),
		},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "HashComment"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
)

// Document is the root of a layout file, exactly one node
type Document struct {
	Pos  lexer.Position `parser:""`
	Root *Node          `parser:"@@"`
}

// Node is one cell of the tree
type Node struct {
	Pos   lexer.Position `parser:""`
	Split *SplitNode     `parser:"  @@"`
	Text  *TextNode      `parser:"| @@"`
	Box   *BoxNode       `parser:"| @@"`
	Fill  *FillNode      `parser:"| @@"`
	Empty bool           `parser:"| @'empty'"`
}

// Kind returns the human-readable node type
func (n *Node) Kind() string {
	switch {
	case n == nil:
		return "unknown"
	case n.Split != nil:
		return n.Split.Dir
	case n.Text != nil:
		return "text"
	case n.Box != nil:
		return "box"
	case n.Fill != nil:
		return "fill"
	case n.Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// SplitNode is a rows or columns split with its children
type SplitNode struct {
	Pos      lexer.Position `parser:""`
	Dir      string         `parser:"@( 'rows' | 'columns' )"`
	Size     *Size          `parser:"@@"`
	Children []*Node        `parser:"'{' @@* '}'"`
}

// Size is the first child's share of the split
type Size struct {
	Pos     lexer.Position `parser:""`
	Ratio   *string        `parser:"  @Ratio"`
	Percent *string        `parser:"| @Percent"`
	Offset  *float64       `parser:"| @Float"`
	Length  *int           `parser:"| @Int"`
	Fill    bool           `parser:"| @'fill'"`
}

// TextNode is a paragraph leaf
type TextNode struct {
	Value   string    `parser:"'text' @String"`
	Options []*Option `parser:"@@*"`
}

// BoxNode is a bordered block with an optional inner node
type BoxNode struct {
	Line    string    `parser:"'box' @( 'single' | 'double' | 'rounded' | 'heavy' | 'none' )?"`
	Title   *string   `parser:"@String?"`
	Options []*Option `parser:"@@*"`
	Inner   *Node     `parser:"( '{' @@? '}' )?"`
}

// FillNode paints its area, optionally with a background color
type FillNode struct {
	Color *string `parser:"'fill' @Color?"`
}

// Option is a styling modifier on a leaf
type Option struct {
	Pos   lexer.Position `parser:""`
	Align *string        `parser:"  'align' @( 'left' | 'center' | 'right' )"`
	Wrap  bool           `parser:"| @'wrap'"`
	Bold  bool           `parser:"| @'bold'"`
	Fg    *string        `parser:"| 'fg' @Color"`
	Bg    *string        `parser:"| 'bg' @Color"`
}

// Parse reads a layout description, name is used in error positions
func Parse(r io.Reader, name string) (*Document, error) {
	return documentParser.Parse(name, r)
}

// ParseString parses a layout description held in memory
func ParseString(name, src string) (*Document, error) {
	return documentParser.ParseString(name, src)
}
