package dsl

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/cellsplit/split"
	"github.com/lixenwraith/cellsplit/terminal"
	"github.com/lixenwraith/cellsplit/terminal/tui"
)

// Load parses and builds the layout file at path
func Load(path string) (split.Cell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open layout")
	}
	defer f.Close()

	doc, err := Parse(f, path)
	if err != nil {
		return nil, errors.Wrap(err, "parse layout")
	}
	return doc.Build()
}

// Build converts the parsed tree into a renderable cell
func (d *Document) Build() (split.Cell, error) {
	if d == nil || d.Root == nil {
		return nil, errors.New("empty document")
	}
	return buildNode(d.Root)
}

func buildNode(n *Node) (split.Cell, error) {
	switch {
	case n.Split != nil:
		return buildSplit(n.Split)
	case n.Text != nil:
		return buildText(n.Text)
	case n.Box != nil:
		return buildBox(n.Box)
	case n.Fill != nil:
		return buildFill(n.Fill)
	case n.Empty:
		return split.Empty, nil
	}
	return nil, errors.Errorf("%s: unknown node", n.Pos)
}

func buildSplit(s *SplitNode) (split.Cell, error) {
	if len(s.Children) != 2 {
		return nil, errors.Errorf("%s: %s needs exactly two children, got %d", s.Pos, s.Dir, len(s.Children))
	}

	first, err := buildNode(s.Children[0])
	if err != nil {
		return nil, err
	}
	second, err := buildNode(s.Children[1])
	if err != nil {
		return nil, err
	}

	if s.Size.Offset != nil {
		offset := *s.Size.Offset
		if offset > 1 {
			return nil, errors.Errorf("%s: offset %v outside 0.0-1.0", s.Size.Pos, offset)
		}
		if s.Dir == "rows" {
			return split.RowsAt(first, second, offset), nil
		}
		return split.ColumnsAt(first, second, offset), nil
	}

	c, err := s.Size.constraint()
	if err != nil {
		return nil, err
	}
	if s.Dir == "rows" {
		return split.Rows(first, second, c), nil
	}
	return split.Columns(first, second, c), nil
}

func (sz *Size) constraint() (tui.Constraint, error) {
	switch {
	case sz.Length != nil:
		return tui.Length(*sz.Length), nil

	case sz.Percent != nil:
		p, err := strconv.ParseUint(strings.TrimSuffix(*sz.Percent, "%"), 10, 16)
		if err != nil || p > 100 {
			return nil, errors.Errorf("%s: invalid percentage %q", sz.Pos, *sz.Percent)
		}
		return tui.Percentage(p), nil

	case sz.Ratio != nil:
		num, den, _ := strings.Cut(*sz.Ratio, "/")
		n, err := strconv.ParseUint(num, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: ratio numerator", sz.Pos)
		}
		d, err := strconv.ParseUint(den, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: ratio denominator", sz.Pos)
		}
		if d == 0 {
			return nil, errors.Errorf("%s: ratio %q has zero denominator", sz.Pos, *sz.Ratio)
		}
		return tui.Ratio{Num: uint32(n), Den: uint32(d)}, nil

	case sz.Fill:
		return tui.Fill(1), nil
	}
	return nil, errors.Errorf("%s: missing size", sz.Pos)
}

// leafStyle folds leaf options into a style and paragraph settings
type leafStyle struct {
	style tui.Style
	align tui.Align
	wrap  bool
}

func applyOptions(opts []*Option) (leafStyle, error) {
	var ls leafStyle
	for _, o := range opts {
		switch {
		case o.Align != nil:
			a, ok := tui.ParseAlign(*o.Align)
			if !ok {
				return ls, errors.Errorf("%s: unknown alignment %q", o.Pos, *o.Align)
			}
			ls.align = a
		case o.Wrap:
			ls.wrap = true
		case o.Bold:
			ls.style = ls.style.Bold()
		case o.Fg != nil:
			c, err := terminal.ParseHex(*o.Fg)
			if err != nil {
				return ls, errors.Wrapf(err, "%s: fg", o.Pos)
			}
			ls.style.Fg = c
		case o.Bg != nil:
			c, err := terminal.ParseHex(*o.Bg)
			if err != nil {
				return ls, errors.Wrapf(err, "%s: bg", o.Pos)
			}
			ls.style.Bg = c
		}
	}
	return ls, nil
}

func buildText(t *TextNode) (split.Cell, error) {
	ls, err := applyOptions(t.Options)
	if err != nil {
		return nil, err
	}
	return tui.Paragraph{
		Text:  t.Value,
		Style: ls.style,
		Align: ls.align,
		Wrap:  ls.wrap,
	}, nil
}

func buildBox(b *BoxNode) (split.Cell, error) {
	ls, err := applyOptions(b.Options)
	if err != nil {
		return nil, err
	}

	line := tui.LineSingle
	if b.Line != "" {
		l, ok := tui.ParseLineType(b.Line)
		if !ok {
			return nil, errors.Errorf("unknown line type %q", b.Line)
		}
		line = l
	}

	block := tui.Block{
		Line:       line,
		BorderFg:   ls.style.Fg,
		Background: ls.style.Bg,
	}
	if b.Title != nil {
		block.Title = *b.Title
	}
	if b.Inner != nil {
		inner, err := buildNode(b.Inner)
		if err != nil {
			return nil, err
		}
		block.Inner = inner
	}
	return block, nil
}

func buildFill(f *FillNode) (split.Cell, error) {
	filler := tui.Filler{Rune: ' '}
	if f.Color != nil {
		c, err := terminal.ParseHex(*f.Color)
		if err != nil {
			return nil, errors.Wrap(err, "fill")
		}
		filler.Style.Bg = c
	}
	return filler, nil
}
