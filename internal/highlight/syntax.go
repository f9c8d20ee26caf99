package highlight

import (
	"cmp"
	"slices"
)

// Highlight is a half-open byte-column range [Start, End) on one source
// line, 0-based, paired with a color category.
type Highlight struct {
	Start uint32
	End   uint32
	Color Color
}

// LineSyntax is the ordered highlight sequence of one line. After
// aggregation the sequence is sorted by ascending Start; equal starts keep
// discovery order. Overlaps are allowed and left for the renderer.
type LineSyntax struct {
	Highlights []Highlight
}

// SyntaxInfo maps 1-based source line numbers to their highlights. Lines
// without highlights have no entry.
type SyntaxInfo struct {
	Lines map[uint32]*LineSyntax
}

func NewSyntaxInfo() *SyntaxInfo {
	return &SyntaxInfo{
		Lines: make(map[uint32]*LineSyntax),
	}
}

// Line returns the highlights of a 1-based line, or nil.
func (si *SyntaxInfo) Line(num uint32) *LineSyntax {
	return si.Lines[num]
}

func (si *SyntaxInfo) add(line uint32, hl Highlight) {
	ls, ok := si.Lines[line]
	if !ok {
		ls = &LineSyntax{}
		si.Lines[line] = ls
	}
	ls.Highlights = append(ls.Highlights, hl)
}

// sortLines orders every line by start column. The sort is stable so that
// highlights starting at the same column keep the order they were found in.
func (si *SyntaxInfo) sortLines() {
	for _, ls := range si.Lines {
		slices.SortStableFunc(ls.Highlights, func(a, b Highlight) int {
			return cmp.Compare(a.Start, b.Start)
		})
	}
}
