package diagfmt

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"brec/internal/highlight"
	"brec/internal/source"
)

// colorFor maps a highlight category onto a terminal color.
func colorFor(c highlight.Color) *color.Color {
	switch c {
	case highlight.ColorString:
		return color.New(color.FgYellow)
	case highlight.ColorChar:
		return color.New(color.FgHiMagenta)
	case highlight.ColorNumber:
		return color.New(color.FgMagenta)
	case highlight.ColorKeyword:
		return color.New(color.FgRed)
	case highlight.ColorFunction:
		return color.New(color.FgGreen)
	default:
		return color.New()
	}
}

// paint applies the category color to text, or returns it unchanged when
// coloring is off.
func paint(c highlight.Color, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	cc := colorFor(c)
	cc.EnableColor()
	return cc.Sprint(text)
}

// RenderLine decorates one source line with its highlights. Columns are byte
// offsets into the line; out-of-range highlights are clamped, and a highlight
// that starts inside an earlier one is skipped (first one wins).
func RenderLine(line string, ls *highlight.LineSyntax, useColor bool) string {
	if ls == nil || len(ls.Highlights) == 0 {
		return line
	}

	var sb strings.Builder
	pos := uint32(0)
	limit := uint32(len(line))
	for _, hl := range ls.Highlights {
		start, end := hl.Start, hl.End
		if start < pos {
			continue
		}
		if start > limit {
			start = limit
		}
		if end > limit {
			end = limit
		}
		if end < start {
			end = start
		}
		sb.WriteString(line[pos:start])
		sb.WriteString(paint(hl.Color, line[start:end], useColor))
		pos = end
	}
	sb.WriteString(line[pos:])
	return sb.String()
}

// Snippet writes the decorated source lines of one field. Only lines that
// carry highlights are rendered, each behind a line-number gutter; gaps
// between non-adjacent lines show an ellipsis row.
func Snippet(w io.Writer, fs *source.FileSet, fileID source.FileID, info *highlight.SyntaxInfo, opts PrettyOpts) error {
	f := fs.Get(fileID)

	nums := sortedLineNums(info)
	if len(nums) == 0 {
		return nil
	}

	gutter := len(fmt.Sprintf("%d", nums[len(nums)-1]))
	prev := uint32(0)
	for _, num := range nums {
		if prev != 0 && num > prev+1 {
			if _, err := fmt.Fprintf(w, "%s |\n", strings.Repeat(" ", gutter)); err != nil {
				return err
			}
		}
		prev = num

		line := f.GetLine(num)
		rendered := RenderLine(truncateLine(line, opts.Width), info.Line(num), opts.Color)
		if _, err := fmt.Fprintf(w, "%*d | %s\n", gutter, num, rendered); err != nil {
			return err
		}
	}
	return nil
}

// truncateLine shortens the raw line to the display width before any color
// codes are added, so escape sequences never get cut in half.
func truncateLine(line string, width uint16) string {
	if width == 0 {
		return line
	}
	return runewidth.Truncate(line, int(width), "…")
}

func sortedLineNums(info *highlight.SyntaxInfo) []uint32 {
	nums := make([]uint32, 0, len(info.Lines))
	for num := range info.Lines {
		nums = append(nums, num)
	}
	slices.Sort(nums)
	return nums
}
