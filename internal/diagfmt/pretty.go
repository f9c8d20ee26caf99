package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"brec/internal/diag"
	"brec/internal/source"
)

// severityColor returns the display color for a severity level.
func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func paintSeverity(sev diag.Severity, enabled bool) string {
	text := sev.String()
	if !enabled {
		return text
	}
	cc := severityColor(sev)
	cc.EnableColor()
	return cc.Sprint(text)
}

// Pretty writes the bag's diagnostics in human-readable form:
//
//	path:line:col: SEVERITY [CODE]: message
//
// followed by an optional source excerpt with a caret underline and the
// diagnostic's notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	for _, d := range bag.Items() {
		if err := prettyOne(w, d, fs, opts); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	_, err := fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		formatPath(f, opts.PathMode), start.Line, start.Col,
		paintSeverity(d.Severity, opts.Color), d.Code.ID(), d.Message)
	if err != nil {
		return err
	}

	if opts.ShowSnippets {
		if err := prettyExcerpt(w, f, start, end, opts); err != nil {
			return err
		}
	}

	if opts.ShowNotes {
		for _, note := range d.Notes {
			nf := fs.Get(note.Span.File)
			nStart, _ := fs.Resolve(note.Span)
			_, err := fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
				formatPath(nf, opts.PathMode), nStart.Line, nStart.Col, note.Msg)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// prettyExcerpt prints the lines around the primary span with a caret
// underline on the first span line.
func prettyExcerpt(w io.Writer, f *source.File, start, end source.LineCol, opts PrettyOpts) error {
	context := uint32(0)
	if opts.Context > 0 {
		context = uint32(opts.Context)
	}

	first := uint32(1)
	if start.Line > context {
		first = start.Line - context
	}
	last := end.Line + context
	if total := f.LineCount(); last > total {
		last = total
	}

	gutter := len(fmt.Sprintf("%d", last))
	for num := first; num <= last; num++ {
		line := truncateLine(f.GetLine(num), opts.Width)
		if _, err := fmt.Fprintf(w, "%*d | %s\n", gutter, num, line); err != nil {
			return err
		}
		if num != start.Line {
			continue
		}

		underline := caretUnderline(line, start, end, num)
		if underline == "" {
			continue
		}
		if opts.Color {
			cc := color.New(color.FgRed, color.Bold)
			cc.EnableColor()
			underline = cc.Sprint(underline)
		}
		if _, err := fmt.Fprintf(w, "%s | %s\n", strings.Repeat(" ", gutter), underline); err != nil {
			return err
		}
	}
	return nil
}

// caretUnderline builds the "   ^^^^" marker row for the span's first line.
func caretUnderline(line string, start, end source.LineCol, num uint32) string {
	from := start.Col - 1
	to := uint32(len(line))
	if end.Line == num && end.Col-1 < to {
		to = end.Col - 1
	}
	if from > uint32(len(line)) {
		return ""
	}
	if to <= from {
		to = from + 1
	}
	return strings.Repeat(" ", int(from)) + strings.Repeat("^", int(to-from))
}
