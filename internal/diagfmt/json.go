package diagfmt

import (
	"encoding/json"
	"io"
	"slices"

	"brec/internal/diag"
	"brec/internal/highlight"
	"brec/internal/source"
)

// LocationJSON is a file location in JSON output.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON is a secondary note attached to a diagnostic.
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON is one diagnostic in JSON output.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput is the root structure of diagnostics JSON output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// makeLocation builds a LocationJSON from a span.
func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode, includePositions bool) LocationJSON {
	f := fs.Get(span.File)

	loc := LocationJSON{
		File:      formatPath(f, pathMode),
		StartByte: span.Start,
		EndByte:   span.End,
	}

	if includePositions {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}

	return loc
}

// BuildDiagnosticsOutput assembles the JSON output structure without
// serializing it.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for i := range maxItems {
		d := items[i]

		diagJSON := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts.PathMode, opts.IncludePositions),
		}

		if opts.IncludeNotes && len(d.Notes) > 0 {
			diagJSON.Notes = make([]NoteJSON, len(d.Notes))
			for j, note := range d.Notes {
				diagJSON.Notes[j] = NoteJSON{
					Message:  note.Msg,
					Location: makeLocation(note.Span, fs, opts.PathMode, opts.IncludePositions),
				}
			}
		}

		diagnostics = append(diagnostics, diagJSON)
	}

	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       bag.Len(),
	}
}

// JSON serializes the bag's diagnostics to the writer with indentation.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	output := BuildDiagnosticsOutput(bag, fs, opts)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// HighlightJSON is one colored column range on a line.
type HighlightJSON struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Color string `json:"color"`
}

// LineHighlightsJSON carries the highlights of one 1-based line.
type LineHighlightsJSON struct {
	Line       uint32          `json:"line"`
	Highlights []HighlightJSON `json:"highlights"`
}

// FieldSyntaxJSON is the highlight set computed for one field.
type FieldSyntaxJSON struct {
	Field string               `json:"field,omitempty"`
	Lines []LineHighlightsJSON `json:"lines"`
}

// SyntaxOutput is the root structure of highlight JSON output.
type SyntaxOutput struct {
	File   string            `json:"file"`
	Fields []FieldSyntaxJSON `json:"fields"`
}

// BuildFieldSyntax converts one field's SyntaxInfo into its JSON form.
// Lines come out in ascending order regardless of map iteration.
func BuildFieldSyntax(name string, info *highlight.SyntaxInfo) FieldSyntaxJSON {
	out := FieldSyntaxJSON{Field: name, Lines: make([]LineHighlightsJSON, 0, len(info.Lines))}

	nums := make([]uint32, 0, len(info.Lines))
	for num := range info.Lines {
		nums = append(nums, num)
	}
	slices.Sort(nums)

	for _, num := range nums {
		ls := info.Lines[num]
		row := LineHighlightsJSON{
			Line:       num,
			Highlights: make([]HighlightJSON, len(ls.Highlights)),
		}
		for i, hl := range ls.Highlights {
			row.Highlights[i] = HighlightJSON{Start: hl.Start, End: hl.End, Color: hl.Color.String()}
		}
		out.Lines = append(out.Lines, row)
	}
	return out
}

// SyntaxJSON serializes a SyntaxOutput to the writer with indentation.
func SyntaxJSON(w io.Writer, output SyntaxOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// SyntaxJSONList serializes a batch of SyntaxOutputs as one array.
func SyntaxJSONList(w io.Writer, outputs []SyntaxOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(outputs)
}
