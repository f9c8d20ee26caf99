// Package highlight computes per-line syntax coloring for one record
// field, used when rendering the field's source inside an error backtrace.
//
// The pipeline is a pure function: walk the field's type annotation, walk
// every attribute expression that parses, append the field's own directive
// keyword spans, then sort each line by start column. Malformed attribute
// values are silently skipped; decoration never fails.
package highlight

import (
	"brec/internal/ast"
	"brec/internal/field"
	"brec/internal/source"
)

// ForField computes the highlight table for one field descriptor. The
// descriptor's spans and type ID must belong to fs and arenas.
func ForField(fs *source.FileSet, arenas *ast.Builder, d *field.Descriptor) *SyntaxInfo {
	v := &visitor{
		fs:     fs,
		arenas: arenas,
		info:   NewSyntaxInfo(),
	}

	if d.Ty.IsValid() {
		v.visitType(d.Ty)
	}
	v.visitAttributes(d)

	// Directive-name spans are trusted verbatim: no single-line check, no
	// deduplication against traversal output.
	for _, sp := range d.KeywordSpans {
		v.record(sp, ColorKeyword)
	}

	v.info.sortLines()
	return v.info
}
