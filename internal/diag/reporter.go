package diag

import "brec/internal/source"

// Reporter is the minimal sink contract the lexer and parser emit into.
// Implementations: BagReporter (collects into a Bag), NopReporter (drops
// everything; used where failures are swallowed by contract).
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// BagReporter writes every report into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes,
	})
}

// NopReporter drops every report. Decoration parses attribute streams with
// this reporter: a slot that fails to parse simply contributes nothing.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, string, []Note) {}
