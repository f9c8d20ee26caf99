package lexer

import (
	"brec/internal/diag"
	"brec/internal/source"
)

type Options struct {
	// Reporter may be nil; lexing then continues without recording errors.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
