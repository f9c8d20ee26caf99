package lexer

import (
	"brec/internal/diag"
	"brec/internal/token"
)

// scanString scans "..." with escape support. Strings may span several
// lines; the decoration layer decides what to do with multi-line literals
// (it skips them), so the lexer just records the full span.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	return lx.scanStringRest(start, token.StringLit)
}

func (lx *Lexer) scanStringRest(start Mark, kind token.Kind) token.Token {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			// eat '\' and the escaped byte; deep validation is not our job
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		lx.cursor.Bump()
	}
	// EOF without a closing quote
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanChar scans 'x' or an escaped form like '\n' or '\x41'.
// Unlike strings, character literals stay on one line.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	return lx.scanCharRest(start, token.CharLit)
}

func (lx *Lexer) scanCharRest(start Mark, kind token.Kind) token.Token {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\'' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedChar, sp, "newline in character literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanByteLiteral scans b"..." (byte string) or b'x' (single byte).
func (lx *Lexer) scanByteLiteral() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // 'b'
	switch lx.cursor.Peek() {
	case '"':
		lx.cursor.Bump()
		return lx.scanStringRest(start, token.ByteStringLit)
	case '\'':
		lx.cursor.Bump()
		return lx.scanCharRest(start, token.ByteLit)
	}
	// unreachable while isByteLiteralAhead guards the call
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
