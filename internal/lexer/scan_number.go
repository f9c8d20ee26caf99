package lexer

import (
	"brec/internal/diag"
	"brec/internal/token"
)

// Supported forms: 0, 123, 0b..., 0o..., 0x..., 1.0, 1e-3, 1.0e+10, .5,
// with '_' separators between digits. A trailing alphabetic suffix such as
// 0x12z makes the literal opaque (RawLit): kept, but never highlighted.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	emit := func() token.Token {
		// a suffix glued onto the number makes the literal opaque
		if isIdentStartByte(lx.cursor.Peek()) {
			for isIdentContinueByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			kind = token.RawLit
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	// leading dot: ".digits"
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after '.'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
		lx.scanExponent(&kind)
		return emit()
	}

	// leading 0 with a base prefix
	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			for lx.cursor.Peek() == '0' || lx.cursor.Peek() == '1' || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			return emit()
		case 'o', 'O':
			lx.cursor.Bump()
			for (lx.cursor.Peek() >= '0' && lx.cursor.Peek() <= '7') || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			return emit()
		case 'x', 'X':
			lx.cursor.Bump()
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			return emit()
		}
		// plain "0", possibly with a fraction below
	}

	// decimal integer part
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	// fractional part
	if lx.cursor.Peek() == '.' {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '.' && b1 == '.' {
			// '..' is a range, not part of the number
		} else if ok && b0 == '.' && isDec(b1) {
			lx.cursor.Bump() // '.'
			kind = token.FloatLit
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		}
		// a bare trailing '.' stays with the next token (member access)
	}

	lx.scanExponent(&kind)
	return emit()
}

// scanExponent consumes an optional [eE][+-]?digits and upgrades the kind.
func (lx *Lexer) scanExponent(kind *token.Kind) {
	b := lx.cursor.Peek()
	if b != 'e' && b != 'E' {
		return
	}
	// lookahead: only consume when a digit actually follows
	mark := lx.cursor.Mark()
	lx.cursor.Bump()
	if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
		lx.cursor.Bump()
	}
	if !isDec(lx.cursor.Peek()) {
		lx.cursor.Reset(mark)
		return
	}
	*kind = token.FloatLit
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}
