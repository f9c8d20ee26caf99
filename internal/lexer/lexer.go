package lexer

import (
	"brec/internal/source"
	"brec/internal/token"
)

// Lexer produces the token stream of one attribute expression or type
// annotation. It normally runs over a sub-span of a declaration file.
type Lexer struct {
	file   *source.File
	cursor Cursor
	look   []token.Token // lookahead buffer, at most two tokens
	opts   Options
}

// New creates a lexer over the whole file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// NewAt creates a lexer restricted to span within file.
func NewAt(file *source.File, span source.Span, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursorAt(file, span),
		opts:   opts,
	}
}

// Next returns the next significant token. After the limit is reached it
// always returns EOF.
func (lx *Lexer) Next() token.Token {
	if len(lx.look) > 0 {
		tok := lx.look[0]
		lx.look = lx.look[1:]
		return tok
	}
	return lx.scan()
}

func (lx *Lexer) scan() token.Token {
	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == 'b' && lx.isByteLiteralAhead():
		return lx.scanByteLiteral()

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()

	case ch == '"':
		return lx.scanString()

	case ch == '\'':
		return lx.scanChar()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	lx.fill(1)
	return lx.look[0]
}

// Peek2 returns the token after the next one without consuming anything.
func (lx *Lexer) Peek2() token.Token {
	lx.fill(2)
	return lx.look[1]
}

func (lx *Lexer) fill(n int) {
	for len(lx.look) < n {
		lx.look = append(lx.look, lx.scan())
	}
}

// PushBack makes tok the next token returned by Next. The parser uses this
// to split a '>>' into two '>' when closing nested generic arguments.
func (lx *Lexer) PushBack(tok token.Token) {
	lx.look = append([]token.Token{tok}, lx.look...)
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// skipTrivia consumes whitespace and comments. The decoration pipeline has
// no use for trivia, so nothing is retained.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			lx.cursor.Bump()
			continue
		}

		if b == '/' {
			b0, b1, ok := lx.cursor.Peek2()
			if ok && b0 == '/' && b1 == '/' {
				// line comment: eat to end of line
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
				continue
			}
			if ok && b0 == '/' && b1 == '*' {
				lx.skipBlockComment()
				continue
			}
		}

		return
	}
}

func (lx *Lexer) skipBlockComment() {
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		b0, b1, ok := lx.cursor.Peek2()
		switch {
		case ok && b0 == '/' && b1 == '*':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth++
		case ok && b0 == '*' && b1 == '/':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth--
		default:
			lx.cursor.Bump()
		}
	}
}

// isByteLiteralAhead reports whether the cursor sits on b"..." or b'x'.
func (lx *Lexer) isByteLiteralAhead() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == 'b' && (b1 == '"' || b1 == '\'')
}
