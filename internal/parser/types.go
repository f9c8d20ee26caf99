package parser

import (
	"brec/internal/ast"
	"brec/internal/diag"
	"brec/internal/source"
	"brec/internal/token"
)

// parseType dispatches on the first token of a type annotation.
func (p *Parser) parseType() (ast.TypeID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		return p.parseTypePath()
	case token.LBracket:
		return p.parseTypeArray()
	case token.LParen:
		return p.parseTypeTuple()
	default:
		p.err(diag.SynExpectType, "expected type")
		return ast.NoTypeID, false
	}
}

// parseTypePath parses seg::seg<Args> with generic arguments allowed on
// any segment.
func (p *Parser) parseTypePath() (ast.TypeID, bool) {
	first := p.advance()
	segments := []ast.PathSegment{{
		Name: p.arenas.StringsInterner.Intern(first.Text),
		Span: first.Span,
	}}
	fullSpan := first.Span

	for {
		switch {
		case p.at(token.Lt):
			args, ok := p.parseTypeArgList()
			if !ok {
				return ast.NoTypeID, false
			}
			segments[len(segments)-1].TypeArgs = args
			fullSpan = fullSpan.Cover(p.lastSpan)

		case p.at(token.ColonColon):
			p.advance()
			segTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected path segment after '::'")
			if !ok {
				return ast.NoTypeID, false
			}
			segments = append(segments, ast.PathSegment{
				Name: p.arenas.StringsInterner.Intern(segTok.Text),
				Span: segTok.Span,
			})
			fullSpan = fullSpan.Cover(segTok.Span)

		default:
			return p.arenas.Types.NewPath(fullSpan, segments), true
		}
	}
}

// parseTypeArgList parses <T, U, ...>. The opening '<' is consumed here.
func (p *Parser) parseTypeArgList() ([]ast.TypeID, bool) {
	if _, ok := p.expect(token.Lt, diag.SynExpectRightAngle, "expected '<' to open generic arguments"); !ok {
		return nil, false
	}

	var args []ast.TypeID
	if !p.atCloseAngle() {
		for {
			arg, ok := p.parseType()
			if !ok {
				return nil, false
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	if !p.eatCloseAngle() {
		p.err(diag.SynExpectRightAngle, "expected '>' to close generic arguments")
		return nil, false
	}
	return args, true
}

// parseTypeArray parses [Elem; len] where len is a full expression.
func (p *Parser) parseTypeArray() (ast.TypeID, bool) {
	openTok := p.advance() // '['

	elem, ok := p.parseType()
	if !ok {
		return ast.NoTypeID, false
	}

	length := ast.NoExprID
	if p.at(token.Semicolon) {
		p.advance()
		length, ok = p.parseExpr()
		if !ok {
			p.err(diag.SynExpectExpression, "expected array length expression")
			return ast.NoTypeID, false
		}
	}

	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after array type")
	if !ok {
		return ast.NoTypeID, false
	}
	return p.arenas.Types.NewArray(openTok.Span.Cover(closeTok.Span), elem, length), true
}

// parseTypeTuple parses (T, U, ...). A single parenthesized type still
// becomes a one-element tuple; nothing downstream distinguishes them.
func (p *Parser) parseTypeTuple() (ast.TypeID, bool) {
	openTok := p.advance() // '('

	var elems []ast.TypeID
	for !p.at(token.RParen) {
		elem, ok := p.parseType()
		if !ok {
			return ast.NoTypeID, false
		}
		elems = append(elems, elem)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after tuple type")
	if !ok {
		return ast.NoTypeID, false
	}
	return p.arenas.Types.NewTuple(openTok.Span.Cover(closeTok.Span), elems), true
}

func (p *Parser) atCloseAngle() bool {
	return p.atOr(token.Gt, token.Shr)
}

// eatCloseAngle consumes one '>' worth of input. A '>>' produced by the
// lexer for nested generics is split: the first half is consumed and the
// second is pushed back as a fresh '>' token.
func (p *Parser) eatCloseAngle() bool {
	switch p.lx.Peek().Kind {
	case token.Gt:
		p.advance()
		return true
	case token.Shr:
		tok := p.advance()
		p.lx.PushBack(token.Token{
			Kind: token.Gt,
			Span: source.Span{File: tok.Span.File, Start: tok.Span.Start + 1, End: tok.Span.End},
			Text: ">",
		})
		p.lastSpan = source.Span{File: tok.Span.File, Start: tok.Span.Start, End: tok.Span.Start + 1}
		return true
	default:
		return false
	}
}
