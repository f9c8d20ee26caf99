package parser

import (
	"brec/internal/ast"
	"brec/internal/diag"
	"brec/internal/token"
)

// parseExpr is the entry point for expression parsing.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(0)
}

// parseBinaryExpr runs precedence climbing over the operator table.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		tok := p.lx.Peek()
		prec := p.getBinaryOperatorPrec(tok.Kind)
		if prec < minPrec || prec < 0 {
			break
		}

		opTok := p.advance()

		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after binary operator")
			return ast.NoExprID, false
		}

		op := p.tokenKindToBinaryOp(opTok.Kind)
		leftSpan := p.arenas.Exprs.Get(left).Span
		rightSpan := p.arenas.Exprs.Get(right).Span
		left = p.arenas.Exprs.NewBinary(leftSpan.Cover(rightSpan), op, left, right)
	}

	return left, true
}

// parseUnaryExpr handles prefix operators before a postfix chain.
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	if op, ok := p.getUnaryOperator(tok.Kind); ok {
		opTok := p.advance()
		operand, okInner := p.parseUnaryExpr()
		if !okInner {
			p.err(diag.SynExpectExpression, "expected expression after unary operator")
			return ast.NoExprID, false
		}
		operandSpan := p.arenas.Exprs.Get(operand).Span
		return p.arenas.Exprs.NewUnary(opTok.Span.Cover(operandSpan), op, operand), true
	}
	return p.parsePostfixExpr()
}

// parsePostfixExpr parses a primary expression followed by any chain of
// calls, method calls, member accesses, and index operations.
func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.LParen:
			expr, ok = p.parseCallExpr(expr)
		case token.Dot:
			expr, ok = p.parseMemberOrMethod(expr)
		case token.LBracket:
			expr, ok = p.parseIndexExpr(expr)
		default:
			return expr, true
		}
		if !ok {
			return ast.NoExprID, false
		}
	}
}

// parseCallExpr parses expr(args...). The callee is whatever postfix chain
// came before the parenthesis.
func (p *Parser) parseCallExpr(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '('

	args, ok := p.parseCallArgs()
	if !ok {
		return ast.NoExprID, false
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments")
	if !ok {
		return ast.NoExprID, false
	}

	targetSpan := p.arenas.Exprs.Get(target).Span
	return p.arenas.Exprs.NewCall(targetSpan.Cover(closeTok.Span), target, nil, args), true
}

func (p *Parser) parseCallArgs() ([]ast.ExprID, bool) {
	var args []ast.ExprID
	if p.at(token.RParen) {
		return args, true
	}
	for {
		arg, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		if !p.at(token.Comma) {
			return args, true
		}
		p.advance()
		// trailing comma
		if p.at(token.RParen) {
			return args, true
		}
	}
}

// parseMemberOrMethod parses expr.name, expr.name(...) and the turbofish
// form expr.name::<T>(...).
func (p *Parser) parseMemberOrMethod(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '.'

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected member name after '.'")
	if !ok {
		return ast.NoExprID, false
	}
	nameID := p.arenas.StringsInterner.Intern(nameTok.Text)
	targetSpan := p.arenas.Exprs.Get(target).Span

	var typeArgs []ast.TypeID
	if p.at(token.ColonColon) && p.lx.Peek2().Kind == token.Lt {
		p.advance() // '::'
		typeArgs, ok = p.parseTypeArgList()
		if !ok {
			return ast.NoExprID, false
		}
	}

	if p.at(token.LParen) {
		p.advance() // '('
		args, ok := p.parseCallArgs()
		if !ok {
			return ast.NoExprID, false
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments")
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewMethodCall(
			targetSpan.Cover(closeTok.Span),
			target, nameID, nameTok.Span, typeArgs, args,
		), true
	}

	if typeArgs != nil {
		p.err(diag.SynUnexpectedToken, "generic arguments require a call")
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewMember(targetSpan.Cover(nameTok.Span), target, nameID, nameTok.Span), true
}

// parseIndexExpr parses expr[index].
func (p *Parser) parseIndexExpr(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '['

	index, ok := p.parseExpr()
	if !ok {
		p.err(diag.SynExpectExpression, "expected index expression")
		return ast.NoExprID, false
	}

	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after index")
	if !ok {
		return ast.NoExprID, false
	}

	targetSpan := p.arenas.Exprs.Get(target).Span
	return p.arenas.Exprs.NewIndex(targetSpan.Cover(closeTok.Span), target, index), true
}

// parsePrimaryExpr dispatches on the first token of an operand.
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident, token.Underscore:
		return p.parsePathExpr()

	case token.IntLit, token.FloatLit, token.BoolLit, token.StringLit,
		token.ByteStringLit, token.CharLit, token.ByteLit, token.RawLit:
		return p.parseLiteral()

	case token.LParen:
		return p.parseGroupOrTuple()

	case token.LBracket:
		return p.parseArrayLiteral()

	default:
		p.err(diag.SynExpectExpression, "expected expression")
		return ast.NoExprID, false
	}
}

// parsePathExpr parses a bare identifier or a :: separated path. A segment
// may carry turbofish generic arguments (seg::<T>::next).
func (p *Parser) parsePathExpr() (ast.ExprID, bool) {
	first := p.advance()
	segments := []ast.PathSegment{{
		Name: p.arenas.StringsInterner.Intern(first.Text),
		Span: first.Span,
	}}
	fullSpan := first.Span

	for p.at(token.ColonColon) {
		if p.lx.Peek2().Kind == token.Lt {
			p.advance() // '::'
			typeArgs, ok := p.parseTypeArgList()
			if !ok {
				return ast.NoExprID, false
			}
			segments[len(segments)-1].TypeArgs = typeArgs
			continue
		}
		p.advance() // '::'
		segTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected path segment after '::'")
		if !ok {
			return ast.NoExprID, false
		}
		segments = append(segments, ast.PathSegment{
			Name: p.arenas.StringsInterner.Intern(segTok.Text),
			Span: segTok.Span,
		})
		fullSpan = fullSpan.Cover(segTok.Span)
	}

	if len(segments) == 1 && segments[0].TypeArgs == nil {
		return p.arenas.Exprs.NewIdent(first.Span, segments[0].Name), true
	}
	return p.arenas.Exprs.NewPath(fullSpan, segments), true
}

func (p *Parser) parseLiteral() (ast.ExprID, bool) {
	tok := p.advance()

	var kind ast.LitKind
	switch tok.Kind {
	case token.IntLit:
		kind = ast.LitInt
	case token.FloatLit:
		kind = ast.LitFloat
	case token.BoolLit:
		kind = ast.LitBool
	case token.StringLit:
		kind = ast.LitString
	case token.ByteStringLit:
		kind = ast.LitByteString
	case token.CharLit:
		kind = ast.LitChar
	case token.ByteLit:
		kind = ast.LitByte
	case token.RawLit:
		kind = ast.LitRaw
	default:
		p.err(diag.SynUnexpectedToken, "expected literal")
		return ast.NoExprID, false
	}

	valueID := p.arenas.StringsInterner.Intern(tok.Text)
	return p.arenas.Exprs.NewLiteral(tok.Span, kind, valueID), true
}

// parseGroupOrTuple parses (expr) as a group and (a, b) as a tuple. The
// empty tuple () is accepted.
func (p *Parser) parseGroupOrTuple() (ast.ExprID, bool) {
	openTok := p.advance() // '('

	if p.at(token.RParen) {
		closeTok := p.advance()
		return p.arenas.Exprs.NewTuple(openTok.Span.Cover(closeTok.Span), nil), true
	}

	first, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}

	if p.at(token.RParen) {
		closeTok := p.advance()
		return p.arenas.Exprs.NewGroup(openTok.Span.Cover(closeTok.Span), first), true
	}

	elements := []ast.ExprID{first}
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.RParen) {
			break
		}
		elem, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		elements = append(elements, elem)
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after tuple elements")
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewTuple(openTok.Span.Cover(closeTok.Span), elements), true
}

func (p *Parser) parseArrayLiteral() (ast.ExprID, bool) {
	openTok := p.advance() // '['

	var elements []ast.ExprID
	for !p.at(token.RBracket) {
		elem, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		elements = append(elements, elem)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}

	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after array elements")
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewArray(openTok.Span.Cover(closeTok.Span), elements), true
}
