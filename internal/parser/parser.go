// Package parser turns directive value slices back into expression trees.
//
// Directive values arrive as raw byte spans of the descriptor source. Each
// entry point re-lexes one span and parses it in isolation: an expression,
// a type, or an argument list. Failures are soft. A span that does not
// parse yields (invalid ID, false) and the caller simply skips it, which
// is the contract decoration relies on.
package parser

import (
	"slices"

	"brec/internal/ast"
	"brec/internal/diag"
	"brec/internal/lexer"
	"brec/internal/source"
	"brec/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser holds the state for parsing one directive value span.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	opts     Options
	lastSpan source.Span
}

func newParser(file *source.File, span source.Span, arenas *ast.Builder, opts Options) *Parser {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = diag.NopReporter{}
		opts.Reporter = reporter
	}
	lx := lexer.NewAt(file, span, lexer.Options{Reporter: reporter})
	return &Parser{
		lx:       lx,
		arenas:   arenas,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
}

// ParseExprSpan parses the given span of file as a single expression.
// Trailing tokens after the expression fail the parse.
func ParseExprSpan(file *source.File, span source.Span, arenas *ast.Builder, opts Options) (ast.ExprID, bool) {
	p := newParser(file, span, arenas, opts)
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if !p.atEnd() {
		p.err(diag.SynTrailingTokens, "trailing tokens after expression")
		return ast.NoExprID, false
	}
	return expr, true
}

// ParseTypeSpan parses the given span of file as a single type.
func ParseTypeSpan(file *source.File, span source.Span, arenas *ast.Builder, opts Options) (ast.TypeID, bool) {
	p := newParser(file, span, arenas, opts)
	typ, ok := p.parseType()
	if !ok {
		return ast.NoTypeID, false
	}
	if !p.atEnd() {
		p.err(diag.SynTrailingTokens, "trailing tokens after type")
		return ast.NoTypeID, false
	}
	return typ, true
}

// Arg is one entry of a parsed argument list. Positional arguments have
// Name == source.NoStringID. A named argument without an initializer
// keeps Value == ast.NoExprID.
type Arg struct {
	Name     source.StringID
	NameSpan source.Span
	Value    ast.ExprID
}

// ParseArgListSpan parses the given span as a comma-separated argument
// list. Both positional (expr, expr) and named (name = expr) forms are
// accepted; an empty span yields an empty list.
func ParseArgListSpan(file *source.File, span source.Span, arenas *ast.Builder, opts Options) ([]Arg, bool) {
	p := newParser(file, span, arenas, opts)

	var args []Arg
	for !p.atEnd() {
		arg, ok := p.parseArg()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if !p.atEnd() {
		p.err(diag.SynTrailingTokens, "trailing tokens after argument list")
		return nil, false
	}
	return args, true
}

// parseArg distinguishes `name = expr`, a bare `name`, and a positional
// expression by one token of lookahead.
func (p *Parser) parseArg() (Arg, bool) {
	if p.at(token.Ident) && p.lx.Peek2().Kind == token.Assign {
		nameTok := p.advance()
		p.advance() // '='
		value, ok := p.parseExpr()
		if !ok {
			return Arg{}, false
		}
		return Arg{
			Name:     p.arenas.StringsInterner.Intern(nameTok.Text),
			NameSpan: nameTok.Span,
			Value:    value,
		}, true
	}
	if p.at(token.Ident) && isArgTerminator(p.lx.Peek2().Kind) {
		nameTok := p.advance()
		return Arg{
			Name:     p.arenas.StringsInterner.Intern(nameTok.Text),
			NameSpan: nameTok.Span,
			Value:    ast.NoExprID,
		}, true
	}
	value, ok := p.parseExpr()
	if !ok {
		return Arg{}, false
	}
	return Arg{Name: source.NoStringID, Value: value}, true
}

func isArgTerminator(k token.Kind) bool {
	return k == token.Comma || k == token.EOF
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) atEnd() bool {
	return p.at(token.EOF)
}
