package ast

import "brec/internal/source"

// Hints presizes the builder's arenas.
type Hints struct{ Exprs, Types uint }

// Builder owns the arenas a single parse session allocates into. Expression
// and type IDs are only meaningful against the builder that produced them.
type Builder struct {
	Exprs           *Exprs
	Types           *TypeExprs
	StringsInterner *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 6
	}
	if hints.Types == 0 {
		hints.Types = 1 << 5
	}
	return &Builder{
		Exprs:           NewExprs(hints.Exprs),
		Types:           NewTypeExprs(hints.Types),
		StringsInterner: source.NewInterner(),
	}
}
