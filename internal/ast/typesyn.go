package ast

import (
	"brec/internal/source"
)

// TypeExprKind enumerates the kinds of type syntax nodes.
type TypeExprKind uint8

const (
	// TypeExprPath represents a (possibly generic) named type path.
	TypeExprPath TypeExprKind = iota
	// TypeExprArray represents an array type with an element count.
	TypeExprArray
	// TypeExprTuple represents a tuple type.
	TypeExprTuple
)

// TypeExpr is the header every type syntax node shares.
type TypeExpr struct {
	Kind    TypeExprKind
	Span    source.Span
	Payload PayloadID
}

// TypePathData carries the segments of a type path. Generic arguments hang
// off individual segments.
type TypePathData struct {
	Segments []PathSegment
}

// TypeArrayData carries an array type. Len is an expression so that
// constant arithmetic ([u8; N * 2]) survives into the syntax tree.
type TypeArrayData struct {
	Elem TypeID
	Len  ExprID
}

// TypeTupleData carries the element types of a tuple type.
type TypeTupleData struct {
	Elems []TypeID
}

// TypeExprs manages allocation of type syntax nodes.
type TypeExprs struct {
	Arena  *Arena[TypeExpr]
	Paths  *Arena[TypePathData]
	Arrays *Arena[TypeArrayData]
	Tuples *Arena[TypeTupleData]
}

func NewTypeExprs(capHint uint) *TypeExprs {
	if capHint == 0 {
		capHint = 1 << 5
	}
	return &TypeExprs{
		Arena:  NewArena[TypeExpr](capHint),
		Paths:  NewArena[TypePathData](capHint),
		Arrays: NewArena[TypeArrayData](capHint),
		Tuples: NewArena[TypeTupleData](capHint),
	}
}

func (t *TypeExprs) new(kind TypeExprKind, span source.Span, payload PayloadID) TypeID {
	return TypeID(t.Arena.Allocate(TypeExpr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the type node with the given ID.
func (t *TypeExprs) Get(id TypeID) *TypeExpr {
	return t.Arena.Get(uint32(id))
}

// NewPath creates a new type path node.
func (t *TypeExprs) NewPath(span source.Span, segments []PathSegment) TypeID {
	payload := t.Paths.Allocate(TypePathData{
		Segments: append([]PathSegment(nil), segments...),
	})
	return t.new(TypeExprPath, span, PayloadID(payload))
}

// Path returns the path data for the given type ID.
func (t *TypeExprs) Path(id TypeID) (*TypePathData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeExprPath {
		return nil, false
	}
	return t.Paths.Get(uint32(node.Payload)), true
}

// NewArray creates a new array type node.
func (t *TypeExprs) NewArray(span source.Span, elem TypeID, length ExprID) TypeID {
	payload := t.Arrays.Allocate(TypeArrayData{Elem: elem, Len: length})
	return t.new(TypeExprArray, span, PayloadID(payload))
}

// Array returns the array data for the given type ID.
func (t *TypeExprs) Array(id TypeID) (*TypeArrayData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeExprArray {
		return nil, false
	}
	return t.Arrays.Get(uint32(node.Payload)), true
}

// NewTuple creates a new tuple type node.
func (t *TypeExprs) NewTuple(span source.Span, elems []TypeID) TypeID {
	payload := t.Tuples.Allocate(TypeTupleData{
		Elems: append([]TypeID(nil), elems...),
	})
	return t.new(TypeExprTuple, span, PayloadID(payload))
}

// Tuple returns the tuple data for the given type ID.
func (t *TypeExprs) Tuple(id TypeID) (*TypeTupleData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeExprTuple {
		return nil, false
	}
	return t.Tuples.Get(uint32(node.Payload)), true
}
