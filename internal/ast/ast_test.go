package ast_test

import (
	"testing"

	"brec/internal/ast"
	"brec/internal/source"
)

func TestArenaIDsAreOneBased(t *testing.T) {
	a := ast.NewArena[int](0)
	if got := a.Get(0); got != nil {
		t.Errorf("Get(0) = %v, want nil", got)
	}
	id := a.Allocate(42)
	if id != 1 {
		t.Errorf("first Allocate = %d, want 1", id)
	}
	if got := a.Get(id); got == nil || *got != 42 {
		t.Errorf("Get(%d) = %v", id, got)
	}
	if got := a.Get(2); got != nil {
		t.Errorf("out-of-range Get = %v, want nil", got)
	}
}

func TestExprAccessorsCheckKind(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	interner := b.StringsInterner

	sp := source.Span{Start: 0, End: 1}
	id := b.Exprs.NewIdent(sp, interner.Intern("x"))

	if data, ok := b.Exprs.Ident(id); !ok || data.Name != interner.Intern("x") {
		t.Fatalf("Ident(%d) = %v, %v", id, data, ok)
	}
	if _, ok := b.Exprs.Literal(id); ok {
		t.Error("Literal accessor matched an ident expression")
	}
	if _, ok := b.Exprs.Call(ast.NoExprID); ok {
		t.Error("Call accessor matched the invalid ID")
	}
}

func TestMethodCallKeepsNameSpan(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	interner := b.StringsInterner

	// recv.len() with the name at bytes 5..8
	recv := b.Exprs.NewIdent(source.Span{Start: 0, End: 4}, interner.Intern("recv"))
	nameSpan := source.Span{Start: 5, End: 8}
	call := b.Exprs.NewMethodCall(source.Span{Start: 0, End: 10}, recv,
		interner.Intern("len"), nameSpan, nil, nil)

	data, ok := b.Exprs.MethodCall(call)
	if !ok {
		t.Fatal("MethodCall accessor failed")
	}
	if data.MethodSpan != nameSpan {
		t.Errorf("MethodSpan = %v, want %v", data.MethodSpan, nameSpan)
	}
	if data.Receiver != recv {
		t.Errorf("Receiver = %d, want %d", data.Receiver, recv)
	}
}

func TestTypeArrayHoldsLengthExpr(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	interner := b.StringsInterner

	elem := b.Types.NewPath(source.Span{Start: 1, End: 3}, []ast.PathSegment{
		{Name: interner.Intern("u8"), Span: source.Span{Start: 1, End: 3}},
	})
	length := b.Exprs.NewLiteral(source.Span{Start: 5, End: 6}, ast.LitInt, interner.Intern("4"))
	arr := b.Types.NewArray(source.Span{Start: 0, End: 7}, elem, length)

	data, ok := b.Types.Array(arr)
	if !ok {
		t.Fatal("Array accessor failed")
	}
	if data.Elem != elem || data.Len != length {
		t.Errorf("array data = %+v", data)
	}
	if _, ok := b.Types.Tuple(arr); ok {
		t.Error("Tuple accessor matched an array type")
	}
}
