package parser_test

import (
	"testing"

	"brec/internal/ast"
	"brec/internal/diag"
	"brec/internal/parser"
	"brec/internal/source"
)

type fixture struct {
	fs   *source.FileSet
	file *source.File
	span source.Span
	b    *ast.Builder
	bag  *diag.Bag
	opts parser.Options
}

func makeFixture(input string) *fixture {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.brec", []byte(input))
	file := fs.Get(id)
	bag := diag.NewBag(16)
	return &fixture{
		fs:   fs,
		file: file,
		span: source.Span{File: id, Start: 0, End: uint32(len(input))},
		b:    ast.NewBuilder(ast.Hints{}),
		bag:  bag,
		opts: parser.Options{Reporter: diag.BagReporter{Bag: bag}},
	}
}

func parseExpr(t *testing.T, input string) (*fixture, ast.ExprID) {
	t.Helper()
	fx := makeFixture(input)
	expr, ok := parser.ParseExprSpan(fx.file, fx.span, fx.b, fx.opts)
	if !ok {
		t.Fatalf("parse failed for %q, diags: %v", input, fx.bag.Items())
	}
	return fx, expr
}

func TestBinaryPrecedence(t *testing.T) {
	fx, expr := parseExpr(t, "1 + 2 * 3")

	bin, ok := fx.b.Exprs.Binary(expr)
	if !ok || bin.Op != ast.ExprBinaryAdd {
		t.Fatalf("root is not addition: %+v", bin)
	}
	right, ok := fx.b.Exprs.Binary(bin.Right)
	if !ok || right.Op != ast.ExprBinaryMul {
		t.Fatalf("right operand is not multiplication: %+v", right)
	}
	if _, ok := fx.b.Exprs.Literal(bin.Left); !ok {
		t.Error("left operand is not a literal")
	}
}

func TestShiftVersusComparison(t *testing.T) {
	fx, expr := parseExpr(t, "a << 2 > b")
	bin, ok := fx.b.Exprs.Binary(expr)
	if !ok || bin.Op != ast.ExprBinaryGreater {
		t.Fatalf("root op = %+v, want Greater", bin)
	}
	left, ok := fx.b.Exprs.Binary(bin.Left)
	if !ok || left.Op != ast.ExprBinaryShiftLeft {
		t.Fatalf("left op = %+v, want ShiftLeft", left)
	}
}

func TestMethodCallChain(t *testing.T) {
	fx, expr := parseExpr(t, "data.iter().count()")

	outer, ok := fx.b.Exprs.MethodCall(expr)
	if !ok {
		t.Fatal("root is not a method call")
	}
	if fx.b.StringsInterner.MustLookup(outer.Method) != "count" {
		t.Errorf("outer method = %q", fx.b.StringsInterner.MustLookup(outer.Method))
	}
	inner, ok := fx.b.Exprs.MethodCall(outer.Receiver)
	if !ok {
		t.Fatal("receiver is not a method call")
	}
	if fx.b.StringsInterner.MustLookup(inner.Method) != "iter" {
		t.Errorf("inner method = %q", fx.b.StringsInterner.MustLookup(inner.Method))
	}
	if _, ok := fx.b.Exprs.Ident(inner.Receiver); !ok {
		t.Error("innermost receiver is not an ident")
	}
}

func TestMethodCallTurbofish(t *testing.T) {
	fx, expr := parseExpr(t, "reader.read::<u32>()")

	call, ok := fx.b.Exprs.MethodCall(expr)
	if !ok {
		t.Fatal("root is not a method call")
	}
	if len(call.TypeArgs) != 1 {
		t.Fatalf("TypeArgs = %v, want one", call.TypeArgs)
	}
	path, ok := fx.b.Types.Path(call.TypeArgs[0])
	if !ok || fx.b.StringsInterner.MustLookup(path.Segments[0].Name) != "u32" {
		t.Errorf("type arg = %+v", path)
	}
	// the method-name span covers exactly "read"
	if call.MethodSpan.Start != 7 || call.MethodSpan.End != 11 {
		t.Errorf("MethodSpan = %v, want 7..11", call.MethodSpan)
	}
}

func TestPathExpr(t *testing.T) {
	fx, expr := parseExpr(t, "Header::MAGIC")
	path, ok := fx.b.Exprs.Path(expr)
	if !ok || len(path.Segments) != 2 {
		t.Fatalf("path = %+v", path)
	}
	if fx.b.StringsInterner.MustLookup(path.Segments[1].Name) != "MAGIC" {
		t.Errorf("second segment = %q", fx.b.StringsInterner.MustLookup(path.Segments[1].Name))
	}
}

func TestFreeCallWithArgs(t *testing.T) {
	fx, expr := parseExpr(t, "checksum(body, 0xFFFF)")
	call, ok := fx.b.Exprs.Call(expr)
	if !ok {
		t.Fatal("root is not a call")
	}
	if _, ok := fx.b.Exprs.Ident(call.Target); !ok {
		t.Error("callee is not a bare ident")
	}
	if len(call.Args) != 2 {
		t.Errorf("args = %v, want two", call.Args)
	}
}

func TestTrailingTokensFail(t *testing.T) {
	fx := makeFixture("1 2")
	_, ok := parser.ParseExprSpan(fx.file, fx.span, fx.b, fx.opts)
	if ok {
		t.Fatal("expected trailing tokens to fail the parse")
	}
	if !fx.bag.HasErrors() {
		t.Error("expected a trailing-tokens diagnostic")
	}
}

func TestUnaryChain(t *testing.T) {
	fx, expr := parseExpr(t, "!-x")
	outer, ok := fx.b.Exprs.Unary(expr)
	if !ok || outer.Op != ast.ExprUnaryNot {
		t.Fatalf("outer = %+v", outer)
	}
	inner, ok := fx.b.Exprs.Unary(outer.Operand)
	if !ok || inner.Op != ast.ExprUnaryNeg {
		t.Fatalf("inner = %+v", inner)
	}
}

func TestGroupAndTuple(t *testing.T) {
	fx, expr := parseExpr(t, "(a + b)")
	if _, ok := fx.b.Exprs.Group(expr); !ok {
		t.Error("parenthesized expression is not a group")
	}

	fx2, expr2 := parseExpr(t, "(a, b, c)")
	tup, ok := fx2.b.Exprs.Tuple(expr2)
	if !ok || len(tup.Elements) != 3 {
		t.Errorf("tuple = %+v", tup)
	}
}

func TestNestedGenericType(t *testing.T) {
	fx := makeFixture("Vec<Vec<u8>>")
	typ, ok := parser.ParseTypeSpan(fx.file, fx.span, fx.b, fx.opts)
	if !ok {
		t.Fatalf("parse failed, diags: %v", fx.bag.Items())
	}
	outer, ok := fx.b.Types.Path(typ)
	if !ok || len(outer.Segments[0].TypeArgs) != 1 {
		t.Fatalf("outer = %+v", outer)
	}
	inner, ok := fx.b.Types.Path(outer.Segments[0].TypeArgs[0])
	if !ok || len(inner.Segments[0].TypeArgs) != 1 {
		t.Fatalf("inner = %+v", inner)
	}
	leaf, ok := fx.b.Types.Path(inner.Segments[0].TypeArgs[0])
	if !ok || fx.b.StringsInterner.MustLookup(leaf.Segments[0].Name) != "u8" {
		t.Errorf("leaf = %+v", leaf)
	}
}

func TestArrayTypeWithLengthExpr(t *testing.T) {
	fx := makeFixture("[u8; N * 2]")
	typ, ok := parser.ParseTypeSpan(fx.file, fx.span, fx.b, fx.opts)
	if !ok {
		t.Fatalf("parse failed, diags: %v", fx.bag.Items())
	}
	arr, ok := fx.b.Types.Array(typ)
	if !ok {
		t.Fatal("not an array type")
	}
	if !arr.Len.IsValid() {
		t.Fatal("array length expression missing")
	}
	if bin, ok := fx.b.Exprs.Binary(arr.Len); !ok || bin.Op != ast.ExprBinaryMul {
		t.Errorf("length expr = %+v, want multiplication", bin)
	}
}

func TestArgListPositional(t *testing.T) {
	fx := makeFixture("1, x + 2")
	args, ok := parser.ParseArgListSpan(fx.file, fx.span, fx.b, fx.opts)
	if !ok {
		t.Fatalf("parse failed, diags: %v", fx.bag.Items())
	}
	if len(args) != 2 {
		t.Fatalf("got %d args", len(args))
	}
	for i, arg := range args {
		if arg.Name != source.NoStringID {
			t.Errorf("arg %d has a name", i)
		}
		if !arg.Value.IsValid() {
			t.Errorf("arg %d has no value", i)
		}
	}
}

func TestArgListNamed(t *testing.T) {
	fx := makeFixture("count = len, offset = 4")
	args, ok := parser.ParseArgListSpan(fx.file, fx.span, fx.b, fx.opts)
	if !ok {
		t.Fatalf("parse failed, diags: %v", fx.bag.Items())
	}
	if len(args) != 2 {
		t.Fatalf("got %d args", len(args))
	}
	if fx.b.StringsInterner.MustLookup(args[0].Name) != "count" {
		t.Errorf("first name = %q", fx.b.StringsInterner.MustLookup(args[0].Name))
	}
	if !args[0].Value.IsValid() || !args[1].Value.IsValid() {
		t.Error("named args lost their values")
	}
}

func TestArgListBareName(t *testing.T) {
	fx := makeFixture("swap, count = 3")
	args, ok := parser.ParseArgListSpan(fx.file, fx.span, fx.b, fx.opts)
	if !ok {
		t.Fatalf("parse failed, diags: %v", fx.bag.Items())
	}
	if len(args) != 2 {
		t.Fatalf("got %d args", len(args))
	}
	if args[0].Name == source.NoStringID || args[0].Value.IsValid() {
		t.Errorf("bare name arg = %+v", args[0])
	}
}

func TestArgListEmpty(t *testing.T) {
	fx := makeFixture("")
	args, ok := parser.ParseArgListSpan(fx.file, fx.span, fx.b, fx.opts)
	if !ok {
		t.Fatal("empty list failed to parse")
	}
	if len(args) != 0 {
		t.Errorf("got %d args from empty input", len(args))
	}
}

func TestSilentFailureWithNopReporter(t *testing.T) {
	fx := makeFixture("+ +")
	expr, ok := parser.ParseExprSpan(fx.file, fx.span, fx.b, parser.Options{Reporter: diag.NopReporter{}})
	if ok || expr.IsValid() {
		t.Error("malformed input parsed successfully")
	}
}
