package highlight

import (
	"brec/internal/ast"
	"brec/internal/diag"
	"brec/internal/field"
	"brec/internal/parser"
	"brec/internal/source"
)

// tryExpr parses one attribute value span as an expression and walks it.
// A span that does not parse contributes nothing; no diagnostic escapes.
func (v *visitor) tryExpr(sp source.Span) {
	if !field.Present(sp) {
		return
	}
	file := v.fs.Get(sp.File)
	expr, ok := parser.ParseExprSpan(file, sp, v.arenas, parser.Options{Reporter: diag.NopReporter{}})
	if !ok {
		return
	}
	v.visitExpr(expr)
}

// visitAttributes walks every populated attribute slot of the descriptor.
// Slots are independent: a malformed one never blocks the rest.
func (v *visitor) visitAttributes(d *field.Descriptor) {
	v.tryExpr(d.Count)
	v.tryExpr(d.Offset)
	v.tryExpr(d.PadBefore)
	v.tryExpr(d.PadAfter)
	v.tryExpr(d.AlignBefore)
	v.tryExpr(d.AlignAfter)
	v.tryExpr(d.SeekBefore)
	v.tryExpr(d.PadSizeTo)
	v.tryExpr(d.OffsetAfter)

	if d.If != nil {
		v.tryExpr(d.If.Condition)
		v.tryExpr(d.If.Alternate)
	}

	v.tryExpr(d.Magic)

	if d.Endian.Conditional {
		v.tryExpr(d.Endian.Expr)
	}

	if d.Map.Kind == field.MapMap || d.Map.Kind == field.MapTry {
		v.tryExpr(d.Map.Expr)
	}

	switch d.Args.Kind {
	case field.ArgsList:
		for _, arg := range d.Args.List {
			v.tryExpr(arg)
		}
	case field.ArgsTuple:
		v.tryExpr(d.Args.Tuple)
	case field.ArgsNamed:
		for _, stream := range d.Args.Named {
			v.tryNamedArgs(stream)
		}
	case field.ArgsNone:
	}

	if d.ReadMode.Kind == field.ReadCalc {
		v.tryExpr(d.ReadMode.Expr)
	}

	for _, assert := range d.Assertions {
		v.tryExpr(assert.Condition)
		if assert.ConsequentKind != field.AssertDefault {
			v.tryExpr(assert.Consequent)
		}
	}
}

// tryNamedArgs re-parses a raw stream as `name = expression` pairs and
// walks each pair's expression. Pairs without an expression contribute
// nothing, as does a stream that fails to parse.
func (v *visitor) tryNamedArgs(sp source.Span) {
	if !field.Present(sp) {
		return
	}
	file := v.fs.Get(sp.File)
	args, ok := parser.ParseArgListSpan(file, sp, v.arenas, parser.Options{Reporter: diag.NopReporter{}})
	if !ok {
		return
	}
	for _, arg := range args {
		if arg.Value != ast.NoExprID {
			v.visitExpr(arg.Value)
		}
	}
}
