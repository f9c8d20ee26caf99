package highlight

import (
	"brec/internal/ast"
	"brec/internal/source"
)

// visitor walks type and expression trees and records highlights. The
// rules live here; how slots become trees lives in extract.go.
type visitor struct {
	fs     *source.FileSet
	arenas *ast.Builder
	info   *SyntaxInfo
}

// record emits one highlight covering sp. The span's start line is used;
// callers that need the single-line restriction check it themselves.
func (v *visitor) record(sp source.Span, color Color) {
	start, end := v.fs.Resolve(sp)
	v.info.add(start.Line, Highlight{
		Start: start.Col - 1,
		End:   end.Col - 1,
		Color: color,
	})
}

// visitIdent applies the identifier rule: keywords are recorded, anything
// else is silent.
func (v *visitor) visitIdent(name source.StringID, sp source.Span) {
	text, ok := v.arenas.StringsInterner.Lookup(name)
	if !ok {
		return
	}
	if IsKeyword(text) {
		v.record(sp, ColorKeyword)
	}
}

func (v *visitor) visitSegments(segments []ast.PathSegment) {
	for _, seg := range segments {
		v.visitIdent(seg.Name, seg.Span)
		for _, arg := range seg.TypeArgs {
			v.visitType(arg)
		}
	}
}

// visitType walks a type annotation. Path segment names go through the
// identifier rule; array lengths are walked as expressions.
func (v *visitor) visitType(id ast.TypeID) {
	node := v.arenas.Types.Get(id)
	if node == nil {
		return
	}

	switch node.Kind {
	case ast.TypeExprPath:
		if data, ok := v.arenas.Types.Path(id); ok {
			v.visitSegments(data.Segments)
		}

	case ast.TypeExprArray:
		if data, ok := v.arenas.Types.Array(id); ok {
			v.visitType(data.Elem)
			v.visitExpr(data.Len)
		}

	case ast.TypeExprTuple:
		if data, ok := v.arenas.Types.Tuple(id); ok {
			for _, elem := range data.Elems {
				v.visitType(elem)
			}
		}
	}
}

// visitExpr dispatches on node kind. Every branch recurses into children;
// the call rules only change what extra highlight is recorded first.
func (v *visitor) visitExpr(id ast.ExprID) {
	node := v.arenas.Exprs.Get(id)
	if node == nil {
		return
	}

	switch node.Kind {
	case ast.ExprIdent:
		if data, ok := v.arenas.Exprs.Ident(id); ok {
			v.visitIdent(data.Name, node.Span)
		}

	case ast.ExprPath:
		if data, ok := v.arenas.Exprs.Path(id); ok {
			v.visitSegments(data.Segments)
		}

	case ast.ExprLit:
		v.visitLiteral(id, node.Span)

	case ast.ExprCall:
		v.visitCall(id)

	case ast.ExprMethodCall:
		v.visitMethodCall(id)

	case ast.ExprMember:
		if data, ok := v.arenas.Exprs.Member(id); ok {
			v.visitExpr(data.Target)
			v.visitIdent(data.Field, data.FieldSpan)
		}

	case ast.ExprIndex:
		if data, ok := v.arenas.Exprs.Index(id); ok {
			v.visitExpr(data.Target)
			v.visitExpr(data.Index)
		}

	case ast.ExprBinary:
		if data, ok := v.arenas.Exprs.Binary(id); ok {
			v.visitExpr(data.Left)
			v.visitExpr(data.Right)
		}

	case ast.ExprUnary:
		if data, ok := v.arenas.Exprs.Unary(id); ok {
			v.visitExpr(data.Operand)
		}

	case ast.ExprGroup:
		if data, ok := v.arenas.Exprs.Group(id); ok {
			v.visitExpr(data.Inner)
		}

	case ast.ExprTuple:
		if data, ok := v.arenas.Exprs.Tuple(id); ok {
			for _, elem := range data.Elements {
				v.visitExpr(elem)
			}
		}

	case ast.ExprArray:
		if data, ok := v.arenas.Exprs.Array(id); ok {
			for _, elem := range data.Elements {
				v.visitExpr(elem)
			}
		}
	}
}

// visitLiteral applies the literal rule. Literals spanning more than one
// line and opaque literal forms are skipped without error.
func (v *visitor) visitLiteral(id ast.ExprID, sp source.Span) {
	data, ok := v.arenas.Exprs.Literal(id)
	if !ok {
		return
	}

	start, end := v.fs.Resolve(sp)
	if start.Line != end.Line {
		return
	}

	var color Color
	switch data.Kind {
	case ast.LitString, ast.LitByteString:
		color = ColorString
	case ast.LitByte, ast.LitChar:
		color = ColorChar
	case ast.LitInt, ast.LitFloat, ast.LitBool:
		color = ColorNumber
	case ast.LitRaw:
		return
	default:
		return
	}

	v.info.add(start.Line, Highlight{
		Start: start.Col - 1,
		End:   end.Col - 1,
		Color: color,
	})
}

// visitCall applies the free-call-name rule: a callee that is one bare
// identifier becomes a Function highlight and is not classified again.
// Any other callee shape gets no name highlight but is still walked.
func (v *visitor) visitCall(id ast.ExprID) {
	data, ok := v.arenas.Exprs.Call(id)
	if !ok {
		return
	}

	callee := v.arenas.Exprs.Get(data.Target)
	if callee != nil && callee.Kind == ast.ExprIdent {
		v.record(callee.Span, ColorFunction)
	} else {
		v.visitExpr(data.Target)
	}

	for _, arg := range data.TypeArgs {
		v.visitType(arg)
	}
	for _, arg := range data.Args {
		v.visitExpr(arg)
	}
}

// visitMethodCall applies the method-call-name rule: the method name is
// always a Function highlight, even when it matches the keyword set.
func (v *visitor) visitMethodCall(id ast.ExprID) {
	data, ok := v.arenas.Exprs.MethodCall(id)
	if !ok {
		return
	}

	v.record(data.MethodSpan, ColorFunction)

	v.visitExpr(data.Receiver)
	for _, arg := range data.TypeArgs {
		v.visitType(arg)
	}
	for _, arg := range data.Args {
		v.visitExpr(arg)
	}
}
