package ast

import (
	"brec/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprIdent represents a bare identifier expression.
	ExprIdent ExprKind = iota
	// ExprPath represents a multi-segment path expression (a::b::c).
	ExprPath
	// ExprLit represents a literal expression.
	ExprLit
	// ExprCall represents a free function call expression.
	ExprCall
	// ExprMethodCall represents a method call expression (recv.name(args)).
	ExprMethodCall
	// ExprMember represents a member access expression (recv.field).
	ExprMember
	// ExprIndex represents an index expression (target[index]).
	ExprIndex
	// ExprBinary represents a binary operator expression.
	ExprBinary
	// ExprUnary represents a unary operator expression.
	ExprUnary
	// ExprGroup represents a parenthesized expression.
	ExprGroup
	// ExprTuple represents a tuple literal expression.
	ExprTuple
	// ExprArray represents an array literal expression.
	ExprArray
)

// Expr is the header every expression node shares. Kind-specific data lives
// in a per-kind payload arena addressed by Payload.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprBinaryOp enumerates binary operator kinds.
type ExprBinaryOp uint8

const (
	// ExprBinaryAdd represents the addition operator (+).
	ExprBinaryAdd ExprBinaryOp = iota
	// ExprBinarySub represents the subtraction operator (-).
	ExprBinarySub
	// ExprBinaryMul represents the multiplication operator (*).
	ExprBinaryMul
	// ExprBinaryDiv represents the division operator (/).
	ExprBinaryDiv
	// ExprBinaryMod represents the modulo operator (%).
	ExprBinaryMod

	// ExprBinaryBitAnd represents the bitwise AND operator (&).
	ExprBinaryBitAnd
	// ExprBinaryBitOr represents the bitwise OR operator (|).
	ExprBinaryBitOr
	// ExprBinaryBitXor represents the bitwise XOR operator (^).
	ExprBinaryBitXor
	// ExprBinaryShiftLeft represents the left shift operator (<<).
	ExprBinaryShiftLeft
	ExprBinaryShiftRight

	// ExprBinaryLogicalAnd represents the logical AND operator (&&).
	ExprBinaryLogicalAnd
	ExprBinaryLogicalOr

	// ExprBinaryEq represents the equality operator (==).
	ExprBinaryEq
	ExprBinaryNotEq
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq

	// ExprBinaryRange represents the range operator (..).
	ExprBinaryRange
)

// ExprUnaryOp enumerates unary operator kinds.
type ExprUnaryOp uint8

const (
	// ExprUnaryNeg represents arithmetic negation (-).
	ExprUnaryNeg ExprUnaryOp = iota
	// ExprUnaryNot represents logical negation (!).
	ExprUnaryNot
)

// LitKind enumerates literal categories.
type LitKind uint8

const (
	// LitInt represents an integer literal.
	LitInt LitKind = iota
	// LitFloat represents a floating-point literal.
	LitFloat
	// LitBool represents a boolean literal.
	LitBool
	// LitString represents a text string literal.
	LitString
	// LitByteString represents a byte string literal.
	LitByteString
	// LitChar represents a character literal.
	LitChar
	// LitByte represents a byte literal.
	LitByte
	// LitRaw represents an opaque literal the lexer accepted but did not
	// classify (for example a numeric literal with a type suffix).
	LitRaw
)

// ExprIdentData carries the interned name of an identifier expression.
type ExprIdentData struct {
	Name source.StringID
}

// PathSegment is one component of a path expression or type path.
type PathSegment struct {
	Name     source.StringID
	Span     source.Span
	TypeArgs []TypeID
}

// ExprPathData carries the segments of a path expression, left to right.
type ExprPathData struct {
	Segments []PathSegment
}

// ExprLiteralData carries the category and raw text of a literal.
type ExprLiteralData struct {
	Kind  LitKind
	Value source.StringID
}

// ExprCallData carries the callee and arguments of a free call.
type ExprCallData struct {
	Target   ExprID
	TypeArgs []TypeID
	Args     []ExprID
}

// ExprMethodCallData carries a method call. MethodSpan covers only the
// method name, not the receiver or argument list.
type ExprMethodCallData struct {
	Receiver   ExprID
	Method     source.StringID
	MethodSpan source.Span
	TypeArgs   []TypeID
	Args       []ExprID
}

// ExprMemberData carries a member access. FieldSpan covers only the field
// name.
type ExprMemberData struct {
	Target    ExprID
	Field     source.StringID
	FieldSpan source.Span
}

// ExprIndexData carries an index expression.
type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

// ExprBinaryData carries a binary operator expression.
type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

// ExprUnaryData carries a unary operator expression.
type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

// ExprGroupData carries a parenthesized expression.
type ExprGroupData struct {
	Inner ExprID
}

// ExprTupleData carries the elements of a tuple literal.
type ExprTupleData struct {
	Elements []ExprID
}

// ExprArrayData carries the elements of an array literal.
type ExprArrayData struct {
	Elements []ExprID
}
