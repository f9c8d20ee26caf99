// Package field defines the parsed form of one annotated record member.
//
// A descriptor is produced by the directive-parsing stage and consumed
// read-only. Attribute values are kept as raw byte spans of the descriptor
// source; whoever needs their structure re-parses the span.
package field

import (
	"brec/internal/ast"
	"brec/internal/source"
)

// Condition is the value of an if directive: the guard plus the expression
// used when the guard is false.
type Condition struct {
	Condition source.Span
	Alternate source.Span
}

// Endian describes the byte order of one field. Expr is only meaningful
// when the order is conditional.
type Endian struct {
	Conditional bool
	Expr        source.Span
}

// MapKind selects the mapping mode of a field.
type MapKind uint8

const (
	MapNone MapKind = iota
	MapMap
	MapTry
)

// Map is a map or try_map directive value.
type Map struct {
	Kind MapKind
	Expr source.Span
}

// ArgsKind selects one of the three shapes arguments can be passed in.
type ArgsKind uint8

const (
	ArgsNone ArgsKind = iota
	// ArgsList is a fixed-position list: args(a, b, c).
	ArgsList
	// ArgsTuple is a single tuple expression: args_raw(expr).
	ArgsTuple
	// ArgsNamed is a set of name = expression streams: args { x = 1 }.
	ArgsNamed
)

// PassedArgs is the argument set forwarded to the field's type. Exactly
// one of List, Tuple, Named is meaningful, selected by Kind.
type PassedArgs struct {
	Kind  ArgsKind
	List  []source.Span
	Tuple source.Span
	Named []source.Span
}

// ReadModeKind selects how the field obtains its value.
type ReadModeKind uint8

const (
	ReadNormal ReadModeKind = iota
	ReadDefault
	ReadCalc
	ReadParseWith
)

// ReadMode carries the read mode and, for calc and parse_with, the
// associated expression.
type ReadMode struct {
	Kind ReadModeKind
	Expr source.Span
}

// AssertionErrorKind selects the consequent form of a failed assertion.
type AssertionErrorKind uint8

const (
	AssertDefault AssertionErrorKind = iota
	// AssertMessage formats the consequent as an error message.
	AssertMessage
	// AssertError uses the consequent as the error value itself.
	AssertError
)

// Assertion is one assert directive: the condition and an optional
// consequent.
type Assertion struct {
	Condition      source.Span
	ConsequentKind AssertionErrorKind
	Consequent     source.Span
}

// Descriptor is one annotated member of a record declaration. Span-typed
// slots use the zero span to mean "absent".
type Descriptor struct {
	Name string
	// Ty is the member's type annotation, already parsed into the arena
	// the descriptor was built against.
	Ty ast.TypeID

	Count       source.Span
	Offset      source.Span
	PadBefore   source.Span
	PadAfter    source.Span
	AlignBefore source.Span
	AlignAfter  source.Span
	SeekBefore  source.Span
	PadSizeTo   source.Span
	OffsetAfter source.Span

	If         *Condition
	Magic      source.Span
	Endian     Endian
	Map        Map
	Args       PassedArgs
	ReadMode   ReadMode
	Assertions []Assertion

	// KeywordSpans are the source spans of the field's own directive name
	// tokens. They are trusted verbatim by decoration.
	KeywordSpans []source.Span
}

// Present reports whether a span-typed slot holds a value.
func Present(sp source.Span) bool {
	return sp != (source.Span{})
}
