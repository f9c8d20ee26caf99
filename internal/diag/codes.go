package diag

import (
	"fmt"
)

type Code uint16

const (
	// Unknown error, first resort only
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedChar   Code = 1003
	LexBadNumber          Code = 1004
	LexBadEscape          Code = 1005

	// Syntactic
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnclosedParen     Code = 2002
	SynUnclosedBracket   Code = 2003
	SynExpectExpression  Code = 2004
	SynExpectIdentifier  Code = 2005
	SynExpectType        Code = 2006
	SynExpectRightAngle  Code = 2007
	SynTrailingTokens    Code = 2008
	SynExpectAssignment  Code = 2009

	// Descriptor / driver
	DescInfo          Code = 4000
	DescBadFixture    Code = 4001
	DescMissingSource Code = 4002
	DescBadSpan       Code = 4003
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInfo:               "lexical note",
	LexUnknownChar:        "unknown character",
	LexUnterminatedString: "unterminated string literal",
	LexUnterminatedChar:   "unterminated character literal",
	LexBadNumber:          "malformed numeric literal",
	LexBadEscape:          "malformed escape sequence",

	SynInfo:             "syntax note",
	SynUnexpectedToken:  "unexpected token",
	SynUnclosedParen:    "unclosed parenthesis",
	SynUnclosedBracket:  "unclosed bracket",
	SynExpectExpression: "expected expression",
	SynExpectIdentifier: "expected identifier",
	SynExpectType:       "expected type",
	SynExpectRightAngle: "expected '>' to close generic arguments",
	SynTrailingTokens:   "trailing tokens after expression",
	SynExpectAssignment: "expected 'name = expression' pair",

	DescInfo:          "descriptor note",
	DescBadFixture:    "malformed descriptor fixture",
	DescMissingSource: "descriptor source file not found",
	DescBadSpan:       "descriptor span out of range",
}

// ID returns the short prefixed form of the code, e.g. SYN2004.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("DSC%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
