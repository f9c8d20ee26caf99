package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the token stream.
	EOF

	// Ident represents an identifier token.
	Ident

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a floating-point literal token.
	FloatLit
	// BoolLit represents the 'true' and 'false' literals.
	BoolLit
	// StringLit represents a text string literal ("...").
	StringLit
	// ByteStringLit represents a byte string literal (b"...").
	ByteStringLit
	// CharLit represents a character literal ('x').
	CharLit
	// ByteLit represents a single byte literal (b'x').
	ByteLit
	// RawLit represents an opaque literal form the lexer accepted but
	// does not classify further.
	RawLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// EqEq represents the equality operator token.
	EqEq // ==
	// Bang represents the logical-not operator token.
	Bang // !
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Shl represents the shift-left operator token.
	Shl // <<
	// Shr represents the shift-right operator token.
	Shr // >>
	// Amp represents the bitwise-and operator token.
	Amp // &
	// Pipe represents the bitwise-or operator token.
	Pipe // |
	// Caret represents the bitwise-xor operator token.
	Caret // ^
	// AndAnd represents the logical-and operator token.
	AndAnd // &&
	// OrOr represents the logical-or operator token.
	OrOr // ||
	// Colon represents the colon token.
	Colon // :
	// ColonColon represents the path separator token.
	ColonColon // ::
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the member access token.
	Dot // .
	// DotDot represents the range token.
	DotDot // ..
	// Arrow represents the arrow token.
	Arrow // ->
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Underscore represents a lone underscore token.
	Underscore // _
)

var kindNames = map[Kind]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	IntLit:        "IntLit",
	FloatLit:      "FloatLit",
	BoolLit:       "BoolLit",
	StringLit:     "StringLit",
	ByteStringLit: "ByteStringLit",
	CharLit:       "CharLit",
	ByteLit:       "ByteLit",
	RawLit:        "RawLit",
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	Assign:        "Assign",
	EqEq:          "EqEq",
	Bang:          "Bang",
	BangEq:        "BangEq",
	Lt:            "Lt",
	LtEq:          "LtEq",
	Gt:            "Gt",
	GtEq:          "GtEq",
	Shl:           "Shl",
	Shr:           "Shr",
	Amp:           "Amp",
	Pipe:          "Pipe",
	Caret:         "Caret",
	AndAnd:        "AndAnd",
	OrOr:          "OrOr",
	Colon:         "Colon",
	ColonColon:    "ColonColon",
	Semicolon:     "Semicolon",
	Comma:         "Comma",
	Dot:           "Dot",
	DotDot:        "DotDot",
	Arrow:         "Arrow",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	Underscore:    "Underscore",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
