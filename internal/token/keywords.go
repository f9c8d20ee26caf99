package token

// The expression language has exactly two keyword-shaped tokens; directive
// names and builtin type names stay plain identifiers and are classified
// later, by position, in the highlight package.
var keywords = map[string]Kind{
	"true":  BoolLit,
	"false": BoolLit,
}

// LookupKeyword returns the token kind for a reserved identifier.
// Matching is case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
