package lexer_test

import (
	"testing"

	"brec/internal/diag"
	"brec/internal/lexer"
	"brec/internal/source"
	"brec/internal/token"
)

// makeTestLexer builds a lexer over a virtual file with a bag reporter.
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.brec", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(16)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

// collectAllTokens drains the lexer up to and including EOF.
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectTokens checks the kinds of the token stream, EOF excluded.
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, bag := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\ndiags: %d",
			len(expected), len(tokens), input, tokens, bag.Len())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: got %s, want %s (input %q)", i, tok.Kind, expected[i], input)
		}
	}
}

func TestIdentifiersAndDirectiveNames(t *testing.T) {
	// directive names are plain identifiers at lexing time
	expectTokens(t, "pad_before count offset_after", []token.Kind{
		token.Ident, token.Ident, token.Ident,
	})
}

func TestBooleansAreLiterals(t *testing.T) {
	expectTokens(t, "true false", []token.Kind{token.BoolLit, token.BoolLit})
	expectTokens(t, "True", []token.Kind{token.Ident}) // case-sensitive
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"123", token.IntLit},
		{"1_000", token.IntLit},
		{"0xFF", token.IntLit},
		{"0b1010", token.IntLit},
		{"0o777", token.IntLit},
		{"1.5", token.FloatLit},
		{".5", token.FloatLit},
		{"1e9", token.FloatLit},
		{"1.5e-3", token.FloatLit},
		{"12u32", token.RawLit}, // suffixed literal is opaque
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, []token.Kind{tt.kind})
		})
	}
}

func TestStrings(t *testing.T) {
	expectTokens(t, `"hello"`, []token.Kind{token.StringLit})
	expectTokens(t, `b"\x00\x01"`, []token.Kind{token.ByteStringLit})
	expectTokens(t, `'x'`, []token.Kind{token.CharLit})
	expectTokens(t, `'\n'`, []token.Kind{token.CharLit})
	expectTokens(t, `b'a'`, []token.Kind{token.ByteLit})
	expectTokens(t, `"esc \" quote"`, []token.Kind{token.StringLit})
}

func TestMultiLineStringIsOneToken(t *testing.T) {
	lx, bag := makeTestLexer("\"first\nsecond\"")
	tok := lx.Next()
	if tok.Kind != token.StringLit {
		t.Fatalf("kind = %s", tok.Kind)
	}
	if tok.Span.Start != 0 || tok.Span.End != 14 {
		t.Errorf("span = %v", tok.Span)
	}
	if bag.HasErrors() {
		t.Error("a newline inside a string is not an error")
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, bag := makeTestLexer(`"never closed`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("kind = %s, want Invalid", tok.Kind)
	}
	if !bag.HasErrors() {
		t.Error("expected an unterminated-string diagnostic")
	}
}

func TestUnterminatedChar(t *testing.T) {
	lx, bag := makeTestLexer("'x\ny")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("kind = %s, want Invalid", tok.Kind)
	}
	if !bag.HasErrors() {
		t.Error("expected a diagnostic for newline in char literal")
	}
}

func TestOperators(t *testing.T) {
	expectTokens(t, "a + b * c", []token.Kind{
		token.Ident, token.Plus, token.Ident, token.Star, token.Ident,
	})
	expectTokens(t, "x << 2 | y >> 1", []token.Kind{
		token.Ident, token.Shl, token.IntLit, token.Pipe, token.Ident, token.Shr, token.IntLit,
	})
	expectTokens(t, "a::b.c(d)", []token.Kind{
		token.Ident, token.ColonColon, token.Ident, token.Dot, token.Ident,
		token.LParen, token.Ident, token.RParen,
	})
	expectTokens(t, "a == b && c != d", []token.Kind{
		token.Ident, token.EqEq, token.Ident, token.AndAnd, token.Ident, token.BangEq, token.Ident,
	})
}

func TestCommentsAreSkipped(t *testing.T) {
	expectTokens(t, "a // comment\n+ b", []token.Kind{token.Ident, token.Plus, token.Ident})
	expectTokens(t, "a /* block /* nested */ */ + b", []token.Kind{token.Ident, token.Plus, token.Ident})
}

func TestSubSpanLexing(t *testing.T) {
	fs := source.NewFileSet()
	//                                     0123456789012345678
	fileID := fs.AddVirtual("test.brec", []byte("field: u32 = x + 1,"))
	file := fs.Get(fileID)

	// lex only the "x + 1" slice
	lx := lexer.NewAt(file, source.Span{File: fileID, Start: 13, End: 18}, lexer.Options{})
	tokens := collectAllTokens(lx)

	want := []token.Kind{token.Ident, token.Plus, token.IntLit, token.EOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Kind, k)
		}
	}
	// spans stay file-absolute
	if tokens[0].Span.Start != 13 || tokens[0].Span.End != 14 {
		t.Errorf("sub-span token has span %v", tokens[0].Span)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	p := lx.Peek()
	n := lx.Next()
	if p != n {
		t.Errorf("Peek %v != Next %v", p, n)
	}
	if lx.Next().Kind != token.Ident {
		t.Error("second token lost")
	}
}

func TestUnknownChar(t *testing.T) {
	lx, bag := makeTestLexer("#")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("kind = %s", tok.Kind)
	}
	if !bag.HasErrors() {
		t.Error("expected unknown-character diagnostic")
	}
}
