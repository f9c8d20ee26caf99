package token

import (
	"brec/internal/source"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Invalid, "Invalid"},
		{EOF, "EOF"},
		{Ident, "Ident"},
		{ByteStringLit, "ByteStringLit"},
		{ColonColon, "ColonColon"},
		{Underscore, "Underscore"},
		{Kind(255), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestTokenClassification(t *testing.T) {
	lit := Token{Kind: CharLit, Span: source.Span{}, Text: "'x'"}
	if !lit.IsLiteral() || lit.IsPunctOrOp() || lit.IsIdent() {
		t.Error("char literal misclassified")
	}

	op := Token{Kind: ColonColon, Text: "::"}
	if !op.IsPunctOrOp() || op.IsLiteral() {
		t.Error("operator misclassified")
	}

	id := Token{Kind: Ident, Text: "count"}
	if !id.IsIdent() || id.IsLiteral() || id.IsPunctOrOp() {
		t.Error("identifier misclassified")
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := LookupKeyword("true"); !ok || k != BoolLit {
		t.Errorf("LookupKeyword(true) = %v, %v", k, ok)
	}
	if k, ok := LookupKeyword("false"); !ok || k != BoolLit {
		t.Errorf("LookupKeyword(false) = %v, %v", k, ok)
	}
	// directive names are not lexer keywords
	if _, ok := LookupKeyword("pad_before"); ok {
		t.Error("directive names must lex as plain identifiers")
	}
	if _, ok := LookupKeyword("True"); ok {
		t.Error("keyword lookup must be case-sensitive")
	}
}
