package diag

import (
	"brec/internal/source"
	"testing"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)

	if !b.Add(NewError(SynUnexpectedToken, source.Span{}, "one")) {
		t.Error("first add should succeed")
	}
	if !b.Add(NewError(SynUnexpectedToken, source.Span{}, "two")) {
		t.Error("second add should succeed")
	}
	if b.Add(NewError(SynUnexpectedToken, source.Span{}, "three")) {
		t.Error("third add should be rejected by the limit")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevInfo, LexInfo, source.Span{}, "note"))
	if b.HasErrors() {
		t.Error("info-only bag must not report errors")
	}
	b.Add(New(SevWarning, SynInfo, source.Span{}, "warn"))
	if b.HasErrors() {
		t.Error("warnings are not errors")
	}
	if !b.HasWarnings() {
		t.Error("expected HasWarnings")
	}
	b.Add(NewError(SynExpectExpression, source.Span{}, "boom"))
	if !b.HasErrors() {
		t.Error("expected HasErrors after adding an error")
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(10)
	b.Add(NewError(SynExpectExpression, source.Span{File: 1, Start: 20, End: 25}, "late"))
	b.Add(NewError(SynUnexpectedToken, source.Span{File: 1, Start: 5, End: 6}, "early"))
	b.Add(NewError(LexBadNumber, source.Span{File: 0, Start: 50, End: 51}, "other file"))

	b.Sort()

	items := b.Items()
	if items[0].Message != "other file" || items[1].Message != "early" || items[2].Message != "late" {
		t.Errorf("unexpected order: %q %q %q", items[0].Message, items[1].Message, items[2].Message)
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(10)
	sp := source.Span{File: 1, Start: 3, End: 9}
	b.Add(NewError(SynUnexpectedToken, sp, "dup"))
	b.Add(NewError(SynUnexpectedToken, sp, "dup again"))
	b.Add(NewError(SynExpectExpression, sp, "different code"))

	b.Dedup()
	if b.Len() != 2 {
		t.Errorf("Len after dedup = %d, want 2", b.Len())
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexBadNumber, "LEX1004"},
		{SynExpectExpression, "SYN2004"},
		{DescBadFixture, "DSC4001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("Code(%d).ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestBagReporter(t *testing.T) {
	b := NewBag(4)
	r := BagReporter{Bag: b}
	r.Report(SynExpectExpression, SevError, source.Span{File: 1}, "msg", nil)
	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}
	if b.Items()[0].Code != SynExpectExpression {
		t.Errorf("code = %v", b.Items()[0].Code)
	}

	// nop reporter must swallow silently
	NopReporter{}.Report(SynExpectExpression, SevError, source.Span{}, "msg", nil)
}
