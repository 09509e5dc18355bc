package diag

import (
	"testing"

	"phpfmt/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := range 3 {
		ok := b.Add(Diagnostic{Code: LexUnknownChar, Primary: source.Span{Start: uint32(i)}})
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d = %v, want %v", i, ok, want)
		}
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d", b.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	r := BagReporter{Bag: b}
	r.Report(LexUnterminatedString, SevError, source.Span{Start: 9, End: 12}, "late", nil)
	r.Report(LexUnknownChar, SevWarning, source.Span{Start: 1, End: 2}, "early", nil)
	r.Report(LexUnterminatedString, SevError, source.Span{Start: 9, End: 12}, "late again", nil)

	b.Sort()
	b.Dedup()

	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after dedup, got %d", len(items))
	}
	if items[0].Message != "early" || items[1].Message != "late" {
		t.Fatalf("unexpected order: %q, %q", items[0].Message, items[1].Message)
	}
	if !b.HasErrors() {
		t.Fatal("expected HasErrors")
	}
}

func TestCodeID(t *testing.T) {
	if got := LexUnterminatedHeredoc.ID(); got != "LEX1004" {
		t.Fatalf("ID = %q", got)
	}
	if got := Code(4242).ID(); got != "E4242" {
		t.Fatalf("unknown ID = %q", got)
	}
}
