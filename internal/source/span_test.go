package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{"disjoint", Span{File: 1, Start: 2, End: 4}, Span{File: 1, Start: 8, End: 9}, Span{File: 1, Start: 2, End: 9}},
		{"nested", Span{File: 1, Start: 2, End: 10}, Span{File: 1, Start: 4, End: 5}, Span{File: 1, Start: 2, End: 10}},
		{"other file", Span{File: 1, Start: 2, End: 4}, Span{File: 2, Start: 0, End: 9}, Span{File: 1, Start: 2, End: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Fatalf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpanLenEmpty(t *testing.T) {
	s := Span{Start: 3, End: 3}
	if !s.Empty() || s.Len() != 0 {
		t.Fatalf("expected empty span, got %+v", s)
	}
	if (Span{Start: 3, End: 7}).Len() != 4 {
		t.Fatal("Len mismatch")
	}
}
