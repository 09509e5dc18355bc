package token_test

import (
	"testing"

	"phpfmt/internal/token"
)

func tok(k token.Kind, text string) token.Token {
	return token.Token{Kind: k, Text: text}
}

func TestMatcherModes(t *testing.T) {
	brace := tok(token.LBrace, "{")

	var m token.Matcher = token.LBrace
	if !m.Matches(brace) {
		t.Fatal("kind matcher should match by kind")
	}
	m = token.NewSet(token.LParen, token.LBrace)
	if !m.Matches(brace) {
		t.Fatal("set matcher should match by membership")
	}
	m = tok(token.LBrace, "{")
	if !m.Matches(brace) {
		t.Fatal("token matcher should match exact kind and text")
	}
	if tok(token.Ident, "foo").Matches(tok(token.Ident, "bar")) {
		t.Fatal("token matcher must compare text")
	}
}

func TestSetOps(t *testing.T) {
	s := token.NewSet(token.Whitespace)
	if !s.Has(token.Whitespace) || s.Has(token.Comment) {
		t.Fatalf("unexpected membership in %v", s)
	}
	wider := s.With(token.Comment, token.DocComment)
	if wider != token.Futile {
		t.Fatalf("With = %v, want %v", wider, token.Futile)
	}
	if s.Has(token.Comment) {
		t.Fatal("With must not mutate the receiver")
	}
	if !(token.Set{}).Empty() || s.Empty() {
		t.Fatal("Empty mismatch")
	}
	hi := token.NewSet(token.MagicNamespace, token.Invalid)
	kinds := hi.Kinds()
	if len(kinds) != 2 || kinds[0] != token.Invalid || kinds[1] != token.MagicNamespace {
		t.Fatalf("Kinds = %v", kinds)
	}
	if u := token.Blank.Union(hi); !u.Has(token.Whitespace) || !u.Has(token.MagicNamespace) {
		t.Fatalf("Union = %v", u)
	}
}

func TestSetIsComparableKey(t *testing.T) {
	cache := map[token.Set]int{token.Blank: 1, token.Futile: 2}
	if cache[token.NewSet(token.Whitespace)] != 1 {
		t.Fatal("equal sets must hash equal")
	}
}

func TestClassification(t *testing.T) {
	for _, k := range []token.Kind{token.KwAbstract, token.KwIf, token.KwYield, token.KwLogicalXor} {
		if !token.IsKeyword(k) {
			t.Fatalf("%v should be keyword", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.IntCast, token.MagicLine, token.LBrace} {
		if token.IsKeyword(k) {
			t.Fatalf("%v must NOT be keyword", k)
		}
	}
	if !token.IsCast(token.BoolCast) || token.IsCast(token.LParen) {
		t.Fatal("IsCast mismatch")
	}
	if !token.IsPunctOrOp(token.NullsafeObjectOperator) || token.IsPunctOrOp(token.Variable) {
		t.Fatal("IsPunctOrOp mismatch")
	}
	if !tok(token.DocComment, "/** x */").IsFutile() || tok(token.Semicolon, ";").IsFutile() {
		t.Fatal("IsFutile mismatch")
	}
	if !token.IsWordLike(token.KwReturn) || !token.IsWordLike(token.Variable) || token.IsWordLike(token.LParen) {
		t.Fatal("IsWordLike mismatch")
	}
}

func TestLookupKeyword(t *testing.T) {
	cases := map[string]token.Kind{
		"function":        token.KwFunction,
		"FOREACH":         token.KwForeach,
		"ElseIf":          token.KwElseIf,
		"die":             token.KwExit,
		"__halt_compiler": token.KwHaltCompiler,
		"__CLASS__":       token.MagicClass,
	}
	for text, want := range cases {
		got, ok := token.LookupKeyword(text)
		if !ok || got != want {
			t.Fatalf("LookupKeyword(%q) = %v,%v; want %v", text, got, ok, want)
		}
	}
	if _, ok := token.LookupKeyword("strlen"); ok {
		t.Fatal("strlen is not a keyword")
	}
}

func TestKindString(t *testing.T) {
	if token.CurlyOpen.String() != "CurlyOpen" {
		t.Fatalf("String = %q", token.CurlyOpen.String())
	}
	if token.Kind(250).String() != "Kind(250)" {
		t.Fatalf("out of range String = %q", token.Kind(250).String())
	}
}
