package testkit

import (
	"strings"
	"testing"

	"phpfmt/internal/lexer"
	"phpfmt/internal/source"
	"phpfmt/internal/token"
)

func TestCheckTokenInvariantsLexerOutput(t *testing.T) {
	inputs := []string{
		"",
		"<html><?php echo $a; ?>tail",
		"<?php\n$s = \"hi {$user->name} and $x[0]\";\n",
		"<?php\n$t = <<<EOT\nline $a\nEOT;\n// done\n",
		"<?php /* open",
	}
	for _, src := range inputs {
		tokens, _, _ := lexer.Tokenize(src)
		if err := CheckTokenInvariants(tokens, src); err != nil {
			t.Fatalf("%q: %v", src, err)
		}
	}
}

func TestCheckTokenInvariantsDetectsGap(t *testing.T) {
	src := "<?php $a;"
	tokens, _, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	broken := append([]token.Token(nil), tokens[:1]...)
	broken = append(broken, tokens[2:]...)
	err = CheckTokenInvariants(broken, src)
	if err == nil || !strings.Contains(err.Error(), "starts at") {
		t.Fatalf("expected gap error, got %v", err)
	}
}

func TestCheckTokenInvariantsDetectsShortCover(t *testing.T) {
	src := "<?php $a;"
	tokens, _, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	err = CheckTokenInvariants(tokens[:len(tokens)-1], src)
	if err == nil || !strings.Contains(err.Error(), "cover") {
		t.Fatalf("expected coverage error, got %v", err)
	}
}

func TestCheckTokenInvariantsDetectsTextMismatch(t *testing.T) {
	src := "<?php $a;"
	tokens, _, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	last := len(tokens) - 1
	tokens[last] = token.Token{Kind: tokens[last].Kind, Text: ",", Span: source.Span{Start: tokens[last].Span.Start, End: tokens[last].Span.End}}
	if err := CheckTokenInvariants(tokens, src); err == nil {
		t.Fatal("expected mismatch error")
	}
}
