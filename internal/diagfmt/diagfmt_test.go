package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"phpfmt/internal/diag"
	"phpfmt/internal/lexer"
	"phpfmt/internal/source"
)

func TestPrettyPointsAtSpan(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.php", []byte("<?php\necho 'oops;\n"))
	bag := diag.NewBag(10)
	lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}}).All()
	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", bag.Len())
	}

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	out := buf.String()
	if !strings.HasPrefix(out, "bad.php:2:6: ERROR LEX1002: unterminated string literal\n") {
		t.Fatalf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "\n       ^") {
		t.Fatalf("caret not under column 6:\n%s", out)
	}
}

func TestTokensJSON(t *testing.T) {
	toks, _, err := lexer.Tokenize("<?php $a;")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out) != 3 || out[1].Kind != "Variable" || out[1].Text != "$a" {
		t.Fatalf("unexpected tokens: %+v", out)
	}
}
