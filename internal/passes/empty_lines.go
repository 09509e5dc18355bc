package passes

import (
	"strings"

	"phpfmt/internal/pass"
	"phpfmt/internal/token"
)

// EliminateDuplicatedEmptyLines collapses runs of empty lines to one.
type EliminateDuplicatedEmptyLines struct{}

func (EliminateDuplicatedEmptyLines) Name() string { return "EliminateDuplicatedEmptyLines" }

func (EliminateDuplicatedEmptyLines) Description() string {
	return "Remove duplicated empty lines."
}

func (EliminateDuplicatedEmptyLines) Candidate(_ string, found token.Set) bool {
	return found.Has(token.Whitespace)
}

func (EliminateDuplicatedEmptyLines) Format(src string) (string, error) {
	w, err := pass.NewWalker(src)
	if err != nil {
		return "", err
	}
	for {
		t, ok := w.Next()
		if !ok {
			break
		}
		if t.Kind == token.Whitespace && strings.Count(t.Text, w.NewLine) > 2 {
			tail := t.Text[strings.LastIndex(t.Text, w.NewLine)+len(w.NewLine):]
			w.Append(w.NewLine, w.NewLine, tail)
			continue
		}
		w.Append(t.Text)
	}
	return w.Code(), nil
}
