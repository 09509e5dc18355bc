package passes

import (
	"strings"

	"phpfmt/internal/pass"
	"phpfmt/internal/token"
)

// DoubleToSingleQuote rewrites "abc" as 'abc' when the meaning is unchanged.
type DoubleToSingleQuote struct{}

func (DoubleToSingleQuote) Name() string        { return "DoubleToSingleQuote" }
func (DoubleToSingleQuote) Description() string { return "Convert from double to single quotes." }

func (DoubleToSingleQuote) Candidate(_ string, found token.Set) bool {
	return found.Has(token.ConstString)
}

func (DoubleToSingleQuote) Format(src string) (string, error) {
	w, err := pass.NewWalker(src)
	if err != nil {
		return "", err
	}
	for {
		t, ok := w.Next()
		if !ok {
			break
		}
		if t.Kind == token.ConstString && convertibleDoubleQuoted(t.Text) {
			w.Append(toSingleQuoted(t.Text))
			continue
		}
		w.Append(t.Text)
	}
	return w.Code(), nil
}

// convertibleDoubleQuoted reports whether text is a double-quoted literal with
// no single quote and no escape other than \", \$ and \\.
func convertibleDoubleQuoted(text string) bool {
	if len(text) < 2 || text[0] != '"' || strings.ContainsRune(text, '\'') {
		return false
	}
	inner := text[1 : len(text)-1]
	for i := 0; i < len(inner); i++ {
		if inner[i] != '\\' {
			continue
		}
		if i+1 >= len(inner) || strings.IndexByte(`"$\`, inner[i+1]) < 0 {
			return false
		}
		i++
	}
	return true
}

var singleQuoteReplacer = strings.NewReplacer(`\$`, `$`, `\"`, `"`, `\\`, `\\`)

func toSingleQuoted(text string) string {
	return "'" + singleQuoteReplacer.Replace(text[1:len(text)-1]) + "'"
}
