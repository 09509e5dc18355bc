package passes

import (
	"strings"

	"phpfmt/internal/pass"
	"phpfmt/internal/token"
)

// RTrim removes blanks at the end of every line of code. String contents,
// heredocs and inline HTML are never touched.
type RTrim struct{}

func (RTrim) Name() string        { return "RTrim" }
func (RTrim) Description() string { return "Remove trailing whitespace." }

func (RTrim) Candidate(string, token.Set) bool { return true }

func (RTrim) Format(src string) (string, error) {
	w, err := pass.NewWalker(src)
	if err != nil {
		return "", err
	}
	for {
		t, ok := w.Next()
		if !ok {
			break
		}
		last := w.Ptr() == w.Len()-1
		switch t.Kind {
		case token.Whitespace:
			w.Append(trimLineEnds(t.Text, w.NewLine, last))
		case token.Comment, token.DocComment:
			text := trimLineEnds(t.Text, w.NewLine, false)
			if last || w.HasLnAfter() {
				text = strings.TrimRight(text, " \t")
			}
			w.Append(text)
		case token.OpenTag:
			if w.HasLnAfter() {
				w.Append(strings.TrimRight(t.Text, " \t"))
				continue
			}
			w.Append(t.Text)
		default:
			w.Append(t.Text)
		}
	}
	return w.Code(), nil
}

// trimLineEnds strips blanks before every newline in s, and after the last
// one too when all is set.
func trimLineEnds(s, nl string, all bool) string {
	lines := strings.Split(s, nl)
	for i := range lines {
		if i < len(lines)-1 || all {
			lines[i] = strings.TrimRight(lines[i], " \t")
		}
	}
	return strings.Join(lines, nl)
}
