package passes

import (
	"phpfmt/internal/lexer"
	"phpfmt/internal/pass"
	"phpfmt/internal/token"
)

// RestoreComments puts back comment texts captured before other passes ran,
// in order of appearance. Doc comments are left alone.
type RestoreComments struct {
	comments []string
}

// NewRestoreComments returns a pass restoring comments in order.
func NewRestoreComments(comments []string) *RestoreComments {
	return &RestoreComments{comments: comments}
}

// CaptureComments lists the texts of the plain comments in src.
func CaptureComments(src string) ([]string, error) {
	toks, _, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, t := range toks {
		if t.Kind == token.Comment {
			out = append(out, t.Text)
		}
	}
	return out, nil
}

func (p *RestoreComments) Name() string        { return "RestoreComments" }
func (p *RestoreComments) Description() string { return "Revert any formatting of comments content." }

func (p *RestoreComments) Candidate(_ string, found token.Set) bool {
	return len(p.comments) > 0 && found.Has(token.Comment)
}

func (p *RestoreComments) Format(src string) (string, error) {
	w, err := pass.NewWalker(src)
	if err != nil {
		return "", err
	}
	next := 0
	for {
		t, ok := w.Next()
		if !ok {
			break
		}
		if t.Kind == token.Comment && next < len(p.comments) {
			w.Append(p.comments[next])
			next++
			continue
		}
		w.Append(t.Text)
	}
	return w.Code(), nil
}
