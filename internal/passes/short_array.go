package passes

import (
	"phpfmt/internal/pass"
	"phpfmt/internal/token"
)

// ShortArray rewrites `array(...)` literals as `[...]`.
type ShortArray struct{}

func (ShortArray) Name() string        { return "ShortArray" }
func (ShortArray) Description() string { return "Convert old array into new array. (array() -> [])" }

func (ShortArray) Candidate(_ string, found token.Set) bool {
	return found.Has(token.KwArray)
}

func (ShortArray) Format(src string) (string, error) {
	w, err := pass.NewWalker(src)
	if err != nil {
		return "", err
	}
	closers := make(map[int]struct{})
	for {
		t, ok := w.Next()
		if !ok {
			break
		}
		switch t.Kind {
		case token.KwArray:
			// `array` used as a type hint or cast has no paren after it
			open := w.RightIdx(token.Blank)
			if w.Token(open).Kind != token.LParen {
				break
			}
			closers[w.RefWalkBlock(open, token.LParen, token.RParen)] = struct{}{}
			w.Append("[")
			w.Seek(open)
			continue
		case token.RParen:
			if _, ok := closers[w.Ptr()]; ok {
				delete(closers, w.Ptr())
				w.Append("]")
				continue
			}
		}
		w.Append(t.Text)
	}
	return w.Code(), nil
}
