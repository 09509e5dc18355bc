package passes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"phpfmt/internal/pass"
	"phpfmt/internal/token"
)

const (
	defaultWrapWidth = 80
	tabWidth         = 8
)

// LeftWordWrap breaks lines longer than Width columns at the last whitespace
// or object operator seen before the limit.
type LeftWordWrap struct {
	Width int
}

// NewLeftWordWrap parses the variant as the column limit; "" means 80.
func NewLeftWordWrap(variant string) (*LeftWordWrap, error) {
	if variant == "" {
		return &LeftWordWrap{Width: defaultWrapWidth}, nil
	}
	n, err := strconv.Atoi(variant)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("width must be a positive integer, got %q", variant)
	}
	return &LeftWordWrap{Width: n}, nil
}

func (p *LeftWordWrap) Name() string { return "LeftWordWrap" }

func (p *LeftWordWrap) Description() string {
	return fmt.Sprintf("Word wrap at %d columns - left justify.", p.Width)
}

func (p *LeftWordWrap) Candidate(string, token.Set) bool { return true }

func (p *LeftWordWrap) Format(src string) (string, error) {
	w, err := pass.NewWalker(src)
	if err != nil {
		return "", err
	}
	tab := strings.Repeat(" ", tabWidth)
	lineLen := 0
	// the walker buffer ends at the last break point; text after it waits here
	var pending strings.Builder
	marked := false
	for {
		t, ok := w.Next()
		if !ok {
			break
		}
		text := t.Text
		if t.Kind == token.Whitespace {
			text = strings.ReplaceAll(text, "\t", tab)
		}
		lineLen += runewidth.StringWidth(text)
		if w.HasLn(text) {
			lineLen = tailWidth(text, w.NewLine)
		}
		if lineLen > p.Width {
			lineLen = tailWidth(text, w.NewLine)
			if marked {
				w.Append(w.NewLine)
				marked = false
			}
		}
		if t.Kind == token.ObjectOperator || t.Kind == token.Whitespace {
			w.Append(pending.String())
			pending.Reset()
			marked = true
		}
		pending.WriteString(t.Text)
	}
	w.Append(pending.String())
	return w.Code(), nil
}

// tailWidth is the display width of text after its last newline.
func tailWidth(text, nl string) int {
	if i := strings.LastIndex(text, nl); i >= 0 {
		text = text[i+len(nl):]
	}
	return runewidth.StringWidth(text)
}
