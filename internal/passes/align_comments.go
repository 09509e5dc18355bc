package passes

import (
	"fmt"
	"strings"

	"phpfmt/internal/pass"
	"phpfmt/internal/token"
)

const alignCommentPlaceholder = "\x02 ALIGNDOUBLESLASHCOMMENTS %d \x03"

// AlignDoubleSlashComments lines up `//` comments trailing code on
// consecutive lines. A blank line starts a new group.
type AlignDoubleSlashComments struct{}

func (AlignDoubleSlashComments) Name() string { return "AlignDoubleSlashComments" }

func (AlignDoubleSlashComments) Description() string {
	return "Vertically align \"//\" comments."
}

func (AlignDoubleSlashComments) Candidate(_ string, found token.Set) bool {
	return found.Has(token.Comment)
}

func (AlignDoubleSlashComments) Format(src string) (string, error) {
	w, err := pass.NewWalker(src)
	if err != nil {
		return "", err
	}
	group := 0
	for {
		t, ok := w.Next()
		if !ok {
			break
		}
		switch {
		case t.Kind == token.Whitespace && strings.Count(t.Text, w.NewLine) > 1:
			group++
		case t.Kind == token.Comment && strings.HasPrefix(t.Text, "//") && trailsCode(w):
			w.RtrimLnAndAppend(fmt.Sprintf(alignCommentPlaceholder, group))
			w.Append(" ", t.Text)
			continue
		}
		w.Append(t.Text)
	}
	w.AlignPlaceholders(alignCommentPlaceholder, group)
	return w.Code(), nil
}

// trailsCode reports whether the token under the cursor follows code on
// the same line.
func trailsCode(w *pass.Walker) bool {
	if w.HasLnBefore() {
		return false
	}
	left := w.LeftIdx(token.Blank)
	if left < 0 {
		return false
	}
	t := w.Token(left)
	return t.Kind != token.OpenTag && t.Kind != token.InlineHTML && !strings.HasSuffix(t.Text, w.NewLine)
}
