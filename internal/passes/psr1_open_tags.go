package passes

import (
	"strings"

	"phpfmt/internal/pass"
	"phpfmt/internal/token"
)

var closeTagNeedsNoSemicolon = token.NewSet(
	token.Semicolon, token.Colon, token.RBrace, token.LBrace, token.OpenTag,
)

// PSR1OpenTags spells every open tag as "<?php" and terminates the last
// statement before the close tag with a semicolon.
type PSR1OpenTags struct{}

func (PSR1OpenTags) Name() string { return "PSR1OpenTags" }

func (PSR1OpenTags) Description() string {
	return "PSR-1: use <?php tags and close statements before ?>."
}

func (PSR1OpenTags) Candidate(_ string, found token.Set) bool {
	return found.Has(token.OpenTag) || found.Has(token.CloseTag)
}

func (PSR1OpenTags) Format(src string) (string, error) {
	w, err := pass.NewWalker(src)
	if err != nil {
		return "", err
	}
	touchedComment := false
	for {
		t, ok := w.Next()
		if !ok {
			break
		}
		switch t.Kind {
		case token.OpenTag:
			trailing := strings.TrimLeft(t.Text, "<?phpPH")
			switch {
			case w.HasLn(trailing) || w.HasLnAfter():
			case w.RightUsefulIs(token.KwNamespace):
				trailing = w.NewLine
			case trailing == "":
				trailing = " "
			}
			w.Append("<?php", trailing)

		case token.CloseTag:
			if !touchedComment && !w.LeftUsefulIs(closeTagNeedsNoSemicolon) {
				code := w.Code()
				blanks := code[len(strings.TrimRight(code, " \t")):]
				w.RtrimLnAndAppend(";" + blanks)
			}
			touchedComment = false
			w.Append(t.Text)

		case token.Comment, token.DocComment:
			if w.RightUsefulIs(token.CloseTag) && !w.LeftUsefulIs(closeTagNeedsNoSemicolon) {
				touchedComment = true
				w.RtrimAndAppend("; ")
			}
			w.Append(t.Text)

		default:
			w.Append(t.Text)
		}
	}
	return w.Code(), nil
}
