package passes

import (
	"phpfmt/internal/pass"
	"phpfmt/internal/token"
)

var (
	commentKinds = token.NewSet(token.Comment, token.DocComment)
	// `<?php;` would no longer be an open tag
	keepBeforeSemicolon = commentKinds.With(token.OpenTag)
)

// TrimSpaceBeforeSemicolon pulls a `;` up against the code it terminates.
type TrimSpaceBeforeSemicolon struct{}

func (TrimSpaceBeforeSemicolon) Name() string { return "TrimSpaceBeforeSemicolon" }

func (TrimSpaceBeforeSemicolon) Description() string {
	return "Remove whitespace and empty lines before semicolons."
}

func (TrimSpaceBeforeSemicolon) Candidate(_ string, found token.Set) bool {
	return found.Has(token.Semicolon)
}

func (TrimSpaceBeforeSemicolon) Format(src string) (string, error) {
	w, err := pass.NewWalker(src)
	if err != nil {
		return "", err
	}
	for {
		t, ok := w.Next()
		if !ok {
			break
		}
		// a line comment has no newline of its own; keep the one before `;`
		if t.Kind == token.Semicolon && !w.LeftIs(keepBeforeSemicolon, token.Blank) {
			w.RtrimAndAppend(t.Text)
			continue
		}
		w.Append(t.Text)
	}
	return w.Code(), nil
}
