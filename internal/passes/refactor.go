package passes

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"phpfmt/internal/lexer"
	"phpfmt/internal/pass"
	"phpfmt/internal/token"
)

// ErrBadPattern is wrapped by NewRefactor for patterns that can never match
// or whose replacement does not line up with them.
var ErrBadPattern = errors.New("bad refactor pattern")

const (
	skipUntilMarker = "/*skipUntil"
	skipMarker      = "/*skip*/"
)

// patElem is one element of a from-pattern.
type patElem struct {
	tok      token.Token
	meta     bool   // variable: matches any variable and binds its text
	wildcard bool   // /*skipUntil:stop*/
	stop     string // case-folded stop text, empty when the wildcard only resumes
}

// Refactor is a structural search and replace over the token stream.
type Refactor struct {
	fromText string
	toText   string
	from     []patElem
	to       []token.Token
	skips    int // /*skip*/ markers in the to-pattern
	folder   cases.Caser
}

// NewRefactor compiles a from/to pattern pair.
func NewRefactor(from, to string) (*Refactor, error) {
	r := &Refactor{fromText: from, toText: to, folder: cases.Fold()}

	fromToks, err := lexPattern(from)
	if err != nil {
		return nil, fmt.Errorf("%w: from: %w", ErrBadPattern, err)
	}
	wildcards := 0
	for _, t := range fromToks {
		switch {
		case t.Kind == token.Comment && strings.HasPrefix(t.Text, skipUntilMarker):
			r.from = append(r.from, patElem{tok: t, wildcard: true, stop: r.stopText(t.Text)})
			wildcards++
		case t.IsFutile():
		default:
			r.from = append(r.from, patElem{tok: t, meta: t.Kind == token.Variable})
		}
	}
	if err := r.validate(); err != nil {
		return nil, err
	}

	if r.to, err = lexPattern(to); err != nil {
		return nil, fmt.Errorf("%w: to: %w", ErrBadPattern, err)
	}
	skips := 0
	for _, t := range r.to {
		if isSkipMarker(t) {
			skips++
		}
	}
	if skips != 0 && skips != wildcards {
		return nil, fmt.Errorf("%w: %d %s markers for %d wildcards", ErrBadPattern, skips, skipMarker, wildcards)
	}
	r.skips = skips
	return r, nil
}

func (r *Refactor) validate() error {
	switch {
	case len(r.from) == 0:
		return fmt.Errorf("%w: empty from-pattern", ErrBadPattern)
	case r.from[0].wildcard:
		return fmt.Errorf("%w: from-pattern starts with a wildcard", ErrBadPattern)
	case r.from[len(r.from)-1].wildcard:
		return fmt.Errorf("%w: from-pattern ends with a wildcard", ErrBadPattern)
	}
	for k := 1; k < len(r.from); k++ {
		if r.from[k].wildcard && r.from[k-1].wildcard {
			return fmt.Errorf("%w: adjacent wildcards", ErrBadPattern)
		}
	}
	return nil
}

// lexPattern lexes a snippet as PHP code and drops the open tag.
func lexPattern(s string) ([]token.Token, error) {
	toks, _, err := lexer.Tokenize("<?php " + s)
	if err != nil {
		return nil, err
	}
	if len(toks) > 0 && toks[0].Kind == token.OpenTag {
		toks = toks[1:]
	}
	return toks, nil
}

func (r *Refactor) stopText(comment string) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(comment, "/*"), "*/")
	inner = strings.TrimPrefix(inner, "skipUntil")
	inner = strings.TrimPrefix(inner, ":")
	return r.folder.String(strings.TrimSpace(inner))
}

func isSkipMarker(t token.Token) bool {
	return t.Kind == token.Comment && t.Text == skipMarker
}

func (r *Refactor) Name() string { return "Refactor" }

func (r *Refactor) Description() string {
	return "Structural search and replace: " + r.fromText + " => " + r.toText
}

// Clone gives the copy its own case folder; a Caser keeps state between calls.
func (r *Refactor) Clone() pass.Pass {
	c := *r
	c.folder = cases.Fold()
	return &c
}

func (r *Refactor) Candidate(_ string, found token.Set) bool {
	return found.Has(r.from[0].tok.Kind)
}

func (r *Refactor) Format(src string) (string, error) {
	w, err := pass.NewWalker(src)
	if err != nil {
		return "", err
	}
	for {
		t, ok := w.Next()
		if !ok {
			break
		}
		if !r.elemMatches(r.from[0], t, nil) {
			w.Append(t.Text)
			continue
		}
		start := w.Ptr()
		m := r.match(w, start)
		if m.ok {
			w.Append(r.replacement(m))
		} else {
			w.Append(pass.Render(w.Tokens()[start : m.end+1]))
		}
		w.Seek(m.end)
	}
	return w.Code(), nil
}

type matchResult struct {
	ok      bool
	end     int // last consumed index
	binds   map[string]string
	skipped []string

	// comments met between matched tokens, and inside wildcard regions
	comments     []string
	wildComments []string
}

// match tries the whole from-pattern at start. On failure end is the index of
// the token that broke the match, or the last token when the stream ran out.
func (r *Refactor) match(w *pass.Walker, start int) matchResult {
	res := matchResult{end: start, binds: make(map[string]string)}
	r.bind(r.from[0], w.Token(start), res.binds)
	last := w.Len() - 1

	i := start
	for k := 1; k < len(r.from); k++ {
		el := r.from[k]
		if el.wildcard {
			j, resumed := r.skipUntil(w, i, k, el, res.binds)
			if !resumed {
				res.end = min(j, last)
				return res
			}
			res.skipped = append(res.skipped, pass.Render(w.Tokens()[i+1:j]))
			res.wildComments = appendComments(res.wildComments, w.Tokens()[i+1:j])
			i = j - 1
			continue
		}
		j := w.RightIdxFrom(i, token.Futile)
		if j > last {
			res.end = last
			return res
		}
		if !r.elemMatches(el, w.Token(j), res.binds) {
			res.end = j
			return res
		}
		r.bind(el, w.Token(j), res.binds)
		res.comments = appendComments(res.comments, w.Tokens()[i+1:j])
		i = j
	}
	res.ok = true
	res.end = i
	return res
}

// skipUntil scans right of i for the position where the fixed run after the
// wildcard at k matches. A token equal to the stop text abandons the scan.
// The suffix check wins when both apply at the same position.
func (r *Refactor) skipUntil(w *pass.Walker, i, k int, el patElem, binds map[string]string) (int, bool) {
	for j := w.RightIdxFrom(i, token.Futile); j < w.Len(); j = w.RightIdxFrom(j, token.Futile) {
		if r.fixedRunMatches(w, j, k+1, binds) {
			return j, true
		}
		if el.stop != "" && r.folder.String(w.Token(j).Text) == el.stop {
			return j, false
		}
	}
	return w.Len(), false
}

// fixedRunMatches checks the pattern elements from k up to the next wildcard
// against the stream at j without consuming anything.
func (r *Refactor) fixedRunMatches(w *pass.Walker, j, k int, binds map[string]string) bool {
	trial := make(map[string]string, len(binds))
	for name, text := range binds {
		trial[name] = text
	}
	for ; k < len(r.from) && !r.from[k].wildcard; k++ {
		if !w.InRange(j) || !r.elemMatches(r.from[k], w.Token(j), trial) {
			return false
		}
		r.bind(r.from[k], w.Token(j), trial)
		j = w.RightIdxFrom(j, token.Futile)
	}
	return true
}

func (r *Refactor) elemMatches(el patElem, t token.Token, binds map[string]string) bool {
	if el.meta {
		if t.Kind != token.Variable {
			return false
		}
		bound, ok := binds[el.tok.Text]
		return !ok || bound == t.Text
	}
	if el.tok.Kind != t.Kind {
		return false
	}
	if t.Kind == token.Ident || token.IsKeyword(t.Kind) || token.IsMagicConst(t.Kind) || token.IsCast(t.Kind) {
		return strings.EqualFold(el.tok.Text, t.Text)
	}
	return el.tok.Text == t.Text
}

func (r *Refactor) bind(el patElem, t token.Token, binds map[string]string) {
	if el.meta && binds != nil {
		binds[el.tok.Text] = t.Text
	}
}

func appendComments(dst []string, toks []token.Token) []string {
	for _, t := range toks {
		if t.Kind == token.Comment || t.Kind == token.DocComment {
			dst = append(dst, t.Text)
		}
	}
	return dst
}

// replacement renders the to-pattern with metavariables and skipped regions
// filled in. Whitespace inside a to-pattern line only survives where the
// neighbouring tokens would otherwise fuse; whitespace spanning lines is kept.
// Comments from the replaced region are emitted ahead of the new code, line
// comments on their own line.
func (r *Refactor) replacement(m matchResult) string {
	var b strings.Builder
	comments := m.comments
	if r.skips == 0 {
		comments = append(comments, m.wildComments...)
	}
	for _, c := range comments {
		b.WriteString(c)
		if strings.HasPrefix(c, "//") || strings.HasPrefix(c, "#") {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	lead := b.Len()
	pendingGap := ""
	skip := 0
	for _, t := range r.to {
		if t.Kind == token.Whitespace {
			pendingGap += t.Text
			continue
		}
		text := t.Text
		switch {
		case isSkipMarker(t) && skip < len(m.skipped):
			text = m.skipped[skip]
			skip++
		case t.Kind == token.Variable:
			if bound, ok := m.binds[t.Text]; ok {
				text = bound
			}
		}
		if pendingGap != "" {
			b.WriteString(gap(pendingGap, b.String()[lead:], text))
			pendingGap = ""
		}
		b.WriteString(text)
	}
	if strings.Contains(pendingGap, "\n") {
		b.WriteString(pendingGap)
	}
	return b.String()
}

func gap(ws, left, right string) string {
	switch {
	case strings.Contains(ws, "\n"):
		return ws
	case left == "" || right == "":
		return ""
	case fuses(left[len(left)-1], right[0]):
		return " "
	}
	return ""
}

// fuses reports whether two bytes would lex as one token when adjacent.
func fuses(a, b byte) bool {
	word := func(c byte) bool {
		return c == '_' || c == '$' || c == '\\' || c >= 0x80 ||
			(c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	}
	const ops = "+-*/%.=<>!&|^?:"
	if word(a) && word(b) {
		return true
	}
	return strings.IndexByte(ops, a) >= 0 && strings.IndexByte(ops, b) >= 0
}

// parseRefactorVariant splits "from => to". The separator is the first "=>"
// surrounded by whitespace, or the first "=>" when none is.
func parseRefactorVariant(v string) (from, to string, err error) {
	if i := strings.Index(v, " => "); i >= 0 {
		return strings.TrimSpace(v[:i]), strings.TrimSpace(v[i+4:]), nil
	}
	if from, to, ok := strings.Cut(v, "=>"); ok {
		return strings.TrimSpace(from), strings.TrimSpace(to), nil
	}
	return "", "", fmt.Errorf("%w: want \"from => to\", got %q", ErrBadPattern, v)
}
