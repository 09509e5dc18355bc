package pass

import (
	"strings"

	"phpfmt/internal/token"
)

// Placeholder prefixes a fragment handed to a nested formatter by
// ScanAndReplace so that it lexes as PHP code. It is stripped afterwards.
const Placeholder = "<?php /*\x02 PHPOPEN \x03*/"

// WalkAndAccumulateUntil collects text up to and including the first token
// matching m.
func (w *Walker) WalkAndAccumulateUntil(m token.Matcher) string {
	var b strings.Builder
	for {
		t, ok := w.Next()
		if !ok {
			break
		}
		b.WriteString(t.Text)
		if m.Matches(t) {
			break
		}
	}
	return b.String()
}

// WalkAndAccumulateStopAt collects text up to the first token matching m and
// leaves that token to be read by the next call to Next.
func (w *Walker) WalkAndAccumulateStopAt(m token.Matcher) string {
	var b strings.Builder
	for {
		t, ok := w.Next()
		if !ok {
			break
		}
		if m.Matches(t) {
			w.Prev()
			break
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

// WalkAndAccumulateUntilAny is WalkAndAccumulateUntil that also reports the
// terminator. stop is the zero token when the stream ran out.
func (w *Walker) WalkAndAccumulateUntilAny(m token.Matcher) (text string, stop token.Token) {
	var b strings.Builder
	for {
		t, ok := w.Next()
		if !ok {
			return b.String(), token.Token{}
		}
		b.WriteString(t.Text)
		if m.Matches(t) {
			return b.String(), t
		}
	}
}

// WalkAndAccumulateStopAtAny is WalkAndAccumulateStopAt that also reports the
// terminator.
func (w *Walker) WalkAndAccumulateStopAtAny(m token.Matcher) (text string, stop token.Token) {
	var b strings.Builder
	for {
		t, ok := w.Next()
		if !ok {
			return b.String(), token.Token{}
		}
		if m.Matches(t) {
			w.Prev()
			return b.String(), t
		}
		b.WriteString(t.Text)
	}
}

// WalkAndAccumulateCurlyBlock collects text up to and including the RBrace
// closing the block whose opener was just read.
func (w *Walker) WalkAndAccumulateCurlyBlock() string {
	var b strings.Builder
	count := 1
	for {
		t, ok := w.Next()
		if !ok {
			break
		}
		b.WriteString(t.Text)
		switch {
		case token.CurlyOpeners.Has(t.Kind):
			count++
		case t.Kind == token.RBrace:
			count--
		}
		if count == 0 {
			break
		}
	}
	return b.String()
}

// WalkUntil advances without collecting until a token matches m.
func (w *Walker) WalkUntil(m token.Matcher) (token.Token, bool) {
	for {
		t, ok := w.Next()
		if !ok {
			return token.Token{}, false
		}
		if m.Matches(t) {
			return t, true
		}
	}
}

// WalkUsefulRightUntil looks right of idx, over useful tokens only, for one
// matching m. The cursor does not move.
func (w *Walker) WalkUsefulRightUntil(idx int, m token.Matcher) (int, bool) {
	for idx < len(w.tokens) {
		idx = w.RightIdxFrom(idx, token.Futile)
		if w.matchAt(idx, m) {
			return idx, true
		}
	}
	return -1, false
}

// PeekAndCountUntilAny counts useful token kinds from idx up to and including
// the first one matching m, without moving the cursor. last is the kind the
// scan stopped on.
func (w *Walker) PeekAndCountUntilAny(idx int, m token.Matcher) (last token.Kind, counts map[token.Kind]int) {
	counts = make(map[token.Kind]int)
	for i := max(idx, 0); i < len(w.tokens); i++ {
		t := w.tokens[i]
		if t.IsFutile() {
			continue
		}
		counts[t.Kind]++
		last = t.Kind
		if m.Matches(t) {
			break
		}
	}
	return last, counts
}

// PrintUntil copies tokens to the output up to and including one matching m.
func (w *Walker) PrintUntil(m token.Matcher) {
	for {
		t, ok := w.Next()
		if !ok {
			return
		}
		w.Append(t.Text)
		if m.Matches(t) {
			return
		}
	}
}

// PrintUntilAny is PrintUntil that also stops after whitespace holding a
// newline when atNewline is set. It returns the token it stopped on.
func (w *Walker) PrintUntilAny(m token.Matcher, atNewline bool) token.Token {
	for {
		t, ok := w.Next()
		if !ok {
			return token.Token{}
		}
		w.Append(t.Text)
		if atNewline && t.Kind == token.Whitespace && w.HasLn(t.Text) {
			return t
		}
		if m.Matches(t) {
			return t
		}
	}
}

// PrintUntilTheEndOfString copies the rest of an interpolating string.
func (w *Walker) PrintUntilTheEndOfString() {
	w.PrintUntil(token.Quote)
}

// PrintAndStopAt copies tokens until one matches m. The matching token is not
// copied and stays under the cursor. touchedLn reports whether a newline was
// crossed on the way.
func (w *Walker) PrintAndStopAt(m token.Matcher) (stop token.Token, touchedLn, ok bool) {
	for {
		t, more := w.Next()
		if !more {
			return token.Token{}, touchedLn, false
		}
		if t.Kind == token.Whitespace && w.HasLn(t.Text) {
			touchedLn = true
		}
		if m.Matches(t) {
			return t, touchedLn, true
		}
		w.Append(t.Text)
	}
}

// PrintAndStopAtEndOfParamBlock copies a parameter list whose `(` was just
// read, stopping before its `)`. It returns the number of top-level
// parameters, counting commas.
func (w *Walker) PrintAndStopAtEndOfParamBlock() int {
	count, params := 1, 1
	for {
		t, ok := w.Next()
		if !ok {
			return params
		}
		switch {
		case t.Kind == token.Comma && count == 1:
			params++
		case t.Kind == token.LBracket:
			w.Append(t.Text)
			w.PrintBlock(token.LBracket, token.RBracket)
			continue
		case token.CurlyOpeners.Has(t.Kind):
			w.Append(t.Text)
			w.PrintCurlyBlock()
			continue
		case t.Kind == token.LParen:
			count++
		case t.Kind == token.RParen:
			count--
		}
		if count == 0 {
			w.Prev()
			return params
		}
		w.Append(t.Text)
	}
}

// PrintBlock copies tokens through the closer matching an opener that was
// just read.
func (w *Walker) PrintBlock(open, close token.Kind) {
	count := 1
	for {
		t, ok := w.Next()
		if !ok {
			return
		}
		w.Append(t.Text)
		switch t.Kind {
		case open:
			count++
		case close:
			count--
		}
		if count == 0 {
			return
		}
	}
}

// PrintCurlyBlock is PrintBlock for curly braces.
func (w *Walker) PrintCurlyBlock() {
	count := 1
	for {
		t, ok := w.Next()
		if !ok {
			return
		}
		w.Append(t.Text)
		switch {
		case token.CurlyOpeners.Has(t.Kind):
			count++
		case t.Kind == token.RBrace:
			count--
		}
		if count == 0 {
			return
		}
	}
}

// ScanAndReplace consumes the block opened by the token under the cursor and
// returns its text. When any inner token matches lookFor, the inner text is
// first rewritten by fn, which receives it as a PHP fragment.
func (w *Walker) ScanAndReplace(close token.Kind, fn func(string) (string, error), lookFor token.Matcher) (string, error) {
	opener := w.Current()
	return w.scanAndReplace(opener.Text, func(t token.Token) int {
		switch t.Kind {
		case opener.Kind:
			return 1
		case close:
			return -1
		}
		return 0
	}, fn, lookFor)
}

// ScanAndReplaceCurly is ScanAndReplace for a block opened by `{`, `{$` or `${`.
func (w *Walker) ScanAndReplaceCurly(fn func(string) (string, error), lookFor token.Matcher) (string, error) {
	return w.scanAndReplace(w.Current().Text, func(t token.Token) int {
		switch {
		case token.CurlyOpeners.Has(t.Kind):
			return 1
		case t.Kind == token.RBrace:
			return -1
		}
		return 0
	}, fn, lookFor)
}

func (w *Walker) scanAndReplace(opener string, delta func(token.Token) int, fn func(string) (string, error), lookFor token.Matcher) (string, error) {
	var inner strings.Builder
	var closer string
	found := false
	count := 1
	for {
		t, ok := w.Next()
		if !ok {
			break
		}
		if lookFor.Matches(t) {
			found = true
		}
		count += delta(t)
		if count == 0 {
			closer = t.Text
			break
		}
		inner.WriteString(t.Text)
	}
	body := inner.String()
	if found {
		out, err := fn(Placeholder + body)
		if err != nil {
			return "", err
		}
		body = strings.ReplaceAll(out, Placeholder, "")
	}
	return opener + body + closer, nil
}

// Render concatenates token texts. Zero tokens left by removals contribute nothing.
func Render(tokens []token.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}
