package pass

import (
	"slices"

	"phpfmt/internal/token"
)

// RefWalkBlock starts on an opener at i and returns the index of its matching
// closer, or Len() when the stream ends first.
func (w *Walker) RefWalkBlock(i int, open, close token.Kind) int {
	count := 0
	for i = max(i, 0); i < len(w.tokens); i++ {
		switch w.tokens[i].Kind {
		case open:
			count++
		case close:
			count--
		}
		if count == 0 {
			return i
		}
	}
	return len(w.tokens)
}

// RefWalkBlockReverse starts on a closer at i and returns the index of its
// opener, or -1.
func (w *Walker) RefWalkBlockReverse(i int, open, close token.Kind) int {
	count := 0
	for i = min(i, len(w.tokens)-1); i >= 0; i-- {
		switch w.tokens[i].Kind {
		case open:
			count--
		case close:
			count++
		}
		if count == 0 {
			return i
		}
	}
	return -1
}

// RefWalkCurlyBlock is RefWalkBlock for curly braces. `{`, `{$` and `${` all
// open a level and RBrace closes any of them.
func (w *Walker) RefWalkCurlyBlock(i int) int {
	count := 0
	for i = max(i, 0); i < len(w.tokens); i++ {
		switch k := w.tokens[i].Kind; {
		case token.CurlyOpeners.Has(k):
			count++
		case k == token.RBrace:
			count--
		}
		if count == 0 {
			return i
		}
	}
	return len(w.tokens)
}

// RefWalkCurlyBlockReverse walks from a RBrace at i back to its opener.
func (w *Walker) RefWalkCurlyBlockReverse(i int) int {
	count := 0
	for i = min(i, len(w.tokens)-1); i >= 0; i-- {
		switch k := w.tokens[i].Kind; {
		case token.CurlyOpeners.Has(k):
			count--
		case k == token.RBrace:
			count++
		}
		if count == 0 {
			return i
		}
	}
	return -1
}

// RefWalkUsefulUntil moves right over futile tokens and everything else until
// a token matching m.
func (w *Walker) RefWalkUsefulUntil(i int, m token.Matcher) int {
	for {
		i = w.RightIdxFrom(i, token.Futile)
		if i >= len(w.tokens) || m.Matches(w.tokens[i]) {
			return i
		}
	}
}

// RefWalkUsefulUntilReverse is RefWalkUsefulUntil towards the start.
func (w *Walker) RefWalkUsefulUntilReverse(i int, m token.Matcher) int {
	for {
		i = w.LeftIdxFrom(i, token.Futile)
		if i < 0 || m.Matches(w.tokens[i]) {
			return i
		}
	}
}

// RefWalkBackUsefulUntil moves left past useful tokens matching m and stops
// on the first one that does not.
func (w *Walker) RefWalkBackUsefulUntil(i int, m token.Matcher) int {
	for {
		i = w.LeftIdxFrom(i, token.Futile)
		if i < 0 || !m.Matches(w.tokens[i]) {
			return i
		}
	}
}

// RefSkipIfTokenIsAny returns the first index after i not matching m.
func (w *Walker) RefSkipIfTokenIsAny(i int, m token.Matcher) int {
	i++
	for i < len(w.tokens) && m.Matches(w.tokens[i]) {
		i++
	}
	return i
}

// RefInsert splices toks in before i and returns the index after them.
func (w *Walker) RefInsert(i int, toks ...token.Token) int {
	i = max(0, min(i, len(w.tokens)))
	w.tokens = slices.Insert(w.tokens, i, toks...)
	for _, t := range toks {
		w.found.Add(t.Kind)
	}
	clear(w.cache)
	return i + len(toks)
}

var altEnds = map[token.Kind]token.Kind{
	token.KwIf:      token.KwEndIf,
	token.KwWhile:   token.KwEndWhile,
	token.KwFor:     token.KwEndFor,
	token.KwForeach: token.KwEndForeach,
	token.KwSwitch:  token.KwEndSwitch,
	token.KwDeclare: token.KwEndDeclare,
}

// RefSkipBlocks skips the statement starting at i and returns the index of
// its last token. Control structures are consumed whole: header, body and
// every elseif/else or catch/finally continuation. A bare statement ends at
// `;` or `?>`; nested (, [ and { regions are skipped as a unit.
func (w *Walker) RefSkipBlocks(i int) int {
	n := len(w.tokens)
	for i = max(i, 0); i < n; i++ {
		switch k := w.tokens[i].Kind; {
		case k == token.CloseTag, k == token.Semicolon:
			return i

		case k == token.KwDo:
			i = w.skipBody(token.KwDo, i)
			i = w.RefWalkUsefulUntil(i, token.LParen)
			i = w.RefWalkBlock(i, token.LParen, token.RParen)

		case k == token.KwWhile:
			i = w.skipHeader(i)
			if w.RightIsAt(i, token.LBrace, token.Futile) {
				return w.RefWalkCurlyBlock(w.RightIdxFrom(i, token.Futile))
			}
			if w.RightIsAt(i, token.Colon, token.Futile) {
				return w.skipBody(token.KwWhile, i)
			}

		case k == token.KwFor, k == token.KwForeach, k == token.KwSwitch, k == token.KwDeclare:
			return w.skipBody(k, w.skipHeader(i))

		case k == token.KwTry:
			return w.skipTry(i)

		case k == token.KwIf:
			return w.skipIf(i)

		case token.CurlyOpeners.Has(k):
			i = w.RefWalkCurlyBlock(i)

		case k == token.LParen:
			i = w.RefWalkBlock(i, token.LParen, token.RParen)

		case k == token.LBracket:
			i = w.RefWalkBlock(i, token.LBracket, token.RBracket)
		}
	}
	return n - 1
}

// skipHeader walks from a keyword at i over its parenthesised header.
func (w *Walker) skipHeader(i int) int {
	i = w.RefWalkUsefulUntil(i, token.LParen)
	return w.RefWalkBlock(i, token.LParen, token.RParen)
}

// skipBody skips the body that follows the header ending at i: a curly
// block, an alternate `: ... endX;` block, an empty `;` or one statement.
func (w *Walker) skipBody(kw token.Kind, i int) int {
	j := w.RightIdxFrom(i, token.Futile)
	if j >= len(w.tokens) {
		return len(w.tokens)
	}
	switch w.tokens[j].Kind {
	case token.LBrace:
		return w.RefWalkCurlyBlock(j)
	case token.Colon:
		if end, ok := altEnds[kw]; ok {
			return w.skipAltBody(j, kw, end)
		}
		return j
	case token.Semicolon:
		return j
	default:
		return w.RefSkipBlocks(j)
	}
}

// skipAltBody walks from the `:` at i to the statement terminator after the
// matching end keyword, counting nested alternate blocks of the same keyword.
func (w *Walker) skipAltBody(i int, kw, end token.Kind) int {
	depth := 1
	for i++; i < len(w.tokens); i++ {
		switch w.tokens[i].Kind {
		case kw:
			if w.RightIsAt(w.skipHeader(i), token.Colon, token.Futile) {
				depth++
			}
		case end:
			depth--
			if depth == 0 {
				if j := w.RightIdxFrom(i, token.Futile); w.matchAt(j, token.Semicolon) {
					return j
				}
				return i
			}
		}
	}
	return len(w.tokens)
}

func (w *Walker) skipTry(i int) int {
	i = w.RefWalkUsefulUntil(i, token.LBrace)
	i = w.RefWalkCurlyBlock(i)
	for w.RightIsAt(i, token.KwCatch, token.Futile) {
		i = w.skipHeader(i)
		i = w.RefWalkUsefulUntil(i, token.LBrace)
		i = w.RefWalkCurlyBlock(i)
	}
	if w.RightIsAt(i, token.KwFinally, token.Futile) {
		i = w.RefWalkUsefulUntil(i, token.KwFinally)
		i = w.RefWalkUsefulUntil(i, token.LBrace)
		i = w.RefWalkCurlyBlock(i)
	}
	return i
}

func (w *Walker) skipIf(i int) int {
	i = w.skipHeader(i)
	if w.RightIsAt(i, token.Colon, token.Futile) {
		return w.skipBody(token.KwIf, i)
	}
	i = w.skipBody(token.KwIf, i)
	for {
		switch {
		case w.RightIsAt(i, token.KwElseIf, token.Futile):
			i = w.skipHeader(i)
			i = w.skipBody(token.KwElseIf, i)
		case w.RightIsAt(i, token.KwElse, token.Futile):
			return w.skipBody(token.KwElse, w.RightIdxFrom(i, token.Futile))
		default:
			return i
		}
	}
}
