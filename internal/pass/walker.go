package pass

import (
	"strings"

	"phpfmt/internal/lexer"
	"phpfmt/internal/token"
)

type direction uint8

const (
	dirLeft direction = iota
	dirRight
)

type cacheKey struct {
	dir    direction
	ignore token.Set
}

// Walker is the run state of one Format call: the token slice, the cursor, the
// output buffer and the lookback memo. It is never reused across calls.
type Walker struct {
	Writer

	tokens []token.Token
	found  token.Set
	ptr    int

	// UseCache memoises neighbour lookups per cursor position.
	UseCache bool
	cache    map[cacheKey]int

	memo       [2]token.Token // last two non-whitespace tokens
	memoUseful [2]token.Token // last two non-futile tokens
	memoPos    int
}

// NewWalker lexes src. The error wraps lexer.ErrLex.
func NewWalker(src string) (*Walker, error) {
	tokens, found, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	w := FromTokens(tokens)
	w.found = found
	w.Writer = newWriter(len(src))
	return w, nil
}

// FromTokens wraps an already lexed stream.
func FromTokens(tokens []token.Token) *Walker {
	w := &Walker{
		Writer:  newWriter(64),
		tokens:  tokens,
		ptr:     -1,
		memoPos: -1,
	}
	for _, t := range tokens {
		w.found.Add(t.Kind)
	}
	return w
}

// Tokens exposes the stream. Callers must not keep it past the run.
func (w *Walker) Tokens() []token.Token { return w.tokens }

// Found is the set of kinds present in the stream.
func (w *Walker) Found() token.Set { return w.found }

// Len is the number of tokens.
func (w *Walker) Len() int { return len(w.tokens) }

// InRange reports whether i indexes a token.
func (w *Walker) InRange(i int) bool { return i >= 0 && i < len(w.tokens) }

// Token returns the token at i or the zero token when i is out of range.
func (w *Walker) Token(i int) token.Token {
	if !w.InRange(i) {
		return token.Token{}
	}
	return w.tokens[i]
}

// Ptr is the cursor. It starts at -1, before the first token.
func (w *Walker) Ptr() int { return w.ptr }

// Current is the token under the cursor.
func (w *Walker) Current() token.Token { return w.Token(w.ptr) }

// Seek moves the cursor to i without touching the memo.
func (w *Walker) Seek(i int) {
	switch {
	case i < -1:
		i = -1
	case i > len(w.tokens):
		i = len(w.tokens)
	}
	w.ptr = i
	clear(w.cache)
}

// Next advances the cursor and returns the token under it. ok is false once
// the stream is exhausted, leaving the cursor at Len().
func (w *Walker) Next() (tok token.Token, ok bool) {
	w.Seek(w.ptr + 1)
	if w.ptr >= len(w.tokens) {
		return token.Token{}, false
	}
	w.MemoPtr()
	return w.tokens[w.ptr], true
}

// Prev steps the cursor back so the next call to Next yields the same token again.
func (w *Walker) Prev() {
	w.Seek(w.ptr - 1)
}

// MemoPtr records the current token in the lookback memo. A position is
// recorded at most once, so stepping back and forth over it is harmless.
func (w *Walker) MemoPtr() {
	if !w.InRange(w.ptr) || w.ptr == w.memoPos {
		return
	}
	w.memoPos = w.ptr
	t := w.tokens[w.ptr]
	if t.Kind != token.Whitespace {
		w.memo[0], w.memo[1] = w.memo[1], t
	}
	if !t.IsFutile() {
		w.memoUseful[0], w.memoUseful[1] = w.memoUseful[1], t
	}
}

// LeftMemoIs checks the non-whitespace token seen before the current one.
func (w *Walker) LeftMemoIs(m token.Matcher) bool {
	return w.memo[0].Text != "" && m.Matches(w.memo[0])
}

// LeftMemoUsefulIs checks the non-futile token seen before the current one.
func (w *Walker) LeftMemoUsefulIs(m token.Matcher) bool {
	return w.memoUseful[0].Text != "" && m.Matches(w.memoUseful[0])
}

func resolveIgnore(ignore token.Set) token.Set {
	if ignore.Empty() {
		return token.Blank
	}
	return ignore
}

// LeftIdxFrom returns the first index left of idx whose kind is not ignored,
// or -1 when the scan runs off the start.
func (w *Walker) LeftIdxFrom(idx int, ignore token.Set) int {
	ignore = resolveIgnore(ignore)
	i := min(idx, len(w.tokens)) - 1
	for i >= 0 && ignore.Has(w.tokens[i].Kind) {
		i--
	}
	return max(i, -1)
}

// RightIdxFrom returns the first index right of idx whose kind is not ignored,
// or Len() when the scan runs off the end.
func (w *Walker) RightIdxFrom(idx int, ignore token.Set) int {
	ignore = resolveIgnore(ignore)
	i := max(idx, -1) + 1
	for i < len(w.tokens) && ignore.Has(w.tokens[i].Kind) {
		i++
	}
	return min(i, len(w.tokens))
}

// LeftIsAt reports whether the neighbour left of idx matches m.
func (w *Walker) LeftIsAt(idx int, m token.Matcher, ignore token.Set) bool {
	return w.matchAt(w.LeftIdxFrom(idx, ignore), m)
}

// RightIsAt reports whether the neighbour right of idx matches m.
func (w *Walker) RightIsAt(idx int, m token.Matcher, ignore token.Set) bool {
	return w.matchAt(w.RightIdxFrom(idx, ignore), m)
}

func (w *Walker) matchAt(i int, m token.Matcher) bool {
	return w.InRange(i) && m.Matches(w.tokens[i])
}

func (w *Walker) neighbour(dir direction, ignore token.Set) int {
	ignore = resolveIgnore(ignore)
	if !w.UseCache {
		return w.scan(dir, ignore)
	}
	key := cacheKey{dir: dir, ignore: ignore}
	if i, ok := w.cache[key]; ok {
		return i
	}
	if w.cache == nil {
		w.cache = make(map[cacheKey]int)
	}
	i := w.scan(dir, ignore)
	w.cache[key] = i
	return i
}

func (w *Walker) scan(dir direction, ignore token.Set) int {
	if dir == dirLeft {
		return w.LeftIdxFrom(w.ptr, ignore)
	}
	return w.RightIdxFrom(w.ptr, ignore)
}

// LeftIdx is LeftIdxFrom(Ptr()).
func (w *Walker) LeftIdx(ignore token.Set) int { return w.neighbour(dirLeft, ignore) }

// RightIdx is RightIdxFrom(Ptr()).
func (w *Walker) RightIdx(ignore token.Set) int { return w.neighbour(dirRight, ignore) }

func (w *Walker) LeftToken(ignore token.Set) token.Token  { return w.Token(w.LeftIdx(ignore)) }
func (w *Walker) RightToken(ignore token.Set) token.Token { return w.Token(w.RightIdx(ignore)) }

func (w *Walker) LeftIs(m token.Matcher, ignore token.Set) bool {
	return w.matchAt(w.LeftIdx(ignore), m)
}

func (w *Walker) RightIs(m token.Matcher, ignore token.Set) bool {
	return w.matchAt(w.RightIdx(ignore), m)
}

func (w *Walker) LeftUsefulIdx() int                 { return w.LeftIdx(token.Futile) }
func (w *Walker) RightUsefulIdx() int                { return w.RightIdx(token.Futile) }
func (w *Walker) LeftUsefulToken() token.Token       { return w.LeftToken(token.Futile) }
func (w *Walker) RightUsefulToken() token.Token      { return w.RightToken(token.Futile) }
func (w *Walker) LeftUsefulIs(m token.Matcher) bool  { return w.LeftIs(m, token.Futile) }
func (w *Walker) RightUsefulIs(m token.Matcher) bool { return w.RightIs(m, token.Futile) }

// Siblings returns the non-whitespace neighbours of idx.
func (w *Walker) Siblings(idx int) (left, right int) {
	return w.LeftIdxFrom(idx, token.Blank), w.RightIdxFrom(idx, token.Blank)
}

// Inspect returns the token delta positions away from the cursor.
func (w *Walker) Inspect(delta int) (token.Token, bool) {
	i := w.ptr + delta
	if !w.InRange(i) {
		return token.Token{}, false
	}
	return w.tokens[i], true
}

// HasLnAfter reports whether the next token is whitespace holding a newline.
func (w *Walker) HasLnAfter() bool {
	t, ok := w.Inspect(1)
	return ok && t.Kind == token.Whitespace && w.HasLn(t.Text)
}

// HasLnBefore reports whether the previous token is whitespace holding a newline.
func (w *Walker) HasLnBefore() bool {
	t, ok := w.Inspect(-1)
	return ok && t.Kind == token.Whitespace && w.HasLn(t.Text)
}

func (w *Walker) HasLnLeftToken() bool  { return w.HasLn(w.LeftToken(token.Blank).Text) }
func (w *Walker) HasLnRightToken() bool { return w.HasLn(w.RightToken(token.Blank).Text) }

var shortArrayBlockers = token.NewSet(
	token.RBracket, token.RBrace, token.RParen, token.Quote,
	token.ConstString, token.Ident, token.Variable,
)

// IsShortArray reports whether a `[` under the cursor opens an array literal
// rather than an index expression.
func (w *Walker) IsShortArray() bool {
	return !w.LeftIs(shortArrayBlockers, token.Blank)
}

// SubstrCountTrailing counts how many needle characters end haystack once
// trailing blanks are ignored.
func SubstrCountTrailing(haystack, needle string) int {
	return len(strings.TrimRight(haystack, " \t")) - len(strings.TrimRight(haystack, " \t"+needle))
}
