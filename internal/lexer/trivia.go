package lexer

import (
	"phpfmt/internal/diag"
	"phpfmt/internal/token"
)

func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, start)
}

// scanLineComment reads "//" or "#" comments up to, but not including, the
// newline. A "?>" also ends the comment, as in PHP.
func (lx *Lexer) scanLineComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '\n' || ch == '\r' {
			break
		}
		if ch == '?' && lx.cursor.PeekAt(1) == '>' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.Comment, start)
}

func (lx *Lexer) scanBlockComment() token.Token {
	start := lx.cursor.Mark()
	kind := token.Comment
	// "/**" + пробел: doc-комментарий, "/**/": обычный.
	if lx.cursor.HasPrefix("/**") && isSpace(lx.cursor.PeekAt(3)) {
		kind = token.DocComment
	}
	lx.cursor.Advance(2)
	for !lx.cursor.EOF() {
		if lx.try2('*', '/') {
			return lx.emit(kind, start)
		}
		lx.cursor.Bump()
	}
	tok := lx.emit(kind, start)
	lx.report(diag.LexUnterminatedBlockComment, tok.Span, "unterminated comment")
	return tok
}

// scanHTML reads inline text up to the next open tag, or the open tag itself.
func (lx *Lexer) scanHTML() token.Token {
	if tok, ok := lx.scanOpenTag(); ok {
		return tok
	}
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '<' && lx.cursor.PeekAt(1) == '?' && lx.isOpenTagAhead() {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.InlineHTML, start)
}

func (lx *Lexer) isOpenTagAhead() bool {
	m := lx.cursor.Mark()
	_, ok := lx.openTagLen()
	lx.cursor.Reset(m)
	return ok
}

// openTagLen recognises "<?php" + one whitespace, "<?=" and "<?" + whitespace.
func (lx *Lexer) openTagLen() (token.Kind, bool) {
	switch {
	case lx.cursor.HasPrefixFold("<?php"):
		next := lx.cursor.PeekAt(5)
		if next != 0 && !isSpace(next) {
			return token.Invalid, false
		}
		lx.cursor.Advance(5)
		lx.eatOneNewlineOrSpace()
		return token.OpenTag, true
	case lx.cursor.HasPrefix("<?="):
		lx.cursor.Advance(3)
		return token.OpenTagWithEcho, true
	case lx.cursor.HasPrefix("<?") && (isSpace(lx.cursor.PeekAt(2)) || lx.cursor.Off+2 == lx.cursor.Limit):
		lx.cursor.Advance(2)
		lx.eatOneNewlineOrSpace()
		return token.OpenTag, true
	}
	return token.Invalid, false
}

func (lx *Lexer) eatOneNewlineOrSpace() {
	switch {
	case lx.try2('\r', '\n'):
	case lx.cursor.Eat('\n'), lx.cursor.Eat(' '), lx.cursor.Eat('\t'), lx.cursor.Eat('\r'):
	}
}

func (lx *Lexer) scanOpenTag() (token.Token, bool) {
	start := lx.cursor.Mark()
	kind, ok := lx.openTagLen()
	if !ok {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	lx.push(frame{mode: modePHP})
	lx.prevSig = kind
	return lx.emit(kind, start), true
}

// scanCloseTag reads "?>" plus a single trailing newline, which PHP swallows.
func (lx *Lexer) scanCloseTag() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Advance(2)
	if !lx.try2('\r', '\n') {
		lx.cursor.Eat('\n')
	}
	lx.pop()
	return lx.emit(token.CloseTag, start)
}
