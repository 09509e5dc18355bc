package lexer

import (
	"phpfmt/internal/diag"
	"phpfmt/internal/source"
	"phpfmt/internal/token"
)

func (lx *Lexer) tokenAt(k token.Kind, from, to uint32) token.Token {
	sp := source.Span{File: lx.file.ID, Start: from, End: to}
	return token.Token{Kind: k, Text: lx.src[from:to], Span: sp}
}

func (lx *Lexer) scanSingleQuoted() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		switch lx.cursor.Bump() {
		case '\\':
			lx.cursor.Bump()
		case '\'':
			return lx.emit(token.ConstString, start)
		}
	}
	tok := lx.emit(token.ConstString, start)
	lx.report(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

// scanDoubleQuoted returns the whole literal as ConstString when it has no
// interpolation; otherwise it emits the opening Quote and switches to
// string mode.
func (lx *Lexer) scanDoubleQuoted() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == '\\':
			lx.cursor.Advance(2)
			continue
		case ch == '"':
			lx.cursor.Bump()
			return lx.emit(token.ConstString, start)
		case lx.interpolationAhead():
			lx.cursor.Reset(start)
			lx.cursor.Bump()
			lx.push(frame{mode: modeQuote})
			return lx.emit(token.Quote, start)
		}
		lx.cursor.Bump()
	}
	tok := lx.emit(token.ConstString, start)
	lx.report(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

func (lx *Lexer) interpolationAhead() bool {
	ch, next := lx.cursor.Peek(), lx.cursor.PeekAt(1)
	return ch == '$' && (isIdentStartByte(next) || next == '{') || ch == '{' && next == '$'
}

// scanHeredocStart reads "<<<" [ \t]* (ID | "ID" | 'ID') newline.
func (lx *Lexer) scanHeredocStart() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Advance(3)
	lx.eatBlanks()

	quote := byte(0)
	if q := lx.cursor.Peek(); q == '"' || q == '\'' {
		quote = q
		lx.cursor.Bump()
	}
	labelStart := lx.cursor.Off
	if lx.cursor.EOF() || !isIdentStartByte(lx.cursor.Peek()) || isDec(lx.cursor.Peek()) {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	lx.eatIdent()
	label := lx.src[labelStart:lx.cursor.Off]
	if quote != 0 && !lx.cursor.Eat(quote) {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	if !lx.try2('\r', '\n') && !lx.cursor.Eat('\n') {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	tok := lx.emit(token.StartHeredoc, start)

	if quote == '\'' {
		lx.scanNowdocBody(label)
		return tok, true
	}
	lx.push(frame{mode: modeHeredoc, label: label})
	return tok, true
}

// heredocEndLen reports the length of "[ \t]*LABEL" at the cursor, if the
// closing label starts here.
func (lx *Lexer) heredocEndLen(label string) (uint32, bool) {
	m := lx.cursor.Mark()
	defer lx.cursor.Reset(m)
	lx.eatBlanks()
	if !lx.cursor.HasPrefix(label) {
		return 0, false
	}
	lx.cursor.Advance(uint32(len(label)))
	if !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		return 0, false
	}
	return lx.cursor.Off - uint32(m), true
}

func (lx *Lexer) atLineStart() bool {
	off := lx.cursor.Off
	return off > 0 && lx.file.Content[off-1] == '\n'
}

// scanNowdocBody queues the raw body and the closing label.
func (lx *Lexer) scanNowdocBody(label string) {
	bodyStart := lx.cursor.Off
	for !lx.cursor.EOF() {
		if lx.atLineStart() {
			if n, ok := lx.heredocEndLen(label); ok {
				if lx.cursor.Off > bodyStart {
					lx.queue = append(lx.queue, lx.tokenAt(token.EncapsedText, bodyStart, lx.cursor.Off))
				}
				endStart := lx.cursor.Off
				lx.cursor.Advance(n)
				lx.queue = append(lx.queue, lx.tokenAt(token.EndHeredoc, endStart, lx.cursor.Off))
				return
			}
		}
		lx.cursor.Bump()
	}
	if lx.cursor.Off > bodyStart {
		tok := lx.tokenAt(token.EncapsedText, bodyStart, lx.cursor.Off)
		lx.queue = append(lx.queue, tok)
		lx.report(diag.LexUnterminatedHeredoc, tok.Span, "unterminated nowdoc")
		return
	}
	lx.report(diag.LexUnterminatedHeredoc, source.Span{File: lx.file.ID, Start: bodyStart, End: bodyStart}, "unterminated nowdoc")
}

// scanEncapsed lexes inside "...", `...` and heredoc bodies.
func (lx *Lexer) scanEncapsed() token.Token {
	fr := lx.top()
	start := lx.cursor.Mark()

	if tok, ok := lx.scanSimpleInterpolation(fr); ok {
		return tok
	}

	switch {
	case fr.mode == modeQuote && lx.cursor.Peek() == '"':
		lx.cursor.Bump()
		lx.pop()
		return lx.emit(token.Quote, start)
	case fr.mode == modeBacktick && lx.cursor.Peek() == '`':
		lx.cursor.Bump()
		lx.pop()
		return lx.emit(token.Backtick, start)
	case fr.mode == modeHeredoc && lx.atLineStart():
		if n, ok := lx.heredocEndLen(fr.label); ok {
			lx.cursor.Advance(n)
			lx.pop()
			return lx.emit(token.EndHeredoc, start)
		}
	}

	switch ch, next := lx.cursor.Peek(), lx.cursor.PeekAt(1); {
	case ch == '$' && isIdentStartByte(next):
		lx.cursor.Bump()
		lx.eatIdent()
		fr.sub = subAfterVar
		return lx.emit(token.Variable, start)
	case ch == '$' && next == '{':
		lx.cursor.Advance(2)
		lx.push(frame{mode: modeInterp, depth: 1})
		return lx.emit(token.DollarOpenCurlyBraces, start)
	case ch == '{' && next == '$':
		lx.cursor.Bump()
		lx.push(frame{mode: modeInterp, depth: 1})
		return lx.emit(token.CurlyOpen, start)
	}

	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == '\\':
			lx.cursor.Bump()
			if fr.mode != modeHeredoc || lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		case fr.mode == modeQuote && ch == '"',
			fr.mode == modeBacktick && ch == '`',
			lx.interpolationAhead():
			return lx.emit(token.EncapsedText, start)
		case ch == '\n' && fr.mode == modeHeredoc:
			lx.cursor.Bump()
			if _, ok := lx.heredocEndLen(fr.label); ok {
				return lx.emit(token.EncapsedText, start)
			}
			continue
		}
		lx.cursor.Bump()
	}

	tok := lx.emit(token.EncapsedText, start)
	lx.report(diag.LexUnterminatedString, tok.Span, "unterminated string")
	lx.atEOF = true
	return tok
}

// scanSimpleInterpolation continues "$a->b" and "$a[key]" forms.
func (lx *Lexer) scanSimpleInterpolation(fr *frame) (token.Token, bool) {
	start := lx.cursor.Mark()
	switch fr.sub {
	case subAfterVar:
		fr.sub = subNone
		if lx.cursor.HasPrefix("->") && isIdentStartByte(lx.cursor.PeekAt(2)) {
			lx.cursor.Advance(2)
			fr.sub = subProp
			return lx.emit(token.ObjectOperator, start), true
		}
		if lx.cursor.Peek() == '[' {
			lx.cursor.Bump()
			fr.sub = subIndex
			return lx.emit(token.LBracket, start), true
		}
	case subProp:
		fr.sub = subNone
		lx.eatIdent()
		return lx.emit(token.Ident, start), true
	case subIndex:
		ch := lx.cursor.Peek()
		switch {
		case ch == '-' && isDec(lx.cursor.PeekAt(1)):
			lx.cursor.Bump()
			return lx.emit(token.Minus, start), true
		case ch == '$' && isIdentStartByte(lx.cursor.PeekAt(1)):
			lx.cursor.Bump()
			lx.eatIdent()
			fr.sub = subIndexEnd
			return lx.emit(token.Variable, start), true
		case isDec(ch):
			lx.eatIdent()
			fr.sub = subIndexEnd
			return lx.emit(token.IntNumber, start), true
		case isIdentStartByte(ch):
			lx.eatIdent()
			fr.sub = subIndexEnd
			return lx.emit(token.Ident, start), true
		}
		fr.sub = subNone
	case subIndexEnd:
		fr.sub = subNone
		if lx.cursor.Eat(']') {
			return lx.emit(token.RBracket, start), true
		}
	}
	return token.Token{}, false
}
