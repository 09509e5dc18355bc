package lexer

import (
	"fmt"

	"phpfmt/internal/diag"
	"phpfmt/internal/source"
	"phpfmt/internal/token"
)

type mode uint8

const (
	modeHTML     mode = iota // текст вне <?php ... ?>
	modePHP                  // код
	modeQuote                // "... $var ..."
	modeBacktick             // `... $var ...`
	modeHeredoc              // тело heredoc
	modeInterp               // {$ ... } или ${ ... } внутри строки
)

type frame struct {
	mode  mode
	depth int    // brace depth for modeInterp
	label string // heredoc label
	// simple interpolation state after a variable inside a string
	sub strSub
}

type strSub uint8

const (
	subNone     strSub = iota
	subAfterVar        // just emitted $var, may continue with -> or [
	subProp            // emitted ->, expecting property name
	subIndex           // emitted [, expecting key
	subIndexEnd        // emitted key, expecting ]
)

type Lexer struct {
	file   *source.File
	src    string
	cursor Cursor
	opts   Options
	stack  []frame
	queue  []token.Token

	prevSig token.Kind // последний значимый токен в PHP-режиме
	halt    uint8      // __halt_compiler progress: 1 seen keyword, 2 data follows

	errs     int
	firstErr lexError
	atEOF    bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		src:    string(file.Content),
		cursor: NewCursor(file),
		opts:   opts,
		stack:  []frame{{mode: modeHTML}},
	}
}

func (lx *Lexer) top() *frame {
	return &lx.stack[len(lx.stack)-1]
}

func (lx *Lexer) push(f frame) {
	lx.stack = append(lx.stack, f)
}

func (lx *Lexer) pop() {
	if len(lx.stack) > 1 {
		lx.stack = lx.stack[:len(lx.stack)-1]
	}
}

// Errors returns the number of lexical errors seen so far.
func (lx *Lexer) Errors() int {
	return lx.errs
}

// Next returns the next token; ok is false once the input is exhausted.
func (lx *Lexer) Next() (tok token.Token, ok bool) {
	if len(lx.queue) > 0 {
		tok = lx.queue[0]
		lx.queue = lx.queue[1:]
		return tok, true
	}
	if lx.cursor.EOF() {
		lx.finish()
		return token.Token{}, false
	}

	if lx.halt == 2 {
		start := lx.cursor.Mark()
		lx.cursor.Advance(lx.cursor.Limit)
		return lx.emit(token.InlineHTML, start), true
	}

	switch lx.top().mode {
	case modeHTML:
		tok = lx.scanHTML()
	case modeQuote, modeBacktick, modeHeredoc:
		tok = lx.scanEncapsed()
	default:
		tok = lx.scanPHP()
		if !tok.IsFutile() {
			lx.trackSignificant(tok)
		}
	}
	return tok, true
}

// finish reports strings and interpolations left open at end of input.
func (lx *Lexer) finish() {
	if lx.atEOF {
		return
	}
	lx.atEOF = true
	end := lx.cursor.SpanFrom(lx.cursor.Mark())
	switch lx.top().mode {
	case modeQuote, modeBacktick:
		lx.report(diag.LexUnterminatedString, end, "unterminated string")
	case modeHeredoc:
		lx.report(diag.LexUnterminatedHeredoc, end, "unterminated heredoc")
	case modeInterp:
		lx.report(diag.LexUnterminatedInterpolation, end, "unterminated string interpolation")
	}
}

func (lx *Lexer) trackSignificant(tok token.Token) {
	lx.prevSig = tok.Kind
	switch {
	case tok.Kind == token.KwHaltCompiler:
		lx.halt = 1
	case lx.halt == 1 && (tok.Kind == token.Semicolon || tok.Kind == token.CloseTag):
		lx.halt = 2
	}
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Text: lx.src[sp.Start:sp.End], Span: sp}
}

func (lx *Lexer) scanPHP() token.Token {
	ch := lx.cursor.Peek()
	switch {
	case isSpace(ch):
		return lx.scanWhitespace()
	case ch == '?' && lx.cursor.HasPrefix("?>") && lx.top().mode == modePHP:
		return lx.scanCloseTag()
	case ch == '#' && lx.cursor.PeekAt(1) == '[':
		start := lx.cursor.Mark()
		lx.cursor.Advance(2)
		return lx.emit(token.Attribute, start)
	case ch == '#' || lx.cursor.HasPrefix("//"):
		return lx.scanLineComment()
	case lx.cursor.HasPrefix("/*"):
		return lx.scanBlockComment()
	case ch == '$':
		return lx.scanVariable()
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanWord()
	case isDec(ch), ch == '.' && isDec(lx.cursor.PeekAt(1)):
		return lx.scanNumber()
	case ch == '\'':
		return lx.scanSingleQuoted()
	case ch == '"':
		return lx.scanDoubleQuoted()
	case ch == '`':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.push(frame{mode: modeBacktick})
		return lx.emit(token.Backtick, start)
	case ch == '<' && lx.cursor.HasPrefix("<<<"):
		if tok, ok := lx.scanHeredocStart(); ok {
			return tok
		}
		return lx.scanOperatorOrPunct()
	case ch == '(':
		if tok, ok := lx.scanCast(); ok {
			return tok
		}
		return lx.scanOperatorOrPunct()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Tokenize lexes PHP text into tokens whose texts concatenate back to src.
// found holds every kind that occurs. A non-nil error wraps ErrLex.
func Tokenize(src string) (tokens []token.Token, found token.Set, err error) {
	file := &source.File{Path: "<memory>", Content: []byte(src), Flags: source.FileVirtual}
	lx := New(file, Options{})
	tokens, found = lx.All()
	if lx.errs > 0 {
		return tokens, found, fmt.Errorf("%w: %s at offset %d", ErrLex, lx.firstErr.msg, lx.firstErr.span.Start)
	}
	return tokens, found, nil
}

// All drains the lexer.
func (lx *Lexer) All() ([]token.Token, token.Set) {
	var found token.Set
	tokens := make([]token.Token, 0, len(lx.src)/4+1)
	for {
		tok, ok := lx.Next()
		if !ok {
			break
		}
		found.Add(tok.Kind)
		tokens = append(tokens, tok)
	}
	return tokens, found
}
