package lexer

import (
	"strings"

	"phpfmt/internal/token"
)

// scanVariable reads "$name"; a lone "$" (variable variables) is Dollar.
func (lx *Lexer) scanVariable() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	if !lx.cursor.EOF() && isIdentStartByte(lx.cursor.Peek()) {
		lx.eatIdent()
		return lx.emit(token.Variable, start)
	}
	return lx.emit(token.Dollar, start)
}

// scanWord reads a name and classifies it. Reserved words used as member
// names (after ->, ?->, :: or function) stay identifiers.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	lx.eatIdent()
	tok := lx.emit(token.Ident, start)
	switch lx.prevSig {
	case token.ObjectOperator, token.NullsafeObjectOperator, token.DoubleColon, token.KwFunction:
		return tok
	}
	if kind, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = kind
	}
	return tok
}

var castKinds = map[string]token.Kind{
	"int":     token.IntCast,
	"integer": token.IntCast,
	"bool":    token.BoolCast,
	"boolean": token.BoolCast,
	"float":   token.DoubleCast,
	"double":  token.DoubleCast,
	"real":    token.DoubleCast,
	"string":  token.StringCast,
	"binary":  token.StringCast,
	"array":   token.ArrayCast,
	"object":  token.ObjectCast,
	"unset":   token.UnsetCast,
}

// scanCast recognises "(" [ \t]* type [ \t]* ")".
func (lx *Lexer) scanCast() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.eatBlanks()
	nameStart := lx.cursor.Off
	if lx.eatIdent() == 0 {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	name := strings.ToLower(lx.src[nameStart:lx.cursor.Off])
	lx.eatBlanks()
	kind, ok := castKinds[name]
	if !ok || !lx.cursor.Eat(')') {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	return lx.emit(kind, start), true
}

func (lx *Lexer) eatBlanks() {
	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
	}
}
