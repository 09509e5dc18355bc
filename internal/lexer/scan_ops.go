package lexer

import (
	"phpfmt/internal/diag"
	"phpfmt/internal/token"
)

type opEntry struct {
	text string
	kind token.Kind
}

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
var ops3 = []opEntry{
	{"===", token.IsIdentical}, {"!==", token.IsNotIdentical}, {"<=>", token.Spaceship},
	{"**=", token.PowAssign}, {"...", token.Ellipsis}, {"<<=", token.ShlAssign},
	{">>=", token.ShrAssign}, {"??=", token.CoalesceAssign}, {"?->", token.NullsafeObjectOperator},
}

var ops2 = []opEntry{
	{"->", token.ObjectOperator}, {"=>", token.DoubleArrow}, {"::", token.DoubleColon},
	{"==", token.IsEqual}, {"!=", token.IsNotEqual}, {"<>", token.IsNotEqual},
	{"<=", token.LtEq}, {">=", token.GtEq}, {"&&", token.BoolAnd}, {"||", token.BoolOr},
	{"++", token.Inc}, {"--", token.Dec}, {"+=", token.PlusAssign}, {"-=", token.MinusAssign},
	{"*=", token.MulAssign}, {"/=", token.DivAssign}, {".=", token.ConcatAssign},
	{"%=", token.ModAssign}, {"&=", token.AndAssign}, {"|=", token.OrAssign},
	{"^=", token.XorAssign}, {"<<", token.Shl}, {">>", token.Shr}, {"??", token.Coalesce},
	{"**", token.Pow},
}

var ops1 = [256]token.Kind{
	'{': token.LBrace, '}': token.RBrace, '(': token.LParen, ')': token.RParen,
	'[': token.LBracket, ']': token.RBracket, ';': token.Semicolon, ',': token.Comma,
	':': token.Colon, '?': token.Question, '@': token.At, '~': token.Tilde, '!': token.Bang,
	'.': token.Dot, '+': token.Plus, '-': token.Minus, '*': token.Star, '/': token.Slash,
	'%': token.Percent, '=': token.Assign, '<': token.Lt, '>': token.Gt, '&': token.Amp,
	'|': token.Pipe, '^': token.Caret, '\\': token.NsSeparator,
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	for _, op := range ops3 {
		if lx.cursor.HasPrefix(op.text) {
			lx.cursor.Advance(3)
			return lx.emit(op.kind, start)
		}
	}
	for _, op := range ops2 {
		if lx.cursor.HasPrefix(op.text) {
			lx.cursor.Advance(2)
			return lx.emit(op.kind, start)
		}
	}

	ch := lx.cursor.Bump()
	kind := ops1[ch]
	if kind == token.Invalid {
		// неизвестный символ
		tok := lx.emit(token.Invalid, start)
		lx.report(diag.LexUnknownChar, tok.Span, "unknown character")
		return tok
	}

	if fr := lx.top(); fr.mode == modeInterp {
		switch kind {
		case token.LBrace:
			fr.depth++
		case token.RBrace:
			fr.depth--
			if fr.depth == 0 {
				lx.pop()
			}
		}
	}
	return lx.emit(kind, start)
}
