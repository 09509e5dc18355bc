package token

import (
	"phpfmt/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Text string
	Span source.Span
}

// New builds a token without position, as used for synthesized output.
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// Matcher is the token equality used by every scan primitive. Kind matches on
// kind only, Set on membership, Token on exact kind and text.
type Matcher interface {
	Matches(t Token) bool
}

// Matches reports whether t has kind k.
func (k Kind) Matches(t Token) bool { return t.Kind == k }

// Matches reports whether t has the same kind and text.
func (t Token) Matches(other Token) bool {
	return t.Kind == other.Kind && t.Text == other.Text
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return IsKeyword(t.Kind) }

// IsComment reports whether the token is a comment or doc comment.
func (t Token) IsComment() bool { return t.Kind == Comment || t.Kind == DocComment }

// IsFutile reports whether the token carries no syntax (whitespace or comments).
func (t Token) IsFutile() bool { return Futile.Has(t.Kind) }

// IsKeyword reports whether k is a reserved word.
func IsKeyword(k Kind) bool { return k >= KwAbstract && k <= KwYield }

// IsCast reports whether k is a type cast.
func IsCast(k Kind) bool { return k >= IntCast && k <= UnsetCast }

// IsMagicConst reports whether k is one of the __X__ constants.
func IsMagicConst(k Kind) bool { return k >= MagicLine && k <= MagicNamespace }

// IsPunctOrOp reports whether k is punctuation or an operator.
func IsPunctOrOp(k Kind) bool { return k >= LBrace && k <= Ellipsis }

// IsWordLike reports whether two adjacent tokens of kind k need a blank
// between them to lex back the same way.
func IsWordLike(k Kind) bool {
	switch k {
	case Ident, Variable, IntNumber, FloatNumber:
		return true
	}
	return IsKeyword(k) || IsMagicConst(k)
}
