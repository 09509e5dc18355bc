package lexer

import "phpfmt/internal/token"

// scanNumber reads integer (dec, hex, octal, binary) and float literals.
// Underscore separators are accepted between digits.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		switch toLowerASCII(lx.cursor.PeekAt(1)) {
		case 'x':
			if isHex(lx.cursor.PeekAt(2)) {
				lx.cursor.Advance(2)
				lx.eatDigits(isHex)
				return lx.emit(token.IntNumber, start)
			}
		case 'b':
			if b := lx.cursor.PeekAt(2); b == '0' || b == '1' {
				lx.cursor.Advance(2)
				lx.eatDigits(func(b byte) bool { return b == '0' || b == '1' })
				return lx.emit(token.IntNumber, start)
			}
		case 'o':
			if b := lx.cursor.PeekAt(2); b >= '0' && b <= '7' {
				lx.cursor.Advance(2)
				lx.eatDigits(func(b byte) bool { return b >= '0' && b <= '7' })
				return lx.emit(token.IntNumber, start)
			}
		}
	}

	kind := token.IntNumber
	lx.eatDigits(isDec)
	if lx.cursor.Peek() == '.' && (isDec(lx.cursor.PeekAt(1)) || !isIdentStartByte(lx.cursor.PeekAt(1)) && lx.cursor.PeekAt(1) != '.') {
		// "1." и "1.5" это float, "1..2" нет
		kind = token.FloatNumber
		lx.cursor.Bump()
		lx.eatDigits(isDec)
	}
	if toLowerASCII(lx.cursor.Peek()) == 'e' {
		off := uint32(1)
		if s := lx.cursor.PeekAt(1); s == '+' || s == '-' {
			off = 2
		}
		if isDec(lx.cursor.PeekAt(off)) {
			kind = token.FloatNumber
			lx.cursor.Advance(off)
			lx.eatDigits(isDec)
		}
	}
	return lx.emit(kind, start)
}

func (lx *Lexer) eatDigits(ok func(byte) bool) {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if ok(b) {
			lx.cursor.Bump()
			continue
		}
		if b == '_' && ok(lx.cursor.PeekAt(1)) {
			lx.cursor.Bump()
			continue
		}
		break
	}
}
