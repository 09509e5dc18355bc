// Package token defines the lexical vocabulary of PHP as seen by the formatter.
// Invariants:
//   - Token.Text is a slice of the original source and is never empty for a lexed token.
//   - Concatenating Text of a token stream reproduces the source byte-for-byte.
//   - Keywords are recognised case-insensitively; the original spelling stays in Text.
//   - The three curly openers (LBrace, CurlyOpen, DollarOpenCurlyBraces) share RBrace
//     as their closer.
package token
