package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"phpfmt/internal/token"
)

// CheckTokenInvariants runs the round-trip invariants of a token stream:
// 1) every token has text and its span selects exactly that text in src
// 2) spans are contiguous, starting at 0 and ending at len(src)
func CheckTokenInvariants(tokens []token.Token, src string) error {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		return fmt.Errorf("len src overflow: %w", err)
	}

	var at uint32
	for i, tok := range tokens {
		sp := tok.Span
		if tok.Text == "" {
			return fmt.Errorf("token %d (%s) has empty text at %d", i, tok.Kind, sp.Start)
		}
		if sp.Start != at {
			return fmt.Errorf("token %d (%s) starts at %d, want %d", i, tok.Kind, sp.Start, at)
		}
		if sp.End < sp.Start || sp.End > limit {
			return fmt.Errorf("token %d (%s) span %d..%d out of bounds (len %d)", i, tok.Kind, sp.Start, sp.End, limit)
		}
		if got := src[sp.Start:sp.End]; got != tok.Text {
			return fmt.Errorf("token %d (%s) text %q does not match source %q", i, tok.Kind, tok.Text, got)
		}
		at = sp.End
	}
	if at != limit {
		return fmt.Errorf("tokens cover %d of %d bytes", at, limit)
	}
	return nil
}
