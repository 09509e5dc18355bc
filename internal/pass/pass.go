package pass

import (
	"errors"

	"phpfmt/internal/token"
)

var (
	// ErrUnknownPass is wrapped by Registry.Lookup for names nobody registered.
	ErrUnknownPass = errors.New("unknown pass")
	// ErrBadVariant is wrapped when a factory rejects the variant string.
	ErrBadVariant = errors.New("bad pass variant")
)

// Pass is one self-contained text-to-text transformation.
type Pass interface {
	// Name is the stable registry name.
	Name() string
	// Candidate is a cheap pre-check over the kinds found while lexing src.
	// Returning true declines to optimise.
	Candidate(src string, found token.Set) bool
	// Format lexes src and returns the rewritten text.
	Format(src string) (string, error)
}

// Cloner is implemented by passes carrying state that must not leak between
// pipeline runs.
type Cloner interface {
	Clone() Pass
}

// Describer supplies the one-line help shown by `phpfmt passes`.
type Describer interface {
	Description() string
}

// Clone returns an independent copy of p when it implements Cloner, or p itself.
func Clone(p Pass) Pass {
	if c, ok := p.(Cloner); ok {
		return c.Clone()
	}
	return p
}

// Describe returns p's description or an empty string.
func Describe(p Pass) string {
	if d, ok := p.(Describer); ok {
		return d.Description()
	}
	return ""
}
