package token

import "strings"

// Set is a fixed-size set of kinds. It is comparable, so it can be part of a map key.
type Set [4]uint64

var (
	// Blank is the default ignore list: whitespace only.
	Blank = NewSet(Whitespace)
	// Futile skips everything that is not syntax.
	Futile = NewSet(Whitespace, Comment, DocComment)
	// CurlyOpeners are the kinds closed by RBrace.
	CurlyOpeners = NewSet(LBrace, CurlyOpen, DollarOpenCurlyBraces)
)

// NewSet returns a set holding kinds.
func NewSet(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s.Add(k)
	}
	return s
}

// Add inserts k.
func (s *Set) Add(k Kind) {
	s[k>>6] |= 1 << (k & 63)
}

// Has reports whether k is in s.
func (s Set) Has(k Kind) bool {
	return s[k>>6]&(1<<(k&63)) != 0
}

// With returns a copy of s extended with kinds.
func (s Set) With(kinds ...Kind) Set {
	for _, k := range kinds {
		s.Add(k)
	}
	return s
}

// Union returns the kinds present in either set.
func (s Set) Union(o Set) Set {
	for i := range s {
		s[i] |= o[i]
	}
	return s
}

// Empty reports whether s holds no kinds.
func (s Set) Empty() bool {
	return s == Set{}
}

// Kinds lists the members in ascending order.
func (s Set) Kinds() []Kind {
	var out []Kind
	for k := range kindCount {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// Matches reports whether t's kind is in s.
func (s Set) Matches(t Token) bool { return s.Has(t.Kind) }

func (s Set) String() string {
	kinds := s.Kinds()
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
