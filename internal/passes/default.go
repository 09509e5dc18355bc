package passes

import (
	"errors"
	"sync"

	"phpfmt/internal/pass"
)

var errNoVariant = errors.New("pass takes no variant")

// plain wraps a pass without options into a factory that rejects variants.
func plain(p pass.Pass) pass.Factory {
	return func(variant string) (pass.Pass, error) {
		if variant != "" {
			return nil, errNoVariant
		}
		return p, nil
	}
}

// Register adds every pass of this package to r.
func Register(r *pass.Registry) {
	r.Register("AlignDoubleSlashComments", plain(AlignDoubleSlashComments{}))
	r.Register("DoubleToSingleQuote", plain(DoubleToSingleQuote{}))
	r.Register("EliminateDuplicatedEmptyLines", plain(EliminateDuplicatedEmptyLines{}))
	r.Register("PSR1OpenTags", plain(PSR1OpenTags{}))
	r.Register("RTrim", plain(RTrim{}))
	r.Register("ReindentBlocks", plain(ReindentBlocks{}))
	r.Register("ShortArray", plain(ShortArray{}))
	r.Register("TrimSpaceBeforeSemicolon", plain(TrimSpaceBeforeSemicolon{}))
	// Nothing to restore without captured comments; the pipeline builds the
	// real instance itself.
	r.Register("RestoreComments", plain(NewRestoreComments(nil)))
	r.Register("LeftWordWrap", func(variant string) (pass.Pass, error) {
		p, err := NewLeftWordWrap(variant)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
	r.Register("Lua", func(variant string) (pass.Pass, error) {
		p, err := NewLua(variant)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
	r.Register("Refactor", func(variant string) (pass.Pass, error) {
		from, to, err := parseRefactorVariant(variant)
		if err != nil {
			return nil, err
		}
		p, err := NewRefactor(from, to)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
}

var (
	defaultRegistry     *pass.Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry is the process-wide registry holding every built-in pass.
func DefaultRegistry() *pass.Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = pass.NewRegistry()
		Register(defaultRegistry)
	})
	return defaultRegistry
}

// DefaultNames is the pass list used when nothing is configured.
var DefaultNames = []string{
	"ReindentBlocks",
	"TrimSpaceBeforeSemicolon",
	"EliminateDuplicatedEmptyLines",
	"RTrim",
}

// DefaultPasses instantiates DefaultNames in order.
func DefaultPasses() []pass.Pass {
	return []pass.Pass{
		ReindentBlocks{},
		TrimSpaceBeforeSemicolon{},
		EliminateDuplicatedEmptyLines{},
		RTrim{},
	}
}
