// Package config loads the per-project .phpfmt.toml or .phpfmt.yaml file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"phpfmt/internal/pass"
)

// FileNames are looked for in this order in every directory.
var FileNames = []string{".phpfmt.toml", ".phpfmt.yaml", ".phpfmt.yml"}

var (
	// ErrNotFound is returned by Discover when no directory up to the root
	// holds a config file.
	ErrNotFound = errors.New("no .phpfmt config found")
	// ErrInvalid wraps schema and value errors.
	ErrInvalid = errors.New("invalid config")
)

// Config is the project configuration.
type Config struct {
	Format   FormatSection   `toml:"format" yaml:"format"`
	Refactor RefactorSection `toml:"refactor" yaml:"refactor"`
	Cache    CacheSection    `toml:"cache" yaml:"cache"`

	// Path is the file the config came from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

type FormatSection struct {
	Passes           []string `toml:"passes" yaml:"passes"`
	Exclude          []string `toml:"exclude" yaml:"exclude"`
	PreserveComments bool     `toml:"preserve_comments" yaml:"preserve_comments"`
	Jobs             int      `toml:"jobs" yaml:"jobs"`
}

type RefactorSection struct {
	Rules []Rule `toml:"rules" yaml:"rules"`
}

// Rule is one structural rewrite.
type Rule struct {
	From string `toml:"from" yaml:"from"`
	To   string `toml:"to" yaml:"to"`
}

type CacheSection struct {
	Enabled *bool  `toml:"enabled" yaml:"enabled"`
	Dir     string `toml:"dir" yaml:"dir"`
}

// Default is the configuration used when no file exists.
func Default() *Config {
	return &Config{}
}

// Dir is the directory exclude globs are relative to.
func (c *Config) Dir() string {
	if c.Path == "" {
		return "."
	}
	return filepath.Dir(c.Path)
}

// CacheEnabled defaults to true.
func (c *Config) CacheEnabled() bool {
	return c.Cache.Enabled == nil || *c.Cache.Enabled
}

// CacheDir resolves the cache directory, defaulting to <user cache>/phpfmt.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		if filepath.IsAbs(c.Cache.Dir) {
			return c.Cache.Dir, nil
		}
		return filepath.Join(c.Dir(), c.Cache.Dir), nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("no cache directory: %w", err)
	}
	return filepath.Join(base, "phpfmt"), nil
}

// PassSpecs lists the configured passes, or defaults when format.passes is
// empty, followed by one Refactor per rule.
func (c *Config) PassSpecs(defaults []string) []pass.Spec {
	names := c.Format.Passes
	if len(names) == 0 {
		names = defaults
	}
	specs := make([]pass.Spec, 0, len(names)+len(c.Refactor.Rules))
	for _, s := range names {
		specs = append(specs, pass.ParseSpec(s))
	}
	for _, r := range c.Refactor.Rules {
		specs = append(specs, pass.Spec{Name: "Refactor", Variant: r.From + " => " + r.To})
	}
	return specs
}

// Validate checks values the decoders cannot.
func (c *Config) Validate() error {
	if c.Format.Jobs < 0 {
		return fmt.Errorf("%w: format.jobs must not be negative, got %d", ErrInvalid, c.Format.Jobs)
	}
	for _, s := range c.Format.Passes {
		if pass.ParseSpec(s).Name == "" {
			return fmt.Errorf("%w: empty entry in format.passes", ErrInvalid)
		}
	}
	for _, g := range c.Format.Exclude {
		if _, err := path.Match(g, ""); err != nil {
			return fmt.Errorf("%w: format.exclude %q: %w", ErrInvalid, g, err)
		}
	}
	for i, r := range c.Refactor.Rules {
		if strings.TrimSpace(r.From) == "" {
			return fmt.Errorf("%w: refactor.rules[%d] has no from-pattern", ErrInvalid, i)
		}
	}
	return nil
}

// Find walks up from startDir to the first directory holding a config file.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Discover finds and loads the config governing startDir.
func Discover(startDir string) (*Config, error) {
	p, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return Load(p)
}

// Load reads a config file; the extension picks the decoder. Unknown keys
// are errors.
func Load(p string) (*Config, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".toml":
		err = decodeTOML(data, cfg)
	case ".yaml", ".yml":
		err = decodeYAML(data, cfg)
	default:
		err = fmt.Errorf("%w: unsupported config format %q", ErrInvalid, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	cfg.Path = p
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("%w: failed to parse TOML: %w", ErrInvalid, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys: %s", ErrInvalid, strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// an empty document decodes to io.EOF
	if err := dec.Decode(cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
		return fmt.Errorf("%w: failed to parse YAML: %w", ErrInvalid, err)
	}
	return nil
}
