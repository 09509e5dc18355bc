package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"phpfmt/internal/pass"
)

func write(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

const sampleTOML = `
[format]
passes = ["ReindentBlocks", "LeftWordWrap:100"]
exclude = ["vendor/*"]
preserve_comments = true
jobs = 4

[refactor]
rules = [{ from = "foo($a)", to = "bar($a)" }]

[cache]
enabled = false
dir = ".cache"
`

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(write(t, dir, ".phpfmt.toml", sampleTOML))
	require.NoError(t, err)

	require.Equal(t, 4, cfg.Format.Jobs)
	require.True(t, cfg.Format.PreserveComments)
	require.Equal(t, []string{"vendor/*"}, cfg.Format.Exclude)
	require.False(t, cfg.CacheEnabled())
	cacheDir, err := cfg.CacheDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, ".cache"), cacheDir)

	require.Equal(t, []pass.Spec{
		{Name: "ReindentBlocks"},
		{Name: "LeftWordWrap", Variant: "100"},
		{Name: "Refactor", Variant: "foo($a) => bar($a)"},
	}, cfg.PassSpecs([]string{"RTrim"}))
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(write(t, t.TempDir(), ".phpfmt.yaml", `
format:
  passes: [RTrim]
refactor:
  rules:
    - from: "array()"
      to: "[]"
`))
	require.NoError(t, err)
	require.True(t, cfg.CacheEnabled())
	require.Len(t, cfg.PassSpecs(nil), 2)
	require.Equal(t, "[]", cfg.Refactor.Rules[0].To)
}

func TestPassSpecsDefaults(t *testing.T) {
	cfg := Default()
	cfg.Refactor.Rules = []Rule{{From: "a()", To: "b()"}}
	require.Equal(t, []pass.Spec{
		{Name: "ReindentBlocks"},
		{Name: "RTrim"},
		{Name: "Refactor", Variant: "a() => b()"},
	}, cfg.PassSpecs([]string{"ReindentBlocks", "RTrim"}))
	require.Empty(t, Default().PassSpecs(nil))
}

func TestUnknownKeysRejected(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(write(t, dir, ".phpfmt.toml", "[format]\npases = [\"RTrim\"]\n"))
	require.ErrorIs(t, err, ErrInvalid)
	require.Contains(t, err.Error(), "format.pases")

	_, err = Load(write(t, dir, ".phpfmt.yaml", "format:\n  pases: [RTrim]\n"))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(write(t, dir, ".phpfmt.toml", "[format]\njobs = -1\n"))
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Load(write(t, dir, ".phpfmt.toml", "[format]\nexclude = [\"[\"]\n"))
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Load(write(t, dir, ".phpfmt.toml", "[refactor]\nrules = [{ to = \"x\" }]\n"))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	want := write(t, root, ".phpfmt.yaml", "format:\n  jobs: 2\n")
	nested := filepath.Join(root, "src", "app")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Discover(nested)
	require.NoError(t, err)
	require.Equal(t, want, cfg.Path)
	require.Equal(t, 2, cfg.Format.Jobs)
	require.Equal(t, root, cfg.Dir())

	// toml wins over yaml in the same directory
	write(t, root, ".phpfmt.toml", "")
	p, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, ".phpfmt.toml"), p)
}

func TestDiscoverNotFound(t *testing.T) {
	// the temp dir's ancestors may hold a config on a developer machine, so
	// only assert the sentinel when nothing was found
	cfg, err := Discover(t.TempDir())
	if err != nil {
		require.ErrorIs(t, err, ErrNotFound)
		require.Nil(t, cfg)
	}
}
