package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion := Version
	origGitCommit := GitCommit
	t.Cleanup(func() {
		Version = origVersion
		GitCommit = origGitCommit
	})

	// simulating build-time ldflags
	Version = "1.2.3"
	GitCommit = "abc123def456"

	if Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", Version, "1.2.3")
	}
	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc123def456")
	}
}

func TestColored(t *testing.T) {
	orig := color.NoColor
	t.Cleanup(func() { color.NoColor = orig })

	color.NoColor = true
	if got := Colored("1.2.3-dev"); got != "1.2.3-dev" {
		t.Errorf("Colored without colour = %q", got)
	}

	color.NoColor = false
	got := Colored("1.2.3")
	want := versionMajorColor.Sprint("1") + "." + versionMinorColor.Sprint("2") + "." + versionPatchColor.Sprint("3")
	if got != want || got == "1.2.3" {
		t.Errorf("Colored = %q, want %q", got, want)
	}
	for _, v := range []string{"dev", "1.2", "1..3"} {
		if Colored(v) != v {
			t.Errorf("Colored(%q) should be unchanged", v)
		}
	}
}
