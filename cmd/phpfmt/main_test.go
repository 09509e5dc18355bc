package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"phpfmt/internal/pass"
	"phpfmt/internal/pipeline"
)

func execute(t *testing.T, stdin string, args ...string) (stdout string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	err = rootCmd.ExecuteContext(context.Background())
	runCleanups()
	return out.String(), err
}

func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".phpfmt.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestFormatStdin(t *testing.T) {
	out, err := execute(t, "<?php\nif ($a) {\n  foo( 1 ) ;\n}\n",
		"--color", "off", "format", "--config", emptyConfig(t), "--no-cache", "--ui", "off")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if want := "<?php\nif ($a) {\n\tfoo( 1 );\n}\n"; out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestRefactorFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.php")
	if err := os.WriteFile(path, []byte("<?php sizeof($items);\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "",
		"--color", "off", "refactor", "--from", "sizeof($x)", "--to", "count($x)",
		"--config", emptyConfig(t), "--no-cache", "--ui", "off", path)
	if err != nil {
		t.Fatalf("refactor: %v", err)
	}
	if want := "reformatted " + path + "\n"; out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<?php count($items);\n" {
		t.Fatalf("file = %q", data)
	}
}

func TestPassesJSON(t *testing.T) {
	out, err := execute(t, "", "passes", "--format", "json")
	if err != nil {
		t.Fatalf("passes: %v", err)
	}
	var infos []passInfo
	if err := json.Unmarshal([]byte(out), &infos); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	byName := make(map[string]passInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}
	if len(byName) != 12 {
		t.Fatalf("expected 12 passes, got %d", len(byName))
	}
	if !byName["ReindentBlocks"].Default || byName["ShortArray"].Default {
		t.Fatalf("default markers wrong: %+v", infos)
	}
	if byName["Refactor"].Usage != "Refactor:<from> => <to>" {
		t.Fatalf("Refactor usage = %q", byName["Refactor"].Usage)
	}
	if byName["RTrim"].Description == "" {
		t.Fatal("RTrim has no description")
	}
}

func TestParsePassList(t *testing.T) {
	got := parsePassList("ReindentBlocks, LeftWordWrap:100,,RTrim")
	want := []pass.Spec{{Name: "ReindentBlocks"}, {Name: "LeftWordWrap", Variant: "100"}, {Name: "RTrim"}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("spec %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTouchedLines(t *testing.T) {
	cases := []struct {
		before, after string
		want          int
	}{
		{"a\nb\nc", "a\nb\nc", 0},
		{"a\nb\nc", "a\nB\nc", 1},
		{"a\nb\nc", "a\nc", 1},
		{"a\nb", "x\ny\nz", 3},
	}
	for _, tc := range cases {
		if got := touchedLines(tc.before, tc.after); got != tc.want {
			t.Fatalf("touchedLines(%q, %q) = %d, want %d", tc.before, tc.after, got, tc.want)
		}
	}
}

func TestDescribeStep(t *testing.T) {
	got := describeStep(pipeline.StepInfo{Index: 0, Total: 2, Pass: "RTrim", Skipped: true})
	if !strings.Contains(got, "[1/2] RTrim") || !strings.Contains(got, "skipped") {
		t.Fatalf("describeStep = %q", got)
	}
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "ON": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Fatalf("readUIMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Fatal("expected error")
	}
}

func TestCPUProfileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.pprof")
	t.Cleanup(func() {
		_ = rootCmd.PersistentFlags().Set("cpu-profile", "")
	})
	if _, err := execute(t, "", "--color", "off", "--cpu-profile", path, "passes"); err != nil {
		t.Fatalf("passes: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("profile not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("profile is empty")
	}
}
