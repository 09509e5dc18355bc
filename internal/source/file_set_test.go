package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("index.php", []byte("<?php echo 1;"), 0)
	id2 := fs.Add("index.php", []byte("<?php echo 2;"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}
	latest, ok := fs.GetLatest("index.php")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d,%v; want %d,true", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "<?php echo 1;" {
		t.Fatalf("old version lost: %q", got)
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.php", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("LineIdx = %v, want %v", file.LineIdx, expected)
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Fatalf("LineIdx[%d] = %d, want %d", i, file.LineIdx[i], val)
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Fatal("expected FileVirtual flag")
	}
}

func TestNormalizeAndRestore(t *testing.T) {
	original := []byte{0xEF, 0xBB, 0xBF, '<', '?', 'p', 'h', 'p', '\r', '\n', 'x', ';', '\r', '\n'}
	content, flags := Normalize(original)
	if string(content) != "<?php\nx;\n" {
		t.Fatalf("normalized = %q", content)
	}
	if flags&FileHadBOM == 0 || flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags = %b, want BOM and CRLF", flags)
	}

	f := &File{Flags: flags}
	if got := f.Restore(content); string(got) != string(original) {
		t.Fatalf("Restore = %q, want %q", got, original)
	}
}

func TestNormalizeKeepsLoneCR(t *testing.T) {
	content, flags := Normalize([]byte("a\rb"))
	if string(content) != "a\rb" || flags != 0 {
		t.Fatalf("got %q flags=%b", content, flags)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.php", []byte("ab\ncd\n"))

	start, end := fs.Resolve(Span{File: id, Start: 3, End: 5})
	if start != (LineCol{Line: 2, Col: 1}) {
		t.Fatalf("start = %+v", start)
	}
	if end != (LineCol{Line: 2, Col: 3}) {
		t.Fatalf("end = %+v", end)
	}

	nl, _ := fs.Resolve(Span{File: id, Start: 2, End: 2})
	if nl != (LineCol{Line: 1, Col: 3}) {
		t.Fatalf("newline position = %+v", nl)
	}
}

func TestGetLine(t *testing.T) {
	f := &File{Content: []byte("one\ntwo\nthree")}
	f.LineIdx = buildLineIndex(f.Content)

	cases := map[uint32]string{0: "", 1: "one", 2: "two", 3: "three", 4: ""}
	for n, want := range cases {
		if got := f.GetLine(n); got != want {
			t.Fatalf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestLoadCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.php")
	if err := os.WriteFile(path, []byte("<?php\r\necho 1;\r\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "<?php\necho 1;\n" {
		t.Fatalf("content = %q", file.Content)
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Fatal("expected FileNormalizedCRLF")
	}
	if file.Flags&FileVirtual != 0 {
		t.Fatal("loaded file must not be virtual")
	}
}

func TestNormalizeMixedLineEndingsUntouched(t *testing.T) {
	src := []byte("<?php\r\n$s = 'a\nb';\r\n")
	content, flags := Normalize(src)
	if string(content) != string(src) {
		t.Fatalf("content = %q, want unchanged", content)
	}
	if flags&FileNormalizedCRLF != 0 {
		t.Fatalf("flags = %b, want no CRLF flag", flags)
	}
	f := &File{Content: content, Flags: flags}
	if got := string(f.Restore(content)); got != string(src) {
		t.Fatalf("restore = %q, want %q", got, src)
	}
}
