package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addSnippetSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "passes", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// берём входы golden-тестов проходов: *.in
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".in" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addSnippetSeeds covers lexer modes the golden files do not reach.
func addSnippetSeeds(f *testing.F) {
	snippets := []string{
		"",
		"plain html only",
		"<?php\n",
		"<?= $title ?>\n<p>body</p>",
		"<?php echo \"a {$b['c']} ${d} $e->f $g[1]\";",
		"<?php $x = <<<EOT\n  body $y\n  EOT;\n",
		"<?php $x = <<<'EOT'\nraw $y\nEOT;\n",
		"<?php $c = (int) $d; $e = `ls $f`;",
		"<?php # hash\n// slash\n/** doc */\nclass A { public function b(): ?int { return null; } }",
		"<?php __halt_compiler(); binary \x00\xff tail",
		"<?php $a ??= $b <=> $c ** 2 ?-> d;",
		"<?php '",
	}
	for _, s := range snippets {
		f.Add(clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
