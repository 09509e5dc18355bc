package fuzztests

import (
	"testing"

	"phpfmt/internal/diag"
	"phpfmt/internal/lexer"
	"phpfmt/internal/source"
	"phpfmt/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.php", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		reporter := diag.BagReporter{Bag: bag}
		lx := lexer.New(file, lexer.Options{Reporter: reporter})
		tokens, _ := lx.All()
		if err := testkit.CheckTokenInvariants(tokens, string(file.Content)); err != nil {
			t.Fatalf("token invariants: %v\ninput (%d bytes): %q", err, len(input), truncateForLog(input, 200))
		}
	})
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
