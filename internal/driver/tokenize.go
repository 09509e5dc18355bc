package driver

import (
	"phpfmt/internal/diag"
	"phpfmt/internal/lexer"
	"phpfmt/internal/source"
	"phpfmt/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes one file, collecting lexical problems into the bag instead
// of failing.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	// Создаём FileSet и загружаем файл
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fs.Get(fileID), maxDiagnostics), nil
}

// TokenizeSource is Tokenize for in-memory content.
func TokenizeSource(name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	return tokenizeFile(fs, fs.Get(id), maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, file *source.File, maxDiagnostics int) *TokenizeResult {
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	tokens, _ := lx.All()
	bag.Sort()
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
