package lexer

import (
	"errors"

	"phpfmt/internal/diag"
	"phpfmt/internal/source"
)

// ErrLex is wrapped by every error Tokenize returns for lexically invalid text.
var ErrLex = errors.New("lex error")

type Options struct {
	Reporter diag.Reporter // может быть nil, тогда ошибки только считаем
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.errs == 0 {
		lx.firstErr = lexError{span: sp, msg: msg}
	}
	lx.errs++
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

type lexError struct {
	span source.Span
	msg  string
}
