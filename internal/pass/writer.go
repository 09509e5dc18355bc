package pass

import (
	"strings"
)

// Writer accumulates the text a pass emits and tracks its indentation level.
type Writer struct {
	buf         []byte
	indentLevel int

	// IndentChar is repeated once per level; defaults to a tab.
	IndentChar string
	// NewLine is the line terminator passes emit; defaults to "\n".
	NewLine string
}

func newWriter(capacity int) Writer {
	return Writer{
		buf:        make([]byte, 0, capacity),
		IndentChar: "\t",
		NewLine:    "\n",
	}
}

// Code returns the text accumulated so far.
func (w *Writer) Code() string {
	return string(w.buf)
}

// Append writes every string to the output.
func (w *Writer) Append(parts ...string) {
	for _, s := range parts {
		w.buf = append(w.buf, s...)
	}
}

// RtrimAndAppend drops all trailing whitespace from the output, then appends s.
func (w *Writer) RtrimAndAppend(s string) {
	w.buf = w.buf[:len(strings.TrimRight(string(w.buf), " \t\n\r\x00\x0b"))]
	w.buf = append(w.buf, s...)
}

// RtrimLnAndAppend drops trailing blanks but keeps newlines, then appends s.
func (w *Writer) RtrimLnAndAppend(s string) {
	w.buf = w.buf[:len(strings.TrimRight(string(w.buf), " \t"))]
	w.buf = append(w.buf, s...)
}

// SetCode replaces the whole output; used by passes that post-process it.
func (w *Writer) SetCode(s string) {
	w.buf = append(w.buf[:0], s...)
}

// SetIndent moves the indentation level by delta, never below zero.
func (w *Writer) SetIndent(delta int) {
	w.indentLevel += delta
	if w.indentLevel < 0 {
		w.indentLevel = 0
	}
}

// IndentLevel reports the current level.
func (w *Writer) IndentLevel() int {
	return w.indentLevel
}

// Indent renders the current level plus increment.
func (w *Writer) Indent(increment int) string {
	n := w.indentLevel + increment
	if n <= 0 {
		return ""
	}
	return strings.Repeat(w.IndentChar, n)
}

// Crlf is the configured newline.
func (w *Writer) Crlf() string {
	return w.NewLine
}

// CrlfIndent is a newline followed by the current indentation.
func (w *Writer) CrlfIndent() string {
	return w.NewLine + w.Indent(0)
}

// Space returns a single space when cond holds.
func (w *Writer) Space(cond bool) string {
	if cond {
		return " "
	}
	return ""
}

// HasLn reports whether text spans a line break.
func (w *Writer) HasLn(text string) bool {
	return strings.Contains(text, w.NewLine)
}
