package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"phpfmt/internal/diag"
	"phpfmt/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строку контекста с подчёркиванием ^~~~ по Span.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	sevColor := map[diag.Severity]*color.Color{
		diag.SevError:   color.New(color.FgRed, color.Bold),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevInfo:    color.New(color.FgCyan),
	}
	caret := color.New(color.FgGreen, color.Bold)
	for _, c := range sevColor {
		if !opts.Color {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	if opts.Color {
		caret.EnableColor()
	} else {
		caret.DisableColor()
	}

	for _, d := range bag.Items() {
		file := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)
		sev := sevColor[d.Severity].Sprint(d.Severity.String())
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", file.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

		line := file.GetLine(start.Line)
		if line == "" {
			continue
		}
		fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(line, "\t", " "))
		width := 1
		if end.Line == start.Line && end.Col > start.Col {
			width = int(end.Col - start.Col)
		}
		marker := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", int(start.Col)-1), caret.Sprint(marker))

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", fs.Get(n.Span.File).Path, ns.Line, ns.Col, n.Msg)
		}
	}
}
