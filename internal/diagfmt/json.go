package diagfmt

import (
	"encoding/json"
	"io"

	"phpfmt/internal/diag"
	"phpfmt/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

func makeLocation(fs *source.FileSet, span source.Span, positions bool) LocationJSON {
	loc := LocationJSON{
		File:      fs.Get(span.File).Path,
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if positions {
		start, end := fs.Resolve(span)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

// BuildDiagnosticsJSON converts a bag into its JSON representation.
func BuildDiagnosticsJSON(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) []DiagnosticJSON {
	out := make([]DiagnosticJSON, 0, bag.Len())
	for _, d := range bag.Items() {
		item := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(fs, d.Primary, opts.IncludePositions),
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				item.Notes = append(item.Notes, NoteJSON{
					Message:  n.Msg,
					Location: makeLocation(fs, n.Span, opts.IncludePositions),
				})
			}
		}
		out = append(out, item)
	}
	return out
}

// JSON writes diagnostics as an indented JSON array.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsJSON(bag, fs, opts))
}
