package passes

import (
	"strings"

	"phpfmt/internal/pass"
	"phpfmt/internal/token"
)

var (
	blockOpeners = token.CurlyOpeners.With(token.LParen, token.LBracket, token.Attribute)
	blockClosers = token.NewSet(token.RBrace, token.RParen, token.RBracket)
)

type openBlock struct {
	line      int
	indenting bool
}

// ReindentBlocks rewrites leading whitespace so that each line is indented
// one tab per enclosing block. A line opens at most one level: when several
// blocks open on the same line only the last one still open at its end
// indents what follows.
type ReindentBlocks struct{}

func (ReindentBlocks) Name() string        { return "ReindentBlocks" }
func (ReindentBlocks) Description() string { return "Reindent code by nesting depth of blocks." }

func (ReindentBlocks) Candidate(string, token.Set) bool { return true }

func (ReindentBlocks) Format(src string) (string, error) {
	w, err := pass.NewWalker(src)
	if err != nil {
		return "", err
	}
	var (
		stack      []openBlock
		line       int
		lineIndent string
	)
	// newLine closes the current line and returns the indentation of the
	// line starting after token i.
	newLine := func(i int) string {
		if n := len(stack); n > 0 && stack[n-1].line == line {
			stack[n-1].indenting = true
		}
		line++
		lineIndent = strings.Repeat(w.IndentChar, indentingDepth(stack, leadingClosers(w, i+1)))
		return lineIndent
	}

	for {
		t, ok := w.Next()
		if !ok {
			break
		}
		i := w.Ptr()
		switch {
		case blockOpeners.Has(t.Kind):
			stack = append(stack, openBlock{line: line})
		case blockClosers.Has(t.Kind):
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}

		switch t.Kind {
		case token.Whitespace:
			switch {
			case w.HasLn(t.Text):
				nl := strings.Repeat(w.NewLine, strings.Count(t.Text, w.NewLine))
				indent := newLine(i)
				if i == w.Len()-1 {
					indent = ""
				}
				w.Append(nl, indent)
			case strings.HasSuffix(w.Token(i-1).Text, w.NewLine) && w.Token(i-1).Kind == token.OpenTag:
				// the newline belongs to the open tag
				w.Append(newLine(i))
			default:
				w.Append(t.Text)
			}
		case token.OpenTag:
			w.Append(t.Text)
			if w.HasLn(t.Text) && w.Token(i+1).Kind != token.Whitespace {
				newLine(i)
			}
		case token.Comment, token.DocComment:
			w.Append(reindentComment(t.Text, lineIndent, w.NewLine))
		default:
			w.Append(t.Text)
		}
	}
	return w.Code(), nil
}

// leadingClosers counts the closers starting the line that begins at i.
func leadingClosers(w *pass.Walker, i int) int {
	n := 0
	for ; w.InRange(i); i++ {
		t := w.Token(i)
		switch {
		case blockClosers.Has(t.Kind):
			n++
		case t.Kind == token.Whitespace && !w.HasLn(t.Text):
		default:
			return n
		}
	}
	return n
}

// indentingDepth counts indenting blocks once the top closed blocks are gone.
func indentingDepth(stack []openBlock, closed int) int {
	depth := 0
	for _, b := range stack[:max(len(stack)-closed, 0)] {
		if b.indenting {
			depth++
		}
	}
	return depth
}

// reindentComment aligns the star column of block comment continuation lines.
func reindentComment(text, indent, nl string) string {
	if !strings.HasPrefix(text, "/*") || !strings.Contains(text, nl) {
		return text
	}
	lines := strings.Split(text, nl)
	for i := 1; i < len(lines); i++ {
		trimmed := strings.TrimLeft(lines[i], " \t")
		if strings.HasPrefix(trimmed, "*") {
			lines[i] = indent + " " + trimmed
		}
	}
	return strings.Join(lines, nl)
}
