package passes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"phpfmt/internal/lexer"
	"phpfmt/internal/pass"
)

func run(t *testing.T, p pass.Pass, src string) string {
	t.Helper()
	out, err := p.Format(src)
	require.NoError(t, err, "%s failed", p.Name())
	_, _, err = lexer.Tokenize(out)
	require.NoError(t, err, "%s emitted text that does not lex", p.Name())
	return out
}

// runStable checks the result and that a second run changes nothing.
func runStable(t *testing.T, p pass.Pass, src, want string) {
	t.Helper()
	got := run(t, p, src)
	require.Equal(t, want, got)
	require.Equal(t, got, run(t, p, got), "%s is not idempotent", p.Name())
}

func TestTrimSpaceBeforeSemicolon(t *testing.T) {
	runStable(t, TrimSpaceBeforeSemicolon{},
		"<?php foo() ;\nbar()\n;\n",
		"<?php foo();\nbar();\n")
	runStable(t, TrimSpaceBeforeSemicolon{},
		"<?php foo() // x\n;\n",
		"<?php foo() // x\n;\n")
}

func TestRTrim(t *testing.T) {
	runStable(t, RTrim{},
		"<?php  \n$a = 1;   \n// c   \n$b;\t\n",
		"<?php\n$a = 1;\n// c\n$b;\n")
	runStable(t, RTrim{},
		"<?php $s = 'x  \ny';  \n",
		"<?php $s = 'x  \ny';\n")
}

func TestEliminateDuplicatedEmptyLines(t *testing.T) {
	runStable(t, EliminateDuplicatedEmptyLines{},
		"<?php\n$a;\n\n\n\n$b;\n",
		"<?php\n$a;\n\n$b;\n")
	runStable(t, EliminateDuplicatedEmptyLines{},
		"<?php\n{\n\t$a;\n\n\n\t$b;\n}\n",
		"<?php\n{\n\t$a;\n\n\t$b;\n}\n")
}

func TestDoubleToSingleQuote(t *testing.T) {
	runStable(t, DoubleToSingleQuote{},
		`<?php $a = "abc"; $b = "it's"; $c = "a\n"; $d = "say \"hi\""; $e = "\$x";`,
		`<?php $a = 'abc'; $b = "it's"; $c = "a\n"; $d = 'say "hi"'; $e = '$x';`)
}

func TestShortArray(t *testing.T) {
	runStable(t, ShortArray{},
		"<?php $a = array(1, array('x' => 2), array ( ));\nfunction f(array $x) {}\n",
		"<?php $a = [1, ['x' => 2], [ ]];\nfunction f(array $x) {}\n")
}

func TestReindentBlocks(t *testing.T) {
	runStable(t, ReindentBlocks{},
		"<?php\nfoo(bar(\n$x\n));\n",
		"<?php\nfoo(bar(\n\t$x\n));\n")
	runStable(t, ReindentBlocks{},
		"<?php\nclass A {\n/**\n   * x\n   */\nfunction f() {}\n}\n",
		"<?php\nclass A {\n\t/**\n\t * x\n\t */\n\tfunction f() {}\n}\n")
	runStable(t, ReindentBlocks{},
		"<?php\nif ($a) {\n    $b;   \n} else {\n        $c;\n}\n",
		"<?php\nif ($a) {\n\t$b;\n} else {\n\t$c;\n}\n")
}

func TestAlignDoubleSlashComments(t *testing.T) {
	runStable(t, AlignDoubleSlashComments{},
		"<?php\n$a = 1; // one\n$bbb = 22; // two\n\n$c = 3;    // three\n",
		"<?php\n$a = 1;    // one\n$bbb = 22; // two\n\n$c = 3; // three\n")
}

func TestPSR1OpenTags(t *testing.T) {
	runStable(t, PSR1OpenTags{},
		"<?\necho 1 ?>\n<p>x</p>\n<?php echo 2; ?>\n",
		"<?php\necho 1; ?>\n<p>x</p>\n<?php echo 2; ?>\n")
}

func TestLeftWordWrap(t *testing.T) {
	p, err := NewLeftWordWrap("20")
	require.NoError(t, err)
	require.Equal(t,
		"<?php $object\n->method()\n->another()->third();",
		run(t, p, "<?php $object->method()->another()->third();"))

	p, err = NewLeftWordWrap("")
	require.NoError(t, err)
	require.Equal(t, 80, p.Width)
	require.Equal(t, "<?php $a->b();", run(t, p, "<?php $a->b();"))

	_, err = NewLeftWordWrap("wide")
	require.Error(t, err)
}

func TestLeftWordWrapLargeInput(t *testing.T) {
	p, err := NewLeftWordWrap("")
	require.NoError(t, err)
	src := "<?php\n" + strings.Repeat("$a->b($c, $d);\n", 50000)
	require.Equal(t, src, run(t, p, src))

	p, err = NewLeftWordWrap("12")
	require.NoError(t, err)
	require.Equal(t,
		"<?php\n$aaa\n->bbb($c, $d);\n$aaa\n->bbb($c, $d);\n",
		run(t, p, "<?php\n$aaa->bbb($c, $d);\n$aaa->bbb($c, $d);\n"))
}

func TestRestoreComments(t *testing.T) {
	orig := "<?php\n$a; //   keep   spacing\n/* block */\n/** doc */\n"
	captured, err := CaptureComments(orig)
	require.NoError(t, err)
	require.Equal(t, []string{"//   keep   spacing", "/* block */"}, captured)

	mangled := "<?php\n$a; // keep spacing\n/* other */\n/** doc */\n"
	require.Equal(t, orig, run(t, NewRestoreComments(captured), mangled))
}

func TestDefaultPassesAreStable(t *testing.T) {
	src := "<?php\nfunction foo($a) {   \n        if ($a) {\n  return [\n      1,\n            2,\n  ]  ;\n    }\n\n\n\n    return null ;\n}\n"
	want := "<?php\nfunction foo($a) {\n\tif ($a) {\n\t\treturn [\n\t\t\t1,\n\t\t\t2,\n\t\t];\n\t}\n\n\treturn null;\n}\n"

	apply := func(s string) string {
		for _, p := range DefaultPasses() {
			s = run(t, p, s)
		}
		return s
	}
	got := apply(src)
	require.Equal(t, want, got)
	require.Equal(t, got, apply(got))
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	require.Len(t, r.Names(), 12)
	for _, name := range DefaultNames {
		require.True(t, r.Has(name), name)
	}

	p, err := r.Lookup("LeftWordWrap", "100")
	require.NoError(t, err)
	require.Equal(t, 100, p.(*LeftWordWrap).Width)

	p, err = r.Lookup("Refactor", "foo() => bar()")
	require.NoError(t, err)
	require.Equal(t, "Refactor", p.Name())

	_, err = r.Lookup("RTrim", "x")
	require.ErrorIs(t, err, pass.ErrBadVariant)

	_, err = r.Lookup("Refactor", "no separator")
	require.ErrorIs(t, err, pass.ErrBadVariant)
	require.ErrorIs(t, err, ErrBadPattern)

	_, err = r.Lookup("Lua", "")
	require.ErrorIs(t, err, ErrScript)

	_, err = r.Lookup("Prettier", "")
	require.ErrorIs(t, err, pass.ErrUnknownPass)
}
