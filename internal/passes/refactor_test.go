package passes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustRefactor(t *testing.T, from, to string) *Refactor {
	t.Helper()
	r, err := NewRefactor(from, to)
	require.NoError(t, err)
	return r
}

func TestRefactor(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		src      string
		want     string
	}{
		{
			name: "call rename keeps source layout",
			from: "foo ( $x )", to: "bar ( $x )",
			src:  "<?php foo($y);",
			want: "<?php bar($y);",
		},
		{
			name: "names are case insensitive",
			from: "FOO()", to: "bar()",
			src:  "<?php foo(); Foo ( );",
			want: "<?php bar(); bar();",
		},
		{
			name: "metavariables bind consistently",
			from: "$a + $a", to: "2 * $a",
			src:  "<?php $x + $x; $x + $y;",
			want: "<?php 2*$x; $x + $y;",
		},
		{
			name: "words keep their separator",
			from: "print $v", to: "echo $v",
			src:  "<?php print $s;",
			want: "<?php echo $s;",
		},
		{
			name: "block comment inside a match moves ahead",
			from: "foo($x)", to: "bar($x)",
			src:  "<?php foo(/* c */ $y);",
			want: "<?php /* c */ bar($y);",
		},
		{
			name: "line comment inside a match keeps its own line",
			from: "foo($x)", to: "bar($x)",
			src:  "<?php foo // c\n($z);",
			want: "<?php // c\nbar($z);",
		},
		{
			name: "comment in a dropped wildcard region survives",
			from: "a( /*skipUntil:;*/ )", to: "b()",
			src:  "<?php a(x /* keep */ y);",
			want: "<?php /* keep */ b();",
		},
		{
			name: "comment in a moved wildcard region is not doubled",
			from: "a( /*skipUntil:;*/ )", to: "b( /*skip*/ )",
			src:  "<?php a(x /* keep */ y);",
			want: "<?php b(x /* keep */ y);",
		},
		{
			name: "failed match is not retried",
			from: "$x + 1", to: "inc($x)",
			src:  "<?php $a + $b + 1;",
			want: "<?php $a + $b + 1;",
		},
		{
			name: "skipped region moves into the replacement",
			from: "dump( /*skipUntil:;*/ )", to: "debug( /*skip*/ )",
			src:  "<?php dump($a, $b); dump(1;",
			want: "<?php debug($a, $b); dump(1;",
		},
		{
			name: "stop text is case insensitive",
			from: "a( /*skipUntil:END*/ )", to: "b()",
			src:  "<?php a(x end); a(x y);",
			want: "<?php a(x end); b();",
		},
		{
			name: "pattern running off the end passes through",
			from: "foo($x) ;", to: "bar($x);",
			src:  "<?php foo($y)",
			want: "<?php foo($y)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRefactor(t, tt.from, tt.to)
			require.Equal(t, tt.want, run(t, r, tt.src))
		})
	}
}

func TestRefactorRejectsBadPatterns(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
	}{
		{"empty", "", "x"},
		{"only whitespace", "  ", "x"},
		{"leading wildcard", "/*skipUntil:;*/ foo", "x"},
		{"trailing wildcard", "foo /*skipUntil:;*/", "x"},
		{"adjacent wildcards", "a( /*skipUntil:x*/ /*skipUntil:y*/ )", "b()"},
		{"skip markers do not pair", "a( /*skipUntil:;*/ )", "b( /*skip*/ /*skip*/ )"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRefactor(tt.from, tt.to)
			require.ErrorIs(t, err, ErrBadPattern)
		})
	}
}

func TestParseRefactorVariant(t *testing.T) {
	from, to, err := parseRefactorVariant("a => b")
	require.NoError(t, err)
	require.Equal(t, "a", from)
	require.Equal(t, "b", to)

	from, to, err = parseRefactorVariant("$a=>b => c")
	require.NoError(t, err)
	require.Equal(t, "$a=>b", from)
	require.Equal(t, "c", to)

	from, to, err = parseRefactorVariant("x=>y")
	require.NoError(t, err)
	require.Equal(t, "x", from)
	require.Equal(t, "y", to)

	_, _, err = parseRefactorVariant("xy")
	require.ErrorIs(t, err, ErrBadPattern)
}

func TestRefactorCloneIsIndependent(t *testing.T) {
	r := mustRefactor(t, "foo()", "bar()")
	c, ok := r.Clone().(*Refactor)
	require.True(t, ok)
	require.NotSame(t, r, c)
	require.Equal(t, run(t, r, "<?php foo();"), run(t, c, "<?php foo();"))
}
