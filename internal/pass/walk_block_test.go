package pass

import (
	"testing"

	"github.com/stretchr/testify/require"

	"phpfmt/internal/token"
)

func TestRefWalkBlockNested(t *testing.T) {
	w := FromTokens(kinds(token.LParen, token.LParen, token.RParen, token.LParen, token.RParen, token.RParen))
	require.Equal(t, 5, w.RefWalkBlock(0, token.LParen, token.RParen))
	require.Equal(t, 2, w.RefWalkBlock(1, token.LParen, token.RParen))
	require.Equal(t, 0, w.RefWalkBlockReverse(5, token.LParen, token.RParen))
	require.Equal(t, 3, w.RefWalkBlockReverse(4, token.LParen, token.RParen))
}

func TestRefWalkBlockUnbalanced(t *testing.T) {
	w := FromTokens(kinds(token.LBracket, token.LBracket, token.RBracket))
	require.Equal(t, w.Len(), w.RefWalkBlock(0, token.LBracket, token.RBracket))
	w = FromTokens(kinds(token.LBracket, token.RBracket, token.RBracket))
	require.Equal(t, -1, w.RefWalkBlockReverse(2, token.LBracket, token.RBracket))
}

func TestRefWalkCurlyBlockSharedCloser(t *testing.T) {
	tests := []struct {
		name   string
		tokens []token.Token
		from   int
		want   int
	}{
		{"brace then interpolation", kinds(token.LBrace, token.CurlyOpen, token.RBrace, token.RBrace), 0, 3},
		{"inner interpolation", kinds(token.LBrace, token.CurlyOpen, token.RBrace, token.RBrace), 1, 2},
		{"dollar brace", kinds(token.LBrace, token.DollarOpenCurlyBraces, token.RBrace, token.Semicolon, token.RBrace), 0, 4},
		{"three openers", kinds(token.LBrace, token.CurlyOpen, token.DollarOpenCurlyBraces, token.RBrace, token.RBrace, token.RBrace), 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := FromTokens(tt.tokens)
			require.Equal(t, tt.want, w.RefWalkCurlyBlock(tt.from))
			require.Equal(t, tt.from, w.RefWalkCurlyBlockReverse(tt.want))
		})
	}
}

func TestRefWalkCurlyBlockOnLexedString(t *testing.T) {
	w := mustWalker(t, `<?php if ($a) { $s = "x{$b}y"; }`)
	open := seekTo(t, w, token.LBrace, 1)
	require.Equal(t, "{", open.Text)
	end := w.RefWalkCurlyBlock(w.Ptr())
	require.Equal(t, w.Len()-1, end)
	require.Equal(t, token.RBrace, w.Token(end).Kind)
}

func TestRefWalkUseful(t *testing.T) {
	w := mustWalker(t, "<?php foo /* c */ ( $a ) ;")
	name := 1
	require.Equal(t, token.Ident, w.Token(name).Kind)
	lp := w.RefWalkUsefulUntil(name, token.LParen)
	require.Equal(t, token.LParen, w.Token(lp).Kind)
	require.Equal(t, name, w.RefWalkUsefulUntilReverse(lp, token.Ident))
	require.Equal(t, w.Len(), w.RefWalkUsefulUntil(lp, token.KwClass))

	semi := w.Len() - 1
	require.Equal(t, token.Variable, w.Token(w.RefWalkBackUsefulUntil(semi, token.RParen)).Kind)
	require.Equal(t, lp+2, w.RefSkipIfTokenIsAny(lp, token.Blank))
}

func TestRefInsert(t *testing.T) {
	w := FromTokens(kinds(token.Variable, token.Semicolon))
	next := w.RefInsert(1, token.New(token.Whitespace, " "))
	require.Equal(t, 2, next)
	require.Equal(t, 3, w.Len())
	require.Equal(t, token.Whitespace, w.Token(1).Kind)
	require.True(t, w.Found().Has(token.Whitespace))
}

func TestRefSkipBlocks(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		start token.Kind
		next  token.Kind // first useful token after the skipped construct
	}{
		{"if chain", `<?php if ($a) { x(); } elseif ($b) { y(); } else { z(); } $c = 1;`, token.KwIf, token.Variable},
		{"if without else", `<?php if ($a) { x(); } echo 1;`, token.KwIf, token.KwEcho},
		{"braceless if else", `<?php if ($a) x(); else y(); $b;`, token.KwIf, token.Variable},
		{"else if", `<?php if ($a) { } else if ($b) { } else { } echo 2;`, token.KwIf, token.KwEcho},
		{"alternate if", `<?php if ($a): x(); else: y(); endif; $b;`, token.KwIf, token.Variable},
		{"nested alternate if", `<?php if ($a): if ($b): x(); endif; y(); endif; echo 1;`, token.KwIf, token.KwEcho},
		{"do while", `<?php do { $a++; } while ($a < 3); echo 1;`, token.KwDo, token.KwEcho},
		{"while", `<?php while ($a) { $a--; } echo 1;`, token.KwWhile, token.KwEcho},
		{"while alternate", `<?php while ($a): x(); y(); endwhile; echo 1;`, token.KwWhile, token.KwEcho},
		{"while alternate nested do", `<?php while ($a): do { x(); } while ($b); endwhile; echo 1;`, token.KwWhile, token.KwEcho},
		{"braceless while", `<?php while ($a) x(); echo 1;`, token.KwWhile, token.KwEcho},
		{"for", `<?php for ($i = 0; $i < 3; $i++) { f($i); } echo 1;`, token.KwFor, token.KwEcho},
		{"foreach", `<?php foreach ($xs as $k => $v) { f([$k, $v]); } echo 1;`, token.KwForeach, token.KwEcho},
		{"foreach alternate", `<?php foreach ($xs as $x): f($x); endforeach; echo 1;`, token.KwForeach, token.KwEcho},
		{"switch", `<?php switch ($a) { case 1: break; default: f(); } echo 1;`, token.KwSwitch, token.KwEcho},
		{"try catch finally", `<?php try { f(); } catch (A $e) { } catch (B $e) { } finally { g(); } echo 1;`, token.KwTry, token.KwEcho},
		{"statement", `<?php $a = [1, 2]; echo 1;`, token.Variable, token.KwEcho},
		{"closure statement", `<?php $f = function ($a) { return $a; }; echo 1;`, token.Variable, token.KwEcho},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := mustWalker(t, tt.src)
			seekTo(t, w, tt.start, 1)
			end := w.RefSkipBlocks(w.Ptr())
			require.True(t, w.InRange(end))
			require.True(t, w.RightIsAt(end, tt.next, token.Futile),
				"after %s got %s", w.Token(end).Kind, w.Token(w.RightIdxFrom(end, token.Futile)).Kind)
		})
	}
}

func TestRefSkipBlocksStopsAtCloseTag(t *testing.T) {
	w := mustWalker(t, "<?php echo 1 ?>tail")
	seekTo(t, w, token.KwEcho, 1)
	end := w.RefSkipBlocks(w.Ptr())
	require.Equal(t, token.CloseTag, w.Token(end).Kind)
}

func TestRefSkipBlocksRunsOff(t *testing.T) {
	w := mustWalker(t, "<?php $a = 1")
	require.Equal(t, w.Len()-1, w.RefSkipBlocks(1))
}
