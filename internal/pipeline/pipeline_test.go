package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"phpfmt/internal/lexer"
	"phpfmt/internal/pass"
	"phpfmt/internal/passes"
	"phpfmt/internal/token"
	"phpfmt/internal/trace"
)

// stamp appends a comment naming how often this instance ran.
type stamp struct {
	runs int
}

func (s *stamp) Name() string                     { return "stamp" }
func (s *stamp) Candidate(string, token.Set) bool { return true }
func (s *stamp) Clone() pass.Pass                 { return &stamp{} }

func (s *stamp) Format(src string) (string, error) {
	s.runs++
	return src + strings.Repeat("/*run*/", s.runs), nil
}

// breaker emits an unterminated string.
type breaker struct{}

func (breaker) Name() string                     { return "breaker" }
func (breaker) Candidate(string, token.Set) bool { return true }
func (breaker) Format(src string) (string, error) {
	return src + "'open", nil
}

// shout upper-cases every comment.
type shout struct{}

func (shout) Name() string { return "shout" }

func (shout) Candidate(_ string, found token.Set) bool { return found.Has(token.Comment) }

func (shout) Format(src string) (string, error) {
	w, err := pass.NewWalker(src)
	if err != nil {
		return "", err
	}
	for {
		t, ok := w.Next()
		if !ok {
			break
		}
		if t.Kind == token.Comment {
			w.Append(strings.ToUpper(t.Text))
			continue
		}
		w.Append(t.Text)
	}
	return w.Code(), nil
}

func TestRefactorThroughPipeline(t *testing.T) {
	f := New()
	require.NoError(t, f.ForcePass("Refactor", "foo ( $x ) => bar ( $x )"))
	out, err := f.FormatCode(context.Background(), "<?php foo($y);")
	require.NoError(t, err)
	require.Equal(t, "<?php bar($y);", out)
}

func TestDeterministic(t *testing.T) {
	src := "<?php\nif ($a) {\n  foo( 1 ) ;\n\n\n\n}\n"
	build := func() *CodeFormatter {
		f := NewDefault()
		require.NoError(t, f.ForcePass("ShortArray", ""))
		return f
	}
	first, err := build().FormatCode(context.Background(), src)
	require.NoError(t, err)
	second, err := build().FormatCode(context.Background(), src)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, "<?php\nif ($a) {\n\tfoo( 1 );\n\n}\n", first)
}

func TestRunsDoNotShareState(t *testing.T) {
	orig := &stamp{}
	f := New()
	f.AddPass(orig)

	out, err := f.FormatCode(context.Background(), "<?php ")
	require.NoError(t, err)
	require.Equal(t, "<?php /*run*/", out)

	out, err = f.FormatCode(context.Background(), "<?php $b;")
	require.NoError(t, err)
	require.Equal(t, "<?php $b;/*run*/", out)
	require.Zero(t, orig.runs)
}

func TestInvariantViolation(t *testing.T) {
	f := New()
	f.AddPass(breaker{})
	_, err := f.FormatCode(context.Background(), "<?php $a;")
	require.ErrorIs(t, err, ErrInvariant)
	require.ErrorIs(t, err, lexer.ErrLex)
	require.Contains(t, err.Error(), "breaker")
}

func TestInvalidInput(t *testing.T) {
	_, err := NewDefault().FormatCode(context.Background(), "<?php /* open")
	require.ErrorIs(t, err, lexer.ErrLex)
	require.NotErrorIs(t, err, ErrInvariant)
}

func TestForcePassErrors(t *testing.T) {
	f := New()
	require.ErrorIs(t, f.ForcePass("Nope", ""), pass.ErrUnknownPass)
	require.ErrorIs(t, f.ForcePass("RTrim", "x"), pass.ErrBadVariant)
	require.Empty(t, f.Passes())

	require.NoError(t, f.ForceSpecs([]pass.Spec{pass.ParseSpec("RTrim"), pass.ParseSpec("LeftWordWrap:40")}))
	names := []string{}
	for _, p := range f.Passes() {
		names = append(names, p.Name())
	}
	require.Equal(t, []string{"RTrim", "LeftWordWrap"}, names)
}

func TestCustomRegistry(t *testing.T) {
	r := pass.NewRegistry()
	r.Register("shout", func(string) (pass.Pass, error) { return shout{}, nil })
	f := New(WithRegistry(r))
	require.NoError(t, f.ForcePass("shout", ""))
	require.ErrorIs(t, f.ForcePass("RTrim", ""), pass.ErrUnknownPass)
}

func TestCandidacy(t *testing.T) {
	src := "<?php $a;"
	var steps []StepInfo
	hook := func(s StepInfo) error {
		steps = append(steps, s)
		return nil
	}

	f := New(WithCandidacy(true), WithStepHook(hook))
	f.AddPass(shout{})
	out, err := f.FormatCode(context.Background(), src)
	require.NoError(t, err)
	require.Equal(t, src, out)
	require.Len(t, steps, 1)
	require.True(t, steps[0].Skipped)

	out, err = f.FormatCode(context.Background(), "<?php // hi")
	require.NoError(t, err)
	require.Equal(t, "<?php // HI", out)
	require.False(t, steps[1].Skipped)
	require.True(t, steps[1].Changed())
}

func TestStepHook(t *testing.T) {
	var seen []string
	f := New(WithStepHook(func(s StepInfo) error {
		seen = append(seen, s.Pass)
		if s.Pass == "TrimSpaceBeforeSemicolon" {
			return ErrStopSteps
		}
		return nil
	}))
	f.AddPass(passes.TrimSpaceBeforeSemicolon{})
	f.AddPass(passes.RTrim{})

	out, err := f.FormatCode(context.Background(), "<?php $a ;  ")
	require.NoError(t, err)
	require.Equal(t, "<?php $a;  ", out)
	require.Equal(t, []string{"TrimSpaceBeforeSemicolon"}, seen)

	boom := errors.New("boom")
	f = New(WithStepHook(func(StepInfo) error { return boom }))
	f.AddPass(passes.RTrim{})
	_, err = f.FormatCode(context.Background(), "<?php $a;")
	require.ErrorIs(t, err, boom)
}

func TestPreserveComments(t *testing.T) {
	f := New(WithPreserveComments())
	f.AddPass(shout{})
	out, err := f.FormatCode(context.Background(), "<?php $a; // keep me\n/* and me */\n")
	require.NoError(t, err)
	require.Equal(t, "<?php $a; // keep me\n/* and me */\n", out)
	require.Len(t, f.Passes(), 1)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewDefault().FormatCode(ctx, "<?php $a;")
	require.ErrorIs(t, err, context.Canceled)
}

func TestPassSpans(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDetail)
	ctx := trace.WithTracer(context.Background(), ring)
	_, err := NewDefault().FormatCode(ctx, "<?php $a;\n")
	require.NoError(t, err)

	var ended []string
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindSpanEnd {
			ended = append(ended, ev.Name)
		}
	}
	require.Equal(t, passes.DefaultNames, ended)
}
