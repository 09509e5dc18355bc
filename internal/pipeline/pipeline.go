package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"phpfmt/internal/lexer"
	"phpfmt/internal/pass"
	"phpfmt/internal/passes"
	"phpfmt/internal/token"
	"phpfmt/internal/trace"
)

var (
	// ErrInvariant reports a pass whose output does not lex.
	ErrInvariant = errors.New("pass produced text that does not lex")
	// ErrStopSteps may be returned by a step hook to keep the text produced
	// so far and skip the remaining passes.
	ErrStopSteps = errors.New("stop after this step")
)

// StepInfo describes one applied pass.
type StepInfo struct {
	Index   int // position in the pass list
	Total   int
	Pass    string
	Before  string
	After   string
	Skipped bool // rejected by the candidacy check
	Elapsed time.Duration
}

// Changed reports whether the pass altered the text.
func (s StepInfo) Changed() bool { return s.Before != s.After }

// Option configures a CodeFormatter.
type Option func(*CodeFormatter)

// WithRegistry sets the registry ForcePass resolves names against.
// The default is passes.DefaultRegistry().
func WithRegistry(r *pass.Registry) Option {
	return func(f *CodeFormatter) { f.registry = r }
}

// WithCandidacy skips passes whose Candidate check fails on the current text.
func WithCandidacy(on bool) Option {
	return func(f *CodeFormatter) { f.candidacy = on }
}

// WithStepHook calls fn after every pass. An error from fn aborts the run,
// except ErrStopSteps which ends it early with the current text.
func WithStepHook(fn func(StepInfo) error) Option {
	return func(f *CodeFormatter) { f.stepHook = fn }
}

// WithTracer overrides the tracer found in the context.
func WithTracer(t trace.Tracer) Option {
	return func(f *CodeFormatter) { f.tracer = t }
}

// WithPreserveComments restores the original text of every comment after
// the configured passes ran.
func WithPreserveComments() Option {
	return func(f *CodeFormatter) { f.preserveComments = true }
}

// CodeFormatter holds the configured pass list. The list is fixed after
// setup; FormatCode may then be called from several goroutines.
type CodeFormatter struct {
	passes           []pass.Pass
	registry         *pass.Registry
	candidacy        bool
	stepHook         func(StepInfo) error
	tracer           trace.Tracer
	preserveComments bool
}

// New returns an empty formatter.
func New(opts ...Option) *CodeFormatter {
	f := &CodeFormatter{}
	for _, opt := range opts {
		opt(f)
	}
	if f.registry == nil {
		f.registry = passes.DefaultRegistry()
	}
	return f
}

// NewDefault returns a formatter loaded with the default pass set.
func NewDefault(opts ...Option) *CodeFormatter {
	f := New(opts...)
	for _, p := range passes.DefaultPasses() {
		f.AddPass(p)
	}
	return f
}

// AddPass appends p; registration order is execution order.
func (f *CodeFormatter) AddPass(p pass.Pass) {
	f.passes = append(f.passes, p)
}

// ForcePass looks name up in the registry and appends it.
func (f *CodeFormatter) ForcePass(name, variant string) error {
	p, err := f.registry.Lookup(name, variant)
	if err != nil {
		return err
	}
	f.AddPass(p)
	return nil
}

// ForceSpecs applies ForcePass to every spec in order.
func (f *CodeFormatter) ForceSpecs(specs []pass.Spec) error {
	for _, s := range specs {
		if err := f.ForcePass(s.Name, s.Variant); err != nil {
			return err
		}
	}
	return nil
}

// Passes returns a copy of the configured list.
func (f *CodeFormatter) Passes() []pass.Pass {
	return append([]pass.Pass(nil), f.passes...)
}

// FormatCode folds the pass list over src. Passes are cloned first, so runs
// share no pass state. Cancellation is checked between passes only.
func (f *CodeFormatter) FormatCode(ctx context.Context, src string) (string, error) {
	tracer := f.tracer
	if tracer == nil {
		tracer = trace.FromContext(ctx)
	}
	parent := trace.ParentSpan(ctx)

	found, err := relex(src)
	if err != nil {
		return "", err
	}

	run := make([]pass.Pass, 0, len(f.passes)+1)
	for _, p := range f.passes {
		run = append(run, pass.Clone(p))
	}
	if f.preserveComments {
		comments, err := passes.CaptureComments(src)
		if err != nil {
			return "", err
		}
		run = append(run, passes.NewRestoreComments(comments))
	}

	text := src
	for i, p := range run {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		info := StepInfo{Index: i, Total: len(run), Pass: p.Name(), Before: text, After: text}

		if f.candidacy && !p.Candidate(text, found) {
			info.Skipped = true
			trace.Point(tracer, trace.ScopePass, p.Name(), "not a candidate", parent)
		} else {
			span := trace.Begin(tracer, trace.ScopePass, p.Name(), parent)
			start := time.Now()
			out, err := p.Format(text)
			info.Elapsed = time.Since(start)
			if err != nil {
				span.End("error")
				return "", fmt.Errorf("%s: %w", p.Name(), err)
			}
			if found, err = relex(out); err != nil {
				span.End("invariant")
				return "", fmt.Errorf("%w: %s: %w", ErrInvariant, p.Name(), err)
			}
			info.After = out
			span.WithExtra("changed", strconv.FormatBool(info.Changed())).End("")
			text = out
		}

		if f.stepHook != nil {
			if err := f.stepHook(info); err != nil {
				if errors.Is(err, ErrStopSteps) {
					return text, nil
				}
				return "", err
			}
		}
	}
	return text, nil
}

func relex(src string) (token.Set, error) {
	_, found, err := lexer.Tokenize(src)
	return found, err
}
