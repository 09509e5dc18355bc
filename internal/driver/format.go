package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"phpfmt/internal/observ"
	"phpfmt/internal/pass"
	"phpfmt/internal/passes"
	"phpfmt/internal/pipeline"
	"phpfmt/internal/source"
	"phpfmt/internal/trace"
)

// ErrNoFiles is returned when the given paths hold nothing to format.
var ErrNoFiles = errors.New("format: no source files found")

// FormatOptions configures code formatting.
type FormatOptions struct {
	Check  bool
	Stdout bool

	// Specs is the pass list; empty means passes.DefaultNames.
	Specs            []pass.Spec
	PreserveComments bool

	Jobs        int      // 0 = GOMAXPROCS
	Exclude     []string // globs relative to ExcludeBase
	ExcludeBase string

	Cache    *DiskCache    // nil disables caching
	Progress ProgressSink  // optional
	Timer    *observ.Timer // receives per-pass totals when set

	// StepHook sees every pass of every file; see pipeline.WithStepHook.
	// Setting it bypasses the cache.
	StepHook func(pipeline.StepInfo) error
}

func (opts FormatOptions) specs() []pass.Spec {
	if len(opts.Specs) > 0 {
		return opts.Specs
	}
	specs := make([]pass.Spec, len(passes.DefaultNames))
	for i, name := range passes.DefaultNames {
		specs[i] = pass.Spec{Name: name}
	}
	return specs
}

// Fingerprint identifies the transformation for cache keys.
func (opts FormatOptions) Fingerprint() string {
	specs := opts.specs()
	parts := make([]string, 0, len(specs)+1)
	for _, s := range specs {
		part := s.String()
		// a script edit must invalidate results produced by the old script
		if s.Name == "Lua" {
			if script, err := os.ReadFile(s.Variant); err == nil {
				part += "@" + CacheKey("", script).String()
			}
		}
		parts = append(parts, part)
	}
	if opts.PreserveComments {
		parts = append(parts, "+preserve-comments")
	}
	return strings.Join(parts, "\n")
}

// NewFormatter builds the pipeline described by opts.
func NewFormatter(opts FormatOptions, extra ...pipeline.Option) (*pipeline.CodeFormatter, error) {
	var popts []pipeline.Option
	if opts.PreserveComments {
		popts = append(popts, pipeline.WithPreserveComments())
	}
	f := pipeline.New(append(popts, extra...)...)
	if err := f.ForceSpecs(opts.specs()); err != nil {
		return nil, err
	}
	return f, nil
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool
	Err       error
	Formatted []byte
	Elapsed   time.Duration
}

// FormatPaths formats provided files or directories (recursively collecting .php files).
// When opts.Check is true, files are not modified; Changed indicates whether formatting
// would update the file contents. When opts.Stdout is true, formatted content is returned
// in the results without touching files on disk. A failing file is reported in its
// result and does not stop the others.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := CollectFiles(ctx, paths, opts.Exclude, opts.ExcludeBase)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	// reject bad pass specs before touching any file
	if _, err := NewFormatter(opts); err != nil {
		return nil, err
	}

	r := newRunner(opts)
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FormatResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.formatFile(gctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	r.report()
	return results, nil
}

// FormatSource formats in-memory content such as stdin. Nothing is written.
func FormatSource(ctx context.Context, name string, src []byte, opts FormatOptions) FormatResult {
	r := newRunner(opts)
	res := FormatResult{Path: name}
	start := time.Now()
	res.Formatted, res.Changed, res.Cached, res.Err = r.formatBytes(ctx, src)
	res.Elapsed = time.Since(start)
	r.report()
	return res
}

type runner struct {
	opts        FormatOptions
	fingerprint string

	mu     sync.Mutex
	names  []string
	totals []time.Duration
	files  int
}

func newRunner(opts FormatOptions) *runner {
	return &runner{opts: opts, fingerprint: opts.Fingerprint()}
}

func (r *runner) formatFile(ctx context.Context, path string) (result FormatResult) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, path, trace.ParentSpan(ctx))
	ctx = trace.WithParentSpan(ctx, span.ID())

	result = FormatResult{Path: path}
	start := time.Now()
	defer func() {
		result.Elapsed = time.Since(start)
		status := StatusDone
		switch {
		case result.Err != nil:
			status = StatusError
			span.End("error")
		case result.Cached:
			status = StatusCached
			span.End("cached")
		default:
			span.End("")
		}
		emit(r.opts.Progress, Event{File: path, Stage: StageWrite, Status: status, Err: result.Err, Elapsed: result.Elapsed})
	}()

	emit(r.opts.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})
	// #nosec G304 -- path comes from the caller's file list
	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = err
		return result
	}

	emit(r.opts.Progress, Event{File: path, Stage: StageFormat, Status: StatusWorking})
	formatted, changed, cached, err := r.formatBytes(ctx, data)
	result.Cached = cached
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", path, err)
		return result
	}

	if r.opts.Check {
		result.Changed = changed
		return result
	}
	if r.opts.Stdout {
		result.Formatted = formatted
		result.Changed = changed
		return result
	}
	if changed {
		emit(r.opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
			result.Err = err
		} else {
			result.Changed = true
		}
	}
	return result
}

// formatBytes normalises src (BOM, CRLF), runs the pipeline and restores the
// original encoding on the way out.
func (r *runner) formatBytes(ctx context.Context, src []byte) (formatted []byte, changed, cached bool, err error) {
	key := CacheKey(r.fingerprint, src)
	useCache := r.opts.Cache != nil && r.opts.StepHook == nil
	if useCache {
		var payload DiskPayload
		if ok, getErr := r.opts.Cache.Get(key, &payload); getErr == nil && ok {
			return payload.Formatted, payload.Changed, true, nil
		}
	}

	content, flags := source.Normalize(src)
	file := &source.File{Content: content, Flags: flags}

	f, err := NewFormatter(r.opts, pipeline.WithStepHook(r.observe))
	if err != nil {
		return nil, false, false, err
	}
	out, err := f.FormatCode(ctx, string(content))
	if err != nil {
		return nil, false, false, err
	}
	r.mu.Lock()
	r.files++
	r.mu.Unlock()

	formatted = file.Restore([]byte(out))
	changed = !bytes.Equal(src, formatted)
	if useCache {
		// a failed store only costs a later re-format
		_ = r.opts.Cache.Put(key, &DiskPayload{Formatted: formatted, Changed: changed})
	}
	return formatted, changed, false, nil
}

func (r *runner) observe(info pipeline.StepInfo) error {
	if r.opts.Timer != nil {
		r.record(info)
	}
	if r.opts.StepHook != nil {
		return r.opts.StepHook(info)
	}
	return nil
}

func (r *runner) record(info pipeline.StepInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for len(r.totals) <= info.Index {
		r.totals = append(r.totals, 0)
		r.names = append(r.names, "")
	}
	r.names[info.Index] = info.Pass
	r.totals[info.Index] += info.Elapsed
}

func (r *runner) report() {
	if r.opts.Timer == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	note := fmt.Sprintf("%d files", r.files)
	for i, name := range r.names {
		r.opts.Timer.Add("pass "+name, r.totals[i], note)
	}
}
