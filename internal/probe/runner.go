package probe

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelism is the number of probes run at once by default.
const DefaultParallelism = 4

// Runner executes every registered probe exactly once.
type Runner struct {
	parallelism int
	logger      *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithParallelism bounds how many probes run at once. Values below one
// run probes sequentially.
func WithParallelism(n int) Option {
	return func(r *Runner) {
		if n < 1 {
			n = 1
		}
		r.parallelism = n
	}
}

// WithLogger sets the logger used for per-probe debug records.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		parallelism: DefaultParallelism,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes all probes in reg and returns a report whose entries are in
// registration order regardless of completion order. A probe that panics or
// is not started before ctx is canceled is reported as NotFound.
func (r *Runner) Run(ctx context.Context, reg *Registry) Report {
	regs := reg.Registrations()
	entries := make([]Entry, len(regs))

	// Probes never fail the group, so a plain errgroup is enough.
	var g errgroup.Group
	sem := make(chan struct{}, r.parallelism)

	for i, rg := range regs {
		i, rg := i, rg

		g.Go(func() error {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				entries[i] = Entry{
					Name:     rg.Probe.Name(),
					Required: rg.Required,
					Result:   NotFound("canceled before start"),
				}
				return nil
			}

			start := time.Now()
			res := check(ctx, rg.Probe)
			elapsed := time.Since(start)

			entries[i] = Entry{
				Name:     rg.Probe.Name(),
				Required: rg.Required,
				Result:   res,
				Duration: elapsed,
			}

			r.logger.Debug("probe_complete",
				slog.String("probe", rg.Probe.Name()),
				slog.String("status", res.Status.String()),
				slog.Bool("required", rg.Required),
				slog.Bool("advisory", res.Advisory),
				slog.Duration("duration", elapsed))
			return nil
		})
	}
	_ = g.Wait()

	report := NewReport(entries)
	r.logger.Debug("probes_complete",
		slog.Int("probes", len(entries)),
		slog.Bool("ready", report.Ready),
		slog.Any("unmet", report.Unmet()))
	return report
}

// check runs p, converting a panic into NotFound.
func check(ctx context.Context, p Probe) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			res = NotFound(fmt.Sprintf("probe panicked: %v", rec))
		}
	}()
	return p.Check(ctx)
}
