// Package workload drives the containers through configured workloads,
// checks their invariants and reports the resulting storage statistics.
package workload

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/pavanmanishd/containers"
	"github.com/pavanmanishd/containers/internal/config"
	"github.com/pavanmanishd/containers/internal/instrument"
)

var (
	// ErrUnknownKind is returned for a workload kind the runner does not implement.
	ErrUnknownKind = errors.New("workload: unknown kind")
	// ErrInvariant is wrapped by every failed container invariant check.
	ErrInvariant = errors.New("workload: invariant violated")
)

// Result describes one completed workload run.
type Result struct {
	RunID     string
	Name      string
	Kind      string
	Ops       int
	Duration  time.Duration
	Container string
	// Reallocations is summed over every repetition.
	Reallocations int

	// Final storage snapshot of the last repetition; one of them is set.
	Vector *containers.VectorMetrics
	List   *containers.ListMetrics
}

// Runner executes workloads.
type Runner struct {
	log *zap.Logger
	rec *instrument.Recorder
}

// NewRunner returns a Runner that logs to log and, when rec is non-nil,
// publishes every run to rec.
func NewRunner(log *zap.Logger, rec *instrument.Recorder) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log, rec: rec}
}

// Run executes w.Repeat repetitions of the workload. The context is checked
// between repetitions.
func (r *Runner) Run(ctx context.Context, w config.Workload) (res Result, err error) {
	res = Result{RunID: uuid.NewString(), Name: w.Name, Kind: w.Kind}
	fn, ok := kinds[w.Kind]
	if !ok {
		return res, fmt.Errorf("%w: %q", ErrUnknownKind, w.Kind)
	}

	log := r.log.With(
		zap.String("run_id", res.RunID),
		zap.String("workload", w.Name),
		zap.String("kind", w.Kind),
	)
	log.Debug("workload started", zap.Int("count", w.Count), zap.Int("repeat", w.Repeat))

	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)
		r.record(res, err)
		if err != nil {
			log.Error("workload failed", zap.Error(err), zap.Int("ops", res.Ops))
			return
		}
		log.Info("workload finished",
			zap.Int("ops", res.Ops),
			zap.Duration("duration", res.Duration),
		)
	}()

	for range max(w.Repeat, 1) {
		if err = ctx.Err(); err != nil {
			return res, fmt.Errorf("workload %s: %w", w.Name, err)
		}
		var out outcome
		out, err = runKind(fn, w)
		res.Ops += out.ops
		if err != nil {
			return res, fmt.Errorf("workload %s: %w", w.Name, err)
		}
		res.Container, res.Vector, res.List = out.container, out.vector, out.list
		if out.vector != nil {
			res.Reallocations += out.vector.Reallocations
		}
	}
	return res, nil
}

// RunAll runs every workload in cfg in order. A failing workload does not
// stop the others unless the context is done; all failures are returned
// combined.
func (r *Runner) RunAll(ctx context.Context, cfg *config.Config) ([]Result, error) {
	results := make([]Result, 0, len(cfg.Workloads))
	var errs error
	for _, w := range cfg.Workloads {
		res, err := r.Run(ctx, w)
		results = append(results, res)
		if err == nil {
			continue
		}
		errs = multierr.Append(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	return results, errs
}

func (r *Runner) record(res Result, err error) {
	if r.rec == nil {
		return
	}
	r.rec.ObserveRun(res.Name, res.Kind, res.Ops, res.Duration, err)
	if res.Vector != nil {
		m := *res.Vector
		m.Reallocations = res.Reallocations
		r.rec.RecordVector(res.Name, res.Container, m)
	}
	if res.List != nil {
		r.rec.RecordList(res.Name, *res.List)
	}
}

// runKind converts container panics into invariant errors.
func runKind(fn kindFunc, w config.Workload) (out outcome, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrInvariant, p)
		}
	}()
	return fn(w)
}

func violated(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}
