package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	mathrand "math/rand/v2"
	"time"

	"github.com/getmockd/fakegen/pkg/fake"
	"github.com/getmockd/fakegen/pkg/logging"
	"github.com/getmockd/fakegen/pkg/schema"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidCount is returned when fewer than one record is requested.
var ErrInvalidCount = errors.New("count must be at least 1")

// parallelThreshold is the smallest run that is spread across workers.
const parallelThreshold = 64

// Runner evaluates a compiled definition repeatedly.
//
// Every repeat i draws from its own PCG source seeded with (seed, i), so a
// seeded run yields the same records whatever the worker count. Without
// WithSeed a fresh seed is chosen per Run and logged at debug level.
type Runner struct {
	provider fake.Provider
	seed     uint64
	seeded   bool
	workers  int
	logger   *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithSeed makes runs reproducible.
func WithSeed(seed uint64) Option {
	return func(r *Runner) {
		r.seed = seed
		r.seeded = true
	}
}

// WithWorkers sets how many repeats may be evaluated concurrently. Values
// below 1 mean 1.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = max(n, 1)
	}
}

// WithLogger sets the logger for run summaries.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a runner drawing leaf values from provider. A nil
// provider means fake.New().
func NewRunner(provider fake.Provider, opts ...Option) *Runner {
	if provider == nil {
		provider = fake.New()
	}
	r := &Runner{
		provider: provider,
		workers:  1,
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates def n times. One record is returned as an Object; more
// than one as a []Object in repeat order.
func (r *Runner) Run(ctx context.Context, def *schema.Definition, n int) (any, error) {
	records, err := r.Records(ctx, def, n)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return records[0], nil
	}
	return records, nil
}

// Records evaluates def n times and returns the records in repeat order.
func (r *Runner) Records(ctx context.Context, def *schema.Definition, n int) ([]Object, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCount, n)
	}
	if def == nil {
		return nil, errors.New("definition is nil")
	}

	seed := r.seed
	if !r.seeded {
		seed = mathrand.Uint64()
	}

	start := time.Now()
	out := make([]Object, n)
	workers := r.workers
	if n < parallelThreshold {
		workers = 1
	}

	if workers == 1 {
		for i := range out {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out[i] = r.record(def, seed, i)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := range out {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				out[i] = r.record(def, seed, i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	r.logger.Debug("records generated",
		"count", n,
		"workers", workers,
		"seed", seed,
		"seeded", r.seeded,
		"elapsed", time.Since(start),
	)
	return out, nil
}

func (r *Runner) record(def *schema.Definition, seed uint64, i int) Object {
	rng := mathrand.New(mathrand.NewPCG(seed, uint64(i)))
	return EvaluateDefinition(def, rng, r.provider)
}
