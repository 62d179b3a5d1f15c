package jobs

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/reallyasi9/lexperm/internal/perm"
)

// Result is the outcome of one job. Err is set if the job's arguments were
// rejected, in which case Permutation is nil.
type Result struct {
	Job         Job
	Permutation perm.Sequence
	Err         error
}

// Failed counts the results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Run evaluates every job using at most workers goroutines (GOMAXPROCS if
// workers <= 0). Results are returned in the order of the list. Per-job
// failures are reported in Result.Err; Run itself only fails if ctx is done.
func Run(ctx context.Context, list List, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(list))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range list {
		i, job := i, job
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := perm.Permutation(job.Index, job.Sequence)
			results[i] = Result{Job: job, Permutation: p, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
