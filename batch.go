package lloyd

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Job is one independent input to RunBatch.
type Job struct {
	Points  []Point
	K       int
	Initial []Point
	// Options are applied after the batch-wide options.
	Options []Option
}

// RunBatch runs independent jobs in parallel and returns their results in
// job order. Each job runs single-threaded exactly as Run would.
//
// The first failing job cancels the jobs that have not started yet and its
// error is returned, annotated with the job index. Jobs that have not
// started when ctx is cancelled are skipped and ctx.Err() is returned.
func RunBatch(ctx context.Context, jobs []Job, optFns ...Option) ([]*Result, error) {
	batch := applyOptions(optFns)
	results := make([]*Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batch.concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			o := batch
			for _, fn := range job.Options {
				fn(&o)
			}
			o.logger = o.logger.WithJob(i)

			res, err := run(gctx, job.Points, job.K, job.Initial, o)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	err := g.Wait()

	converged := 0
	for _, r := range results {
		if r != nil && r.Converged {
			converged++
		}
	}
	batch.logger.LogBatch(ctx, len(jobs), converged, err)

	if err != nil {
		return nil, err
	}
	return results, nil
}
