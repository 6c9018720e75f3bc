package huf

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// A Result is the outcome of one Job.
type Result struct {
	Job   Job
	Stats Stats
	Err   error
}

// DecompressFiles decodes every job, at most limit at a time (limit <= 0 means no limit).
// Jobs are independent: a failed job does not stop the others.
// Once ctx is done, jobs that have not started fail with ctx.Err().
// Results are in the order of jobs.
func DecompressFiles(ctx context.Context, jobs []Job, cfg Config, limit int) []Result {
	results := make([]Result, len(jobs))
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			results[i].Job = job
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Stats, results[i].Err = DecompressFile(job.In, job.Out, cfg)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
