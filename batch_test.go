package lloyd

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/hupe1980/lloyd/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatch(t *testing.T) {
	rng := testutil.NewRNG(1)

	jobs := make([]Job, 8)
	for i := range jobs {
		pts := rng.UniformPoints(50, -10, 10)
		jobs[i] = Job{Points: pts, K: 3, Initial: pts[:3]}
	}
	jobs[0] = Job{Points: coursePoints(), K: 2, Initial: []Point{Pt(1.5, 1), Pt(4.5, 3.5)}}

	results, err := RunBatch(context.Background(), jobs, WithConcurrency(3))
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	assert.Equal(t, []Point{Pt(1.5, 1), Pt(4.5, 3.5)}, results[0].Centroids)

	// Parallel execution must not change any result.
	for i, job := range jobs {
		want, err := Run(job.Points, job.K, job.Initial)
		require.NoError(t, err)
		assert.Equal(t, want.Centroids, results[i].Centroids, "job %d", i)
		assert.Equal(t, want.Iterations, results[i].Iterations, "job %d", i)
	}
}

func TestRunBatch_JobOptions(t *testing.T) {
	var traced atomic.Int32
	jobs := []Job{
		{Points: coursePoints(), K: 2, Initial: []Point{Pt(1, 1), Pt(2, 1)}, Options: []Option{WithTrace()}},
		{Points: coursePoints(), K: 2, Initial: []Point{Pt(1, 1), Pt(2, 1)}, Options: []Option{WithMaxIterations(1)}},
	}

	results, err := RunBatch(context.Background(), jobs,
		WithObserver(func(Snapshot) { traced.Add(1) }),
	)
	require.NoError(t, err)

	assert.Len(t, results[0].Trace, results[0].Iterations)
	assert.Nil(t, results[1].Trace)
	assert.False(t, results[1].Converged)
	assert.Equal(t, int32(results[0].Iterations+results[1].Iterations), traced.Load())
}

func TestRunBatch_Error(t *testing.T) {
	jobs := []Job{
		{Points: coursePoints(), K: 2, Initial: []Point{Pt(1, 1), Pt(2, 1)}},
		{Points: coursePoints(), K: 0},
	}

	results, err := RunBatch(context.Background(), jobs)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "job 1")
}

func TestRunBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []Job{{Points: coursePoints(), K: 2, Initial: []Point{Pt(1, 1), Pt(2, 1)}}}

	_, err := RunBatch(ctx, jobs)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBatch_Empty(t *testing.T) {
	results, err := RunBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
