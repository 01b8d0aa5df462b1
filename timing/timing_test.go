// SPDX-License-Identifier: MIT

package timing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// fakeClock advances by the next step on every call pair (start, end).
func fakeClock(t *testing.T, steps ...time.Duration) {
	t.Helper()
	now := time.Unix(0, 0)
	calls := 0
	clock = func() time.Time {
		if calls%2 == 1 && len(steps) > 0 {
			now = now.Add(steps[0])
			steps = steps[1:]
		}
		calls++
		return now
	}
	t.Cleanup(func() { clock = time.Now })
}

func TestMeasure_Statistics(t *testing.T) {
	fakeClock(t, 10*time.Millisecond, 20*time.Millisecond, 30*time.Millisecond)

	calls := 0
	r, err := Measure(context.Background(), "k", 3, func() error { calls++; return nil })
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, Result{
		Name:   "k",
		Runs:   3,
		Min:    10 * time.Millisecond,
		Max:    30 * time.Millisecond,
		Mean:   20 * time.Millisecond,
		StdDev: 10 * time.Millisecond,
		Total:  60 * time.Millisecond,
	}, r)
	assert.Equal(t, "k: 20ms ± 10ms (10ms … 30ms, 3 runs)", r.String())
}

func TestMeasure_ErrorsAndCancel(t *testing.T) {
	_, err := Measure(context.Background(), "k", 0, func() error { return nil })
	require.ErrorIs(t, err, ErrNoRuns)

	boom := errors.New("boom")
	n := 0
	r, err := Measure(context.Background(), "k", 5, func() error {
		n++
		if n == 2 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, r.Runs)

	ctx, cancel := context.WithCancel(context.Background())
	n = 0
	r, err = Measure(ctx, "k", 5, func() error {
		n++
		if n == 3 {
			cancel()
		}
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, r.Runs)
}

func TestSpeedup(t *testing.T) {
	assert.Equal(t, 4.0, Speedup(Result{Mean: 8}, Result{Mean: 2}))
	assert.Equal(t, 0.0, Speedup(Result{Mean: 8}, Result{}))
}

func TestCompare(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	cmp, err := Compare(context.Background(), []int{8, 32}, 2, zap.New(core))
	require.NoError(t, err)
	require.Len(t, cmp.Rows, 2)

	r := cmp.Rows[1]
	assert.Equal(t, 32, r.Size)
	assert.Equal(t, 3*32-2, r.NNZ)
	assert.Equal(t, int64(32*32*8), r.DenseBytes)
	assert.Less(t, r.SparseBytes, r.DenseBytes)
	assert.Equal(t, 2, r.DenseMul.Runs)
	assert.Equal(t, "csr matvec", r.SparseMatVec.Name)
	for name, res := range map[string]Result{
		"gonum dense matvec": r.GonumDenseMatVec,
		"gonum csr matvec":   r.GonumSparseMatVec,
		"gonum dense mul":    r.GonumDenseMul,
		"gonum csr mul":      r.GonumSparseMul,
	} {
		assert.Equal(t, name, res.Name)
		assert.Equal(t, 2, res.Runs, name)
	}
	assert.Equal(t, 2, logs.FilterMessage("size compared").Len())

	_, err = Compare(context.Background(), nil, 1, nil)
	require.ErrorIs(t, err, ErrNoSizes)
	_, err = Compare(context.Background(), []int{4, -1}, 1, nil)
	require.ErrorIs(t, err, ErrNoSizes)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Compare(ctx, []int{4}, 1, zap.NewNop())
	require.ErrorIs(t, err, context.Canceled)
}
