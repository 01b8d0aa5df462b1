// SPDX-License-Identifier: MIT

package timing

import (
	"context"
	"errors"
	"fmt"

	jbsparse "github.com/james-bowman/sparse"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinlab/matrix"
	"github.com/katalvlaran/spinlab/sparse"
)

// ErrNoSizes is returned by Compare for an empty or non-positive size list.
var ErrNoSizes = errors.New("timing: sizes must be non-empty and positive")

// Row is the dense-vs-sparse measurement at one problem size. The Gonum*
// columns time gonum's BLAS-backed mat.Dense and the james-bowman CSR on the
// same operands, as outside baselines for our own kernels.
type Row struct {
	Size              int     `json:"size"`
	NNZ               int     `json:"nnz"`
	Density           float64 `json:"density"`
	DenseBytes        int64   `json:"dense_bytes"`
	SparseBytes       int64   `json:"sparse_bytes"`
	DenseMatVec       Result  `json:"dense_matvec"`
	SparseMatVec      Result  `json:"sparse_matvec"`
	DenseMul          Result  `json:"dense_mul"`
	SparseMul         Result  `json:"sparse_mul"`
	GonumDenseMatVec  Result  `json:"gonum_dense_matvec"`
	GonumSparseMatVec Result  `json:"gonum_sparse_matvec"`
	GonumDenseMul     Result  `json:"gonum_dense_mul"`
	GonumSparseMul    Result  `json:"gonum_sparse_mul"`
	MatVecSpeedup     float64 `json:"matvec_speedup"`
	MulSpeedup        float64 `json:"mul_speedup"`
}

// Comparison holds one Row per requested size, in request order.
type Comparison struct {
	Repeats int   `json:"repeats"`
	Rows    []Row `json:"rows"`
}

// Compare builds the finite-difference Laplacian at every size and times dense
// MatVec/Mul against their CSR counterparts, then the gonum baselines. Speedups
// compare our own dense and CSR kernels. A nil logger is replaced by a no-op.
// On cancellation the rows finished so far are returned with ctx.Err().
func Compare(ctx context.Context, sizes []int, repeats int, logger *zap.Logger) (Comparison, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	out := Comparison{Repeats: repeats}
	if len(sizes) == 0 {
		return out, ErrNoSizes
	}
	for _, n := range sizes {
		if n <= 0 {
			return out, ErrNoSizes
		}
	}

	for _, n := range sizes {
		row, err := compareOne(ctx, n, repeats, logger)
		if err != nil {
			return out, err
		}
		out.Rows = append(out.Rows, row)
		logger.Info("size compared",
			zap.Int("n", n),
			zap.Int("nnz", row.NNZ),
			zap.Duration("dense_matvec", row.DenseMatVec.Mean),
			zap.Duration("sparse_matvec", row.SparseMatVec.Mean),
			zap.Float64("matvec_speedup", row.MatVecSpeedup),
			zap.Float64("mul_speedup", row.MulSpeedup),
		)
	}

	return out, nil
}

func compareOne(ctx context.Context, n, repeats int, logger *zap.Logger) (Row, error) {
	h := 1 / float64(n+1)
	lap, err := sparse.Laplacian1D(n, h)
	if err != nil {
		return Row{}, fmt.Errorf("size %d: %w", n, err)
	}
	dense, err := lap.ToDense()
	if err != nil {
		return Row{}, fmt.Errorf("size %d: %w", n, err)
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i) * h
	}
	gd := mat.NewDense(n, n, append([]float64(nil), dense.RawData()...))
	gx := mat.NewVecDense(n, append([]float64(nil), x...))
	gs := lap.Gonum()
	logger.Debug("operands built", zap.Int("n", n), zap.Int64("sparse_bytes", lap.Bytes()))

	row := Row{
		Size:        n,
		NNZ:         lap.NNZ(),
		Density:     lap.Density(),
		DenseBytes:  sparse.DenseBytes(n, n),
		SparseBytes: lap.Bytes(),
	}
	steps := []struct {
		dst  *Result
		name string
		fn   func() error
	}{
		{&row.DenseMatVec, "dense matvec", func() error { _, err := matrix.MatVec(dense, x); return err }},
		{&row.SparseMatVec, "csr matvec", func() error { _, err := lap.MatVec(x); return err }},
		{&row.DenseMul, "dense mul", func() error { _, err := matrix.Mul(dense, dense); return err }},
		{&row.SparseMul, "csr mul", func() error { _, err := lap.Mul(lap); return err }},
		{&row.GonumDenseMatVec, "gonum dense matvec", func() error {
			var y mat.VecDense
			y.MulVec(gd, gx)
			return nil
		}},
		{&row.GonumSparseMatVec, "gonum csr matvec", func() error {
			gs.MulVecTo(make([]float64, n), false, x)
			return nil
		}},
		{&row.GonumDenseMul, "gonum dense mul", func() error {
			var p mat.Dense
			p.Mul(gd, gd)
			return nil
		}},
		{&row.GonumSparseMul, "gonum csr mul", func() error {
			var p jbsparse.CSR
			p.Mul(gs, gs)
			return nil
		}},
	}
	for _, s := range steps {
		if *s.dst, err = Measure(ctx, s.name, repeats, s.fn); err != nil {
			return Row{}, fmt.Errorf("size %d: %w", n, err)
		}
		logger.Debug("measured", zap.Int("n", n), zap.String("kernel", s.name), zap.Duration("mean", s.dst.Mean))
	}
	row.MatVecSpeedup = Speedup(row.DenseMatVec, row.SparseMatVec)
	row.MulSpeedup = Speedup(row.DenseMul, row.SparseMul)

	return row, nil
}
