// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/katalvlaran/spinlab/sparse"
	"github.com/katalvlaran/spinlab/timing"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Time dense against CSR kernels on the 1-D Laplacian",
		Long: `Builds the tridiagonal finite-difference Laplacian at each size and times
MatVec and matrix-matrix products in dense and CSR storage, reporting
mean ± stddev over the configured repeats, memory footprints and speedups.
gonum's mat.Dense and the james-bowman CSR run the same kernels as baselines.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, repeats := cfg.Compare.Sizes, cfg.Compare.Repeats
			if cmd.Flags().Changed("sizes") {
				sizes, _ = cmd.Flags().GetIntSlice("sizes")
			}
			if cmd.Flags().Changed("repeats") {
				repeats, _ = cmd.Flags().GetInt("repeats")
			}

			start := time.Now()
			cmp, err := timing.Compare(cmd.Context(), sizes, repeats, logger)
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}
			logger.Info("comparison finished", zap.Int("sizes", len(cmp.Rows)), zap.Duration("elapsed", time.Since(start)))

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), cmp)
			}
			printComparison(cmd.OutOrStdout(), cmp)

			return nil
		},
	}
	cmd.Flags().IntSlice("sizes", nil, "Matrix sizes (default from config)")
	cmd.Flags().Int("repeats", 0, "Runs per kernel (default from config)")

	return cmd
}

func printComparison(w io.Writer, cmp timing.Comparison) {
	fmt.Fprintf(w, "%6s %8s %9s %11s %11s %13s %13s %8s %13s %13s %8s | %13s %13s %13s %13s\n",
		"n", "nnz", "density", "dense B", "csr B", "dense matvec", "csr matvec", "speedup", "dense mul", "csr mul", "speedup",
		"gonum dense mv", "gonum csr mv", "gonum dense mul", "gonum csr mul")
	for _, r := range cmp.Rows {
		fmt.Fprintf(w, "%6d %8d %9.5f %11d %11d %13v %13v %8s %13v %13v %8s | %13v %13v %13v %13v\n",
			r.Size, r.NNZ, r.Density, r.DenseBytes, r.SparseBytes,
			r.DenseMatVec.Mean, r.SparseMatVec.Mean, ratio(r.MatVecSpeedup),
			r.DenseMul.Mean, r.SparseMul.Mean, ratio(r.MulSpeedup),
			r.GonumDenseMatVec.Mean, r.GonumSparseMatVec.Mean, r.GonumDenseMul.Mean, r.GonumSparseMul.Mean)
	}
	fmt.Fprintf(w, "%d runs per kernel\n", cmp.Repeats)
}

func ratio(x float64) string {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return "n/a"
	}

	return fmt.Sprintf("%.1fx", x)
}

func newLanczosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lanczos",
		Short: "Extreme eigenvalues of the sparse 1-D Laplacian",
		Long: `Runs Lanczos with full reorthogonalization on the CSR Laplacian and
checks the Ritz values against the analytic spectrum.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("n")
			k, _ := cmd.Flags().GetInt("k")
			which, _ := cmd.Flags().GetString("which")
			seed, _ := cmd.Flags().GetInt64("seed")
			maxIter, _ := cmd.Flags().GetInt("max-iter")

			opts := []sparse.LanczosOption{sparse.WithSeed(seed)}
			if maxIter > 0 {
				opts = append(opts, sparse.WithMaxIter(maxIter))
			}
			switch which {
			case "smallest":
				opts = append(opts, sparse.WithWhich(sparse.Smallest))
			case "largest":
				opts = append(opts, sparse.WithWhich(sparse.Largest))
			default:
				return fmt.Errorf("--which must be smallest or largest, got %q", which)
			}

			l, h, err := laplacian(n)
			if err != nil {
				return err
			}
			res, err := sparse.Lanczos(cmd.Context(), l, k, opts...)
			converged := err == nil
			switch {
			case errors.Is(err, sparse.ErrNoConvergence):
				logger.Warn("lanczos did not converge, reporting last Ritz values",
					zap.Int("iterations", res.Iterations))
			case err != nil:
				return fmt.Errorf("lanczos: %w", err)
			}

			exact := sparse.LaplacianEigenvalues(n, h)
			if which == "largest" {
				exact = exact[n-len(res.Values):]
			} else {
				exact = exact[:len(res.Values)]
			}
			logger.Info("lanczos finished", zap.Int("n", n), zap.Int("iterations", res.Iterations))

			out := cmd.OutOrStdout()
			if jsonOutput(cmd) {
				return writeJSON(out, map[string]any{
					"n":          n,
					"converged":  converged,
					"iterations": res.Iterations,
					"values":     res.Values,
					"residuals":  res.Residuals,
					"exact":      exact,
				})
			}
			fmt.Fprintf(out, "%4s %18s %18s %12s %12s\n", "#", "ritz", "exact", "error", "residual")
			for i, v := range res.Values {
				fmt.Fprintf(out, "%4d %18.8f %18.8f %12.3e %12.3e\n", i, v, exact[i], math.Abs(v-exact[i]), res.Residuals[i])
			}
			status := "converged"
			if !converged {
				status = "not converged"
			}
			fmt.Fprintf(out, "%d Krylov steps on n=%d, %s\n", res.Iterations, n, status)

			return nil
		},
	}
	cmd.Flags().Int("n", 200, "Laplacian size")
	cmd.Flags().Int("k", 4, "Number of eigenvalues")
	cmd.Flags().String("which", "smallest", "smallest or largest")
	cmd.Flags().Int64("seed", sparse.DefaultLanczosSeed, "Start vector seed")
	cmd.Flags().Int("max-iter", 0, "Krylov dimension cap (0 for the automatic budget, see sparse.DefaultLanczosMaxIter)")

	return cmd
}
