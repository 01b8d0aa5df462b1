// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spinlab/spin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Energy levels against field magnitude (Breit–Rabi diagram)",
		Long: `Diagonalizes the configured system at evenly spaced field magnitudes along
the configured field direction. For one spin-1/2 nucleus with isotropic
coupling the closed-form Breit–Rabi levels are checked as well.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := spinSystem(cmd)
			if err != nil {
				return err
			}
			from, to, points := cfg.Sweep.From, cfg.Sweep.To, cfg.Sweep.Points
			if cmd.Flags().Changed("from") {
				from, _ = cmd.Flags().GetFloat64("from")
			}
			if cmd.Flags().Changed("to") {
				to, _ = cmd.Flags().GetFloat64("to")
			}
			if cmd.Flags().Changed("points") {
				points, _ = cmd.Flags().GetInt("points")
			}
			for name, v := range map[string]float64{"from": from, "to": to} {
				if err := finiteFlag(name, v); err != nil {
					return err
				}
			}
			if points < 2 {
				return fmt.Errorf("--points must be at least 2, got %d", points)
			}

			fields := spin.Linspace(from, to, points)
			logger.Debug("sweeping", zap.Float64("from", from), zap.Float64("to", to), zap.Int("points", points))
			sweep, err := spin.Sweep(cmd.Context(), sys, fields, solverOptions()...)
			if err != nil {
				return fmt.Errorf("sweep: %w", err)
			}

			var deviation *float64
			if a, ok := breitRabiCoupling(sys); ok {
				d := maxBreitRabiDeviation(sweep, a, sys.GE, sys.Nuclei[0].GN)
				deviation = &d
				logger.Info("breit-rabi check", zap.Float64("max_deviation_mhz", d))
			}

			out := cmd.OutOrStdout()
			if jsonOutput(cmd) {
				return writeJSON(out, map[string]any{
					"points":                   sweep,
					"breit_rabi_deviation_mhz": deviation,
				})
			}
			for _, p := range sweep {
				fmt.Fprintf(out, "%10.5f T", p.Field)
				for _, e := range p.Energies {
					fmt.Fprintf(out, " %14.4f", e)
				}
				fmt.Fprintln(out)
			}
			if deviation != nil {
				fmt.Fprintf(out, "max deviation from Breit–Rabi: %.3e MHz\n", *deviation)
			}

			return nil
		},
	}
	addFieldFlag(cmd)
	cmd.Flags().Float64("from", 0, "First field magnitude in tesla (default from config)")
	cmd.Flags().Float64("to", 0, "Last field magnitude in tesla (default from config)")
	cmd.Flags().Int("points", 0, "Number of field points (default from config)")

	return cmd
}

// breitRabiCoupling reports the isotropic A when sys is an S=1/2, I=1/2 pair.
func breitRabiCoupling(sys spin.System) (float64, bool) {
	if sys.TwoS != spin.Half || len(sys.Nuclei) != 1 {
		return 0, false
	}
	n := sys.Nuclei[0]
	if n.TwoI != spin.Half || n.Tensor != nil {
		return 0, false
	}

	return n.A, true
}

func maxBreitRabiDeviation(sweep []spin.SweepPoint, a, ge, gn float64) float64 {
	var worst float64
	for _, p := range sweep {
		ref := spin.BreitRabi(a, ge, gn, math.Abs(p.Field))
		for i, e := range p.Energies {
			worst = math.Max(worst, math.Abs(e-ref[i]))
		}
	}

	return worst
}
