package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexshd/bridgecalc/internal/session"
)

func newRadiusCmd(a *app) *cobra.Command {
	var req session.RadiusRequest

	cmd := &cobra.Command{
		Use:   "radius",
		Short: "Bridge orbit radius at index n",
		Long: `Computes r(n) = a0 · LZ^(n/π) · qc.

Examples:
  bridgecalc radius --n 45
  bridgecalc radius --n 10 --a0 5.29e-11`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("a0") {
				req.ReferenceLength = a.cfg.Reference.Length
			}
			req.Overrides = a.overrides(cmd)

			resp, err := a.sess.Radius(req)
			if err != nil {
				return err
			}
			a.out.Radius(resp)
			return nil
		},
	}

	cmd.Flags().Float64Var(&req.ReferenceLength, "a0", 0, "reference length in m (default: Planck length or config)")
	cmd.Flags().Float64Var(&req.Index, "n", 0, "index n")
	return cmd
}

func newMassCmd(a *app) *cobra.Command {
	var req session.MassRequest

	cmd := &cobra.Command{
		Use:   "mass",
		Short: "Mass at index n",
		Long: `Computes m(n) = m0 · LZ^(-n/π) · qc.

Examples:
  bridgecalc mass --n 768.5
  bridgecalc mass --n 220 --m0 2.176e-8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("m0") {
				req.ReferenceMass = a.cfg.Reference.Mass
			}
			req.Overrides = a.overrides(cmd)

			resp, err := a.sess.Mass(req)
			if err != nil {
				return err
			}
			a.out.Mass(resp)
			return nil
		},
	}

	cmd.Flags().Float64Var(&req.ReferenceMass, "m0", 0, "reference mass in kg (default: Planck mass or config)")
	cmd.Flags().Float64Var(&req.Index, "n", 0, "index n")
	return cmd
}

func newSolveCmd(a *app) *cobra.Command {
	var req session.IndexRequest

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Index n that produces a target mass",
		Long: `Inverts the mass formula: n = -π · ln(m / (m0 · qc)) / ln(LZ).

Examples:
  bridgecalc solve --m 9.10938356e-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("m0") {
				req.ReferenceMass = a.cfg.Reference.Mass
			}
			req.Overrides = a.overrides(cmd)

			resp, err := a.sess.SolveIndex(req)
			if err != nil {
				return err
			}
			a.out.Index(resp)
			return nil
		},
	}

	cmd.Flags().Float64Var(&req.TargetMass, "m", 0, "target mass in kg")
	cmd.Flags().Float64Var(&req.ReferenceMass, "m0", 0, "reference mass in kg (default: Planck mass or config)")
	_ = cmd.MarkFlagRequired("m")
	return cmd
}

func newErrorCmd(a *app) *cobra.Command {
	var req session.ErrorRequest

	cmd := &cobra.Command{
		Use:   "error",
		Short: "Percent error of a calculated value against a known one",
		Long: `Computes 100 · |calc - known| / known. Below 1% the value counts as a
stable particle.

Examples:
  bridgecalc error --calc 9.2e-31 --known 9.10938356e-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.sess.Compare(req)
			if err != nil {
				return err
			}
			a.out.Comparison(resp)
			return nil
		},
	}

	cmd.Flags().Float64Var(&req.Calculated, "calc", 0, "calculated value")
	cmd.Flags().Float64Var(&req.Known, "known", 0, "known value")
	_ = cmd.MarkFlagRequired("calc")
	_ = cmd.MarkFlagRequired("known")
	return cmd
}
