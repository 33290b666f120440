package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexshd/bridgecalc/internal/session"
)

func newApproximateCmd(a *app) *cobra.Command {
	var (
		all           bool
		referenceMass float64
	)

	cmd := &cobra.Command{
		Use:   "approximate [particle]",
		Short: "Compare known particles with the mass formula",
		Long: `Evaluates the mass formula at a known particle's index and compares the
result with its measured mass.

Examples:
  bridgecalc approximate Electron
  bridgecalc approximate --all
  bridgecalc approximate Muon --lz 1.2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("m0") {
				referenceMass = a.cfg.Reference.Mass
			}
			o := a.overrides(cmd)

			if all {
				if len(args) > 0 {
					return errors.New("give a particle name or --all, not both")
				}
				rs, err := a.sess.ApproximateAll(referenceMass, o)
				if err != nil {
					return err
				}
				a.out.Approximations(rs)
				return nil
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			}
			resp, err := a.sess.Approximate(session.ApproxRequest{Name: name, ReferenceMass: referenceMass, Overrides: o})
			if err != nil {
				return err
			}
			a.out.Approximation(resp)
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var names []string
			for _, n := range a.table().Names() {
				if strings.HasPrefix(n, toComplete) {
					names = append(names, n)
				}
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "approximate every reference particle")
	cmd.Flags().Float64Var(&referenceMass, "m0", 0, "reference mass in kg (default: Planck mass or config)")
	return cmd
}

func newParticlesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "particles",
		Short: "List the reference particles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.out.Particles(a.sess.Table())
			return nil
		},
	}
}
