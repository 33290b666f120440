package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexshd/bridgecalc"
	"github.com/alexshd/bridgecalc/internal/session"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		quantity  string
		reference float64
		cfg       = bridgecalc.DefaultSweepConfig()
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate radius or mass over an index range",
		Long: `Evaluates the forward formula at min, min+step, ... up to max. Combine
with --export plot.png to draw the curve.

Examples:
  bridgecalc sweep --quantity mass --export mass.png
  bridgecalc sweep --quantity radius --min -50 --max 50 --step 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := bridgecalc.Quantity(quantity)
			if !cmd.Flags().Changed("reference") {
				switch q {
				case bridgecalc.Radius:
					reference = a.cfg.Reference.Length
				case bridgecalc.Mass:
					reference = a.cfg.Reference.Mass
				default:
					return fmt.Errorf("unknown quantity %q (want radius or mass)", quantity)
				}
			}

			resp, err := a.sess.Sweep(session.SweepRequest{
				Quantity:  q,
				Reference: reference,
				Config:    cfg,
				Overrides: a.overrides(cmd),
			})
			if err != nil {
				return err
			}
			a.out.Sweep(q, resp.Points)
			return nil
		},
	}

	cmd.Flags().StringVar(&quantity, "quantity", string(bridgecalc.Mass), "radius or mass")
	cmd.Flags().Float64Var(&reference, "reference", 0, "reference length (m) or mass (kg) (default: Planck value or config)")
	cmd.Flags().Float64Var(&cfg.MinIndex, "min", cfg.MinIndex, "first index")
	cmd.Flags().Float64Var(&cfg.MaxIndex, "max", cfg.MaxIndex, "last index")
	cmd.Flags().Float64Var(&cfg.Step, "step", cfg.Step, "index step")
	return cmd
}
