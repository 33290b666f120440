package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexshd/bridgecalc"
	"github.com/alexshd/bridgecalc/internal/config"
	"github.com/alexshd/bridgecalc/internal/logging"
	"github.com/alexshd/bridgecalc/internal/render"
	"github.com/alexshd/bridgecalc/internal/session"
)

// app is the state shared by one command invocation.
type app struct {
	cfgFile    string
	verbose    bool
	exportPath string

	constants struct{ lz, alpha, hqs, x float64 }
	// base holds overrides inherited from an enclosing command line.
	base bridgecalc.Overrides

	cfg  config.Config
	sess *session.Session
	out  *render.Printer
}

// Execute runs the command line against os.Args.
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		render.NewPrinter(root.ErrOrStderr()).Error(err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "bridgecalc",
		Short: "Bridge formula calculator",
		Long: `bridgecalc evaluates the bridge scaling law

  r(n) = a0 · LZ^(n/π) · qc      m(n) = m0 · LZ^(-n/π) · qc
  qc   = (α / HQS)^(1/x)

and compares the results against known particle masses. A result within
1% of a known mass is reported as a stable particle.

Commands:
  radius       bridge orbit radius at index n
  mass         mass at index n
  solve        index n for a target mass
  error        percent error against a known value
  approximate  compare known particles with the formula
  sweep        evaluate radius or mass over an index range
  particles    list the reference particles
  batch        run many calculations into one log`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&a.exportPath, "export", "", "write the session log (.txt, .pdf) or a plot (.png) after the command, even when it fails")
	a.bindConstantFlags(flags)

	root.AddCommand(
		newRadiusCmd(a),
		newMassCmd(a),
		newSolveCmd(a),
		newErrorCmd(a),
		newApproximateCmd(a),
		newSweepCmd(a),
		newParticlesCmd(a),
		newBatchCmd(a),
		newVersionCmd(),
	)
	for _, c := range root.Commands() {
		a.exportAfter(c)
	}
	return root
}

func (a *app) bindConstantFlags(flags *pflag.FlagSet) {
	flags.Float64Var(&a.constants.lz, "lz", bridgecalc.DefaultLZ, "override LZ")
	flags.Float64Var(&a.constants.alpha, "alpha", bridgecalc.DefaultAlpha, "override the fine-structure constant α")
	flags.Float64Var(&a.constants.hqs, "hqs", bridgecalc.DefaultHQS, "override HQS")
	flags.Float64Var(&a.constants.x, "x", bridgecalc.DefaultX, "override the exponent x")
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := logging.Setup(cmd.ErrOrStderr(), level)

	constants := cfg.ModelConstants()
	table := cfg.Table()
	a.sess = session.New(session.Options{
		Constants: &constants,
		Table:     &table,
		Logger:    logger,
	})
	a.out = render.NewPrinter(cmd.OutOrStdout())

	logger.Debug("session started", "session", a.sess.ID(), "config", a.cfgFile, "particles", table.Len())
	return nil
}

// overrides collects the constant flags the user actually set, on top of any
// inherited ones.
func (a *app) overrides(cmd *cobra.Command) bridgecalc.Overrides {
	o := a.base
	flags := cmd.Flags()
	if flags.Changed("lz") {
		o.LZ = &a.constants.lz
	}
	if flags.Changed("alpha") {
		o.Alpha = &a.constants.alpha
	}
	if flags.Changed("hqs") {
		o.HQS = &a.constants.hqs
	}
	if flags.Changed("x") {
		o.X = &a.constants.x
	}
	return o
}

// table is the configured particle table. Shell completion runs without
// setup, so it loads the config itself.
func (a *app) table() bridgecalc.ReferenceTable {
	if a.sess != nil {
		return a.sess.Table()
	}
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return bridgecalc.DefaultParticles()
	}
	return cfg.Table()
}

// exportAfter runs the --export step once c finishes, whether or not it
// failed, so failed calculations still reach the exported log.
func (a *app) exportAfter(c *cobra.Command) {
	run := c.RunE
	if run == nil {
		return
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if xerr := a.export(); xerr != nil {
			return errors.Join(err, xerr)
		}
		return err
	}
}

func (a *app) export() error {
	if a.exportPath == "" || a.sess == nil {
		return nil
	}
	return a.exportTo(a.exportPath)
}

func (a *app) exportTo(path string) error {
	if err := a.sess.Export(path); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	lines := a.sess.Lines()
	a.out.Log(lines[len(lines)-1:])
	return nil
}
