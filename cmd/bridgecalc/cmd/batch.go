package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexshd/bridgecalc/internal/session"
)

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Run many calculations into one log",
		Long: `Reads one command per line from file (or stdin when file is "-" or
missing) and runs every line against the same session, so the log collects
all of them. Blank lines and lines starting with # are skipped. A failing
line is reported and the run goes on.

Besides the calculation commands, a line may be:
  note <text>    add a line of text to the log
  clear          empty the log
  log            print the log so far
  export <file>  write the log (.txt, .pdf) or a plot (.png) now

Constant flags (--lz, --alpha, --hqs, --x) given before "batch" apply to
every line; a line may set its own.

Examples:
  bridgecalc batch calcs.txt --export log.pdf
  printf 'mass --n 45\nsolve --m 1.88e-28\n' | bridgecalc batch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			name := "stdin"
			if len(args) > 0 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in, name = f, args[0]
			}
			return a.runBatch(cmd, in, name)
		},
	}
}

func (a *app) runBatch(cmd *cobra.Command, in io.Reader, name string) error {
	base := a.overrides(cmd)

	var total, failed int
	scanner := bufio.NewScanner(in)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		total++

		la := &app{cfgFile: a.cfgFile, base: base, cfg: a.cfg, sess: a.sess, out: a.out}
		tree := newLineCmd(la)
		tree.SetArgs(strings.Fields(line))
		tree.SetOut(cmd.OutOrStdout())
		tree.SetErr(cmd.ErrOrStderr())
		if err := tree.Execute(); err != nil {
			failed++
			a.out.Error(fmt.Errorf("%s:%d: %w", name, lineNo, err))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed", failed, total)
	}
	return nil
}

// newLineCmd builds the command tree for one batch line. It has no setup
// step: every line shares the batch session.
func newLineCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "line",
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	a.bindConstantFlags(root.PersistentFlags())

	root.AddCommand(
		newRadiusCmd(a),
		newMassCmd(a),
		newSolveCmd(a),
		newErrorCmd(a),
		newApproximateCmd(a),
		newSweepCmd(a),
		newParticlesCmd(a),
		&cobra.Command{
			Use:   "note <text>",
			Short: "Add a line of text to the log",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a.sess.Append(strings.Join(args, " "))
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty the log",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a.sess.Clear()
				a.out.Log([]string{session.MsgLogCleared})
				return nil
			},
		},
		&cobra.Command{
			Use:   "log",
			Short: "Print the log so far",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a.out.Log(a.sess.Lines())
				return nil
			},
		},
		&cobra.Command{
			Use:   "export <file>",
			Short: "Write the log or a plot now",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.exportTo(args[0])
			},
		},
	)
	return root
}
