// Package cli is the gridcalc command line front end. It parses arguments,
// calls the engine and prints the numbers; no geodesy happens here.
package cli

import (
	"errors"
	"fmt"
	"io"

	"lintang/gridcalc/pkg/config"
	"lintang/gridcalc/pkg/engine"
	"lintang/gridcalc/pkg/geo"
	"lintang/gridcalc/pkg/util"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const progName = "gridcalc"

// usageError is an argument problem that should be followed by the usage text.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

type CLI struct {
	cfg    config.Config
	logger zerolog.Logger
}

func New(cfg config.Config, logger zerolog.Logger) *CLI {
	return &CLI{cfg: cfg, logger: logger}
}

// Run executes one invocation and returns the process exit status.
// With no arguments at all it prints the canned examples instead.
func (c *CLI) Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		runExamples(stdout, c.logger)
		fmt.Fprintf(stdout, "\nFor command-line usage, run: %s --help\n", progName)
		return 0
	}

	cmd := c.NewCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)

		var ue *usageError
		if errors.As(err, &ue) {
			printUsage(stderr, c.cfg.Unit)
		}
		return 1
	}
	return 0
}

func (c *CLI) NewCommand() *cobra.Command {
	var (
		unitToken string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:           progName + " GRID1 GRID2",
		Short:         "Calculate distance and bearing between Maidenhead grid squares",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.calculate(cmd.OutOrStdout(), args, unitToken, verbose)
		},
	}

	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		printUsage(cmd.OutOrStdout(), c.cfg.Unit)
	})
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringVarP(&unitToken, "unit", "u", c.cfg.Unit, "distance unit: km, mi, nm")
	flags.BoolVarP(&verbose, "verbose", "v", false, "show detailed information")

	return cmd
}

func (c *CLI) calculate(w io.Writer, grids []string, unitToken string, verbose bool) error {
	unit, err := geo.ParseUnit(unitToken)
	if err != nil {
		return err
	}

	switch {
	case len(grids) > 2:
		return &usageError{err: errors.New("Too many arguments")}
	case len(grids) < 2:
		return &usageError{err: errors.New("Both GRID1 and GRID2 are required")}
	}
	from, to := grids[0], grids[1]

	logger := c.logger.With().
		Str("from", from).
		Str("to", to).
		Str("unit", unit.Token()).
		Logger()

	if !verbose {
		distance, err := engine.Distance(from, to, unit)
		if err != nil {
			logger.Debug().Err(err).Msg("decode failed")
			return err
		}
		logger.Debug().Float64("distance", util.RoundFloat(distance, 3)).Msg("distance computed")
		printSimpleResult(w, distance, unit)
		return nil
	}

	res, err := engine.Evaluate(from, to, unit)
	if err != nil {
		logger.Debug().Err(err).Msg("decode failed")
		return err
	}
	logger.Debug().
		Float64("distance", util.RoundFloat(res.Distance, 3)).
		Float64("bearing", util.RoundFloat(res.Bearing, 3)).
		Float64("back_bearing", util.RoundFloat(res.BackBearing, 3)).
		Msg("locators evaluated")
	printVerboseResult(w, from, to, res)
	return nil
}
