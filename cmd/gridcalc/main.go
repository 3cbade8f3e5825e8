package main

import (
	"fmt"
	"os"

	"lintang/gridcalc/pkg/cli"
	"lintang/gridcalc/pkg/config"
)

//	gridcalc FN42 JO01
//	gridcalc FN42hn DM13at --unit mi
//	gridcalc CN87 CN88 --verbose
//
// GRIDCALC_UNIT and GRIDCALC_LOG_LEVEL (or a .env file) set the defaults.
func main() {
	os.Exit(runMain(os.Args[1:]))
}

func runMain(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	logger := cli.NewLogger(os.Stderr, cfg.LogLevel)
	logger.Debug().Str("unit", cfg.Unit).Str("log_level", cfg.LogLevel).Msg("config loaded")

	return cli.New(cfg, logger).Run(args, os.Stdout, os.Stderr)
}
