package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2025/internal/config"
	"github.com/katalvlaran/aoc2025/internal/logger"
	"github.com/katalvlaran/aoc2025/puzzle"
	"github.com/katalvlaran/aoc2025/solutions"
)

// app is the state shared by all subcommands once the root pre-run has
// loaded the configuration.
type app struct {
	configPath string
	logLevel   string
	cfg        *config.Config
	registry   *puzzle.Registry
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if cfg.LogFile != "" {
		err = logger.InitLog(cfg.LogFile, cfg.LogLevel)
	} else {
		err = logger.InitConsoleLog(cfg.LogLevel)
	}
	if err != nil {
		return err
	}

	reg, err := solutions.NewRegistry(solutions.Options{
		DialStart:       cfg.Puzzles.DialStart,
		BatteryBankSize: cfg.Puzzles.BatteryBankSize,
		StartMarker:     cfg.Puzzles.Ray.StartMarker[0],
		SplitMarker:     cfg.Puzzles.Ray.SplitMarker[0],
		RowStep:         cfg.Puzzles.Ray.RowStep,
	})
	if err != nil {
		return err
	}
	a.cfg, a.registry = cfg, reg
	log.Debugf("config loaded, days %v registered", reg.Days())

	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "aoc2025",
		Short:             "Advent of Code 2025 solutions",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level 'debug|info|warning|error'")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newListCmd(a))

	return root
}
