package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/atinylittleshell/pathintel/internal/config"
)

// app is the state shared by subcommands once the root command has run its
// pre-run hook.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "pathintel",
		Short: "Path completion for editors",
		Long: `pathintel suggests file and folder names for the path being typed.

Directory listings are kept in a bounded in-memory cache, so repeated
completions in the same directories do not touch the disk again.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to the config file (default ~/.pathintel/config.yaml)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	cmd.AddCommand(newCompleteCmd(a))
	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads the configuration and builds the logger.
func (a *app) setup() error {
	loader := config.NewLoader(nil)

	var result *config.LoadResult
	var err error
	if a.configPath != "" {
		result, err = loader.LoadFromFile(a.configPath)
	} else {
		result, err = loader.LoadDefaultConfigPath()
	}
	if err != nil {
		return err
	}
	a.cfg = result.Config

	level := a.cfg.Level()
	if a.logLevel != "" {
		level, err = zapcore.ParseLevel(a.logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}

	a.logger, err = newLogger(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	for _, configErr := range result.Errors {
		a.logger.Warn("config problem, using default", zap.Error(configErr))
	}

	return nil
}
