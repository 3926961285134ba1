package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/atinylittleshell/pathintel/internal/filesystem"
	"github.com/atinylittleshell/pathintel/internal/session"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve completions to an editor over stdin/stdout",
		Long: `Serve completions over stdin/stdout, one JSON-RPC 2.0 message per line.

The directory cache lives for the whole session and is dropped on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := session.NewServer(filesystem.OSLister{}, a.logger, a.cfg.CompletionOptions(), BUILD_VERSION)
			if err != nil {
				return err
			}

			a.logger.Info("-------- new pathintel session --------",
				zap.String("version", BUILD_VERSION),
				zap.Int("cacheCapacity", a.cfg.CacheCapacity))

			return server.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
