package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/pubfolio"
	"github.com/eringen/pubfolio/views"
)

func newServeCommand(load depsLoader) *cobra.Command {
	var staticDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = d.Logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := pubfolio.New(d.Config, views.Default(),
				pubfolio.WithLogger(d.Logger),
				pubfolio.WithStaticDir(staticDir),
			)
			defer func() {
				if err := app.Close(); err != nil {
					d.Logger.Warn("close", zap.Error(err))
				}
			}()

			d.Logger.Info("starting pubfolio",
				zap.String("version", version),
				zap.String("source", d.Config.ContentSource),
				zap.String("content_dir", d.Config.ContentDir),
			)
			return app.Start(ctx)
		},
	}
	cmd.Flags().StringVar(&staticDir, "static", "public", "directory of static assets served under /public")
	return cmd
}
