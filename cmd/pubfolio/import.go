package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/pubfolio"
)

func newImportCommand(load depsLoader) *cobra.Command {
	var prune bool

	cmd := &cobra.Command{
		Use:   "import <dir>",
		Short: "Copy a content directory into the SQLite database",
		Long: `Import copies every post file in <dir> into the database at DATABASE_PATH.
Set CONTENT_SOURCE=sqlite to serve from the database afterwards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			src, err := pubfolio.OpenDir(args[0], d.Config.ContentExt)
			if err != nil {
				return err
			}
			store, err := pubfolio.NewStore(d.Config.DatabasePath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer store.Close()

			n, err := store.ImportSource(cmd.Context(), src, prune)
			if err != nil {
				return err
			}
			d.Logger.Info("import finished", zap.Int("documents", n), zap.String("database", d.Config.DatabasePath))
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d documents into %s\n", n, d.Config.DatabasePath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&prune, "prune", false, "delete documents that are no longer in <dir>")
	return cmd
}
