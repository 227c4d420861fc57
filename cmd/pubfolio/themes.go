package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/eringen/pubfolio"
	"github.com/eringen/pubfolio/theme"
)

func newThemesCommand(load depsLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Inspect and configure themes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered theme names",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			reg, err := d.themes()
			if err != nil {
				return err
			}
			renderThemes(cmd.OutOrStdout(), reg, theme.Name(d.Config.DefaultTheme))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "css <name>",
		Short: "Print a theme as CSS custom properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			reg, err := d.themes()
			if err != nil {
				return err
			}
			t, ok := reg.Lookup(theme.Name(args[0]))
			if !ok {
				return fmt.Errorf("%s: %w", args[0], theme.ErrUnknownTheme)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), theme.Stylesheet(t))
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-default <name>",
		Short: "Store the site-wide default theme in the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			reg, err := d.themes()
			if err != nil {
				return err
			}
			name := theme.Name(args[0])
			if _, ok := reg.Lookup(name); !ok {
				return fmt.Errorf("%s: %w", args[0], theme.ErrUnknownTheme)
			}
			store, err := pubfolio.NewStore(d.Config.DatabasePath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer store.Close()
			if err := store.SetSetting(cmd.Context(), pubfolio.DefaultThemeSetting, string(name)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "default theme set to %s\n", name)
			return nil
		},
	})

	return cmd
}

func renderThemes(w io.Writer, reg *theme.Registry, def theme.Name) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Theme", "Display name", "Default"})
	for _, n := range reg.Names() {
		th := reg.Get(n)
		mark := ""
		if n == def {
			mark = "*"
		}
		t.AppendRow(table.Row{n, th.Name, th.DisplayName, mark})
	}
	t.Render()
}
