package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/eringen/pubfolio"
	"github.com/eringen/pubfolio/markdown"
)

var yearStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func newListCommand(load depsLoader) *cobra.Command {
	var year string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts grouped by year",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			catalog, closeFn, err := d.openCatalog()
			if err != nil {
				return err
			}
			defer closeFn()

			posts, err := catalog.ListAllPosts(cmd.Context())
			if err != nil {
				return err
			}
			return renderPostList(cmd.OutOrStdout(), pubfolio.YearGroups(posts), year)
		},
	}
	cmd.Flags().StringVar(&year, "year", "", "only list posts from this year")
	return cmd
}

// renderPostList writes one table per year, newest year first.
func renderPostList(w io.Writer, groups []pubfolio.YearGroup, year string) error {
	shown := 0
	for _, g := range groups {
		if year != "" && g.Year != year {
			continue
		}
		shown++
		fmt.Fprintln(w, yearStyle.Render(g.Year))

		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Date", "Slug", "Title", "Tags", "Read"})
		for _, p := range g.Posts {
			t.AppendRow(table.Row{
				p.Date,
				p.Slug,
				p.Title,
				strings.Join(p.DisplayTags(), ", "),
				fmt.Sprintf("%g min", pubfolio.ReadingTime(p)),
			})
		}
		t.Render()
		fmt.Fprintln(w)
	}
	if shown == 0 {
		fmt.Fprintln(w, "No posts found.")
	}
	return nil
}

func newShowCommand(load depsLoader) *cobra.Command {
	var (
		style string
		raw   bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Render a post in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}
			catalog, closeFn, err := d.openCatalog()
			if err != nil {
				return err
			}
			defer closeFn()

			post, err := catalog.GetPost(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			doc := postDocument(post)
			if raw {
				_, err := io.WriteString(cmd.OutOrStdout(), doc)
				return err
			}

			opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
			if style == "auto" {
				opts = append(opts, glamour.WithAutoStyle())
			} else {
				opts = append(opts, glamour.WithStylePath(style))
			}
			r, err := glamour.NewTermRenderer(opts...)
			if err != nil {
				return err
			}
			out, err := r.Render(doc)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&style, "style", "auto", "glamour style: auto, dark, light or notty")
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without terminal rendering")
	cmd.Flags().IntVar(&width, "width", 80, "word wrap width")
	return cmd
}

// postDocument is the markdown shown by the show command: a title, a meta
// line and the body without MDX statements.
func postDocument(p pubfolio.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	meta := []string{pubfolio.FormatDate(p.Date), fmt.Sprintf("%g min read", pubfolio.ReadingTime(p))}
	if tags := p.Tags(); len(tags) > 0 {
		meta = append(meta, strings.Join(tags, ", "))
	}
	fmt.Fprintf(&b, "_%s_\n\n", strings.Join(meta, " · "))
	if p.Description != "" {
		fmt.Fprintf(&b, "> %s\n\n", p.Description)
	}
	b.WriteString(strings.TrimSpace(markdown.StripMDX(p.Content)))
	b.WriteString("\n")
	return b.String()
}
