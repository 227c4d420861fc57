package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/pubfolio/scaffold"
)

// scaffoldData holds the template variables passed to every scaffold template.
type scaffoldData struct {
	ProjectName string
	SiteName    string
	Today       string
}

func newNewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new pubfolio site directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd.OutOrStdout(), args[0], time.Now())
		},
	}
}

func runNew(out io.Writer, name string, now time.Time) error {
	// Derive project directory name from the last path segment.
	dirName := name
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		dirName = name[idx+1:]
	}
	if dirName == "" {
		return fmt.Errorf("invalid project name %q", name)
	}

	// Check if directory already exists.
	if _, err := os.Stat(name); err == nil {
		return fmt.Errorf("directory %q already exists", name)
	}

	data := scaffoldData{
		ProjectName: dirName,
		SiteName:    toTitle(dirName),
		Today:       now.Format("2006-01-02"),
	}

	fmt.Fprintf(out, "Creating new pubfolio site: %s\n\n", name)

	root := "templates"

	err := fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Compute the relative path from the template root.
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		// Compute the output path, stripping the .tmpl suffix.
		outPath := filepath.Join(name, relPath)
		outPath = strings.TrimSuffix(outPath, ".tmpl")

		// Rename dotenv to .env.example.
		if filepath.Base(outPath) == "dotenv" {
			outPath = filepath.Join(filepath.Dir(outPath), ".env.example")
		}

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := scaffold.Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()

		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}

		fmt.Fprintf(out, "  created %s\n", outPath)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done! Next steps:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  cd %s\n", name)
	fmt.Fprintln(out, "  cp .env.example .env")
	fmt.Fprintln(out, "  pubfolio serve")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Add posts as .mdx files under content/posts, then run 'pubfolio list'.")
	return nil
}

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-site" -> "My Site", "mysite" -> "Mysite"
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
