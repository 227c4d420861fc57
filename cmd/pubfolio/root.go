package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/eringen/pubfolio"
	"github.com/eringen/pubfolio/theme"
)

// newRootCommand builds the command tree. Each call returns a fresh tree so
// tests can execute commands independently.
func newRootCommand() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "pubfolio",
		Short:         "A portfolio and blog server for MDX content",
		Long:          `pubfolio serves a portfolio and blog from a directory of MDX or Markdown posts with YAML front matter.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	load := func() (*deps, error) {
		return newDeps(cfgFile)
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the pubfolio version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pubfolio %s\n", version)
		},
	})
	root.AddCommand(
		newServeCommand(load),
		newListCommand(load),
		newShowCommand(load),
		newImportCommand(load),
		newThemesCommand(load),
		newNewCommand(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	// Load .env early so environment variables are visible to viper.
	_ = godotenv.Load()
	return newRootCommand().ExecuteContext(context.Background())
}

// deps carries what every subcommand needs: the resolved configuration and a
// logger.
type deps struct {
	Config pubfolio.SiteConfig
	Logger *zap.Logger
	Viper  *viper.Viper
}

// depsLoader resolves deps lazily, after cobra has parsed --config.
type depsLoader func() (*deps, error)

func newDeps(cfgFile string) (*deps, error) {
	v, err := loadViper(cfgFile)
	if err != nil {
		return nil, err
	}
	logger, err := pubfolio.NewLogger(v.GetString("log_level"), v.GetBool("log_development"))
	if err != nil {
		return nil, err
	}
	return &deps{Config: siteConfig(v), Logger: logger, Viper: v}, nil
}

// loadViper reads the optional YAML config file and overlays environment
// variables. Keys are the lower-case form of the environment names, so
// site_name in config.yaml and SITE_NAME in the environment set the same
// value; the environment wins.
func loadViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":3000")
	v.SetDefault("content_dir", "content/posts")
	v.SetDefault("content_ext", pubfolio.DefaultContentExt)
	v.SetDefault("content_source", pubfolio.SourceDir)
	v.SetDefault("database_path", "data/pubfolio.db")
	v.SetDefault("default_theme", "default")
	v.SetDefault("cache_ttl", "0s")
	v.SetDefault("log_level", "info")
}

func siteConfig(v *viper.Viper) pubfolio.SiteConfig {
	return pubfolio.SiteConfig{
		Name:           v.GetString("site_name"),
		URL:            v.GetString("site_url"),
		Description:    v.GetString("site_description"),
		Author:         v.GetString("site_author"),
		AuthorEmail:    v.GetString("site_author_email"),
		Image:          v.GetString("site_image"),
		Addr:           v.GetString("addr"),
		ContentDir:     v.GetString("content_dir"),
		ContentExt:     v.GetString("content_ext"),
		ContentSource:  v.GetString("content_source"),
		DatabasePath:   v.GetString("database_path"),
		ThemesDir:      v.GetString("themes_dir"),
		DefaultTheme:   v.GetString("default_theme"),
		SessionSecret:  v.GetString("session_secret"),
		CookieSecure:   v.GetBool("cookie_secure"),
		CacheTTL:       v.GetDuration("cache_ttl"),
		WatchContent:   v.GetBool("watch_content"),
		MetricsEnabled: v.GetBool("metrics_enabled"),
	}
}

// openCatalog builds a catalog over the configured content source. The
// returned close function releases the SQLite store when one was opened.
func (d *deps) openCatalog() (*pubfolio.Catalog, func() error, error) {
	if d.Config.ContentSource == pubfolio.SourceSQLite {
		store, err := pubfolio.NewStore(d.Config.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return pubfolio.NewCatalog(store, d.Logger), store.Close, nil
	}
	src, err := pubfolio.OpenDir(d.Config.ContentDir, d.Config.ContentExt)
	if err != nil {
		return nil, nil, err
	}
	return pubfolio.NewCatalog(src, d.Logger), func() error { return nil }, nil
}

// themes returns the built-in registry plus any themes in THEMES_DIR.
func (d *deps) themes() (*theme.Registry, error) {
	r := theme.Builtin()
	if d.Config.ThemesDir != "" {
		if _, err := r.Load(os.DirFS(d.Config.ThemesDir)); err != nil {
			return nil, fmt.Errorf("load themes: %w", err)
		}
	}
	return r, nil
}
