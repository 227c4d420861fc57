package pubfolio

import (
	"time"

	"go.uber.org/zap"
)

// Content source kinds for SiteConfig.ContentSource.
const (
	SourceDir    = "dir"
	SourceSQLite = "sqlite"
)

// SiteConfig holds all configuration for a pubfolio site.
type SiteConfig struct {
	Name        string // Site name (default "Portfolio")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD and RSS
	AuthorEmail string // RSS managingEditor/webMaster/author address
	Image       string // Default og:image, absolute or site-relative

	Addr string // Listen address (default ":3000")

	ContentDir    string // Directory of post files (default "content/posts")
	ContentExt    string // Post file extension (default ".mdx")
	ContentSource string // "dir" (default) or "sqlite"
	DatabasePath  string // SQLite path (default "data/pubfolio.db")

	ThemesDir    string // Optional directory of YAML theme files
	DefaultTheme string // Theme used when the visitor has no preference (default "default")

	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	CacheTTL       time.Duration // Catalog cache TTL; 0 rebuilds on every read
	WatchContent   bool          // Invalidate the cache when content files change
	MetricsEnabled bool          // Serve Prometheus metrics on /metrics
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/posts"
	}
	if c.ContentExt == "" {
		c.ContentExt = DefaultContentExt
	}
	if c.ContentSource == "" {
		c.ContentSource = SourceDir
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/pubfolio.db"
	}
	if c.DefaultTheme == "" {
		c.DefaultTheme = "default"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithSource makes the App read posts from src instead of opening
// ContentDir or the SQLite database.
func WithSource(src Source) Option {
	return func(a *App) {
		a.source = src
	}
}

// WithLogger sets the logger used by the App and its catalog.
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.Logger = logger
		}
	}
}
