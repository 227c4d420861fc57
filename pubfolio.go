// Package pubfolio serves a personal portfolio and blog built from a
// directory of MDX or Markdown files with YAML front matter.
//
// The post catalog (Catalog) turns content files into sorted Post values,
// groups them by year and picks related posts. App wires the catalog, the
// theme registry, RSS, sitemap and Open Graph images into an Echo server.
// Pages are rendered through user-provided ViewFuncs; package views ships a
// default set.
package pubfolio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/eringen/pubfolio/theme"
)

// Listing sizes used by the built-in pages.
const (
	HomePostLimit = 5
	RelatedLimit  = 3
)

// ViewFuncs holds user-provided templ components that the App calls when
// rendering pages.
type ViewFuncs struct {
	Home        func(meta PageMeta, recent []Post) templ.Component
	Blog        func(meta PageMeta, groups []YearGroup) templ.Component
	Post        func(meta PageMeta, post Post, related []Post) templ.Component
	NotFound    func(meta PageMeta) templ.Component
	ServerError func(meta PageMeta) templ.Component
}

// App is the central pubfolio application. It wires together the content
// source, catalog, cache, themes, handlers and middleware.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Logger  *zap.Logger
	Store   *Store
	Catalog *Catalog
	Cache   *CatalogCache
	Themes  *theme.Registry
	Views   ViewFuncs

	source       Source
	ogLimiter    *RequestLimiter
	watcher      *ContentWatcher
	metrics      *prometheus.Registry
	customRoutes []func(*App)
	staticDir    string
	defaultTheme theme.Name
	now          func() time.Time
	ready        bool
}

// New creates a new App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true

	a := &App{
		Config:    cfg,
		Echo:      e,
		Logger:    zap.NewNop(),
		Views:     views,
		staticDir: "public",
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup opens the content source, builds the catalog, cache and theme
// registry, and registers middleware and routes. Start calls it; tests can
// call it directly and drive a.Echo with httptest.
func (a *App) Setup(ctx context.Context) error {
	if a.ready {
		return nil
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("pubfolio: SessionSecret is required")
	}

	if err := a.openSource(); err != nil {
		return err
	}

	a.Catalog = NewCatalog(a.source, a.Logger)
	a.Cache = NewCatalogCache(a.Catalog, a.Config.CacheTTL)

	if err := a.loadThemes(ctx); err != nil {
		return err
	}

	if a.Config.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		if err := a.Catalog.Instrument(reg); err != nil {
			return fmt.Errorf("pubfolio: register metrics: %w", err)
		}
		a.metrics = reg
	}

	if a.Config.WatchContent {
		if _, ok := a.source.(*DirSource); ok {
			w, err := NewContentWatcher(a.Config.ContentDir, a.Config.ContentExt, a.Cache.Invalidate, a.Logger)
			if err != nil {
				return fmt.Errorf("pubfolio: watch content: %w", err)
			}
			w.Start(ctx)
			a.watcher = w
		} else {
			a.Logger.Warn("content watching needs a directory source; ignoring")
		}
	}

	a.ogLimiter = NewRequestLimiter(30, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.ready = true
	return nil
}

func (a *App) openSource() error {
	sqliteSource := a.Config.ContentSource == SourceSQLite
	if a.source == nil || sqliteSource {
		if sqliteSource || fileExists(a.Config.DatabasePath) {
			store, err := NewStore(a.Config.DatabasePath)
			if err != nil {
				return fmt.Errorf("pubfolio: init store: %w", err)
			}
			a.Store = store
		}
	}

	switch {
	case a.source != nil:
	case sqliteSource:
		a.source = a.Store
	case a.Config.ContentSource == SourceDir:
		src, err := OpenDir(a.Config.ContentDir, a.Config.ContentExt)
		if err != nil {
			return fmt.Errorf("pubfolio: content directory: %w", err)
		}
		a.source = src
	default:
		return fmt.Errorf("pubfolio: unknown content source %q", a.Config.ContentSource)
	}
	return nil
}

func (a *App) loadThemes(ctx context.Context) error {
	a.Themes = theme.Builtin()
	if a.Config.ThemesDir != "" {
		n, err := a.Themes.Load(os.DirFS(a.Config.ThemesDir))
		if err != nil {
			return fmt.Errorf("pubfolio: load themes: %w", err)
		}
		a.Logger.Info("loaded themes", zap.Int("count", n), zap.String("dir", a.Config.ThemesDir))
	}

	name := theme.Name(a.Config.DefaultTheme)
	if a.Store != nil {
		stored, err := a.Store.GetSetting(ctx, DefaultThemeSetting)
		if err != nil {
			return fmt.Errorf("pubfolio: read default theme: %w", err)
		}
		if stored != "" {
			name = theme.Name(stored)
		}
	}
	if _, ok := a.Themes.Lookup(name); !ok {
		a.Logger.Warn("unknown default theme; using default", zap.String("theme", string(name)))
		name = theme.Default
	}
	a.defaultTheme = name
	return nil
}

// Start runs Setup and serves HTTP until ctx is cancelled, then shuts the
// server down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.Setup(ctx); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		a.Logger.Info("listening", zap.String("addr", a.Config.Addr))
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.Echo.Shutdown(shutdownCtx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded base stylesheet, then the user's static assets.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/base.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.staticDir)

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/rss.xml", a.handleFeed)
	e.GET("/theme.css", a.handleThemeCSS)
	e.POST("/theme/", a.handleThemeSet)
	e.GET("/api/og", a.handleOG)

	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlog)
	e.GET("/posts/:slug/", a.handlePost)

	if a.metrics != nil {
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: a.metrics,
		}))
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	var errs []error
	if a.watcher != nil {
		errs = append(errs, a.watcher.Stop())
	}
	if a.ogLimiter != nil {
		a.ogLimiter.Stop()
	}
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	return errors.Join(errs...)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
