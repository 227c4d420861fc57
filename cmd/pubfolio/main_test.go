package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/pubfolio"
	"github.com/eringen/pubfolio/theme"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// newSite creates a content directory with three posts and a config file
// pointing at it, returning the config path.
func newSite(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	posts := filepath.Join(dir, "content")
	writeFile(t, filepath.Join(posts, "first.mdx"), "---\ntitle: First\ndate: 2025-09-02\ntag: go, web\n---\nHello from the first post.\n")
	writeFile(t, filepath.Join(posts, "2025-12-01-seeded-iching-engine.mdx"), "---\ntitle: Seeded I Ching Engine\n---\nimport X from './x'\n\nHexagrams.\n")
	writeFile(t, filepath.Join(posts, "latest.mdx"), "---\ntitle: Latest\ndate: 2026-01-25\n---\nNewest.\n")

	cfg := filepath.Join(dir, "config.yaml")
	writeFile(t, cfg, strings.Join([]string{
		"site_name: Test Site",
		"content_dir: " + posts,
		"database_path: " + filepath.Join(dir, "data", "site.db"),
		"log_level: error",
	}, "\n")+"\n")
	return cfg, dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLoadViper_EnvOverridesFile(t *testing.T) {
	cfg, _ := newSite(t)
	t.Setenv("SITE_NAME", "From Env")
	t.Setenv("CACHE_TTL", "2m")

	v, err := loadViper(cfg)
	require.NoError(t, err)
	sc := siteConfig(v)
	assert.Equal(t, "From Env", sc.Name)
	assert.Equal(t, 2*time.Minute, sc.CacheTTL)
	assert.True(t, strings.HasSuffix(sc.ContentDir, "content"))
	assert.Equal(t, pubfolio.DefaultContentExt, sc.ContentExt)
	assert.Equal(t, pubfolio.SourceDir, sc.ContentSource)
}

func TestLoadViper_MissingExplicitFile(t *testing.T) {
	_, err := loadViper(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pubfolio dev\n", out)
}

func TestListCommand(t *testing.T) {
	cfg, _ := newSite(t)
	out, err := run(t, "--config", cfg, "list")
	require.NoError(t, err)

	i26 := strings.Index(out, "2026")
	i25 := strings.Index(out, "2025")
	require.True(t, i26 >= 0 && i25 >= 0, out)
	assert.Less(t, i26, i25, "newest year first")
	assert.Contains(t, out, "seeded-iching-engine")
	assert.Contains(t, out, "go, web")
}

func TestListCommand_YearFilter(t *testing.T) {
	cfg, _ := newSite(t)
	out, err := run(t, "--config", cfg, "list", "--year", "2026")
	require.NoError(t, err)
	assert.Contains(t, out, "latest")
	assert.NotContains(t, out, "first")

	out, err = run(t, "--config", cfg, "list", "--year", "1999")
	require.NoError(t, err)
	assert.Contains(t, out, "No posts found.")
}

func TestListCommand_MissingContentDir(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, cfg, "content_dir: /does/not/exist\nlog_level: error\n")
	_, err := run(t, "--config", cfg, "list")
	assert.Error(t, err)
}

func TestShowCommand_Raw(t *testing.T) {
	cfg, _ := newSite(t)
	out, err := run(t, "--config", cfg, "show", "2025-12-01-seeded-iching-engine", "--raw")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Seeded I Ching Engine\n"))
	assert.Contains(t, out, "December 1, 2025")
	assert.Contains(t, out, "Hexagrams.")
	assert.NotContains(t, out, "import X")
}

func TestShowCommand_Rendered(t *testing.T) {
	cfg, _ := newSite(t)
	out, err := run(t, "--config", cfg, "show", "first", "--style", "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello from the first post.")
}

func TestShowCommand_NotFound(t *testing.T) {
	cfg, _ := newSite(t)
	_, err := run(t, "--config", cfg, "show", "missing")
	assert.ErrorIs(t, err, pubfolio.ErrNotFound)
}

func TestThemesCommands(t *testing.T) {
	cfg, _ := newSite(t)

	out, err := run(t, "--config", cfg, "themes", "css", "tech-noir")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, ":root {\n"))
	assert.Contains(t, out, "--effect-glowStrong")

	_, err = run(t, "--config", cfg, "themes", "css", "nope")
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)

	out, err = run(t, "--config", cfg, "themes", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Tech Noir Brutalism")
	assert.Contains(t, out, "editorial")
}

func TestImportAndSetDefault(t *testing.T) {
	cfg, dir := newSite(t)

	out, err := run(t, "--config", cfg, "import", filepath.Join(dir, "content"))
	require.NoError(t, err)
	assert.Contains(t, out, "imported 3 documents")

	t.Setenv("CONTENT_SOURCE", "sqlite")
	out, err = run(t, "--config", cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded-iching-engine")

	_, err = run(t, "--config", cfg, "themes", "set-default", "cad-amber")
	require.NoError(t, err)

	store, err := pubfolio.NewStore(filepath.Join(dir, "data", "site.db"))
	require.NoError(t, err)
	defer store.Close()
	got, err := store.GetSetting(t.Context(), pubfolio.DefaultThemeSetting)
	require.NoError(t, err)
	assert.Equal(t, "cad-amber", got)

	_, err = run(t, "--config", cfg, "themes", "set-default", "nope")
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)
}

func TestRunNew(t *testing.T) {
	target := filepath.Join(t.TempDir(), "my-site")
	var out bytes.Buffer
	now := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	require.NoError(t, runNew(&out, target, now))

	for _, f := range []string{"config.yaml", ".env.example", "content/posts/hello-world.mdx", "themes/paper.yaml", "public/favicon.svg"} {
		assert.FileExists(t, filepath.Join(target, f))
	}
	cfg, err := os.ReadFile(filepath.Join(target, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), `site_name: "My Site"`)

	src, err := pubfolio.OpenDir(filepath.Join(target, "content", "posts"), ".mdx")
	require.NoError(t, err)
	posts, err := pubfolio.NewCatalog(src, nil).ListAllPosts(t.Context())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "2026-03-04", posts[0].Date)

	themes, err := theme.LoadDir(os.DirFS(filepath.Join(target, "themes")))
	require.NoError(t, err)
	require.Len(t, themes, 1)
	assert.Equal(t, theme.Name("paper"), themes[0].Name)

	assert.Error(t, runNew(&out, target, now), "existing directory")
}

func TestToTitle(t *testing.T) {
	assert.Equal(t, "My Site", toTitle("my-site"))
	assert.Equal(t, "Mysite", toTitle("mysite"))
}
