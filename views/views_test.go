package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/eringen/pubfolio"
)

func renderComponent(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

var testMeta = pubfolio.PageMeta{
	SiteName:    "Test Site",
	SiteAuthor:  "Ada",
	Title:       "Test Site",
	Description: "A description",
	URL:         "https://example.com/",
	OGType:      "website",
	Theme:       "tech-noir",
	CSRFToken:   "tok123",
	JSONLD:      `{"@type":"WebSite"}`,
	Path:        "/",
}

var testPost = pubfolio.Post{
	Slug:        "hello",
	Title:       "Hello <World>",
	Date:        "2025-09-02",
	Description: "First post",
	Tag:         "go, web, css, extra",
	Content:     "# Heading\n\nSome **bold** text.\n\n<script>alert(1)</script>",
	Link:        "/posts/hello",
}

func TestHome(t *testing.T) {
	got := renderComponent(t, Home(testMeta, []pubfolio.Post{testPost}))
	for _, want := range []string{
		`data-theme="tech-noir"`,
		`<a href="/posts/hello/">Hello &lt;World&gt;</a>`,
		"September 2, 2025",
		`<span class="tag">go</span><span class="tag">web</span><span class="tag">css</span>`,
		`name="_csrf" value="tok123"`,
		`<link rel="stylesheet" href="/theme.css">`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("home output missing %q", want)
		}
	}
	if strings.Contains(got, `<span class="tag">extra</span>`) {
		t.Error("home should cap displayed tags")
	}
}

func TestHomeEmpty(t *testing.T) {
	got := renderComponent(t, Home(testMeta, nil))
	if !strings.Contains(got, "No posts yet.") {
		t.Errorf("expected empty state: %q", got)
	}
}

func TestBlogGroupsInOrder(t *testing.T) {
	groups := []pubfolio.YearGroup{
		{Year: "2026", Posts: []pubfolio.Post{{Slug: "b", Title: "B", Date: "2026-01-25", Link: "/posts/b"}}},
		{Year: "2025", Posts: []pubfolio.Post{{Slug: "a", Title: "A", Date: "2025-12-01", Link: "/posts/a"}}},
	}
	got := renderComponent(t, Blog(testMeta, groups))
	i26 := strings.Index(got, `id="year-2026"`)
	i25 := strings.Index(got, `id="year-2025"`)
	if i26 < 0 || i25 < 0 || i26 > i25 {
		t.Errorf("years missing or out of order: 2026 at %d, 2025 at %d", i26, i25)
	}
}

func TestPost(t *testing.T) {
	related := []pubfolio.Post{{Slug: "other", Title: "Other", Date: "2025-01-01", Link: "/posts/other"}}
	got := renderComponent(t, Post(testMeta, testPost, related))
	if !strings.Contains(got, `<h1 id="heading">Heading</h1>`) {
		t.Errorf("markdown not rendered: %q", got)
	}
	if strings.Contains(got, "<script>alert(1)</script>") {
		t.Error("raw HTML from content must not be rendered")
	}
	if !strings.Contains(got, "More posts") || !strings.Contains(got, `/posts/other/`) {
		t.Error("related posts missing")
	}
	if !strings.Contains(got, `<span class="tag">extra</span>`) {
		t.Error("post page shows all tags")
	}
	if !strings.Contains(got, `<script type="application/ld+json">{"@type":"WebSite"}</script>`) {
		t.Error("JSON-LD should be embedded verbatim")
	}
}

func TestErrorPages(t *testing.T) {
	if got := renderComponent(t, NotFound(testMeta)); !strings.Contains(got, "Page not found") {
		t.Errorf("not found page: %q", got)
	}
	if got := renderComponent(t, ServerError(testMeta)); !strings.Contains(got, "Something went wrong") {
		t.Errorf("server error page: %q", got)
	}
}

func TestReadingTime(t *testing.T) {
	if got := readingTime(pubfolio.Post{ReadingTimeMinutes: 4}); got != "4 min read" {
		t.Errorf("got %q", got)
	}
	if got := readingTime(pubfolio.Post{ReadingTimeMinutes: 2.5}); got != "2.5 min read" {
		t.Errorf("got %q", got)
	}
	if got := readingTime(pubfolio.Post{Content: "short"}); got != "1 min read" {
		t.Errorf("got %q", got)
	}
}

func TestLayoutWrapsChildren(t *testing.T) {
	got := renderComponent(t, NotFound(testMeta))
	if !strings.HasPrefix(got, "<!doctype html>") {
		t.Errorf("expected document shell, got %q", got[:min(len(got), 40)])
	}
	main := strings.Index(got, "<main>")
	body := strings.Index(got, "Page not found")
	end := strings.Index(got, "</main>")
	if main < 0 || body < main || end < body {
		t.Errorf("page body should render inside <main>: %q", got)
	}
	if !strings.Contains(got, `<footer class="site-footer"><p>© `) || !strings.Contains(got, " Ada</p>") {
		t.Errorf("footer should credit the author: %q", got)
	}
	if !strings.Contains(got, `aria-label="Toggle theme">Light</button>`) {
		t.Error("dark theme should offer the light toggle")
	}
}

func TestLayoutOptionalMeta(t *testing.T) {
	meta := pubfolio.PageMeta{SiteName: "Bare", Theme: "cad-amber"}
	got := renderComponent(t, Home(meta, nil))
	for _, absent := range []string{`rel="canonical"`, `og:image`, `application/ld+json`} {
		if strings.Contains(got, absent) {
			t.Errorf("unexpected %q without metadata", absent)
		}
	}
	if !strings.Contains(got, "<p>Bare</p>") {
		t.Error("footer falls back to the site name")
	}
	if !strings.Contains(got, ">Dark</button>") {
		t.Error("light theme should offer the dark toggle")
	}
}

func TestRenderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if err := Home(testMeta, nil).Render(ctx, &buf); err == nil {
		t.Error("expected render to stop on a cancelled context")
	}
}
