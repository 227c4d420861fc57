package pubfolio

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
	"time"
)

func feedConfig() SiteConfig {
	return SiteConfig{
		Name:        "Site",
		URL:         "https://example.com",
		Description: "A portfolio",
		Author:      "Ada",
		AuthorEmail: "ada@example.com",
		Image:       "/public/logo.png",
	}
}

func TestBuildFeed(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	posts := []Post{
		{Slug: "new", Title: "New & Shiny", Date: "2026-01-25", Tag: "go, web"},
		{Slug: "old", Title: "Old", Date: "2025-09-02", Description: "Older post"},
	}
	feed := buildFeed(feedConfig(), posts, now)
	ch := feed.Channel

	if feed.Version != "2.0" {
		t.Errorf("version = %q", feed.Version)
	}
	if ch.AtomLink.Href != "https://example.com/rss.xml" || ch.AtomLink.Rel != "self" {
		t.Errorf("unexpected atom link: %+v", ch.AtomLink)
	}
	if ch.ManagingEditor != "ada@example.com (Ada)" {
		t.Errorf("managingEditor = %q", ch.ManagingEditor)
	}
	if ch.Copyright != "Copyright 2026 Ada" {
		t.Errorf("copyright = %q", ch.Copyright)
	}
	if ch.Image == nil || ch.Image.URL != "https://example.com/public/logo.png" {
		t.Errorf("unexpected image: %+v", ch.Image)
	}
	if len(ch.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(ch.Items))
	}

	first := ch.Items[0]
	if first.Link != "https://example.com/posts/new/" || first.GUID.Value != first.Link {
		t.Errorf("unexpected link/guid: %q %q", first.Link, first.GUID.Value)
	}
	if first.PubDate != "Sun, 25 Jan 2026 00:00:00 +0000" {
		t.Errorf("pubDate = %q", first.PubDate)
	}
	if first.Description.Text != "Blog post: New & Shiny" {
		t.Errorf("description = %q", first.Description.Text)
	}
	if len(first.Categories) != 2 {
		t.Errorf("categories = %v", first.Categories)
	}
	if ch.Items[1].Description.Text != "Older post" {
		t.Errorf("description = %q", ch.Items[1].Description.Text)
	}
}

func TestBuildFeedWithoutAuthor(t *testing.T) {
	cfg := SiteConfig{Name: "Site", URL: "https://example.com"}
	ch := buildFeed(cfg, nil, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)).Channel
	if ch.ManagingEditor != "" || ch.Image != nil {
		t.Errorf("expected optional fields empty: %+v", ch)
	}
	if ch.Copyright != "Copyright 2026 Site" {
		t.Errorf("copyright = %q", ch.Copyright)
	}
}

func TestWriteFeed(t *testing.T) {
	feed := buildFeed(feedConfig(), []Post{{Slug: "a", Title: "A <b>", Date: "2025-01-01"}}, time.Now())
	var buf bytes.Buffer
	if err := writeFeed(&buf, feed); err != nil {
		t.Fatalf("writeFeed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, xml.Header) {
		t.Error("missing XML header")
	}
	for _, want := range []string{`xmlns:atom="http://www.w3.org/2005/Atom"`, "<atom:link", "<![CDATA[A <b>]]>", `isPermaLink="true"`} {
		if !strings.Contains(out, want) {
			t.Errorf("feed missing %q:\n%s", want, out)
		}
	}
}

func TestBuildSitemap(t *testing.T) {
	set := buildSitemap("https://example.com", []Post{{Slug: "a", Date: "2025-01-01"}})
	if len(set.URLs) != 3 {
		t.Fatalf("expected 3 urls, got %d", len(set.URLs))
	}
	home, blog, post := set.URLs[0], set.URLs[1], set.URLs[2]
	if home.Loc != "https://example.com" || home.Priority != "1.0" || home.ChangeFreq != "monthly" {
		t.Errorf("unexpected home entry: %+v", home)
	}
	if blog.Loc != "https://example.com/blog/" || blog.Priority != "0.8" {
		t.Errorf("unexpected blog entry: %+v", blog)
	}
	if post.Loc != "https://example.com/posts/a/" || post.LastMod != "2025-01-01" || post.ChangeFreq != "never" {
		t.Errorf("unexpected post entry: %+v", post)
	}
}

func TestRobotsTxt(t *testing.T) {
	var buf bytes.Buffer
	if err := robotsTxt(&buf, "https://example.com"); err != nil {
		t.Fatal(err)
	}
	want := "User-agent: *\nAllow: /\nDisallow: /api/private/\nDisallow: /admin/\n\nSitemap: https://example.com/sitemap.xml\n"
	if buf.String() != want {
		t.Errorf("robots.txt =\n%s\nwant\n%s", buf.String(), want)
	}
}
