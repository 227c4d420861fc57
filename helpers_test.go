package pubfolio

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"blog"}, "https://example.com/blog/"},
		{"https://example.com/", []string{"posts", "hello"}, "https://example.com/posts/hello/"},
		{"https://example.com/site", []string{"posts", "hello"}, "https://example.com/site/posts/hello/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		base, ref, want string
	}{
		{"https://example.com", "/rss.xml", "https://example.com/rss.xml"},
		{"https://example.com/", "sitemap.xml", "https://example.com/sitemap.xml"},
		{"https://example.com", "/api/og?title=x", "https://example.com/api/og?title=x"},
		{"https://example.com", "https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"https://example.com", "", "https://example.com"},
	}
	for _, tt := range tests {
		if got := AbsoluteURL(tt.base, tt.ref); got != tt.want {
			t.Errorf("AbsoluteURL(%q, %q) = %q, want %q", tt.base, tt.ref, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2025-09-02"); got != "September 2, 2025" {
		t.Errorf("got %q", got)
	}
	if got := FormatDate("2025-13"); got != "2025-13" {
		t.Errorf("expected invalid date unchanged, got %q", got)
	}
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name string
		post Post
		want float64
	}{
		{"declared", Post{ReadingTimeMinutes: 7, Content: "short"}, 7},
		{"estimated", Post{Content: strings.Repeat("word ", 450)}, 3},
		{"minimum one", Post{Content: "tiny"}, 1},
		{"empty", Post{}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadingTime(tt.post); got != tt.want {
				t.Errorf("ReadingTime = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPostDescription(t *testing.T) {
	if got := PostDescription(Post{Title: "T", Description: " D "}); got != "D" {
		t.Errorf("got %q", got)
	}
	if got := PostDescription(Post{Title: "T"}); got != "Blog post: T" {
		t.Errorf("got %q", got)
	}
}

func TestRecentPosts(t *testing.T) {
	posts := []Post{{Slug: "a"}, {Slug: "b"}, {Slug: "c"}}
	if got := RecentPosts(posts, 2); len(got) != 2 || got[1].Slug != "b" {
		t.Errorf("unexpected recent posts: %v", got)
	}
	if got := RecentPosts(posts, 5); len(got) != 3 {
		t.Errorf("expected all posts, got %d", len(got))
	}
	if got := RecentPosts(posts, -1); len(got) != 0 {
		t.Errorf("expected none, got %d", len(got))
	}
}

func TestBlogPostingJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Site", URL: "https://example.com", Author: "Ada", Image: "/public/og.png"}
	post := Post{Slug: "hello", Title: "Hello", Date: "2025-09-02", Tag: "go, web"}

	var data map[string]any
	if err := json.Unmarshal([]byte(BlogPostingJsonLD(post, cfg)), &data); err != nil {
		t.Fatalf("invalid JSON-LD: %v", err)
	}
	checks := map[string]any{
		"@type":         "BlogPosting",
		"headline":      "Hello",
		"datePublished": "2025-09-02",
		"url":           "https://example.com/posts/hello/",
		"description":   "Blog post: Hello",
		"image":         "https://example.com/public/og.png",
		"keywords":      "go, web",
	}
	for k, want := range checks {
		if data[k] != want {
			t.Errorf("%s = %v, want %v", k, data[k], want)
		}
	}
	if author, _ := data["author"].(map[string]any); author["name"] != "Ada" {
		t.Errorf("unexpected author: %v", data["author"])
	}
}

func TestWebsiteJsonLD(t *testing.T) {
	var data map[string]any
	if err := json.Unmarshal([]byte(WebsiteJsonLD(SiteConfig{Name: "Site", URL: "https://example.com"})), &data); err != nil {
		t.Fatalf("invalid JSON-LD: %v", err)
	}
	if data["@type"] != "WebSite" || data["name"] != "Site" {
		t.Errorf("unexpected JSON-LD: %v", data)
	}
	if _, ok := data["author"]; ok {
		t.Error("author should be omitted when unset")
	}
}
