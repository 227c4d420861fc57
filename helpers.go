package pubfolio

import (
	"encoding/json"
	"math"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/eringen/pubfolio/markdown"
)

// WordsPerMinute is the reading speed used to estimate reading time.
const WordsPerMinute = 200

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// AbsoluteURL resolves ref against base. Absolute refs are returned as is.
// Unlike BuildURL no trailing slash is added, so it suits file-like paths
// such as /rss.xml.
func AbsoluteURL(base, ref string) string {
	if ref == "" {
		return base
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if r.IsAbs() {
		return ref
	}
	u, err := url.Parse(base)
	if err != nil {
		return ref
	}
	u.Path = path.Join("/", u.Path, r.Path)
	u.RawQuery = r.RawQuery
	return u.String()
}

// FormatDate renders a canonical YYYY-MM-DD date as "January 2, 2006".
// Anything else is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.UTC().Format("January 2, 2006")
}

// ReadingTime returns the post's declared reading time, or an estimate from
// its word count.
func ReadingTime(p Post) float64 {
	if p.ReadingTimeMinutes > 0 {
		return p.ReadingTimeMinutes
	}
	words := markdown.WordCount(p.Content)
	return math.Max(1, math.Ceil(float64(words)/WordsPerMinute))
}

// PostDescription returns the post description, falling back to a sentence
// built from the title.
func PostDescription(p Post) string {
	if d := strings.TrimSpace(p.Description); d != "" {
		return d
	}
	return "Blog post: " + p.Title
}

// RecentPosts returns at most n posts from the front of a sorted list.
func RecentPosts(posts []Post, n int) []Post {
	if n < 0 {
		n = 0
	}
	if len(posts) > n {
		return posts[:n]
	}
	return posts
}

func personJsonLD(name string) map[string]string {
	return map[string]string{
		"@type": "Person",
		"name":  name,
	}
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema using SiteConfig.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Name,
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
	}
	if cfg.Author != "" {
		data["author"] = personJsonLD(cfg.Author)
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(post Post, cfg SiteConfig) string {
	postURL := BuildURL(cfg.URL, "posts", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   PostDescription(post),
		"datePublished": post.Date,
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if cfg.Author != "" {
		data["author"] = personJsonLD(cfg.Author)
	}
	if cfg.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		}
	}
	if cfg.Image != "" {
		data["image"] = AbsoluteURL(cfg.URL, cfg.Image)
	}
	if tags := post.Tags(); len(tags) > 0 {
		data["keywords"] = strings.Join(tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
