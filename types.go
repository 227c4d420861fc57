package pubfolio

import "strings"

// DisplayTagLimit caps how many tags a post shows in listings.
const DisplayTagLimit = 3

// Post is a single catalog entry built from one content file.
type Post struct {
	Slug               string
	Title              string
	Date               string // canonical YYYY-MM-DD
	Description        string
	Tag                string // raw comma-separated tags as written in front matter
	ReadingTimeMinutes float64
	Content            string // raw body, rendered later by views
	Link               string
}

// Tags splits the raw tag string into trimmed, non-empty tags.
func (p Post) Tags() []string {
	return SplitTags(p.Tag)
}

// DisplayTags returns at most DisplayTagLimit tags.
func (p Post) DisplayTags() []string {
	tags := p.Tags()
	if len(tags) > DisplayTagLimit {
		tags = tags[:DisplayTagLimit]
	}
	return tags
}

// Year is the four-character year prefix of the post date.
func (p Post) Year() string {
	if len(p.Date) < 4 {
		return p.Date
	}
	return p.Date[:4]
}

// YearGroup is one bucket of the blog index.
type YearGroup struct {
	Year  string
	Posts []Post
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	SiteName    string
	SiteAuthor  string
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // og:image
	Theme       string // resolved theme name for the visitor
	CSRFToken   string
	JSONLD      string
	Path        string // request path, used to return after a theme change
}

// SplitTags splits a comma-separated tag string, trimming whitespace and
// dropping empty entries.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func postLink(slug string) string {
	return "/posts/" + slug
}
