package pubfolio

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const feedCacheControl = "public, max-age=3600, stale-while-revalidate=86400"

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Atom    string     `xml:"xmlns:atom,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title          string    `xml:"title"`
	Link           string    `xml:"link"`
	Description    string    `xml:"description"`
	AtomLink       atomLink  `xml:"atom:link"`
	Language       string    `xml:"language"`
	LastBuildDate  string    `xml:"lastBuildDate"`
	ManagingEditor string    `xml:"managingEditor,omitempty"`
	WebMaster      string    `xml:"webMaster,omitempty"`
	Copyright      string    `xml:"copyright,omitempty"`
	Image          *rssImage `xml:"image,omitempty"`
	Items          []rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssImage struct {
	URL   string `xml:"url"`
	Title string `xml:"title"`
	Link  string `xml:"link"`
}

type cdata struct {
	Text string `xml:",cdata"`
}

type rssGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type rssItem struct {
	Title       cdata    `xml:"title"`
	Link        string   `xml:"link"`
	GUID        rssGUID  `xml:"guid"`
	PubDate     string   `xml:"pubDate,omitempty"`
	Description cdata    `xml:"description"`
	Author      string   `xml:"author,omitempty"`
	Categories  []string `xml:"category"`
}

// feedAuthor formats the RSS author as "email (name)".
func feedAuthor(cfg SiteConfig) string {
	if cfg.AuthorEmail == "" {
		return ""
	}
	if cfg.Author == "" {
		return cfg.AuthorEmail
	}
	return fmt.Sprintf("%s (%s)", cfg.AuthorEmail, cfg.Author)
}

// buildFeed converts catalog-ordered posts into an RSS 2.0 document.
func buildFeed(cfg SiteConfig, posts []Post, now time.Time) rssXML {
	base := cfg.URL
	author := feedAuthor(cfg)
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		pubDate := ""
		if t, err := time.Parse("2006-01-02", p.Date); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := BuildURL(base, "posts", p.Slug)
		items = append(items, rssItem{
			Title:       cdata{p.Title},
			Link:        postURL,
			GUID:        rssGUID{IsPermaLink: "true", Value: postURL},
			PubDate:     pubDate,
			Description: cdata{PostDescription(p)},
			Author:      author,
			Categories:  p.Tags(),
		})
	}

	owner := cfg.Author
	if owner == "" {
		owner = cfg.Name
	}
	ch := rssChannel{
		Title:       cfg.Name,
		Link:        BuildURL(base),
		Description: cfg.Description,
		AtomLink: atomLink{
			Href: AbsoluteURL(base, "/rss.xml"),
			Rel:  "self",
			Type: "application/rss+xml",
		},
		Language:       "en-us",
		LastBuildDate:  now.UTC().Format(time.RFC1123Z),
		ManagingEditor: author,
		WebMaster:      author,
		Copyright:      fmt.Sprintf("Copyright %d %s", now.Year(), owner),
		Items:          items,
	}
	if cfg.Image != "" {
		ch.Image = &rssImage{
			URL:   AbsoluteURL(base, cfg.Image),
			Title: cfg.Name,
			Link:  BuildURL(base),
		}
	}
	return rssXML{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: ch,
	}
}

func writeFeed(w io.Writer, feed rssXML) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(feed)
}

func (a *App) renderRSS(c echo.Context, posts []Post) error {
	feed := buildFeed(a.Config, posts, a.now())
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().Header().Set("Cache-Control", feedCacheControl)
	c.Response().WriteHeader(http.StatusOK)
	return writeFeed(c.Response(), feed)
}
