package pubfolio

import (
	"encoding/xml"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

func buildSitemap(base string, posts []Post) sitemapURLSet {
	urls := []sitemapURL{
		{Loc: BuildURL(base), ChangeFreq: "monthly", Priority: "1.0"},
		{Loc: BuildURL(base, "blog"), ChangeFreq: "weekly", Priority: "0.8"},
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:        BuildURL(base, "posts", p.Slug),
			LastMod:    p.Date,
			ChangeFreq: "never",
			Priority:   "0.6",
		})
	}
	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
}

func (a *App) renderSitemap(c echo.Context, posts []Post) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(buildSitemap(a.Config.URL, posts))
}

// robotsTxt allows everything except private API and admin paths and points
// crawlers at the sitemap.
func robotsTxt(w io.Writer, base string) error {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/private/\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + AbsoluteURL(base, "/sitemap.xml") + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}
