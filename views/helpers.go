package views

import (
	"math"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/pubfolio"
)

// formatDate renders a post date as "September 2, 2025".
func formatDate(date string) string {
	return pubfolio.FormatDate(date)
}

// readingTime formats the post's reading time, e.g. "4 min read".
func readingTime(p pubfolio.Post) string {
	m := pubfolio.ReadingTime(p)
	if m == math.Trunc(m) {
		return strconv.Itoa(int(m)) + " min read"
	}
	return strconv.FormatFloat(m, 'f', 1, 64) + " min read"
}

// postURL is the post's canonical page path.
func postURL(p pubfolio.Post) string {
	return p.Link + "/"
}

// toggleLabel names the theme the toggle button switches to.
func toggleLabel(theme string) string {
	if theme == "tech-noir" {
		return "Light"
	}
	return "Dark"
}

func footerText(meta pubfolio.PageMeta) string {
	if meta.SiteAuthor != "" {
		return "© " + strconv.Itoa(time.Now().Year()) + " " + meta.SiteAuthor
	}
	return meta.SiteName
}

// jsonLD embeds structured data. json.Marshal escapes <, > and &, so the
// payload cannot close the script element.
func jsonLD(s string) templ.Component {
	if s == "" {
		return templ.NopComponent
	}
	return templ.Raw(`<script type="application/ld+json">` + s + `</script>`)
}
