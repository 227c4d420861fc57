package pubfolio

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/pubfolio/theme"
)

// pageMeta fills the parts of PageMeta common to every page.
func (a *App) pageMeta(c echo.Context, title, description, canonical string) PageMeta {
	if description == "" {
		description = a.Config.Description
	}
	meta := PageMeta{
		SiteName:    a.Config.Name,
		SiteAuthor:  a.Config.Author,
		Title:       title,
		Description: description,
		URL:         canonical,
		OGType:      "website",
		Theme:       string(a.visitorTheme(c)),
		CSRFToken:   CsrfToken(c),
		JSONLD:      WebsiteJsonLD(a.Config),
		Path:        c.Request().URL.Path,
	}
	if a.Config.Image != "" {
		meta.Image = AbsoluteURL(a.Config.URL, a.Config.Image)
	} else {
		meta.Image = ogImageURL(a.Config.URL, title, description)
	}
	return meta
}

func ogImageURL(base, title, description string) string {
	q := url.Values{}
	if title != "" {
		q.Set("title", title)
	}
	if description != "" {
		q.Set("description", description)
	}
	ref := "/api/og"
	if len(q) > 0 {
		ref += "?" + q.Encode()
	}
	return AbsoluteURL(base, ref)
}

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Cache.ListAllPosts(c.Request().Context())
	if err != nil {
		return err
	}
	meta := a.pageMeta(c, a.Config.Name, a.Config.Description, BuildURL(a.Config.URL))
	return Render(c, a.Views.Home(meta, RecentPosts(posts, HomePostLimit)))
}

func (a *App) handleBlog(c echo.Context) error {
	posts, err := a.Cache.ListAllPosts(c.Request().Context())
	if err != nil {
		return err
	}
	meta := a.pageMeta(c, "Blog | "+a.Config.Name, a.Config.Description, BuildURL(a.Config.URL, "blog"))
	return Render(c, a.Views.Blog(meta, YearGroups(posts)))
}

func (a *App) handlePost(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUndated) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.pageMeta(c, "Not Found", "", "")))
		}
		return err
	}
	related, err := a.Cache.RelatedPosts(ctx, slug, RelatedLimit)
	if err != nil {
		return err
	}
	meta := a.pageMeta(c, post.Title, PostDescription(post), BuildURL(a.Config.URL, "posts", post.Slug))
	meta.OGType = "article"
	meta.JSONLD = BlogPostingJsonLD(post, a.Config)
	return Render(c, a.Views.Post(meta, post, related))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListAllPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListAllPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleRobots(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return robotsTxt(c.Response(), a.Config.URL)
}

// handleThemeCSS serves the visitor's theme as CSS custom properties. A
// ?name= parameter previews any registered theme.
func (a *App) handleThemeCSS(c echo.Context) error {
	name := a.visitorTheme(c)
	if q := theme.Name(c.QueryParam("name")); q != "" {
		if _, ok := a.Themes.Lookup(q); ok {
			name = q
		}
	}
	css := theme.Stylesheet(a.Themes.Get(name))
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}

// handleThemeSet stores the visitor's theme choice and redirects back. An
// empty value toggles between the two selectable themes.
func (a *App) handleThemeSet(c echo.Context) error {
	name := theme.Name(c.FormValue("theme"))
	if name == "" {
		name = theme.Toggle(a.visitorTheme(c))
	}
	if !theme.IsPreference(name) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown theme")
	}
	if err := (sessionPreference{c}).Save(name); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, safeReturnPath(c.FormValue("return")))
}

// safeReturnPath only allows local absolute paths.
func safeReturnPath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, "\\") {
		return "/"
	}
	return p
}

func (a *App) handleOG(c echo.Context) error {
	if !a.ogLimiter.Allow(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
	}
	title := strings.TrimSpace(c.QueryParam("title"))
	if title == "" {
		title = a.Config.Name
	}
	description := strings.TrimSpace(c.QueryParam("description"))
	if description == "" {
		description = a.Config.Description
	}
	var buf bytes.Buffer
	if err := RenderOGImage(&buf, title, description); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.pageMeta(c, "Not Found", "", "")))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error", zap.Error(err), zap.String("uri", c.Request().RequestURI))
		_ = RenderStatus(c, code, a.Views.ServerError(a.pageMeta(c, "Server Error", "", "")))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
