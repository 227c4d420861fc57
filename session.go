package pubfolio

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/eringen/pubfolio/theme"
)

const sessionName = "pubfolio_session"

// sessionPreference stores the visitor's theme in the session cookie.
type sessionPreference struct {
	c echo.Context
}

var _ theme.PreferenceStore = sessionPreference{}

func (s sessionPreference) Load() (theme.Name, error) {
	sess, err := session.Get(sessionName, s.c)
	if err != nil {
		return "", err
	}
	name, _ := sess.Values[theme.PreferenceKey].(string)
	return theme.Name(name), nil
}

func (s sessionPreference) Save(name theme.Name) error {
	sess, err := session.Get(sessionName, s.c)
	if err != nil {
		return err
	}
	sess.Values[theme.PreferenceKey] = string(name)
	return sess.Save(s.c.Request(), s.c.Response())
}

// visitorTheme resolves the theme for the current request: a valid stored
// preference, otherwise the site default.
func (a *App) visitorTheme(c echo.Context) theme.Name {
	return theme.ResolvePreference(sessionPreference{c}, a.defaultTheme)
}
