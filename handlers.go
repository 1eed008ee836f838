package mdxblog

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/mdxblog/content"
	"github.com/eringen/mdxblog/pagination"
)

func (a *App) handleHome(c echo.Context) error {
	latest := a.Library.Collection().Latest(a.Config.LatestCount)
	return Render(c, a.Views.Home(latest))
}

// handleBlog serves one page of published posts, selected by ?page=N.
func (a *App) handleBlog(c echo.Context) error {
	page := pagination.ParsePage(c.QueryParam(pagination.Param))
	posts := a.Library.Collection().List(true)
	p := pagination.Paginate(posts, a.Config.PageSize, page)
	nav := pagination.Links(c.Request().URL, p.Page, p.TotalPages)
	return Render(c, a.Views.Blog(p, nav))
}

func (a *App) handlePost(c echo.Context) error {
	slug := strings.Trim(c.Param("*"), "/")
	post, err := a.Library.Collection().Get(slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	return Render(c, a.Views.Post(post))
}

func (a *App) handleTags(c echo.Context) error {
	return Render(c, a.Views.Tags(a.Library.Collection().SortedTags()))
}

func (a *App) handleTag(c echo.Context) error {
	tag := c.Param("tag")
	if unescaped, err := url.PathUnescape(tag); err == nil {
		tag = unescaped
	}
	posts := a.Library.Collection().Tagged(tag)
	if len(posts) == 0 {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	return Render(c, a.Views.Tag(tag, posts))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.Views.About(a.Library.About()))
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Library.Collection().List(true))
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Library.Collection().List(true))
}

// handleRobots generates robots.txt from the canonical site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n", BuildURL(a.Config.URL)+"sitemap.xml")
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error("server error", "error", err, "uri", c.Request().RequestURI)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
