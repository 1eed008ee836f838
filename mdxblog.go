// Package mdxblog serves a personal blog compiled from Markdown/MDX files.
// It provides the blog index with pagination, tag pages, an about page, RSS,
// and a sitemap out of the box.
//
// Users provide their own templates via the ViewFuncs struct, and mdxblog
// handles the handler logic, middleware, and the compiled content artifact.
package mdxblog

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/mdxblog/content"
	"github.com/eringen/mdxblog/logger"
	"github.com/eringen/mdxblog/pagination"
)

// ViewFuncs holds user-provided templ components that the framework calls
// when rendering pages. The views package provides a default set.
type ViewFuncs struct {
	Home        func(latest []content.Post) templ.Component
	Blog        func(page pagination.Page[content.Post], nav pagination.Nav) templ.Component
	Post        func(post content.Post) templ.Component
	Tags        func(tags []content.TagCount) templ.Component
	Tag         func(tag string, posts []content.Post) templ.Component
	About       func(body string) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central mdxblog application. It wires together the library,
// handlers, middleware, and user-provided templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Library *Library
	Views   ViewFuncs
	Log     *logger.Logger

	customRoutes []func(*App)
}

// New creates an App serving lib with the given configuration and views.
// Routes and middleware are registered immediately; call Start to listen.
func New(cfg SiteConfig, lib *Library, views ViewFuncs, opts ...Option) *App {
	cfg.SetDefaults()

	a := &App{
		Config:  cfg,
		Echo:    echo.New(),
		Library: lib,
		Views:   views,
		Log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.Echo.HideBanner = true
	a.Echo.HidePort = true
	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a
}

// Start listens on Config.Addr until ctx is cancelled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		a.Log.Info("listening", "addr", a.Config.Addr, "url", a.Config.URL)
		errc <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.Log.Info("shutting down")
		return a.Echo.Shutdown(shutdownCtx)
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	// User's static assets
	e.Static("/public", a.Config.StaticDir)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/*", a.handlePost)
	e.GET("/tags/", a.handleTags)
	e.GET("/tags/:tag/", a.handleTag)
	e.GET("/about/", a.handleAbout)
}

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
// The component is rendered into a buffer first so a failing template never
// leaves a half-written 200 behind.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	return c.HTMLBlob(code, buf.Bytes())
}
