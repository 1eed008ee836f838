package mdxblog

import (
	"time"

	"github.com/eringen/mdxblog/content"
	"github.com/eringen/mdxblog/logger"
)

// SiteConfig holds all configuration for an mdxblog site. Field tags are the
// keys read from config.yaml and MDXBLOG_* environment variables.
type SiteConfig struct {
	Name        string            `mapstructure:"name"`        // Site name (default "Blog")
	URL         string            `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string            `mapstructure:"description"` // Site description for RSS and meta tags
	Author      string            `mapstructure:"author"`      // Author name for the bio and JSON-LD
	Links       map[string]string `mapstructure:"links"`       // e.g. github -> https://github.com/you

	Addr      string `mapstructure:"addr"`      // Listen address (default ":3000")
	StaticDir string `mapstructure:"staticDir"` // User-owned static assets (default "public")

	ContentDir     string `mapstructure:"contentDir"`     // Content root (default "content")
	ContentPattern string `mapstructure:"contentPattern"` // Post glob under ContentDir (default "blog/**/*.{md,mdx}")
	AboutFile      string `mapstructure:"aboutFile"`      // About page under ContentDir (default "about.md")
	ArtifactPath   string `mapstructure:"artifactPath"`   // Compiled content SQLite (default "data/content.db")

	PageSize    int `mapstructure:"pageSize"`    // Posts per blog index page (default 5)
	LatestCount int `mapstructure:"latestCount"` // Posts on the home page (default 3)

	LogMode       string        `mapstructure:"logMode"`       // "dev" or "prod" (default "dev")
	WatchDebounce time.Duration `mapstructure:"watchDebounce"` // Dev reload quiet period (default 200ms)
}

// SetDefaults fills every zero field with its default.
func (c *SiteConfig) SetDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.ContentPattern == "" {
		c.ContentPattern = content.DefaultPattern
	}
	if c.AboutFile == "" {
		c.AboutFile = "about.md"
	}
	if c.ArtifactPath == "" {
		c.ArtifactPath = "data/content.db"
	}
	if c.PageSize <= 0 {
		c.PageSize = 5
	}
	if c.LatestCount <= 0 {
		c.LatestCount = 3
	}
	if c.LogMode == "" {
		c.LogMode = "dev"
	}
	if c.WatchDebounce <= 0 {
		c.WatchDebounce = 200 * time.Millisecond
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLogger sets the logger used for request and lifecycle logging.
func WithLogger(l *logger.Logger) Option {
	return func(a *App) {
		a.Log = l
	}
}
