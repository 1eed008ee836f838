package views

import (
	"html/template"

	"github.com/eringen/mdxblog"
	"github.com/eringen/mdxblog/content"
	"github.com/eringen/mdxblog/pagination"
)

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// pageData is the value every page template executes against. Fields a page
// does not need stay zero.
type pageData struct {
	Site   mdxblog.SiteConfig
	Meta   PageMeta
	JSONLD template.JS

	Posts []content.Post
	Post  content.Post
	Body  template.HTML
	Tags  []content.TagCount
	Tag   string
	Page  pagination.Page[content.Post]
	Nav   pagination.Nav
}
