// Package views is the default set of page templates for an mdxblog site.
// Pages are html/template files embedded in the binary and exposed to the
// server as templ components.
package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/mdxblog"
	"github.com/eringen/mdxblog/content"
	"github.com/eringen/mdxblog/pagination"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"formatDate": FormatDate,
	"tagLabel":   TagLabel,
	"tagURL":     TagURL,
	"tagClass":   TagClass,
	"links":      SocialLinks,
	"year":       func() int { return time.Now().Year() },
}

// pageNames are the page templates; each is parsed together with layout.html.
var pageNames = []string{"home", "blog", "post", "tags", "tag", "about", "notfound", "error"}

// Views renders the default site pages.
type Views struct {
	cfg   mdxblog.SiteConfig
	pages map[string]*template.Template
}

// New parses the embedded templates for cfg.
func New(cfg mdxblog.SiteConfig) (*Views, error) {
	cfg.SetDefaults()
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("views: parse layout: %w", err)
	}
	v := &Views{cfg: cfg, pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.Must(base.Clone()).ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("views: parse %s: %w", name, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

// Funcs returns the ViewFuncs an App renders with.
func (v *Views) Funcs() mdxblog.ViewFuncs {
	return mdxblog.ViewFuncs{
		Home:        v.Home,
		Blog:        v.Blog,
		Post:        v.Post,
		Tags:        v.Tags,
		Tag:         v.Tag,
		About:       v.About,
		NotFound:    v.NotFound,
		ServerError: v.ServerError,
	}
}

func (v *Views) Home(latest []content.Post) templ.Component {
	return v.render("home", pageData{
		Meta:   v.meta("", v.cfg.Description, mdxblog.BuildURL(v.cfg.URL), "website"),
		JSONLD: template.JS(WebsiteJsonLD(v.cfg)),
		Posts:  latest,
	})
}

func (v *Views) Blog(page pagination.Page[content.Post], nav pagination.Nav) templ.Component {
	return v.render("blog", pageData{
		Meta: v.meta("Blog", v.cfg.Description, mdxblog.BuildURL(v.cfg.URL, "blog"), "website"),
		Page: page,
		Nav:  nav,
	})
}

func (v *Views) Post(post content.Post) templ.Component {
	return v.render("post", pageData{
		Meta:   v.meta(post.Title, post.Description, mdxblog.PostURL(v.cfg.URL, post), "article"),
		JSONLD: template.JS(BlogPostingJsonLD(v.cfg, post)),
		Post:   post,
		Body:   template.HTML(post.Body),
	})
}

func (v *Views) Tags(tags []content.TagCount) templ.Component {
	return v.render("tags", pageData{
		Meta: v.meta("Tags", "Topics I have written about", mdxblog.BuildURL(v.cfg.URL, "tags"), "website"),
		Tags: tags,
	})
}

func (v *Views) Tag(tag string, posts []content.Post) templ.Component {
	return v.render("tag", pageData{
		Meta:  v.meta(TagLabel(tag), "Posts tagged "+tag, mdxblog.BuildURL(v.cfg.URL, "tags", tag), "website"),
		Tag:   tag,
		Posts: posts,
	})
}

func (v *Views) About(body string) templ.Component {
	return v.render("about", pageData{
		Meta: v.meta("About", "About "+v.cfg.Author, mdxblog.BuildURL(v.cfg.URL, "about"), "website"),
		Body: template.HTML(body),
	})
}

func (v *Views) NotFound() templ.Component {
	return v.render("notfound", pageData{Meta: v.meta("Not found", "", "", "website")})
}

func (v *Views) ServerError() templ.Component {
	return v.render("error", pageData{Meta: v.meta("Error", "", "", "website")})
}

func (v *Views) meta(title, description, url, ogType string) PageMeta {
	if title == "" {
		title = v.cfg.Name
	} else {
		title = title + " | " + v.cfg.Name
	}
	return PageMeta{Title: title, Description: description, URL: url, OGType: ogType}
}

func (v *Views) render(name string, data pageData) templ.Component {
	data.Site = v.cfg
	t := v.pages[name]
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return t.ExecuteTemplate(w, "layout.html", data)
	})
}
