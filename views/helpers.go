package views

import (
	"encoding/json"
	"html"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eringen/mdxblog"
	"github.com/eringen/mdxblog/content"
	"github.com/eringen/mdxblog/markdown"
)

// FormatDate renders a post date the way listings show it, e.g. "March 4, 2024".
func FormatDate(p content.Post) string {
	return p.Date.Format("January 2, 2006")
}

// TagLabel turns a normalized tag such as "next-js" into "Next Js".
func TagLabel(tag string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(tag, "-", " "))
}

// TagURL returns the site-relative listing path of a tag.
func TagURL(tag string) string {
	return "/tags/" + url.PathEscape(tag) + "/"
}

// TagClass returns CSS classes for a tag pill, with active variant.
func TagClass(active bool) string {
	base := "tag"
	if active {
		base += " tag-active"
	}
	return base
}

// SocialLink is one entry of the footer link row.
type SocialLink struct {
	Name string
	Href string
}

// SocialLinks returns the configured links sorted by name, dropping any whose
// target markdown.SafeURL rejects.
func SocialLinks(links map[string]string) []SocialLink {
	out := make([]SocialLink, 0, len(links))
	for name, href := range links {
		safe := markdown.SafeURL(href)
		if safe == "" {
			continue
		}
		// html/template escapes attributes itself.
		out = append(out, SocialLink{Name: TagLabel(name), Href: html.UnescapeString(safe)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg mdxblog.SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      mdxblog.BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(cfg mdxblog.SiteConfig, post content.Post) string {
	postURL := mdxblog.PostURL(cfg.URL, post)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"datePublished": post.ISODate(),
		"url":           postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.Description != "" {
		data["description"] = post.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
