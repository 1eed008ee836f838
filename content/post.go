// Package content turns a directory of Markdown/MDX files into validated,
// immutable post records and answers the listing queries the site needs.
package content

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a requested post does not exist or is not published.
var ErrNotFound = errors.New("content: not found")

// DateLayout is the canonical ISO-8601 date form used for display and storage.
const DateLayout = "2006-01-02"

// Post is a validated content record.
type Post struct {
	Slug         string // e.g. "blog/hello-world"
	SlugAsParams string // e.g. "hello-world"
	Source       string // path relative to the content root
	Title        string
	Description  string
	Date         time.Time
	Published    bool
	Tags         []string
	Body         string // compiled HTML
}

// ISODate returns the post date as YYYY-MM-DD.
func (p Post) ISODate() string {
	return p.Date.Format(DateLayout)
}

// Link returns the site-relative URL of the post.
func (p Post) Link() string {
	return "/blog/" + p.SlugAsParams + "/"
}

// HasTag reports whether the post carries tag, ignoring case and surrounding space.
func (p Post) HasTag(tag string) bool {
	want := normalizeTag(tag)
	if want == "" {
		return false
	}
	for _, t := range p.Tags {
		if normalizeTag(t) == want {
			return true
		}
	}
	return false
}

// Frontmatter is the raw metadata block at the head of a content file.
type Frontmatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Published   *bool    `yaml:"published"`
	Tags        []string `yaml:"tags"`
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
