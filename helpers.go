package mdxblog

import (
	"net/url"
	"path"
	"strings"

	"github.com/eringen/mdxblog/content"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// PostURL returns the canonical absolute URL of post.
func PostURL(base string, post content.Post) string {
	return BuildURL(base, "blog", post.SlugAsParams)
}
