package content

import (
	"path"
	"path/filepath"
	"strings"
)

// SlugFromPath derives a slug from a source path relative to the content root:
// forward slashes, no extension, and a trailing "/index" collapsed into its
// directory. "blog/go/intro.mdx" -> "blog/go/intro", "blog/go/index.mdx" -> "blog/go".
func SlugFromPath(rel string) string {
	p := filepath.ToSlash(rel)
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	p = strings.TrimSuffix(p, path.Ext(p))
	if p == "index" {
		return p
	}
	return strings.TrimSuffix(p, "/index")
}

// ComputeFields returns post with SlugAsParams set to Slug minus its first
// path segment. A single-segment slug yields an empty SlugAsParams.
func ComputeFields(post Post) Post {
	segments := strings.Split(post.Slug, "/")
	post.SlugAsParams = strings.Join(segments[1:], "/")
	return post
}
