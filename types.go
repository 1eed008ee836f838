package mdxblog

import (
	"context"

	"github.com/eringen/mdxblog/content"
)

// PageAbout names the standalone about page.
const PageAbout = "about"

// Source supplies the posts and standalone pages a Library serves.
type Source interface {
	Posts(ctx context.Context) ([]content.Post, error)
	// Page returns the compiled HTML of a standalone page, or
	// content.ErrNotFound when the page does not exist.
	Page(ctx context.Context, name string) (string, error)
}

// DirSource reads straight from a content directory. It backs `build` and
// the dev server.
type DirSource struct {
	Loader    *content.Loader
	AboutFile string
}

// Posts loads and validates every post under the loader root.
func (d DirSource) Posts(ctx context.Context) ([]content.Post, error) {
	return d.Loader.Load(ctx)
}

// Page compiles the named standalone page.
func (d DirSource) Page(ctx context.Context, name string) (string, error) {
	if name != PageAbout || d.AboutFile == "" {
		return "", content.ErrNotFound
	}
	return d.Loader.LoadPage(d.AboutFile)
}
