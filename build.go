package mdxblog

import (
	"context"
	"errors"
	"fmt"

	"github.com/eringen/mdxblog/content"
)

// BuildResult summarises a content build.
type BuildResult struct {
	Posts     int
	Published int
	Pages     int
}

// Compile reads everything src offers and validates it. A content error aborts
// the whole build; the returned error then wraps content.ValidationErrors.
func Compile(ctx context.Context, src Source) ([]content.Post, map[string]string, error) {
	posts, err := src.Posts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("mdxblog: build: %w", err)
	}
	pages := make(map[string]string)
	about, err := src.Page(ctx, PageAbout)
	switch {
	case err == nil:
		pages[PageAbout] = about
	case errors.Is(err, content.ErrNotFound):
	default:
		return nil, nil, fmt.Errorf("mdxblog: build: %w", err)
	}
	return posts, pages, nil
}

// Build compiles src and writes the result to the artifact store. Nothing is
// written when any content file fails validation.
func Build(ctx context.Context, src Source, store *Store) (BuildResult, error) {
	posts, pages, err := Compile(ctx, src)
	if err != nil {
		return BuildResult{}, err
	}
	if err := store.Replace(ctx, posts, pages); err != nil {
		return BuildResult{}, fmt.Errorf("mdxblog: write artifact: %w", err)
	}
	return BuildResult{
		Posts:     len(posts),
		Published: len(content.FilterPublished(posts)),
		Pages:     len(pages),
	}, nil
}
