package mdxblog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/eringen/mdxblog/content"
)

// Library holds the collection the server answers from. Readers get the
// current immutable snapshot; Reload swaps in a new one.
type Library struct {
	mu       sync.RWMutex
	coll     *content.Collection
	about    string
	loadedAt time.Time
	src      Source
}

// NewLibrary creates an empty Library backed by src. Call Reload before serving.
func NewLibrary(src Source) *Library {
	return &Library{src: src, coll: content.NewCollection(nil)}
}

// Reload fetches posts and pages from the source and swaps them in. On error
// the previous snapshot stays in place.
func (l *Library) Reload(ctx context.Context) error {
	posts, err := l.src.Posts(ctx)
	if err != nil {
		return fmt.Errorf("mdxblog: load posts: %w", err)
	}
	about, err := l.src.Page(ctx, PageAbout)
	if err != nil && !errors.Is(err, content.ErrNotFound) {
		return fmt.Errorf("mdxblog: load about page: %w", err)
	}
	coll := content.NewCollection(posts)

	l.mu.Lock()
	l.coll = coll
	l.about = about
	l.loadedAt = time.Now()
	l.mu.Unlock()
	return nil
}

// Collection returns the current snapshot. It is safe to hold across a Reload.
func (l *Library) Collection() *content.Collection {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.coll
}

// About returns the compiled about page, empty when the site has none.
func (l *Library) About() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.about
}

// LoadedAt reports when the current snapshot was loaded.
func (l *Library) LoadedAt() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loadedAt
}
