package mdxblog

import (
	"context"
	"errors"
	"testing"

	"github.com/eringen/mdxblog/content"
)

// fakeSource serves fixed posts and an optional about page.
type fakeSource struct {
	posts []content.Post
	about string
	err   error
}

func (f *fakeSource) Posts(ctx context.Context) ([]content.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.posts, nil
}

func (f *fakeSource) Page(ctx context.Context, name string) (string, error) {
	if name != PageAbout || f.about == "" {
		return "", content.ErrNotFound
	}
	return f.about, nil
}

func TestLibraryStartsEmpty(t *testing.T) {
	lib := NewLibrary(&fakeSource{})
	if lib.Collection().Len() != 0 {
		t.Error("new library should be empty")
	}
	if !lib.LoadedAt().IsZero() {
		t.Error("LoadedAt should be zero before Reload")
	}
}

func TestLibraryReload(t *testing.T) {
	src := &fakeSource{
		posts: []content.Post{storePost("a", 1, true), storePost("b", 2, false)},
		about: "<p>bio</p>",
	}
	lib := NewLibrary(src)
	if err := lib.Reload(context.Background()); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if got := len(lib.Collection().List(true)); got != 1 {
		t.Errorf("published = %d, want 1", got)
	}
	if lib.About() != "<p>bio</p>" {
		t.Errorf("About = %q", lib.About())
	}
	if lib.LoadedAt().IsZero() {
		t.Error("LoadedAt should be set")
	}
}

func TestLibraryReloadWithoutAbout(t *testing.T) {
	lib := NewLibrary(&fakeSource{posts: []content.Post{storePost("a", 1, true)}})
	if err := lib.Reload(context.Background()); err != nil {
		t.Fatalf("missing about page should not fail Reload: %v", err)
	}
	if lib.About() != "" {
		t.Errorf("About = %q, want empty", lib.About())
	}
}

func TestLibraryReloadFailureKeepsSnapshot(t *testing.T) {
	src := &fakeSource{posts: []content.Post{storePost("a", 1, true)}}
	lib := NewLibrary(src)
	if err := lib.Reload(context.Background()); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	before := lib.Collection()

	boom := errors.New("boom")
	src.err = boom
	if err := lib.Reload(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("Reload err = %v, want boom", err)
	}
	if lib.Collection() != before {
		t.Error("failed Reload replaced the snapshot")
	}
	if _, err := lib.Collection().Get("a"); err != nil {
		t.Errorf("previous post lost: %v", err)
	}
}
