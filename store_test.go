package mdxblog

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/eringen/mdxblog/content"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "content.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func storePost(slug string, day int, published bool, tags ...string) content.Post {
	p := content.Post{
		Slug:        "blog/" + slug,
		Source:      "blog/" + slug + ".mdx",
		Title:       "Post " + slug,
		Description: "About " + slug,
		Date:        time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
		Published:   published,
		Tags:        tags,
		Body:        "<p>" + slug + "</p>",
	}
	return content.ComputeFields(p)
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
	built, err := s.BuiltAt(context.Background())
	if err != nil {
		t.Fatalf("BuiltAt failed: %v", err)
	}
	if !built.IsZero() {
		t.Errorf("BuiltAt on a fresh store = %v, want zero", built)
	}
}

func TestReplaceAndReadBack(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	in := []content.Post{
		storePost("old", 1, true, "go"),
		storePost("new", 20, true, "go", "web"),
		storePost("draft", 25, false),
	}
	if err := s.Replace(ctx, in, map[string]string{PageAbout: "<p>me</p>"}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	got, err := s.Posts(ctx)
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(Posts) = %d, want 3", len(got))
	}
	if got[0].Slug != "blog/draft" || got[2].Slug != "blog/old" {
		t.Errorf("order = %s, %s, %s", got[0].Slug, got[1].Slug, got[2].Slug)
	}

	want := in[1]
	p := got[1]
	if p.Slug != want.Slug || p.SlugAsParams != "new" || p.Source != want.Source {
		t.Errorf("slugs = %q %q %q", p.Slug, p.SlugAsParams, p.Source)
	}
	if p.Title != want.Title || p.Description != want.Description || p.Body != want.Body {
		t.Errorf("text fields = %+v", p)
	}
	if !p.Date.Equal(want.Date) {
		t.Errorf("Date = %v, want %v", p.Date, want.Date)
	}
	if !p.Published || got[0].Published {
		t.Error("published flags did not round-trip")
	}
	if !reflect.DeepEqual(p.Tags, []string{"go", "web"}) {
		t.Errorf("Tags = %v", p.Tags)
	}
	if got[0].Tags != nil {
		t.Errorf("untagged post Tags = %v, want nil", got[0].Tags)
	}

	about, err := s.Page(ctx, PageAbout)
	if err != nil || about != "<p>me</p>" {
		t.Errorf("Page(about) = %q, %v", about, err)
	}
	if built, _ := s.BuiltAt(ctx); built.IsZero() {
		t.Error("BuiltAt should be set after Replace")
	}
}

func TestReplaceClearsPrevious(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	if err := s.Replace(ctx, []content.Post{storePost("a", 1, true), storePost("b", 2, true)}, map[string]string{PageAbout: "x"}); err != nil {
		t.Fatalf("first Replace failed: %v", err)
	}
	if err := s.Replace(ctx, []content.Post{storePost("c", 3, true)}, nil); err != nil {
		t.Fatalf("second Replace failed: %v", err)
	}

	got, err := s.Posts(ctx)
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "blog/c" {
		t.Errorf("Posts = %v, want only blog/c", got)
	}
	if _, err := s.Page(ctx, PageAbout); !errors.Is(err, content.ErrNotFound) {
		t.Errorf("Page after clear err = %v, want ErrNotFound", err)
	}
}

func TestReplaceDuplicateSlugRollsBack(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	if err := s.Replace(ctx, []content.Post{storePost("keep", 1, true)}, nil); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	dup := []content.Post{storePost("x", 1, true), storePost("x", 2, true)}
	if err := s.Replace(ctx, dup, nil); err == nil {
		t.Fatal("Replace with duplicate slugs should fail")
	}
	got, _ := s.Posts(ctx)
	if len(got) != 1 || got[0].Slug != "blog/keep" {
		t.Errorf("failed Replace changed contents: %v", got)
	}
}

func TestFormatTags(t *testing.T) {
	tests := []struct {
		input    []string
		expected string
	}{
		{nil, ""},
		{[]string{"go"}, ",go,"},
		{[]string{"go", "web"}, ",go,web,"},
	}
	for _, tt := range tests {
		if got := FormatTags(tt.input); got != tt.expected {
			t.Errorf("FormatTags(%v) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{",", nil},
		{",go,", []string{"go"}},
		{",go,web,", []string{"go", "web"}},
		{"go, web", []string{"go", "web"}},
	}
	for _, tt := range tests {
		got := ParseTags(tt.input)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
