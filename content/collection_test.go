package content

import (
	"errors"
	"reflect"
	"testing"
)

func TestCollectionList(t *testing.T) {
	c := NewCollection(samplePosts())
	if c.Len() != 5 {
		t.Fatalf("Len = %d, want 5", c.Len())
	}
	all := c.List(false)
	if all[0].Slug != "blog/draft" {
		t.Errorf("first of all = %q, want blog/draft", all[0].Slug)
	}
	published := c.List(true)
	want := []string{"blog/new", "blog/mid-a", "blog/mid-b", "blog/old"}
	if !reflect.DeepEqual(slugs(published), want) {
		t.Errorf("List(true) = %v, want %v", slugs(published), want)
	}
}

func TestCollectionIsolatedFromCallers(t *testing.T) {
	in := samplePosts()
	c := NewCollection(in)
	in[1].Tags[0] = "mutated"

	got, err := c.Get("new")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Tags[0] != "go" {
		t.Errorf("collection saw caller mutation: %v", got.Tags)
	}

	list := c.List(true)
	list[0].Title = "changed"
	if again, _ := c.Get("new"); again.Title != "New" {
		t.Errorf("collection saw list mutation: %q", again.Title)
	}
}

func TestCollectionGet(t *testing.T) {
	c := NewCollection(samplePosts())

	got, err := c.Get("new")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "New" || got.SlugAsParams != "new" {
		t.Errorf("Get = %+v", got)
	}
	if _, err := c.Get("nonexistent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing err = %v, want ErrNotFound", err)
	}
	if _, err := c.Get("draft"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unpublished err = %v, want ErrNotFound", err)
	}
}

func TestCollectionLatest(t *testing.T) {
	c := NewCollection(samplePosts())
	got := c.Latest(3)
	want := []string{"blog/new", "blog/mid-a", "blog/mid-b"}
	if !reflect.DeepEqual(slugs(got), want) {
		t.Errorf("Latest(3) = %v, want %v", slugs(got), want)
	}
	if got := c.Latest(10); len(got) != 4 {
		t.Errorf("Latest(10) len = %d, want 4", len(got))
	}
	if got := c.Latest(0); got != nil {
		t.Errorf("Latest(0) = %v, want nil", got)
	}
}

func TestCollectionTags(t *testing.T) {
	c := NewCollection(samplePosts())
	idx := c.TagCounts()
	if _, ok := idx["draft"]; ok {
		t.Error("tags of unpublished posts should not be counted")
	}
	if idx["go"] != 2 {
		t.Errorf("go count = %d, want 2", idx["go"])
	}
	sorted := c.SortedTags()
	if sorted[0].Tag != "go" {
		t.Errorf("SortedTags[0] = %+v, want go", sorted[0])
	}
	tagged := c.Tagged("web")
	if !reflect.DeepEqual(slugs(tagged), []string{"blog/new", "blog/mid-b"}) {
		t.Errorf("Tagged(web) = %v", slugs(tagged))
	}
}

func TestEmptyCollection(t *testing.T) {
	c := NewCollection(nil)
	if c.Len() != 0 || len(c.List(true)) != 0 || len(c.SortedTags()) != 0 {
		t.Error("empty collection should yield empty results")
	}
	if _, err := c.Get(""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on empty = %v, want ErrNotFound", err)
	}
}
