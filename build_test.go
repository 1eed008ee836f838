package mdxblog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eringen/mdxblog/content"
	"github.com/eringen/mdxblog/markdown"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func dirSource(root string) DirSource {
	return DirSource{
		Loader:    content.NewLoader(root, "", markdown.New()),
		AboutFile: "about.md",
	}
}

func TestBuild(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "blog/hello.mdx", "---\ntitle: Hello\ndate: 2024-03-04\ntags: [go]\n---\n# Hi\n")
	writeFile(t, root, "blog/series/part-1.md", "---\ntitle: Part 1\ndate: 2024-03-05\npublished: false\n---\nbody\n")
	writeFile(t, root, "about.md", "I write **Go**.\n")

	s := setupTestStore(t)
	res, err := Build(context.Background(), dirSource(root), s)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if res != (BuildResult{Posts: 2, Published: 1, Pages: 1}) {
		t.Errorf("BuildResult = %+v", res)
	}

	posts, err := s.Posts(context.Background())
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if posts[0].SlugAsParams != "series/part-1" || posts[1].SlugAsParams != "hello" {
		t.Errorf("posts = %q, %q", posts[0].SlugAsParams, posts[1].SlugAsParams)
	}
	if !strings.Contains(posts[1].Body, `<h1 id="hi">Hi</h1>`) {
		t.Errorf("body not compiled: %q", posts[1].Body)
	}
	about, err := s.Page(context.Background(), PageAbout)
	if err != nil || !strings.Contains(about, "<strong>Go</strong>") {
		t.Errorf("about = %q, %v", about, err)
	}
}

func TestBuildInvalidContentWritesNothing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "blog/good.mdx", "---\ntitle: Good\ndate: 2024-03-04\n---\nok\n")

	s := setupTestStore(t)
	if _, err := Build(context.Background(), dirSource(root), s); err != nil {
		t.Fatalf("first Build failed: %v", err)
	}

	writeFile(t, root, "blog/bad.mdx", "---\ndate: 2024-03-04\n---\nno title\n")
	_, err := Build(context.Background(), dirSource(root), s)
	var verrs content.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("err = %v, want ValidationErrors", err)
	}
	if len(verrs) != 1 || verrs[0].File != "blog/bad.mdx" || verrs[0].Field != "title" {
		t.Errorf("errors = %v", verrs)
	}

	posts, _ := s.Posts(context.Background())
	if len(posts) != 1 || posts[0].Slug != "blog/good" {
		t.Errorf("failed build touched the artifact: %v", posts)
	}
}

func TestCompileWithoutAbout(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "blog/one.md", "---\ntitle: One\ndate: 2024-01-01\n---\n")

	posts, pages, err := Compile(context.Background(), dirSource(root))
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if len(posts) != 1 || len(pages) != 0 {
		t.Errorf("Compile = %d posts, %d pages", len(posts), len(pages))
	}
}

func TestDirSourceOnlyKnowsAbout(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "about.md", "hi")
	if _, err := dirSource(root).Page(context.Background(), "contact"); !errors.Is(err, content.ErrNotFound) {
		t.Errorf("Page(contact) err = %v, want ErrNotFound", err)
	}
}

func TestArtifactKeepsLoaderOrderOnEqualDates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "blog/a-b.mdx", "---\ntitle: A-B\ndate: 2024-03-04\n---\n")
	writeFile(t, root, "blog/a/index.mdx", "---\ntitle: A\ndate: 2024-03-04\n---\n")
	writeFile(t, root, "blog/z.mdx", "---\ntitle: Z\ndate: 2024-03-04\n---\n")

	src := dirSource(root)
	s := setupTestStore(t)
	if _, err := Build(context.Background(), src, s); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	fromDir, err := src.Posts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	fromStore, err := s.Posts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	dev := content.NewCollection(fromDir).List(true)
	prod := content.NewCollection(fromStore).List(true)
	want := []string{"blog/a-b", "blog/a", "blog/z"}
	for i := range want {
		if dev[i].Slug != want[i] || prod[i].Slug != want[i] {
			t.Errorf("position %d: dev %q, artifact %q, want %q", i, dev[i].Slug, prod[i].Slug, want[i])
		}
	}
}
