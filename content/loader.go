package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/adrg/frontmatter"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultPattern selects the blog posts under a content root.
const DefaultPattern = "blog/**/*.{md,mdx}"

// Compiler turns markup source into the opaque body stored on a Post.
type Compiler interface {
	Compile(src []byte) ([]byte, error)
}

// CompilerFunc adapts a plain function to Compiler.
type CompilerFunc func(src []byte) ([]byte, error)

// Compile calls f(src).
func (f CompilerFunc) Compile(src []byte) ([]byte, error) { return f(src) }

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Loader discovers content files under Root, validates their front-matter and
// compiles their bodies.
type Loader struct {
	Root     string
	Pattern  string
	Compiler Compiler

	fsys fs.FS
}

// NewLoader returns a Loader reading from root with the given pattern and compiler.
// An empty pattern means DefaultPattern.
func NewLoader(root, pattern string, c Compiler) *Loader {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &Loader{Root: root, Pattern: pattern, Compiler: c, fsys: os.DirFS(root)}
}

// Match reports whether rel, a slash-separated path relative to Root, is a
// content file for this loader.
func (l *Loader) Match(rel string) bool {
	ok, err := doublestar.Match(l.Pattern, rel)
	return err == nil && ok
}

// Files lists the content files under Root in lexical order.
func (l *Loader) Files() ([]string, error) {
	if !doublestar.ValidatePattern(l.Pattern) {
		return nil, fmt.Errorf("content: invalid pattern %q", l.Pattern)
	}
	matches, err := doublestar.Glob(l.dir(), l.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("content: glob %q: %w", l.Pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Load reads and validates every content file. If any file fails, the
// returned error is a ValidationErrors listing all of them and no posts are
// returned.
func (l *Loader) Load(ctx context.Context) ([]Post, error) {
	files, err := l.Files()
	if err != nil {
		return nil, err
	}

	var (
		posts []Post
		errs  ValidationErrors
		seen  = make(map[string]string, len(files))
	)
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		post, err := l.loadFile(rel)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				errs = append(errs, verr)
				continue
			}
			return nil, err
		}
		if other, dup := seen[post.Slug]; dup {
			errs = append(errs, &ValidationError{
				File:  rel,
				Field: "slug",
				Msg:   fmt.Sprintf("%q already used by %s", post.Slug, other),
			})
			continue
		}
		seen[post.Slug] = rel
		posts = append(posts, post)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return posts, nil
}

func (l *Loader) loadFile(rel string) (Post, error) {
	raw, err := fs.ReadFile(l.dir(), rel)
	if err != nil {
		return Post{}, fmt.Errorf("content: read %s: %w", rel, err)
	}

	var fm Frontmatter
	body, err := frontmatter.MustParse(bytes.NewReader(raw), &fm, yamlFormat)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return Post{}, &ValidationError{File: rel, Msg: "missing front-matter block"}
		}
		return Post{}, &ValidationError{File: rel, Field: "front-matter", Msg: err.Error()}
	}

	post, err := Validate(rel, fm)
	if err != nil {
		return Post{}, err
	}

	html, err := l.compile(body)
	if err != nil {
		return Post{}, &ValidationError{File: rel, Field: "body", Msg: err.Error()}
	}
	post.Body = string(html)
	return post, nil
}

// LoadPage compiles a standalone page such as the about page. Front-matter is
// optional and ignored. A missing file returns ErrNotFound.
func (l *Loader) LoadPage(rel string) (string, error) {
	raw, err := fs.ReadFile(l.dir(), rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("content: read %s: %w", rel, err)
	}
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta, yamlFormat)
	if err != nil {
		return "", &ValidationError{File: rel, Field: "front-matter", Msg: err.Error()}
	}
	html, err := l.compile(body)
	if err != nil {
		return "", &ValidationError{File: rel, Field: "body", Msg: err.Error()}
	}
	return string(html), nil
}

func (l *Loader) compile(src []byte) ([]byte, error) {
	if l.Compiler == nil {
		return src, nil
	}
	return l.Compiler.Compile(src)
}

func (l *Loader) dir() fs.FS {
	if l.fsys == nil {
		l.fsys = os.DirFS(l.Root)
	}
	return l.fsys
}
