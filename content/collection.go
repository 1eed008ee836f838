package content

// Collection is an immutable, date-ordered set of posts. It is built once and
// shared read-only; every accessor returns fresh slices.
type Collection struct {
	posts     []Post
	bySlug    map[string]int
	published []Post
}

// NewCollection copies posts, fills in derived fields and orders them most
// recent first.
func NewCollection(posts []Post) *Collection {
	computed := make([]Post, len(posts))
	for i, p := range posts {
		p.Tags = append([]string(nil), p.Tags...)
		computed[i] = ComputeFields(p)
	}
	sorted := SortByDate(computed)

	c := &Collection{
		posts:     sorted,
		bySlug:    make(map[string]int, len(sorted)),
		published: FilterPublished(sorted),
	}
	for i, p := range sorted {
		if _, dup := c.bySlug[p.SlugAsParams]; !dup {
			c.bySlug[p.SlugAsParams] = i
		}
	}
	return c
}

// Len returns the number of posts, published or not.
func (c *Collection) Len() int {
	return len(c.posts)
}

// List returns posts most recent first, optionally only the published ones.
func (c *Collection) List(publishedOnly bool) []Post {
	src := c.posts
	if publishedOnly {
		src = c.published
	}
	return append([]Post(nil), src...)
}

// Get returns the published post routed at slugAsParams.
func (c *Collection) Get(slugAsParams string) (Post, error) {
	i, ok := c.bySlug[slugAsParams]
	if !ok || !c.posts[i].Published {
		return Post{}, ErrNotFound
	}
	return c.posts[i], nil
}

// Latest returns up to n of the most recent published posts.
func (c *Collection) Latest(n int) []Post {
	if n <= 0 {
		return nil
	}
	if n > len(c.published) {
		n = len(c.published)
	}
	return append([]Post(nil), c.published[:n]...)
}

// Tagged returns the published posts carrying tag.
func (c *Collection) Tagged(tag string) []Post {
	return FilterByTag(c.published, tag)
}

// TagCounts aggregates tags over the published posts.
func (c *Collection) TagCounts() TagIndex {
	return AggregateTagCounts(c.published)
}

// SortedTags returns the published tags ordered by use.
func (c *Collection) SortedTags() []TagCount {
	return SortedTagCounts(c.TagCounts())
}
