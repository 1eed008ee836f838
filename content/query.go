package content

import (
	"sort"
)

// TagIndex maps a tag label to the number of posts carrying it.
type TagIndex map[string]int

// TagCount is one entry of a sorted TagIndex.
type TagCount struct {
	Tag   string
	Count int
}

// SortByDate returns a copy of posts ordered most recent first. Posts sharing
// a date keep their relative order.
func SortByDate(posts []Post) []Post {
	out := make([]Post, len(posts))
	copy(out, posts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// FilterPublished returns the posts whose Published flag is set.
func FilterPublished(posts []Post) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.Published {
			out = append(out, p)
		}
	}
	return out
}

// FilterByTag returns the posts carrying tag, compared case-insensitively.
func FilterByTag(posts []Post, tag string) []Post {
	var out []Post
	for _, p := range posts {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

// AggregateTagCounts counts, for every tag, how many posts carry it. Tags are
// keyed lower-cased and trimmed, the form HasTag compares. A tag repeated
// within one post counts once for that post.
func AggregateTagCounts(posts []Post) TagIndex {
	idx := make(TagIndex)
	for _, p := range posts {
		seen := make(map[string]struct{}, len(p.Tags))
		for _, t := range p.Tags {
			t = normalizeTag(t)
			if t == "" {
				continue
			}
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			idx[t]++
		}
	}
	return idx
}

// SortedTagCounts returns the index ordered by count descending, ties broken
// by tag label ascending.
func SortedTagCounts(idx TagIndex) []TagCount {
	out := make([]TagCount, 0, len(idx))
	for tag, n := range idx {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// SortTagsByCount returns the tag labels of idx, most used first.
func SortTagsByCount(idx TagIndex) []string {
	counts := SortedTagCounts(idx)
	out := make([]string, len(counts))
	for i, tc := range counts {
		out[i] = tc.Tag
	}
	return out
}
