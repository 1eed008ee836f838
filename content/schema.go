package content

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxDescriptionLength is the longest description a post may carry, in characters.
const MaxDescriptionLength = 99

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ValidationError identifies the file and field that failed validation.
type ValidationError struct {
	File  string
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.File, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.File, e.Field, e.Msg)
}

// ValidationErrors collects every failing file of a build.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	switch len(errs) {
	case 0:
		return "content: no validation errors"
	case 1:
		return "content: invalid content: " + errs[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "content: %d invalid content files:", len(errs))
	for _, e := range errs {
		b.WriteString("\n  ")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Unwrap lets errors.As reach the individual failures.
func (errs ValidationErrors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

// Validate checks fm against the post schema. On success it returns a Post with
// Slug, SlugAsParams and Source filled in from source; Body is left for the
// caller. On failure it returns a *ValidationError for the first bad field.
func Validate(source string, fm Frontmatter) (Post, error) {
	fail := func(field, format string, args ...any) (Post, error) {
		return Post{}, &ValidationError{File: source, Field: field, Msg: fmt.Sprintf(format, args...)}
	}

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		return fail("title", "is required")
	}
	if n := utf8.RuneCountInString(fm.Description); n > MaxDescriptionLength {
		return fail("description", "is %d characters, max %d", n, MaxDescriptionLength)
	}
	if strings.TrimSpace(fm.Date) == "" {
		return fail("date", "is required")
	}
	date, err := ParseDate(fm.Date)
	if err != nil {
		return fail("date", "%q is not an ISO-8601 date", fm.Date)
	}

	var tags []string
	for i, t := range fm.Tags {
		t = strings.TrimSpace(t)
		switch {
		case t == "":
			return fail(fmt.Sprintf("tags[%d]", i), "must not be blank")
		case strings.Contains(t, ","):
			return fail(fmt.Sprintf("tags[%d]", i), "%q must not contain a comma", t)
		}
		tags = append(tags, t)
	}

	published := true
	if fm.Published != nil {
		published = *fm.Published
	}

	slug := SlugFromPath(source)
	if slug == "" {
		return fail("slug", "cannot derive a slug from the path")
	}
	if !strings.Contains(slug, "/") {
		return fail("slug", "%q has no path below the collection directory", slug)
	}

	return ComputeFields(Post{
		Slug:        slug,
		Source:      source,
		Title:       title,
		Description: fm.Description,
		Date:        date,
		Published:   published,
		Tags:        tags,
	}), nil
}

// ParseDate accepts a calendar date or a date-time in the common ISO-8601 forms.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
