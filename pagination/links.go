package pagination

import (
	"net/url"
	"strconv"
)

// Link is a navigation target for one page.
type Link struct {
	Page   int
	Href   string
	Active bool
}

// Nav holds the links of a pagination control. Prev and Next are nil when
// there is no such page.
type Nav struct {
	Prev  *Link
	Next  *Link
	Pages []Link
}

// Href returns the target for page n: the path of u with its query string
// cloned and the page parameter overwritten.
func Href(u *url.URL, n int) string {
	q := url.Values{}
	for k, vs := range u.Query() {
		q[k] = append([]string(nil), vs...)
	}
	q.Set(Param, strconv.Itoa(n))
	return u.Path + "?" + q.Encode()
}

// Links builds the pagination control for the current page of totalPages.
func Links(u *url.URL, page, totalPages int) Nav {
	var nav Nav
	if page > 1 {
		nav.Prev = &Link{Page: page - 1, Href: Href(u, page-1)}
	}
	if page < totalPages {
		nav.Next = &Link{Page: page + 1, Href: Href(u, page+1)}
	}
	nav.Pages = make([]Link, 0, totalPages)
	for n := 1; n <= totalPages; n++ {
		nav.Pages = append(nav.Pages, Link{Page: n, Href: Href(u, n), Active: n == page})
	}
	return nav
}
