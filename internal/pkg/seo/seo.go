package seo

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ThanawatK/CampSiam/internal/pkg/env"
)

// SupportedLocales are the UI languages the site ships. Paths are not
// localized, only UI strings, so every locale maps to the same URL.
var SupportedLocales = []string{"th", "en"}

// SiteOrigin returns the configured public origin without a trailing slash.
func SiteOrigin() string {
	origin := env.GetEnv("PUBLIC_DOMAIN", "http://localhost:4000")
	return strings.TrimRight(origin, "/")
}

// CanonicalURL joins the site origin with a path, stripping exactly one
// trailing slash. The root path keeps its slash. Query and fragment parts
// are left untouched.
func CanonicalURL(path string) string {
	origin := SiteOrigin()
	if path == "" || path == "/" {
		return origin + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	// Split off query/fragment so only the path segment is normalized
	rest := ""
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		rest = path[i:]
		path = path[:i]
	}
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return origin + "/" + rest
	}
	return origin + path + rest
}

// SearchParams are the recognized search query parameters, serialized in a
// fixed order so crawler-visible URLs stay stable.
type SearchParams struct {
	Query    string
	Province string
	Type     string
	Page     int
}

// SearchURL builds a search page URL from the known parameter set. Page is
// omitted when it equals 1.
func SearchURL(path string, p SearchParams) string {
	q := url.Values{}
	if p.Query != "" {
		q.Set("q", p.Query)
	}
	if p.Province != "" {
		q.Set("province", p.Province)
	}
	if p.Type != "" {
		q.Set("type", p.Type)
	}
	if p.Page > 1 {
		q.Set("page", strconv.Itoa(p.Page))
	}

	base := CanonicalURL(path)
	if len(q) == 0 {
		return base
	}

	// Fixed parameter order: q, province, type, page
	ordered := make([]string, 0, 4)
	for _, key := range []string{"q", "province", "type", "page"} {
		if v := q.Get(key); v != "" {
			ordered = append(ordered, key+"="+url.QueryEscape(v))
		}
	}
	return base + "?" + strings.Join(ordered, "&")
}

// PaginationURLs holds rel-link targets for a paginated listing.
// First and Last are always present; Prev is empty on the first page and
// Next is empty on the last page.
type PaginationURLs struct {
	First string `json:"first"`
	Last  string `json:"last"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
}

// GetPaginationURLs computes first/last/prev/next links for a listing path
// from the current page and total page count.
func GetPaginationURLs(path string, page, totalPages int) PaginationURLs {
	return SearchPaginationURLs(path, SearchParams{Page: page}, totalPages)
}

// SearchPaginationURLs computes the same links for a filtered listing. The
// active q/province/type filters are kept on every link; only the page
// number varies.
func SearchPaginationURLs(path string, p SearchParams, totalPages int) PaginationURLs {
	if totalPages < 1 {
		totalPages = 1
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	pageURL := func(n int) string {
		link := p
		link.Page = n
		return SearchURL(path, link)
	}

	urls := PaginationURLs{
		First: pageURL(1),
		Last:  pageURL(totalPages),
	}
	if page > 1 {
		urls.Prev = pageURL(page - 1)
	}
	if page < totalPages {
		urls.Next = pageURL(page + 1)
	}
	return urls
}

// AlternateURLs returns the hreflang alternates for a path. The site does
// not localize paths, so every supported locale points at the same URL.
func AlternateURLs(path string) map[string]string {
	canonical := CanonicalURL(path)
	alternates := make(map[string]string, len(SupportedLocales))
	for _, locale := range SupportedLocales {
		alternates[locale] = canonical
	}
	return alternates
}
