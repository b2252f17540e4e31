package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThanawatK/CampSiam/internal/pkg/env"
)

func setTestOrigin(t *testing.T, origin string) {
	t.Helper()
	if env.Env == nil {
		env.Env = map[string]string{}
	}
	old, had := env.Env["PUBLIC_DOMAIN"]
	env.Env["PUBLIC_DOMAIN"] = origin
	t.Cleanup(func() {
		if had {
			env.Env["PUBLIC_DOMAIN"] = old
		} else {
			delete(env.Env, "PUBLIC_DOMAIN")
		}
	})
}

func TestCanonicalURL(t *testing.T) {
	setTestOrigin(t, "https://campsiam.example")

	assert.Equal(t, "https://campsiam.example/search", CanonicalURL("/search/"))
	assert.Equal(t, "https://campsiam.example/search", CanonicalURL("/search"))
	assert.Equal(t, "https://campsiam.example/", CanonicalURL("/"))
	assert.Equal(t, "https://campsiam.example/", CanonicalURL(""))
	// query and fragment are left untouched
	assert.Equal(t, "https://campsiam.example/search?page=2", CanonicalURL("/search/?page=2"))
	assert.Equal(t, "https://campsiam.example/search#top", CanonicalURL("/search/#top"))
	// only one trailing slash is stripped
	assert.Equal(t, "https://campsiam.example/search/", CanonicalURL("/search//"))
}

func TestSearchURL_FixedParameterOrder(t *testing.T) {
	setTestOrigin(t, "https://campsiam.example")

	got := SearchURL("/search", SearchParams{
		Page:     3,
		Type:     "tent",
		Province: "chiang-mai",
		Query:    "river",
	})
	assert.Equal(t, "https://campsiam.example/search?q=river&province=chiang-mai&type=tent&page=3", got)
}

func TestSearchURL_OmitsPageOne(t *testing.T) {
	setTestOrigin(t, "https://campsiam.example")

	got := SearchURL("/search", SearchParams{Query: "pine", Page: 1})
	assert.Equal(t, "https://campsiam.example/search?q=pine", got)
	assert.NotContains(t, got, "page=")
}

func TestGetPaginationURLs_FirstPage(t *testing.T) {
	setTestOrigin(t, "https://campsiam.example")

	urls := GetPaginationURLs("/search", 1, 5)
	assert.Equal(t, "https://campsiam.example/search", urls.First)
	assert.Equal(t, "https://campsiam.example/search?page=5", urls.Last)
	assert.Empty(t, urls.Prev)
	assert.Equal(t, "https://campsiam.example/search?page=2", urls.Next)
}

func TestGetPaginationURLs_LastPage(t *testing.T) {
	setTestOrigin(t, "https://campsiam.example")

	urls := GetPaginationURLs("/search", 5, 5)
	assert.Equal(t, "https://campsiam.example/search", urls.First)
	assert.Equal(t, "https://campsiam.example/search?page=5", urls.Last)
	assert.Equal(t, "https://campsiam.example/search?page=4", urls.Prev)
	assert.Empty(t, urls.Next)
}

func TestGetPaginationURLs_MiddlePage(t *testing.T) {
	setTestOrigin(t, "https://campsiam.example")

	urls := GetPaginationURLs("/search", 3, 5)
	assert.Equal(t, "https://campsiam.example/search?page=2", urls.Prev)
	assert.Equal(t, "https://campsiam.example/search?page=4", urls.Next)
}

func TestSearchPaginationURLs_KeepsFilters(t *testing.T) {
	setTestOrigin(t, "https://campsiam.example")

	urls := SearchPaginationURLs("/search", SearchParams{
		Query:    "river",
		Province: "chiang-mai",
		Type:     "tent",
		Page:     3,
	}, 5)

	assert.Equal(t, "https://campsiam.example/search?q=river&province=chiang-mai&type=tent", urls.First)
	assert.Equal(t, "https://campsiam.example/search?q=river&province=chiang-mai&type=tent&page=5", urls.Last)
	assert.Equal(t, "https://campsiam.example/search?q=river&province=chiang-mai&type=tent&page=2", urls.Prev)
	assert.Equal(t, "https://campsiam.example/search?q=river&province=chiang-mai&type=tent&page=4", urls.Next)
}

func TestSearchPaginationURLs_FirstPageDropsPrevAndPageParam(t *testing.T) {
	setTestOrigin(t, "https://campsiam.example")

	urls := SearchPaginationURLs("/search", SearchParams{Province: "krabi", Page: 1}, 2)
	assert.Equal(t, "https://campsiam.example/search?province=krabi", urls.First)
	assert.Empty(t, urls.Prev)
	assert.Equal(t, "https://campsiam.example/search?province=krabi&page=2", urls.Next)
}

func TestAlternateURLs_SameForAllLocales(t *testing.T) {
	setTestOrigin(t, "https://campsiam.example")

	alternates := AlternateURLs("/campsites/abc/")
	assert.Len(t, alternates, len(SupportedLocales))
	assert.Equal(t, "https://campsiam.example/campsites/abc", alternates["th"])
	assert.Equal(t, alternates["th"], alternates["en"])
}

func TestBuildRobotsTxt(t *testing.T) {
	setTestOrigin(t, "https://campsiam.example")

	robots := BuildRobotsTxt()
	assert.True(t, strings.HasPrefix(robots, "User-agent: *\n"))
	assert.Contains(t, robots, "Disallow: /api/")
	assert.Contains(t, robots, "Disallow: /admin/")
	assert.Contains(t, robots, "Sitemap: https://campsiam.example/sitemap.xml")
}

func TestBuildSitemap(t *testing.T) {
	out, err := BuildSitemap([]SitemapEntry{
		{Loc: "https://campsiam.example/", ChangeFreq: "daily", Priority: "1.0"},
		{Loc: "https://campsiam.example/campsites/abc"},
	})
	assert.NoError(t, err)
	assert.Contains(t, out, "<urlset")
	assert.Contains(t, out, "<loc>https://campsiam.example/campsites/abc</loc>")
	assert.Contains(t, out, "http://www.sitemaps.org/schemas/sitemap/0.9")
}
