package seo

import (
	"encoding/xml"
	"strings"
	"time"
)

// SitemapEntry is a single <url> element of a sitemap document.
type SitemapEntry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   string
}

type sitemapURL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod,omitempty"`
	ChangeFreq string   `xml:"changefreq,omitempty"`
	Priority   string   `xml:"priority,omitempty"`
}

type sitemapRoot struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// BuildSitemap renders a sitemap XML document from the given entries.
func BuildSitemap(entries []SitemapEntry) (string, error) {
	root := sitemapRoot{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(entries)),
	}
	for _, e := range entries {
		u := sitemapURL{
			Loc:        e.Loc,
			ChangeFreq: e.ChangeFreq,
			Priority:   e.Priority,
		}
		if !e.LastMod.IsZero() {
			u.LastMod = e.LastMod.UTC().Format("2006-01-02")
		}
		root.URLs = append(root.URLs, u)
	}

	out, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(out), nil
}

// BuildRobotsTxt renders the crawler directives: dashboard/admin/api paths
// are disallowed, everything else is open, and the sitemap is referenced.
func BuildRobotsTxt() string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Disallow: /dashboard/\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Sitemap: " + CanonicalURL("/sitemap.xml") + "\n")
	return b.String()
}
