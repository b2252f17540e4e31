package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ThanawatK/CampSiam/app/repository"
	"github.com/ThanawatK/CampSiam/internal/pkg/seo"
)

// HandleRobotsTxt serves the crawler directives.
func HandleRobotsTxt(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(seo.BuildRobotsTxt())
}

// HandleSitemap renders the sitemap from the static pages plus every
// approved listing.
func HandleSitemap(c *fiber.Ctx) error {
	entries := []seo.SitemapEntry{
		{Loc: seo.CanonicalURL("/"), ChangeFreq: "daily", Priority: "1.0"},
		{Loc: seo.CanonicalURL("/search"), ChangeFreq: "daily", Priority: "0.8"},
	}

	repo := repository.GetGlobalFactory().GetCampsiteRepository()
	campsites, err := repo.GetApprovedForSitemap()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to build sitemap")
	}
	for _, cs := range campsites {
		entries = append(entries, seo.SitemapEntry{
			Loc:        seo.CanonicalURL("/campsites/" + cs.ShareCode),
			LastMod:    cs.UpdatedAt,
			ChangeFreq: "weekly",
			Priority:   "0.6",
		})
	}

	xmlDoc, err := seo.BuildSitemap(entries)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to build sitemap")
	}

	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.SendString(xmlDoc)
}
