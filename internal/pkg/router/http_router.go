package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ThanawatK/CampSiam/app/controllers"
	"github.com/ThanawatK/CampSiam/internal/pkg/middleware"
	"github.com/ThanawatK/CampSiam/internal/pkg/oauth"
	"github.com/ThanawatK/CampSiam/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	h.registerPublicRoutes(app)
}

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Crawler surfaces
	app.Get("/robots.txt", controllers.HandleRobotsTxt)
	app.Get("/sitemap.xml", controllers.HandleSitemap)

	// Social OAuth
	app.Get("/auth/:provider", controllers.HandleOAuthStart)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
