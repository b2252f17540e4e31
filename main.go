package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ThanawatK/CampSiam/app/repository"
	"github.com/ThanawatK/CampSiam/internal/pkg/cache"
	"github.com/ThanawatK/CampSiam/internal/pkg/constants"
	"github.com/ThanawatK/CampSiam/internal/pkg/counter"
	"github.com/ThanawatK/CampSiam/internal/pkg/database"
	"github.com/ThanawatK/CampSiam/internal/pkg/env"
	"github.com/ThanawatK/CampSiam/internal/pkg/middleware"
	"github.com/ThanawatK/CampSiam/internal/pkg/router"
	"github.com/ThanawatK/CampSiam/internal/pkg/storage"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	if err := storage.Setup(); err != nil {
		log.Printf("S3 photo storage disabled: %v", err)
	}
	repository.InitializeFactory(database.GetDB())

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    32 * 1024 * 1024, // photo uploads cap out well below this
	})
	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())
	app.Static(constants.PublicRoute, "./public/assets")
	app.Static(constants.UploadsRoute, "./public/uploads")

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	// Drain pending view counters to MySQL in the background
	counter.StartFlusher(context.Background(), 30*time.Second)

	return app
}
