package main

import (
	"Shelved/database"
	"Shelved/internal/config"
	"Shelved/internal/routers"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	server, err := InitializeServer()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseDatabase(server.DB)

	server.CatalogService.LoadAll()
	server.JanitorService.StartCleanCycle()

	app := fiber.New(fiber.Config{
		Concurrency: server.Configuration.Server.Concurrency * 1024,
		AppName:     "Shelved",
	})

	app.Use(logger.New())
	routers.SetupRoutes(app, server)

	err = app.Listen(fmt.Sprintf(":%d", server.Configuration.Server.Port))
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("shelved.yaml")
}
