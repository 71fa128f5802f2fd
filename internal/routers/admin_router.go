package routers

import (
	"Shelved/cmd"
	"github.com/gofiber/fiber/v2"
)

// SetupAdminRouter wires the vocabulary management endpoints (the admin
// dialog of the UI): flat uniquely-named location and category lists.
func SetupAdminRouter(app *fiber.App, server *cmd.Server) {
	locationHandler := server.LocationHandler
	app.Get("/locations", locationHandler.ListLocations)
	app.Post("/locations", locationHandler.CreateLocation)
	app.Delete("/locations/:id", locationHandler.DeleteLocation)

	categoryHandler := server.CategoryHandler
	app.Get("/categories", categoryHandler.ListCategories)
	app.Post("/categories", categoryHandler.CreateCategory)
	app.Delete("/categories/:id", categoryHandler.DeleteCategory)
}
