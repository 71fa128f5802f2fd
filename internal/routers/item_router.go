package routers

import (
	"Shelved/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupItemRouter(app *fiber.App, server *cmd.Server) {
	itemHandler := server.ItemHandler
	app.Get("/boxes/:id/items", itemHandler.ListItems)
	app.Post("/boxes/:id/items", itemHandler.CreateItem)
	app.Patch("/items/:id/toggle", itemHandler.ToggleItem)
	app.Delete("/items/:id", itemHandler.DeleteItem)
}
