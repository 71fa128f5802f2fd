package routers

import (
	"Shelved/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	app.Post("/auth", server.AuthHandler.Login)
	app.Delete("/auth", server.AuthHandler.Logout)

	// Everything past this point sits behind the gate, the deep link included.
	app.Use(server.AuthHandler.RequireGate)

	app.Get("/", server.BoxHandler.DeepLink)
	app.Get("/catalog", server.BoxHandler.GetCatalog)

	SetupBoxRouter(app, server)
	SetupItemRouter(app, server)
	SetupAdminRouter(app, server)
	SetupLabelRouter(app, server)
	SetupJanitorRouter(app, server)
}
