package routers

import (
	"Shelved/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupLabelRouter(app *fiber.App, server *cmd.Server) {
	labelHandler := server.LabelHandler
	app.Get("/boxes/:id/label", labelHandler.GetLabel)
	app.Get("/boxes/:id/label/print", labelHandler.PrintLabel)
}
