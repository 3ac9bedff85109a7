package routers

import (
	"Stocked/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupItemRouter(app *fiber.App, server *cmd.Server) {
	itemHandler := server.ItemHandler
	app.Get("/households/:id/items", itemHandler.ListItems)
	app.Get("/households/:id/tags", itemHandler.ListTags)
	app.Post("/households/:id/items", itemHandler.CreateItem)
	app.Put("/items/:id", itemHandler.UpdateItem)
	app.Delete("/items/:id", itemHandler.DeleteItem)
}
