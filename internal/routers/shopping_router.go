package routers

import (
	"Stocked/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupShoppingRouter(app *fiber.App, server *cmd.Server) {
	shoppingHandler := server.ShoppingHandler
	app.Get("/households/:id/shopping", shoppingHandler.ListEntries)
	app.Post("/households/:id/shopping", shoppingHandler.AddEntry)
	app.Put("/shopping/:id", shoppingHandler.SetChecked)
	app.Delete("/shopping/:id", shoppingHandler.DeleteEntry)
	app.Post("/shopping/:id/complete", shoppingHandler.Complete)
}
