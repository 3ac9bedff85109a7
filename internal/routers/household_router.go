package routers

import (
	"Stocked/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupHouseholdRouter(app *fiber.App, server *cmd.Server) {
	householdHandler := server.HouseholdHandler
	app.Get("/households", householdHandler.ListHouseholds)
	app.Post("/households", householdHandler.CreateHousehold)
	app.Put("/households/:id", householdHandler.RenameHousehold)
	app.Delete("/households/:id", householdHandler.DeleteHousehold)
}
