package routers

import (
	"Stocked/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupSessionRouter(app *fiber.App, server *cmd.Server) {
	sessionHandler := server.SessionHandler
	app.Get("/session", sessionHandler.GetSession)
	app.Get("/session/household", sessionHandler.GetActiveHousehold)
	app.Put("/session/household", sessionHandler.SetActiveHousehold)
}
