package routers

import (
	"Stocked/cmd"
	"Stocked/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	app.Use(middleware.RequireSession(server.AuthService))

	SetupSessionRouter(app, server)
	SetupHouseholdRouter(app, server)
	SetupContainerRouter(app, server)
	SetupItemRouter(app, server)
	SetupShoppingRouter(app, server)
	SetupRealtimeRouter(app, server)
}
