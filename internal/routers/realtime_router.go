package routers

import (
	"Stocked/cmd"
	"Stocked/internal/realtime"

	"github.com/gofiber/fiber/v2"
)

func SetupRealtimeRouter(app *fiber.App, server *cmd.Server) {
	app.Use("/ws", realtime.Upgrade)
	app.Get("/ws", realtime.Handler(server.Hub))
}
