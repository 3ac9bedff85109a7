package routers

import (
	"Stocked/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupContainerRouter(app *fiber.App, server *cmd.Server) {
	containerHandler := server.ContainerHandler
	app.Get("/households/:id/containers", containerHandler.ListContainers)
	app.Post("/households/:id/containers", containerHandler.CreateContainer)
	app.Put("/containers/:id", containerHandler.UpdateContainer)
	app.Delete("/containers/:id", containerHandler.DeleteContainer)
}
