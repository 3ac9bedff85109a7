//go:build wireinject
// +build wireinject

package main

import (
	"Stocked/cmd"
	"Stocked/database"
	"Stocked/internal/config"
	"Stocked/internal/handlers"
	"Stocked/internal/realtime"
	"Stocked/internal/repository"
	"Stocked/internal/services"

	"github.com/google/wire"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("stocked.yaml")
}

func ProvideHub(logService services.LogService) *realtime.Hub {
	return realtime.NewHub(logService.Log)
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		database.SetupDatabase,
		services.NewLogService,
		services.NewAuthService,
		ProvideHub,
		wire.Bind(new(services.Broadcaster), new(*realtime.Hub)),
		repository.NewHouseholdRepository,
		repository.NewMemberRepository,
		repository.NewContainerRepository,
		repository.NewItemRepository,
		repository.NewShoppingRepository,
		services.NewHouseholdService,
		services.NewItemService,
		services.NewContainerService,
		services.NewShoppingService,
		services.NewExpirySweeper,
		handlers.NewSessionHandler,
		handlers.NewHouseholdHandler,
		handlers.NewItemHandler,
		handlers.NewContainerHandler,
		handlers.NewShoppingHandler,
		Provider,
	)
	return nil, nil
}
