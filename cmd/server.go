package cmd

import (
	"Stocked/internal/handlers"
	"Stocked/internal/realtime"
	"Stocked/internal/services"

	"gorm.io/gorm"
)

type Server struct {
	DB               *gorm.DB
	Hub              *realtime.Hub
	AuthService      *services.AuthService
	LogService       services.LogService
	HouseholdService services.HouseholdService
	ItemService      services.ItemService
	ContainerService services.ContainerService
	ShoppingService  services.ShoppingService
	ExpirySweeper    *services.ExpirySweeper
	SessionHandler   *handlers.SessionHandler
	HouseholdHandler *handlers.HouseholdHandler
	ItemHandler      *handlers.ItemHandler
	ContainerHandler *handlers.ContainerHandler
	ShoppingHandler  *handlers.ShoppingHandler
}

func NewServer(
	db *gorm.DB,
	hub *realtime.Hub,
	authService *services.AuthService,
	logService services.LogService,
	householdService services.HouseholdService,
	itemService services.ItemService,
	containerService services.ContainerService,
	shoppingService services.ShoppingService,
	expirySweeper *services.ExpirySweeper,
	sessionHandler *handlers.SessionHandler,
	householdHandler *handlers.HouseholdHandler,
	itemHandler *handlers.ItemHandler,
	containerHandler *handlers.ContainerHandler,
	shoppingHandler *handlers.ShoppingHandler,
) *Server {
	return &Server{
		DB:               db,
		Hub:              hub,
		AuthService:      authService,
		LogService:       logService,
		HouseholdService: householdService,
		ItemService:      itemService,
		ContainerService: containerService,
		ShoppingService:  shoppingService,
		ExpirySweeper:    expirySweeper,
		SessionHandler:   sessionHandler,
		HouseholdHandler: householdHandler,
		ItemHandler:      itemHandler,
		ContainerHandler: containerHandler,
		ShoppingHandler:  shoppingHandler,
	}
}
