package main

import (
	"Stocked/database"
	"Stocked/internal/config"
	"Stocked/internal/routers"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; the database picks its settings up from the
	// environment either way.
	_ = godotenv.Load()

	server, err := InitializeServer()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseDatabase(server.DB)

	server.ExpirySweeper.StartSweepCycle()

	cfg, err := config.LoadConfiguration("stocked.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app := fiber.New(fiber.Config{
		Concurrency: cfg.Server.Concurrency * 1024,
		AppName:     "Stocked",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	routers.SetupRoutes(app, server)

	err = app.Listen(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
