package main

import (
	"grandplaza/config"
	"grandplaza/di"
	"grandplaza/helper"
	"grandplaza/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Grand Plaza Back Office API
// @version 1.0
// @description Bookings, guests, clients, inquiries, invoices, rooms and the workflow board of the Grand Plaza hotel.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
