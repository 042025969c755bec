package main

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
)

// @title Front Desk API
// @version 1.0
// @description Hotel front-desk management backend: rooms, bookings, stays, and finances.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
