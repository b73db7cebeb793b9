package main

import (
	"os"

	"github.com/joho/godotenv"
	_ "github.com/yigit/alumnibridge/docs"
	"github.com/yigit/alumnibridge/internal/pkg/logger"
	"github.com/yigit/alumnibridge/internal/server"
)

// @title AlumniBridge API
// @version 1.0
// @description API for the AlumniBridge placement and alumni engagement portal

// @contact.name API Support
// @contact.email support@alumnibridge.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// .env is optional, environment variables may come from elsewhere
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
