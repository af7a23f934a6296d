package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"filmorate-backend/pkg/logger"
)

func main() {
	// .env is for local development; deployments set real environment
	// variables.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	Serve()
}
