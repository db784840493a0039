package main

import (
	"io"
	"os"

	"github.com/budgetplanner/backend/internal/config"
	"github.com/budgetplanner/backend/internal/controllers/healthz"
	v1 "github.com/budgetplanner/backend/internal/controllers/v1"
	"github.com/budgetplanner/backend/internal/router"
	"github.com/budgetplanner/backend/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title			BudgetPlanner
// @description	The backend for BudgetPlanner, a monthly budgeting and forecasting tool.
func main() {
	// A .env file is optional, variables from the environment win
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	store, err := storage.New(cfg.DataDir, cfg.Profile)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	log.Info().Str("dataDir", cfg.DataDir).Str("profile", cfg.Profile).Msg("storage initialized")

	v1.Connect(store)
	healthz.Connect(cfg.DataDir)

	r, teardown, err := router.Config()
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group("/"))

	if err := r.Run(cfg.Bind); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
