package main

import (
	"fmt"
	"log/slog"
	"os"

	"slb-charger-econ/internal/api"
	"slb-charger-econ/internal/config"
	"slb-charger-econ/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	srv := config.ServerFromEnv()
	logger := logging.New(os.Stdout, srv.LogLevel)
	slog.SetDefault(logger)

	if srv.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	if info, err := os.Stat(srv.PresetDir); err == nil && info.IsDir() {
		logger.Info("preset directory found", slog.String("dir", srv.PresetDir))
	} else {
		logger.Warn("preset directory not found", slog.String("dir", srv.PresetDir), slog.Any("error", err))
	}

	router := api.NewRouter(srv, logger)

	addr := fmt.Sprintf(":%s", srv.Port)
	logger.Info("starting API server", slog.String("addr", addr), slog.Any("allowed_origins", srv.AllowedOrigins))
	if err := router.Run(addr); err != nil {
		logger.Error("failed to start server", slog.Any("error", err))
		os.Exit(1)
	}
}
