package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/mcoot/cornergame/internal/api"
	"github.com/mcoot/cornergame/internal/factory"
	"github.com/mcoot/cornergame/internal/services/game"
	redisstorage "github.com/mcoot/cornergame/internal/storage/redis"
	"github.com/mcoot/cornergame/internal/web"
)

const maintenanceInterval = 5 * time.Minute

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := configFromEnv(logger)
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := mux.NewRouter()
	api.RegisterRoutes(r, api.RouterConfig{
		Logger:         logger,
		Random:         app.Random,
		AuthService:    app.AuthService,
		GameController: app.GameController,
		BotService:     app.BotService,
		HubManager:     app.HubManager,
	})
	web.RegisterRoutes(r, web.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
	})

	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("PORT must be a number", slog.String("port", port))
			os.Exit(1)
		}
		serverConfig.Port = p
	}
	server := api.NewServer(r, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go app.RunMaintenance(ctx, maintenanceInterval)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// configFromEnv builds the factory config from STORAGE_TYPE, REDIS_URL,
// BOARD_SIZE, ROUND_SECONDS and SEED
func configFromEnv(logger *slog.Logger) (factory.Config, error) {
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
		GameConfig:  game.DefaultConfig(),
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		if url := os.Getenv("REDIS_URL"); url != "" {
			redisCfg.URL = url
		}
		cfg.RedisConfig = &redisCfg
	}

	if v := os.Getenv("BOARD_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, err
		}
		cfg.GameConfig.BoardSize = n
	}
	if v := os.Getenv("ROUND_SECONDS"); v != "" {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, err
		}
		cfg.GameConfig.RoundDuration = secs
	}
	if v := os.Getenv("SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, err
		}
		cfg.Seed = seed
	}

	return cfg, nil
}
