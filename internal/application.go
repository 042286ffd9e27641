package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/config"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/engine"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/repository"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/repository/storage"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/server/console"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/service"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameRepo, cleanup, err := newGameRepository(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer cleanup()

	botEngine := engine.New(engine.Config{
		Rollouts:      conf.Bot.Rollouts,
		SmartMoveProb: conf.Bot.SmartMoveProb,
		Workers:       conf.Bot.Workers,
		Seed:          conf.Bot.Seed,
	})

	gameService := service.NewGameService(gameRepo)
	botService := service.NewBotService(botEngine)
	gamePlayService := service.NewGamePlayService(logger, gameService, botService)

	consoleServer := console.New(logger, gamePlayService, conf.Bot.TurnDelay)

	if err = consoleServer.Start(ctx); err != nil {
		return fmt.Errorf("console server error: %w", err)
	}

	return nil
}

// newGameRepository picks the session store: Redis when storage is
// enabled, otherwise the in-memory fallback.
func newGameRepository(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	log := logger.With("component", "app")

	if !conf.Storage.Enabled {
		log.Info("storage disabled, using in-memory game repository")
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	cleanup := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage.Connection), cleanup, nil
}
