package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shaunduncan/tictactoe/internal/config"
	"github.com/shaunduncan/tictactoe/internal/repository"
	"github.com/shaunduncan/tictactoe/internal/repository/storage"
	"github.com/shaunduncan/tictactoe/internal/service"
	"github.com/shaunduncan/tictactoe/internal/usecase"
	"github.com/shaunduncan/tictactoe/transport/console"
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

	var archiver service.Archiver
	if redisAddr := conf.Redis.GetRedisAddr(); redisAddr != "" {
		redisStorage, err := storage.New(ctx, redisAddr)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		archiveRepo := repository.NewArchiveRepository(redisStorage.Connection)
		archiver = usecase.NewArchiveUseCase(archiveRepo)
		log.Info("game archiving enabled", "addr", redisAddr)
	} else {
		log.Info("game archiving disabled, no redis address configured")
	}

	gameplay := service.NewGameplayService(logger, archiver)

	return console.New(logger, gameplay, conf.BoardSize).Run(ctx)
}
