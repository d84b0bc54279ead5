package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/config"
	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/repository"
	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/service"
	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/transport/arena"
	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-arena-bot/transport/rest"
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

	archive, closeArchive, err := initArchive(ctx, log, conf.Redis)
	if err != nil {
		return err
	}
	defer closeArchive()

	arenaClient := arena.New(logger, conf.Arena.Endpoint, conf.Arena.RequestTimeout)

	dispatcher := usecase.NewDispatcher(logger, arenaClient, service.NewBotService(),
		usecase.WithMoveDelay(conf.Battle.MoveDelay),
	)
	runner := usecase.NewBattleRunner(logger, dispatcher, archive,
		usecase.WithInactivityLimit(conf.Battle.InactivityLimit),
		usecase.WithPollInterval(conf.Battle.PollInterval),
	)
	subscriber := usecase.SubscriberFunc(func(ctx context.Context, battleID string) usecase.Subscription {
		return arenaClient.Subscribe(ctx, battleID)
	})
	manager := usecase.NewBattleManager(logger, usecase.NewBattleRegistry(time.Now), subscriber, runner, archive)
	defer manager.Shutdown()

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "arena", conf.Arena.Endpoint)
	if err = rest.New(logger, conf.HTTPPort, manager).Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func initArchive(ctx context.Context, log *slog.Logger, conf config.Redis) (repository.BattleRepository, func(), error) {
	if !conf.Enabled {
		log.Info("redis disabled, finished battles are not archived")
		return repository.NewNopBattleRepository(), func() {}, nil
	}

	client, err := storage.NewRedisStorage(ctx, conf.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewBattleRepository(client, conf.ArchiveTTL), closeFn, nil
}
