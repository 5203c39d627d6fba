package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-mvc/internal/config"
	"github.com/rocketscienceinc/tictactoe-mvc/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-mvc/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-mvc/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-mvc/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-mvc/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-mvc/internal/usecase"
)

// RunApp - runs one play session on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			logger.Info("Received signal, shutting down", "component", "app", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the game, its observers and the console input, then plays
// until the input ends.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	session := conf.Session
	if session == "" {
		session = pkg.GenerateSessionName()
	}

	logger = logger.With("session", session)
	log := logger.With("component", "app")

	game := tictactoe.NewGame(logger)
	controller := usecase.NewController(logger, game)

	controller.Subscribe(console.NewView(out, conf.Console.Color))

	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		publisher := redis.NewPublisher(ctx, logger, redisStorage.Connection, conf.Redis.ChannelPrefix, session)
		controller.Subscribe(publisher)

		log.Info("Broadcasting game updates", "channel", redis.Channel(conf.Redis.ChannelPrefix, session))
	}

	log.Info("Starting session")

	if err := controller.NewGame(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	if err := console.NewInput(logger, controller, out).Run(ctx, in); err != nil {
		return fmt.Errorf("console input failed: %w", err)
	}

	log.Info("Session finished", "state", game.State(), "result", game.Outcome().Result)

	return nil
}
