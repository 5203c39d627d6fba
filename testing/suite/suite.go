package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-mvc/internal/repository/storage"
)

const (
	expireDuration  = 120
	maxWaitDuration = 120 * time.Second
	receiveTimeout  = 5 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
}

// New - starts a throwaway Redis container and connects to it.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping docker backed test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		// stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start resource: %v", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Errorf("could not purge resource: %v", err)
		}
	})

	// never returns error
	_ = resource.Expire(expireDuration)

	// the server in the container might not accept connections yet
	pool.MaxWait = maxWaitDuration

	var redisStorage *storage.RedisStorage
	if err = pool.Retry(func() error {
		redisStorage, err = storage.NewRedisStorage(ctx, resource.GetHostPort(redisPort))
		return err
	}); err != nil {
		t.Fatalf("could not connect to redis: %v", err)
	}

	t.Cleanup(func() {
		_ = redisStorage.Close()
	})

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Storage: redisStorage.Connection,
	}
}

// Subscribe - subscribes to a channel and waits until Redis confirms it.
func (that *Suite) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	that.Helper()

	sub := that.Storage.Subscribe(ctx, channel)
	if _, err := sub.Receive(ctx); err != nil {
		that.Fatalf("could not subscribe to %s: %v", channel, err)
	}

	that.Cleanup(func() {
		_ = sub.Close()
	})

	return sub
}

// Receive - waits for the next payload on the subscription.
func (that *Suite) Receive(ctx context.Context, sub *redis.PubSub) string {
	that.Helper()

	ctx, cancel := context.WithTimeout(ctx, receiveTimeout)
	defer cancel()

	msg, err := sub.ReceiveMessage(ctx)
	if err != nil {
		that.Fatalf("no message received: %v", err)
	}

	return msg.Payload
}
