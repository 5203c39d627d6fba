package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-mvc/internal/config"
)

func TestRun(t *testing.T) {
	t.Run("Plays a drawn game on the console", func(t *testing.T) {
		// Given: a config without redis and a scripted draw
		conf := &config.Config{Session: "calm-yak"}
		script := "1 1\n1 2\n1 3\n2 2\n2 1\n2 3\n3 2\n3 1\n3 3\n1 1\nquit\n"

		var out bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

		// When: the session runs
		err := Run(context.Background(), logger, conf, strings.NewReader(script), &out)
		require.NoError(t, err)

		// Then: the initial board, nine moves and the draw are rendered
		assert.Equal(t, 9, strings.Count(out.String(), "Turn:"))
		assert.True(t, strings.HasSuffix(out.String(), "Draw\n"))
	})

	t.Run("Redis connection failure stops the session", func(t *testing.T) {
		conf := &config.Config{
			Session: "calm-yak",
			Redis:   config.Redis{Enabled: true, Host: "127.0.0.1", Port: "1"},
		}
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

		err := Run(context.Background(), logger, conf, strings.NewReader(""), io.Discard)

		assert.ErrorContains(t, err, "could not connect to redis storage")
	})
}
