package redis

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-mvc/internal/entity"
	"github.com/rocketscienceinc/tictactoe-mvc/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-mvc/testing/suite"
)

func TestNewMessage(t *testing.T) {
	t.Run("Win carries the line", func(t *testing.T) {
		// Given: an update for a win on the anti diagonal
		line := entity.WinLine{Type: entity.DiagonalAnti}
		update := tictactoe.Update{
			Outcome: entity.Outcome{Result: entity.OWins, Line: &line},
			State:   tictactoe.Won,
			Turn:    entity.O,
		}

		// When: the message is built
		msg := NewMessage("brave-otter", update)

		// Then: the line is present with its wire name
		assert.Equal(t, "o_wins", msg.Result)
		assert.Equal(t, "won", msg.State)
		require.NotNil(t, msg.Line)
		assert.Equal(t, Line{Type: "diagonal_anti"}, *msg.Line)
	})

	t.Run("Progress has no line", func(t *testing.T) {
		msg := NewMessage("brave-otter", tictactoe.Update{Turn: entity.X})

		assert.Equal(t, "no_winner", msg.Result)
		assert.Equal(t, "in_progress", msg.State)
		assert.Nil(t, msg.Line)
	})
}

func TestPublisher_SessionContext(t *testing.T) {
	// Given: a publisher whose session context is already canceled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() {
		_ = client.Close()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	publisher := NewPublisher(ctx, logger, client, "tictactoe", "calm-yak")

	// When: an update is published
	err := publisher.Publish(ctx, tictactoe.Update{Turn: entity.X})

	// Then: the failure is returned to direct callers
	require.Error(t, err)

	// Then: the subscriber path only logs it
	assert.NotPanics(t, func() {
		publisher.OnUpdate(tictactoe.Update{Turn: entity.X})
	})
}

func TestPublisher_OnUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: a game broadcasting to a subscribed channel
	sub := st.Subscribe(ctx, Channel("tictactoe", "brave-otter"))

	game := tictactoe.NewGame(st.Logger)
	game.Subscribe(NewPublisher(ctx, st.Logger, st.Storage, "tictactoe", "brave-otter"))

	// When: X plays the top right corner
	require.NoError(t, game.RequestMove(0, 2))

	// Then: the update is published as JSON
	payload := st.Receive(ctx, sub)
	assert.JSONEq(t, `{
		"session": "brave-otter",
		"board": [["","","X"],["","",""],["","",""]],
		"result": "no_winner",
		"state": "in_progress",
		"turn": "O"
	}`, payload)

	// When: the game is reset
	require.NoError(t, game.Reset())

	// Then: the cleared board is published
	payload = st.Receive(ctx, sub)
	assert.JSONEq(t, `{
		"session": "brave-otter",
		"board": [["","",""],["","",""],["","",""]],
		"result": "no_winner",
		"state": "in_progress",
		"turn": "X"
	}`, payload)
}

func TestPublisher_WinningUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	sub := st.Subscribe(ctx, Channel("ttt", "calm-yak"))

	game := tictactoe.NewGame(st.Logger)
	publisher := NewPublisher(ctx, st.Logger, st.Storage, "ttt", "calm-yak")

	// Given: X is one move from completing column 1
	for _, move := range []entity.Cell{{Row: 0, Col: 1}, {Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}} {
		require.NoError(t, game.RequestMove(move.Row, move.Col))
	}

	game.Subscribe(publisher)

	// When: X completes the column
	require.NoError(t, game.RequestMove(2, 1))

	// Then: the published message carries the winning line
	payload := st.Receive(ctx, sub)
	assert.JSONEq(t, `{
		"session": "calm-yak",
		"board": [["O","X",""],["","X",""],["","X","O"]],
		"result": "x_wins",
		"line": {"type": "column", "index": 1},
		"state": "won",
		"turn": "X"
	}`, payload)
}
