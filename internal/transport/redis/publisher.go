package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-mvc/internal/entity"
	"github.com/rocketscienceinc/tictactoe-mvc/internal/tictactoe"
)

// Line is the wire form of a winning line.
type Line struct {
	Type  string `json:"type"`
	Index int    `json:"index"`
}

// Message is published on every game update.
type Message struct {
	Session string       `json:"session"`
	Board   entity.Board `json:"board"`
	Result  string       `json:"result"`
	Line    *Line        `json:"line,omitempty"`
	State   string       `json:"state"`
	Turn    entity.Owner `json:"turn"`
}

func NewMessage(session string, update tictactoe.Update) Message {
	msg := Message{
		Session: session,
		Board:   update.Board,
		Result:  update.Outcome.Result.String(),
		State:   update.State.String(),
		Turn:    update.Turn,
	}

	if line := update.Outcome.Line; line != nil {
		msg.Line = &Line{Type: lineTypeName(line.Type), Index: line.Index}
	}

	return msg
}

func lineTypeName(lineType entity.LineType) string {
	switch lineType {
	case entity.Row:
		return "row"
	case entity.Column:
		return "column"
	case entity.DiagonalMain:
		return "diagonal_main"
	case entity.DiagonalAnti:
		return "diagonal_anti"
	default:
		return "unknown"
	}
}

// Publisher broadcasts game updates on a Redis channel. It only observes the
// game; remote listeners cannot send moves back.
//
// OnUpdate carries no context, so the publisher keeps the session context it
// was built with and uses it for every publish from OnUpdate.
type Publisher struct {
	ctx     context.Context
	logger  *slog.Logger
	client  *redis.Client
	session string
	channel string
}

func NewPublisher(ctx context.Context, logger *slog.Logger, client *redis.Client, prefix, session string) *Publisher {
	return &Publisher{
		ctx:     ctx,
		logger:  logger.With("component", "redis-publisher", "session", session),
		client:  client,
		session: session,
		channel: Channel(prefix, session),
	}
}

// Channel - returns the pub/sub channel of a session.
func Channel(prefix, session string) string {
	return prefix + ":" + session
}

// OnUpdate - publishes the update. Failures are logged and never reach the game.
func (that *Publisher) OnUpdate(update tictactoe.Update) {
	if err := that.Publish(that.ctx, update); err != nil {
		that.logger.Error("failed to publish update", "error", err)
	}
}

func (that *Publisher) Publish(ctx context.Context, update tictactoe.Update) error {
	payload, err := json.Marshal(NewMessage(that.session, update))
	if err != nil {
		return fmt.Errorf("could not marshal update: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", that.channel, err)
	}

	return nil
}
