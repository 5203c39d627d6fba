package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-mvc/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-mvc/internal/tictactoe"
)

type game interface {
	RequestMove(row, col int) error
	Reset() error
	Subscribe(subscriber tictactoe.Subscriber) (unsubscribe func())
}

// Controller turns presentation gestures into game requests. A click on a
// taken cell is not an error for the presentation; it is only logged.
type Controller struct {
	logger *slog.Logger
	game   game
}

func NewController(logger *slog.Logger, game game) *Controller {
	return &Controller{
		logger: logger.With("component", "controller"),
		game:   game,
	}
}

// Click - handles a click on the (row, col) cell.
func (that *Controller) Click(row, col int) error {
	log := that.logger.With("method", "Click", "row", row, "col", col)

	err := that.game.RequestMove(row, col)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperror.ErrCellOccupied):
		// not really an error
		log.Warn("move rejected", "error", err)
		return nil
	default:
		log.Error("failed to make move", "error", err)
		return fmt.Errorf("failed to make move: %w", err)
	}
}

// NewGame - clears the board for another round.
func (that *Controller) NewGame() error {
	if err := that.game.Reset(); err != nil {
		that.logger.Error("failed to reset game", "method", "NewGame", "error", err)
		return fmt.Errorf("failed to reset game: %w", err)
	}

	return nil
}

func (that *Controller) Subscribe(subscriber tictactoe.Subscriber) (unsubscribe func()) {
	return that.game.Subscribe(subscriber)
}
