package tictactoe

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-mvc/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-mvc/internal/entity"
)

type State uint8

const (
	InProgress State = iota
	Won
	Drawn
)

func (that State) String() string {
	switch that {
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	default:
		return "in_progress"
	}
}

func (that State) IsTerminal() bool {
	return that == Won || that == Drawn
}

// Update is the state-change notification delivered after every accepted
// move or reset. Every subscriber gets its own copy, so it may keep or
// change it without affecting the game or other subscribers.
type Update struct {
	Board   entity.Board
	Outcome entity.Outcome
	State   State
	Turn    entity.Owner
}

type Subscriber interface {
	OnUpdate(update Update)
}

// SubscriberFunc adapts a plain function to Subscriber.
type SubscriberFunc func(update Update)

func (that SubscriberFunc) OnUpdate(update Update) {
	that(update)
}

type registration struct {
	id         uint64
	subscriber Subscriber
}

// Game owns the board, the turn and the state machine. It is not safe for
// concurrent use; confine a Game to one goroutine or guard it per session.
//
// Subscribers must not call RequestMove or Reset from OnUpdate; such calls
// are rejected with apperror.ErrReentrantCall.
type Game struct {
	logger *slog.Logger

	board   entity.Board
	turn    entity.Owner
	state   State
	outcome entity.Outcome

	subscribers []registration
	nextID      uint64
	dispatching bool
}

func NewGame(logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Game{
		logger: logger.With("component", "game"),
		turn:   entity.X,
		state:  InProgress,
	}
}

// RequestMove - places the current player's mark on (row, col).
// A request after the game is over is ignored and returns nil.
func (that *Game) RequestMove(row, col int) error {
	if that.dispatching {
		return apperror.ErrReentrantCall
	}

	if that.state.IsTerminal() {
		return nil
	}

	owner, err := that.board.Owner(row, col)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	if owner != entity.Empty {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	if err = that.board.SetCell(row, col, that.turn); err != nil {
		return fmt.Errorf("failed to set cell: %w", err)
	}

	that.outcome = that.board.ComputeOutcome()

	switch that.outcome.Result {
	case entity.XWins, entity.OWins:
		that.state = Won
	case entity.Draw:
		that.state = Drawn
	case entity.NoWinner:
		that.turn = that.turn.Opponent()
	}

	that.logger.Debug("move accepted", "row", row, "col", col, "state", that.state, "result", that.outcome.Result)

	that.notify()

	return nil
}

// Reset - clears the board and starts a new game with X to move.
func (that *Game) Reset() error {
	if that.dispatching {
		return apperror.ErrReentrantCall
	}

	that.board.Clear()
	that.turn = entity.X
	that.state = InProgress
	that.outcome = entity.Outcome{Result: entity.NoWinner}

	that.logger.Debug("game reset")

	that.notify()

	return nil
}

// Subscribe - registers a subscriber and returns the function that removes
// this registration. Registering the same subscriber twice delivers every
// update twice. The returned function is safe to call more than once.
func (that *Game) Subscribe(subscriber Subscriber) (unsubscribe func()) {
	that.nextID++
	id := that.nextID

	that.subscribers = append(that.subscribers, registration{id: id, subscriber: subscriber})

	return func() {
		that.unsubscribe(id)
	}
}

func (that *Game) unsubscribe(id uint64) {
	for i, reg := range that.subscribers {
		if reg.id == id {
			// copy so a dispatch loop holding the old slice is unaffected
			subscribers := make([]registration, 0, len(that.subscribers)-1)
			subscribers = append(subscribers, that.subscribers[:i]...)
			that.subscribers = append(subscribers, that.subscribers[i+1:]...)

			return
		}
	}
}

func (that *Game) notify() {
	update := that.snapshot()

	that.dispatching = true
	defer func() {
		that.dispatching = false
	}()

	for _, reg := range that.subscribers {
		reg.subscriber.OnUpdate(update.clone())
	}
}

func (that *Game) snapshot() Update {
	return Update{
		Board:   that.board,
		Outcome: that.outcome,
		State:   that.state,
		Turn:    that.turn,
	}
}

func (that Update) clone() Update {
	that.Outcome = that.Outcome.Clone()
	return that
}

func (that *Game) Board() entity.Board {
	return that.board
}

func (that *Game) Outcome() entity.Outcome {
	return that.outcome.Clone()
}

func (that *Game) State() State {
	return that.state
}

func (that *Game) IsOver() bool {
	return that.state.IsTerminal()
}

// CurrentWinner - returns the winning player, or entity.Empty.
func (that *Game) CurrentWinner() entity.Owner {
	return that.outcome.Winner()
}

// CurrentTurn - returns the player to move. Once the game is won it keeps
// reporting the player who made the winning move.
func (that *Game) CurrentTurn() entity.Owner {
	return that.turn
}
