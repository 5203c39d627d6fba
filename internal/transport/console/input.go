package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-mvc/internal/entity"
)

const usage = "enter \"<row> <col>\" (1-3), \"new\" for a new game or \"quit\""

type controller interface {
	Click(row, col int) error
	NewGame() error
}

// Input reads typed gestures and forwards them to the controller.
type Input struct {
	logger     *slog.Logger
	controller controller
	out        io.Writer
}

func NewInput(logger *slog.Logger, controller controller, out io.Writer) *Input {
	return &Input{
		logger:     logger.With("component", "console-input"),
		controller: controller,
		out:        out,
	}
}

// Run - processes lines until quit, EOF or context cancellation.
func (that *Input) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				scanErr <- nil
				return
			}
		}

		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				return nil
			}

			quit, err := that.handleLine(line)
			if err != nil {
				return err
			}

			if quit {
				return nil
			}
		}
	}
}

func (that *Input) handleLine(line string) (bool, error) {
	fields := strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "q", "exit":
		return true, nil
	case "new", "n":
		if err := that.controller.NewGame(); err != nil {
			return false, fmt.Errorf("failed to start new game: %w", err)
		}

		return false, nil
	case "help", "?":
		that.hint()
		return false, nil
	}

	if len(fields) != 2 {
		that.hint()
		return false, nil
	}

	row, rowErr := strconv.Atoi(fields[0])
	col, colErr := strconv.Atoi(fields[1])

	if rowErr != nil || colErr != nil || !inRange(row) || !inRange(col) {
		that.logger.Debug("unrecognized input", "line", line)
		that.hint()
		return false, nil
	}

	if err := that.controller.Click(row-1, col-1); err != nil {
		return false, fmt.Errorf("failed to click cell: %w", err)
	}

	return false, nil
}

func inRange(n int) bool {
	return n >= 1 && n <= entity.Size
}

func (that *Input) hint() {
	fmt.Fprintln(that.out, usage)
}
