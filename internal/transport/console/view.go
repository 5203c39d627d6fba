package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe-mvc/internal/entity"
	"github.com/rocketscienceinc/tictactoe-mvc/internal/tictactoe"
)

const (
	emptyMark    = "."
	rowSeparator = "---+---+---"
)

// View renders every game update as a text grid followed by a status line.
type View struct {
	out io.Writer

	x         *color.Color
	o         *color.Color
	highlight *color.Color
	status    *color.Color
}

func NewView(out io.Writer, useColor bool) *View {
	view := &View{
		out:       out,
		x:         color.New(color.FgCyan, color.Bold),
		o:         color.New(color.FgMagenta, color.Bold),
		highlight: color.New(color.FgBlack, color.BgGreen, color.Bold),
		status:    color.New(color.FgYellow),
	}

	for _, c := range []*color.Color{view.x, view.o, view.highlight, view.status} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return view
}

func (that *View) OnUpdate(update tictactoe.Update) {
	fmt.Fprint(that.out, that.Render(update))
}

// Render - returns the grid and the status line of the update.
func (that *View) Render(update tictactoe.Update) string {
	var sb strings.Builder

	for row := range entity.Size {
		if row > 0 {
			sb.WriteString(rowSeparator + "\n")
		}

		cells := make([]string, 0, entity.Size)
		for col := range entity.Size {
			cells = append(cells, that.cell(update, row, col))
		}

		sb.WriteString(strings.Join(cells, "|") + "\n")
	}

	sb.WriteString(that.status.Sprint(Status(update)) + "\n")

	return sb.String()
}

func (that *View) cell(update tictactoe.Update, row, col int) string {
	owner := update.Board[row][col]
	text := " " + mark(owner) + " "

	if line := update.Outcome.Line; line != nil && line.Contains(row, col) {
		return that.highlight.Sprint(text)
	}

	switch owner {
	case entity.X:
		return that.x.Sprint(text)
	case entity.O:
		return that.o.Sprint(text)
	default:
		return text
	}
}

func mark(owner entity.Owner) string {
	if owner == entity.Empty {
		return emptyMark
	}

	return owner.String()
}

// Status - describes the update for a human, for example "X wins (row 1)".
func Status(update tictactoe.Update) string {
	switch update.State {
	case tictactoe.Won:
		return fmt.Sprintf("%s wins (%s)", update.Outcome.Winner(), describeLine(update.Outcome.Line))
	case tictactoe.Drawn:
		return "Draw"
	default:
		return "Turn: " + update.Turn.String()
	}
}

func describeLine(line *entity.WinLine) string {
	if line == nil {
		return "unknown line"
	}

	switch line.Type {
	case entity.Row, entity.Column:
		return fmt.Sprintf("%s %d", line.Type, line.Index+1)
	default:
		return line.Type.String()
	}
}
