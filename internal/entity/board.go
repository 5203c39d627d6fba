package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-mvc/internal/apperror"
)

const Size = 3

// Board is the 3x3 grid of cell owners. It is a value type: assigning a
// Board copies the whole grid.
type Board [Size][Size]Owner

// Clear - sets every cell to Empty.
func (that *Board) Clear() {
	*that = Board{}
}

// SetCell - overwrites the owner of a cell. Occupancy is the caller's concern.
func (that *Board) SetCell(row, col int, owner Owner) error {
	if err := validateCoordinate(row, col); err != nil {
		return err
	}

	if !owner.IsValid() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidOwner, owner)
	}

	that[row][col] = owner

	return nil
}

func (that *Board) Owner(row, col int) (Owner, error) {
	if err := validateCoordinate(row, col); err != nil {
		return Empty, err
	}

	return that[row][col], nil
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// ComputeOutcome - scans the lines in order and reports the first complete one.
// Without a complete line a full board is a draw.
func (that *Board) ComputeOutcome() Outcome {
	for _, line := range Lines {
		cells := line.Cells()

		a := that[cells[0].Row][cells[0].Col]
		b := that[cells[1].Row][cells[1].Col]
		c := that[cells[2].Row][cells[2].Col]

		if a != Empty && a == b && b == c {
			return winFor(a, line)
		}
	}

	// the game will continue until all the squares are full
	if that.IsFull() {
		return Outcome{Result: Draw}
	}

	return Outcome{Result: NoWinner}
}

func validateCoordinate(row, col int) error {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCoordinate, row, col)
	}

	return nil
}
