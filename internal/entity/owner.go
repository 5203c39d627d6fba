package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-mvc/internal/apperror"
)

// Owner tells which player, if any, occupies a cell.
type Owner uint8

const (
	Empty Owner = iota
	X
	O
)

func (that Owner) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

func (that Owner) IsValid() bool {
	return that <= O
}

// Opponent - returns the other player. Empty has no opponent.
func (that Owner) Opponent() Owner {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Owner) MarshalText() ([]byte, error) {
	if !that.IsValid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidOwner, that)
	}

	return []byte(that.String()), nil
}

func (that *Owner) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*that = Empty
	case "X":
		*that = X
	case "O":
		*that = O
	default:
		return fmt.Errorf("%w: %q", apperror.ErrInvalidOwner, text)
	}

	return nil
}
