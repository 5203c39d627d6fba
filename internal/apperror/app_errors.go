package apperror

import "errors"

var (
	ErrInvalidCoordinate = errors.New("coordinate is outside the board")
	ErrInvalidOwner      = errors.New("unknown cell owner")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrReentrantCall     = errors.New("game mutated from inside a notification handler")
)
