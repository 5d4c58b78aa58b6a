package board

import "errors"

var (
	ErrOutOfBounds      = errors.New("position out of bounds")
	ErrSquareOccupied   = errors.New("square occupied")
	ErrSquareEmpty      = errors.New("square empty")
	ErrUnknownPieceType = errors.New("unknown piece type")
	ErrUnknownAction    = errors.New("unknown action")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidPlacement = errors.New("invalid placement")
)
