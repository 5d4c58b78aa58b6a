package board

import "fmt"

type Effect uint8

const (
	Fire Effect = iota
	Ice
	Deactivate
	Invulnerable
)

var effectNames = [...]string{
	Fire:         "fire",
	Ice:          "ice",
	Deactivate:   "deactivate",
	Invulnerable: "invulnerable",
}

func (effect Effect) String() string {
	if int(effect) < len(effectNames) {
		return effectNames[effect]
	}
	return fmt.Sprintf("effect(%d)", effect)
}

type AppliedEffect struct {
	Effect   Effect
	Duration ChessTime
}

// OnApply runs once right after the effect is added to piece.
func (effect Effect) OnApply(board *Board, piece *Piece) {
	switch {
	case effect == Ice && piece.IsStructure():
		board.HalveEffect(piece.ID, Ice)
	case effect == Deactivate && !piece.IsStructure():
		board.HalveEffect(piece.ID, Deactivate)
	}
}

// OnTick runs at the start of every turn while the effect lasts.
func (effect Effect) OnTick(board *Board, piece *Piece) {
	if effect == Ice || effect == Deactivate {
		board.SetPieceMoved(piece.ID, true)
	}
}

// OnExpire runs when the duration runs out.
func (effect Effect) OnExpire(board *Board, piece *Piece) {
	if effect == Fire {
		board.KillPiece(piece.ID)
	}
}

func (effect Effect) OnActionDone(board *Board, piece *Piece)     {}
func (effect Effect) OnActionReceived(board *Board, piece *Piece) {}

func (effect Effect) CanActionBeDone(board *Board, piece *Piece) bool {
	return true
}

func (effect Effect) CanActionBeReceived(board *Board, piece *Piece) bool {
	return effect != Invulnerable
}
