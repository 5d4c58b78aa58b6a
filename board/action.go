package board

import (
	"fmt"
	"strings"
)

// BasicAction decides which occupancy a destination must have.
type BasicAction uint8

const (
	Move BasicAction = iota
	Attack
	Take
	// Ability puts no constraint on occupancy.
	Ability
)

var basicActionNames = [...]string{
	Move:    "move",
	Attack:  "attack",
	Take:    "take",
	Ability: "ability",
}

func (action BasicAction) String() string {
	if int(action) < len(basicActionNames) {
		return basicActionNames[action]
	}
	return fmt.Sprintf("action(%d)", action)
}

func ParseBasicAction(str string) (BasicAction, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	for action, name := range basicActionNames {
		if name == str {
			return BasicAction(action), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, str)
}

func BasicActionStrings() []string {
	return append([]string(nil), basicActionNames[:]...)
}

// allows reports whether a square with the given occupancy can be the
// target of the action.
func (action BasicAction) allows(square *Square) bool {
	switch action {
	case Move:
		return square.Piece == nil
	case Attack, Take:
		return square.Piece != nil
	default:
		return true
	}
}

// Action is anything the action-resolution layer can ask a piece to do
// or receive.
type Action interface {
	ActionName() string
}

// FromToAction is a move, attack or take of one piece.
type FromToAction struct {
	Kind    BasicAction
	From    Position
	To      Position
	PieceID uint32
}

func (action FromToAction) ActionName() string {
	return action.Kind.String()
}

func (action FromToAction) String() string {
	return fmt.Sprintf("%s %s -> %s", action.Kind, action.From, action.To)
}

type AbilityAction struct {
	PieceID uint32
}

func (AbilityAction) ActionName() string { return "ability" }

// DieAction carries the position of the piece that dies.
type DieAction struct {
	Position Position
}

func (DieAction) ActionName() string { return "die" }

// KillAction carries the position of the piece that kills.
type KillAction struct {
	Position Position
}

func (KillAction) ActionName() string { return "kill" }

type TakeCardAction struct {
	PlayerID   uint32
	CardID     uint32
	FromDeckID uint32
	ToDeckID   uint32
}

func (TakeCardAction) ActionName() string { return "take card" }

type PlayCardAction struct {
	PlayerID   uint32
	CardID     uint32
	PutOnBoard bool
}

func (action PlayCardAction) ActionName() string {
	if action.PutOnBoard {
		return "put on board"
	}
	return "play card"
}

type DiscardCardAction struct {
	PlayerID uint32
	CardID   uint32
}

func (DiscardCardAction) ActionName() string { return "discard card" }

type EffectAction uint8

const (
	TickAction EffectAction = iota
	ExpireAction
)

func (action EffectAction) ActionName() string {
	if action == TickAction {
		return "tick"
	}
	return "expire"
}

// BoardAction advances game time by one unit.
type BoardAction uint8

const (
	MovementAction BoardAction = iota
	TurnAction
	RoundAction
)

func (action BoardAction) ActionName() string {
	switch action {
	case MovementAction:
		return "movement"
	case TurnAction:
		return "turn"
	default:
		return "round"
	}
}

type SummonAction struct {
	Position Position
}

func (SummonAction) ActionName() string { return "summon" }
