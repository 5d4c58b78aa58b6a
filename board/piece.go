package board

import (
	"fmt"
	"slices"
	"strings"

	"variantchess/utility"
)

type PieceType uint8

const (
	// classic
	Pawn PieceType = iota
	Bishop
	Knight
	Rook
	Queen
	King

	// starting
	Archer
	Balista
	Builder
	Cannon
	Catapult
	CrazyPawn
	Magician
	Paladin
	Ram
	ShieldBearer
	Ship
	SuperPawn
	TeslaTower
	Wall
	Warlock

	// portal
	Portal
	Basilisk
	Dragon
	Gargoyle
	Golem
	Imp
	Mandragora
	Mermaid
	Necromancer
	Ogre
	Oni
	Spider
	SpiderEgg
	Succubus
	Witch

	// other
	Swamp
	Leech

	pieceTypeCount = int(iota)
)

var pieceTypeNames = [pieceTypeCount]string{
	Pawn:         "Pawn",
	Bishop:       "Bishop",
	Knight:       "Knight",
	Rook:         "Rook",
	Queen:        "Queen",
	King:         "King",
	Archer:       "Archer",
	Balista:      "Balista",
	Builder:      "Builder",
	Cannon:       "Cannon",
	Catapult:     "Catapult",
	CrazyPawn:    "CrazyPawn",
	Magician:     "Magician",
	Paladin:      "Paladin",
	Ram:          "Ram",
	ShieldBearer: "ShieldBearer",
	Ship:         "Ship",
	SuperPawn:    "SuperPawn",
	TeslaTower:   "TeslaTower",
	Wall:         "Wall",
	Warlock:      "Warlock",
	Portal:       "Portal",
	Basilisk:     "Basilisk",
	Dragon:       "Dragon",
	Gargoyle:     "Gargoyle",
	Golem:        "Golem",
	Imp:          "Imp",
	Mandragora:   "Mandragora",
	Mermaid:      "Mermaid",
	Necromancer:  "Necromancer",
	Ogre:         "Ogre",
	Oni:          "Oni",
	Spider:       "Spider",
	SpiderEgg:    "SpiderEgg",
	Succubus:     "Succubus",
	Witch:        "Witch",
	Swamp:        "Swamp",
	Leech:        "Leech",
}

func (pieceType PieceType) String() string {
	if int(pieceType) < pieceTypeCount {
		return pieceTypeNames[pieceType]
	}
	return fmt.Sprintf("piece(%d)", pieceType)
}

// ParsePieceType matches names case-insensitively.
func ParsePieceType(str string) (PieceType, error) {
	str = strings.TrimSpace(str)
	for pieceType, name := range pieceTypeNames {
		if strings.EqualFold(name, str) {
			return PieceType(pieceType), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPieceType, str)
}

func PieceTypeStrings() []string {
	return append([]string(nil), pieceTypeNames[:]...)
}

func AllPieceTypes() []PieceType {
	pieceTypes := make([]PieceType, pieceTypeCount)
	for i := range pieceTypes {
		pieceTypes[i] = PieceType(i)
	}
	return pieceTypes
}

type Tag uint8

const (
	Biologic Tag = iota
	Structure
	Transportable
	Impenetrable
	Immune
	Heroic
	Demonic
	Dead
)

var tagNames = [...]string{
	Biologic:      "BIO",
	Structure:     "STR",
	Transportable: "TRANS",
	Impenetrable:  "IMP",
	Immune:        "IMM",
	Heroic:        "HERO",
	Demonic:       "DEM",
	Dead:          "DEAD",
}

func (tag Tag) String() string {
	if int(tag) < len(tagNames) {
		return tagNames[tag]
	}
	return fmt.Sprintf("tag(%d)", tag)
}

type PropertyKind uint8

const (
	Life PropertyKind = iota
	CurrentLife
	AttackDamage
	TakeDamage
	PieceList
)

// Property is a per-piece stat. Value is used by every kind except
// PieceList, which uses Pieces.
type Property struct {
	Kind   PropertyKind
	Value  uint32
	Pieces []Piece
}

func (property Property) clone() Property {
	if property.Pieces != nil {
		property.Pieces = slices.Clone(property.Pieces)
	}
	return property
}

type Piece struct {
	ID            uint32
	Type          PieceType
	Properties    []Property
	Tags          utility.Set[Tag]
	MovePattern   Pattern
	TakePattern   Pattern
	AttackPattern Pattern
	Ability       AbilityData
	Effects       []AppliedEffect
	Alive         bool
	Moved         bool
}

// NewPiece builds a piece with the catalog entry of its type.
func NewPiece(id uint32, pieceType PieceType) *Piece {
	template, _ := TemplateFor(pieceType)

	properties := make([]Property, len(template.Properties))
	for i, property := range template.Properties {
		properties[i] = property.clone()
	}

	return &Piece{
		ID:            id,
		Type:          pieceType,
		Properties:    properties,
		Tags:          utility.NewSetFrom(template.Tags...),
		MovePattern:   template.Move,
		TakePattern:   template.Take,
		AttackPattern: template.Attack,
		Ability:       template.Ability,
		Effects:       make([]AppliedEffect, 0),
		Alive:         true,
	}
}

func (piece *Piece) String() string {
	return fmt.Sprintf("%s#%d", piece.Type, piece.ID)
}

func (piece *Piece) HasTag(tag Tag) bool {
	return piece.Tags.Has(tag)
}

func (piece *Piece) IsStructure() bool {
	return piece.HasTag(Structure)
}

func (piece *Piece) Property(kind PropertyKind) (Property, bool) {
	for _, property := range piece.Properties {
		if property.Kind == kind {
			return property, true
		}
	}
	return Property{}, false
}

// PatternFor returns the pattern the piece uses for action.
func (piece *Piece) PatternFor(action BasicAction) Pattern {
	switch action {
	case Move:
		return piece.MovePattern
	case Take:
		return piece.TakePattern
	case Attack:
		return piece.AttackPattern
	case Ability:
		return piece.Ability.Pattern
	}
	return NullPattern()
}

func (piece *Piece) findEffect(effect Effect) *AppliedEffect {
	for i := range piece.Effects {
		if piece.Effects[i].Effect == effect {
			return &piece.Effects[i]
		}
	}
	return nil
}

// Reactor is what the action-resolution layer asks of anything on the
// board before and after it resolves an action.
type Reactor interface {
	CanDoAction(action Action, board *Board) bool
	CanReceiveAction(action Action, board *Board) bool
	OnActionDone(action Action, board *Board)
	OnActionReceived(action Action, board *Board)
	OnTick(board *Board)
	OnExpire(board *Board)
}

var _ Reactor = (*Piece)(nil)

// the hooks fan out to a snapshot of the applied effects, since effect
// hooks may edit piece.Effects through the board

func (piece *Piece) effects() []Effect {
	effects := make([]Effect, len(piece.Effects))
	for i, applied := range piece.Effects {
		effects[i] = applied.Effect
	}
	return effects
}

func (piece *Piece) CanDoAction(action Action, board *Board) bool {
	if !piece.Alive {
		return false
	}
	for _, effect := range piece.effects() {
		if !effect.CanActionBeDone(board, piece) {
			return false
		}
	}
	return true
}

func (piece *Piece) CanReceiveAction(action Action, board *Board) bool {
	for _, effect := range piece.effects() {
		if !effect.CanActionBeReceived(board, piece) {
			return false
		}
	}
	return true
}

func (piece *Piece) OnActionDone(action Action, board *Board) {
	if fromTo, ok := action.(FromToAction); ok && fromTo.Kind == Move {
		piece.Moved = true
	}
	for _, effect := range piece.effects() {
		effect.OnActionDone(board, piece)
	}
}

func (piece *Piece) OnActionReceived(action Action, board *Board) {
	for _, effect := range piece.effects() {
		effect.OnActionReceived(board, piece)
	}
}

func (piece *Piece) OnTick(board *Board) {
	for _, effect := range piece.effects() {
		effect.OnTick(board, piece)
	}
}

// OnExpire fires every effect whose duration has run out and drops it.
func (piece *Piece) OnExpire(board *Board) {
	for _, applied := range slices.Clone(piece.Effects) {
		if !applied.Duration.IsZero() {
			continue
		}
		applied.Effect.OnExpire(board, piece)
		board.RemoveEffect(piece.ID, applied.Effect)
	}
}
