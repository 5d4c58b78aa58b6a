package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

type Square struct {
	Magic bool
	Pos   Position
	Piece *Piece
}

func NewSquare(pos Position) Square {
	return Square{Pos: pos}
}

func (square *Square) IsEmpty() bool {
	return square.Piece == nil
}

type Board struct {
	ID           uuid.UUID
	grid         [][]Square
	DeathPile    []*Piece
	CommonDeck   []PlayedCard
	CardsOnBoard []PlayedCard
	Players      []*Player
	// forward direction of each player, same order as Players
	Directions []Direction
	Time       ChessTime
	Events     []Event

	playerIDGenerator uint32
	cardIDGenerator   uint32
	pieceIDGenerator  uint32
	eventIDGenerator  uint32
}

func NewBoard(width, height int) *Board {
	width, height = max(width, 0), max(height, 0)

	grid := make([][]Square, height)
	for y := range grid {
		row := make([]Square, width)
		for x := range row {
			row[x] = NewSquare(Position{x, y})
		}
		grid[y] = row
	}

	return &Board{
		ID:           uuid.New(),
		grid:         grid,
		DeathPile:    make([]*Piece, 0),
		CommonDeck:   make([]PlayedCard, 0),
		CardsOnBoard: make([]PlayedCard, 0),
		Players:      make([]*Player, 0),
		Directions:   make([]Direction, 0),
		Time:         NewChessTime(),
		Events:       make([]Event, 0),
	}
}

func (board *Board) Height() int {
	if board == nil {
		return 0
	}
	return len(board.grid)
}

func (board *Board) Width() int {
	if board.Height() == 0 {
		return 0
	}
	return len(board.grid[0])
}

func (board *Board) Contains(pos Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < board.Width() && pos.Y < board.Height()
}

// GetSquare returns a copy of the square at pos, or false when pos is off
// the board.
func (board *Board) GetSquare(pos Position) (Square, bool) {
	square, ok := board.GetSquareMut(pos)
	if !ok {
		return Square{}, false
	}
	return *square, true
}

func (board *Board) GetSquareMut(pos Position) (*Square, bool) {
	if !board.Contains(pos) {
		return nil, false
	}
	return &board.grid[pos.Y][pos.X], true
}

// queries

// GetSquares returns every square pattern reaches from from, ordered by y
// then x.
func (board *Board) GetSquares(from Position, pattern Pattern) []*Square {
	squares := make([]*Square, 0)
	for y := range board.Height() {
		for x := range board.grid[y] {
			square := &board.grid[y][x]
			if pattern.Matches(from, square.Pos, board) {
				squares = append(squares, square)
			}
		}
	}
	return squares
}

func (board *Board) GetPositions(from Position, pattern Pattern) []Position {
	return toPositions(board.GetSquares(from, pattern))
}

// GetSquaresWithAction filters GetSquares by the occupancy action needs.
// A Move never ends on from.
func (board *Board) GetSquaresWithAction(from Position, pattern Pattern, action BasicAction) []*Square {
	squares := board.GetSquares(from, pattern)
	return slices.DeleteFunc(squares, func(square *Square) bool {
		if action == Move && square.Pos == from {
			return true
		}
		return !action.allows(square)
	})
}

func (board *Board) GetPositionsWithAction(from Position, pattern Pattern, action BasicAction) []Position {
	return toPositions(board.GetSquaresWithAction(from, pattern, action))
}

func toPositions(squares []*Square) []Position {
	positions := make([]Position, len(squares))
	for i, square := range squares {
		positions[i] = square.Pos
	}
	return positions
}

// PieceDestinations lists where the piece on from can perform action. A
// piece never attacks or takes itself.
func (board *Board) PieceDestinations(from Position, action BasicAction) ([]Position, error) {
	square, ok := board.GetSquareMut(from)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, from)
	}
	if square.IsEmpty() {
		return nil, fmt.Errorf("%w: %s", ErrSquareEmpty, from)
	}

	positions := board.GetPositionsWithAction(from, square.Piece.PatternFor(action), action)
	if action == Attack || action == Take {
		positions = slices.DeleteFunc(positions, func(pos Position) bool {
			return pos == from
		})
	}
	return positions, nil
}

// CanPerform checks a single proposed action: the pattern, the occupancy
// of the target and the reaction hooks of both pieces.
func (board *Board) CanPerform(action FromToAction) bool {
	from, ok := board.GetSquareMut(action.From)
	if !ok || from.IsEmpty() {
		return false
	}
	to, ok := board.GetSquareMut(action.To)
	if !ok {
		return false
	}

	piece := from.Piece
	if action.Kind != Ability && action.From == action.To {
		return false
	}
	if !piece.PatternFor(action.Kind).Matches(action.From, action.To, board) {
		return false
	}
	if !action.Kind.allows(to) {
		return false
	}
	if !piece.CanDoAction(action, board) {
		return false
	}
	if to.Piece != nil && to.Piece != piece && !to.Piece.CanReceiveAction(action, board) {
		return false
	}
	return true
}

// occupancy

func (board *Board) PlacePiece(pos Position, piece *Piece) error {
	square, ok := board.GetSquareMut(pos)
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	if !square.IsEmpty() {
		return fmt.Errorf("%w: %s holds %s", ErrSquareOccupied, pos, square.Piece)
	}
	square.Piece = piece
	return nil
}

// SpawnPiece creates a piece of the given type with a fresh id and places
// it on pos.
func (board *Board) SpawnPiece(pos Position, pieceType PieceType) (*Piece, error) {
	if _, ok := TemplateFor(pieceType); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPieceType, pieceType)
	}
	if !board.Contains(pos) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}

	piece := NewPiece(board.GeneratePieceID(), pieceType)
	if err := board.PlacePiece(pos, piece); err != nil {
		return nil, err
	}
	return piece, nil
}

func (board *Board) RemovePiece(pos Position) (*Piece, error) {
	square, ok := board.GetSquareMut(pos)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	if square.IsEmpty() {
		return nil, fmt.Errorf("%w: %s", ErrSquareEmpty, pos)
	}
	piece := square.Piece
	square.Piece = nil
	return piece, nil
}

func (board *Board) MovePiece(from, to Position) error {
	if from == to {
		return nil
	}
	target, ok := board.GetSquareMut(to)
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, to)
	}
	if !target.IsEmpty() {
		return fmt.Errorf("%w: %s holds %s", ErrSquareOccupied, to, target.Piece)
	}

	piece, err := board.RemovePiece(from)
	if err != nil {
		return err
	}
	target.Piece = piece
	return nil
}

// Place spawns every placement in order and stops at the first failure.
func (board *Board) Place(placements []Placement) error {
	for i, placement := range placements {
		if _, err := board.SpawnPiece(placement.Pos, placement.Type); err != nil {
			return fmt.Errorf("placement %d (%s): %w", i, placement, err)
		}
	}
	return nil
}

// ids

func (board *Board) GeneratePlayerID() uint32 {
	board.playerIDGenerator += 1
	return board.playerIDGenerator
}

func (board *Board) GenerateCardID() uint32 {
	board.cardIDGenerator += 1
	return board.cardIDGenerator
}

func (board *Board) GeneratePieceID() uint32 {
	board.pieceIDGenerator += 1
	return board.pieceIDGenerator
}

func (board *Board) GenerateEventID() uint32 {
	board.eventIDGenerator += 1
	return board.eventIDGenerator
}

// lookups

// AddPlayer registers a player whose pawns advance towards forward. Decks
// take their ids from the card id space.
func (board *Board) AddPlayer(forward Direction) *Player {
	deckIDs := [4]uint32{}
	for i := range deckIDs {
		deckIDs[i] = board.GenerateCardID()
	}
	player := NewPlayer(board.GeneratePlayerID(), deckIDs)
	board.Players = append(board.Players, player)
	board.Directions = append(board.Directions, forward)
	return player
}

func (board *Board) GetPlayer(id uint32) (*Player, bool) {
	for _, player := range board.Players {
		if player.ID == id {
			return player, true
		}
	}
	return nil, false
}

func (board *Board) GetPlayedCard(id uint32) (*PlayedCard, bool) {
	for i := range board.CommonDeck {
		if board.CommonDeck[i].Card.ID == id {
			return &board.CommonDeck[i], true
		}
	}
	return nil, false
}

func (board *Board) AddEvent(playerID uint32, when ChessTime, function EventFunction) Event {
	event := NewEvent(board.GenerateEventID(), playerID, when, function)
	board.Events = append(board.Events, event)
	return event
}

func (board *Board) GetEvent(id uint32) (*Event, bool) {
	for i := range board.Events {
		if board.Events[i].ID == id {
			return &board.Events[i], true
		}
	}
	return nil, false
}

// FindPiece looks for id on the grid first and then in the death pile.
func (board *Board) FindPiece(id uint32) (*Piece, bool) {
	if _, piece, ok := board.locate(id); ok {
		return piece, true
	}
	for _, piece := range board.DeathPile {
		if piece.ID == id {
			return piece, true
		}
	}
	return nil, false
}

func (board *Board) PiecePosition(id uint32) (Position, bool) {
	pos, _, ok := board.locate(id)
	return pos, ok
}

func (board *Board) locate(id uint32) (Position, *Piece, bool) {
	for y := range board.Height() {
		for x := range board.grid[y] {
			square := &board.grid[y][x]
			if square.Piece != nil && square.Piece.ID == id {
				return square.Pos, square.Piece, true
			}
		}
	}
	return Position{}, nil, false
}

// pieces

// KillPiece takes the piece off the grid and moves it to the death pile.
func (board *Board) KillPiece(id uint32) {
	pos, piece, ok := board.locate(id)
	if !ok {
		if piece, found := board.FindPiece(id); found {
			piece.Alive = false
		}
		return
	}

	board.grid[pos.Y][pos.X].Piece = nil
	piece.Alive = false
	board.DeathPile = append(board.DeathPile, piece)
}

func (board *Board) SetPieceMoved(id uint32, moved bool) {
	if piece, ok := board.FindPiece(id); ok {
		piece.Moved = moved
	}
}

// AddEffect appends the effect and runs its apply hook.
func (board *Board) AddEffect(id uint32, effect Effect, duration ChessTime) {
	piece, ok := board.FindPiece(id)
	if !ok {
		return
	}
	piece.Effects = append(piece.Effects, AppliedEffect{Effect: effect, Duration: duration})
	effect.OnApply(board, piece)
}

func (board *Board) RemoveEffect(id uint32, effect Effect) {
	piece, ok := board.FindPiece(id)
	if !ok {
		return
	}
	piece.Effects = slices.DeleteFunc(piece.Effects, func(applied AppliedEffect) bool {
		return applied.Effect == effect
	})
}

func (board *Board) HalveEffect(id uint32, effect Effect) {
	if piece, ok := board.FindPiece(id); ok {
		if applied := piece.findEffect(effect); applied != nil {
			applied.Duration = applied.Duration.Halve()
		}
	}
}

func (board *Board) DoubleEffect(id uint32, effect Effect) {
	if piece, ok := board.FindPiece(id); ok {
		if applied := piece.findEffect(effect); applied != nil {
			applied.Duration = applied.Duration.Double()
		}
	}
}

// players

func (board *Board) AddMana(playerID, amount uint32) {
	if player, ok := board.GetPlayer(playerID); ok {
		player.Mana += amount
	}
}

func (board *Board) RemoveMana(playerID, amount uint32) {
	if player, ok := board.GetPlayer(playerID); ok {
		player.Mana -= min(amount, player.Mana)
	}
}

func (board *Board) AddMovement(playerID, amount uint32) {
	if player, ok := board.GetPlayer(playerID); ok {
		player.Movements += amount
	}
}

func (board *Board) RemoveMovement(playerID, amount uint32) {
	if player, ok := board.GetPlayer(playerID); ok {
		player.Movements -= min(amount, player.Movements)
	}
}

// time

// AdvanceTime moves the clock by one unit. A new turn refills the players
// and ticks every piece on the grid.
func (board *Board) AdvanceTime(action BoardAction) {
	switch action {
	case MovementAction:
		board.Time.OnMovement()
	case TurnAction:
		board.Time.OnTurn()
		for _, player := range board.Players {
			player.OnTurnStart()
		}
		for _, piece := range board.livePieces() {
			piece.OnTick(board)
		}
	case RoundAction:
		board.Time.OnRound()
	}
}

func (board *Board) livePieces() []*Piece {
	pieces := make([]*Piece, 0)
	for y := range board.Height() {
		for x := range board.grid[y] {
			if piece := board.grid[y][x].Piece; piece != nil {
				pieces = append(pieces, piece)
			}
		}
	}
	return pieces
}

// rendering

/*
Render draws the grid with the highest row on top. Pieces show the first
letter of their type, upper case unless marked. Empty marked squares are
'*', from is '@' when empty.
*/
func (board *Board) Render(from Position, marks []Position) string {
	var builder strings.Builder

	builder.WriteString("   ")
	for x := range board.Width() {
		builder.WriteString(fmt.Sprintf("%d ", x%10))
	}
	builder.WriteString("\n\n")

	for y := board.Height() - 1; y >= 0; y-- {
		builder.WriteString("   ")
		for x := range board.grid[y] {
			square := &board.grid[y][x]
			marked := slices.Contains(marks, square.Pos)
			builder.WriteString(squareSymbol(square, square.Pos == from, marked))
			builder.WriteString(" ")
		}
		builder.WriteString(fmt.Sprintf(" %d\n", y))
	}

	return builder.String()
}

func squareSymbol(square *Square, origin, marked bool) string {
	switch {
	case square.Piece != nil && marked:
		return strings.ToLower(square.Piece.Type.String()[:1])
	case square.Piece != nil:
		return square.Piece.Type.String()[:1]
	case marked:
		return "*"
	case origin:
		return "@"
	default:
		return "."
	}
}

func (board *Board) String() string {
	return board.Render(Position{-1, -1}, nil)
}

func (board *Board) Print() {
	fmt.Println(board.String())
}
