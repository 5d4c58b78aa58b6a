package board

import (
	"fmt"
	"strings"
)

// Unbounded as a distance bound lets a leaf match at any distance.
const Unbounded = -1

// Grid is the board state a pattern may read while matching.
type Grid interface {
	GetSquare(pos Position) (Square, bool)
}

type PatternKind uint8

const (
	SubdirectionalKind PatternKind = iota
	DirectionalKind
	DiagonalKind
	CircleKind
	SquareKind
	KnightKind

	PawnMoveKind
	PawnTakeKind
	SuperPawnMoveKind
	SuperPawnTakeKind

	RandomizableKind
	CompositeKind

	PawnAbilityKind
)

var patternKindNames = [...]string{
	SubdirectionalKind: "Subdirectional",
	DirectionalKind:    "Directional",
	DiagonalKind:       "Diagonal",
	CircleKind:         "Circle",
	SquareKind:         "Square",
	KnightKind:         "Knight",
	PawnMoveKind:       "PawnMove",
	PawnTakeKind:       "PawnTake",
	SuperPawnMoveKind:  "SuperPawnMove",
	SuperPawnTakeKind:  "SuperPawnTake",
	RandomizableKind:   "Randomizable",
	CompositeKind:      "Composite",
	PawnAbilityKind:    "PawnAbility",
}

func (kind PatternKind) String() string {
	if int(kind) < len(patternKindNames) {
		return patternKindNames[kind]
	}
	return fmt.Sprintf("pattern(%d)", kind)
}

/*
PatternEnum is one node of a pattern tree. Which fields are meaningful
depends on kind:

	n        Subdirectional, Directional, Diagonal, Circle, Square
	dx, dy   Knight
	forward  PawnMove, PawnTake, SuperPawnMove, SuperPawnTake, PawnAbility
	inner    Randomizable (exactly one member), Composite (any number)
*/
type PatternEnum struct {
	kind    PatternKind
	n       int
	dx      int
	dy      int
	forward Direction
	inner   []PatternEnum
}

// leaves

func SubdirectionalPattern(n int) PatternEnum {
	return PatternEnum{kind: SubdirectionalKind, n: n}
}
func DirectionalPattern(n int) PatternEnum {
	return PatternEnum{kind: DirectionalKind, n: n}
}
func DiagonalPattern(n int) PatternEnum {
	return PatternEnum{kind: DiagonalKind, n: n}
}
func CirclePattern(n int) PatternEnum {
	return PatternEnum{kind: CircleKind, n: n}
}
func SquarePattern(n int) PatternEnum {
	return PatternEnum{kind: SquareKind, n: n}
}
func KnightPattern(dx, dy int) PatternEnum {
	return PatternEnum{kind: KnightKind, dx: dx, dy: dy}
}

func PawnMovePattern(forward Direction) PatternEnum {
	return PatternEnum{kind: PawnMoveKind, forward: forward}
}
func PawnTakePattern(forward Direction) PatternEnum {
	return PatternEnum{kind: PawnTakeKind, forward: forward}
}
func SuperPawnMovePattern(forward Direction) PatternEnum {
	return PatternEnum{kind: SuperPawnMoveKind, forward: forward}
}
func SuperPawnTakePattern(forward Direction) PatternEnum {
	return PatternEnum{kind: SuperPawnTakeKind, forward: forward}
}

func RandomizablePattern(inner PatternEnum) PatternEnum {
	return PatternEnum{kind: RandomizableKind, inner: []PatternEnum{inner}}
}

func CompositePattern(members ...PatternEnum) PatternEnum {
	return PatternEnum{kind: CompositeKind, inner: append([]PatternEnum(nil), members...)}
}

func PawnAbilityPattern(forward Direction) PatternEnum {
	return PatternEnum{kind: PawnAbilityKind, forward: forward}
}

func (pattern PatternEnum) Kind() PatternKind {
	return pattern.kind
}

// Inner returns a copy of the nested members of a Randomizable or
// Composite node, nil for every other kind.
func (pattern PatternEnum) Inner() []PatternEnum {
	if len(pattern.inner) == 0 {
		return nil
	}
	return append([]PatternEnum(nil), pattern.inner...)
}

func withinBound(delta Position, n int) bool {
	return n == Unbounded || delta.JumpLength() <= n
}

// Matches reports whether end is reachable from start. Only PawnAbility
// reads the grid.
func (pattern PatternEnum) Matches(start, end Position, grid Grid) bool {
	delta := end.Sub(start)

	switch pattern.kind {
	case SubdirectionalKind:
		return delta.IsSubdir() && withinBound(delta, pattern.n)
	case DirectionalKind:
		return delta.IsAxial() && withinBound(delta, pattern.n)
	case DiagonalKind:
		return delta.IsDiagonal() && withinBound(delta, pattern.n)
	case CircleKind:
		return delta.Length() <= float64(pattern.n)
	case SquareKind:
		return delta.JumpLength() <= pattern.n
	case KnightKind:
		absX, absY := abs(delta.X), abs(delta.Y)
		return (absX == pattern.dx && absY == pattern.dy) ||
			(absX == pattern.dy && absY == pattern.dx)

	case PawnMoveKind:
		return delta == pattern.forward.ToPosition()
	case PawnTakeKind:
		forward := pattern.forward.ToPosition()
		return delta == forward.Right() || delta == forward.Left()
	case SuperPawnMoveKind:
		forward := pattern.forward.ToPosition()
		double := forward.Scale(2)
		return delta == forward || delta == forward.Right() || delta == forward.Left() ||
			delta == double || delta == double.Right() || delta == double.Left()
	case SuperPawnTakeKind:
		forward := pattern.forward.ToPosition()
		return delta == forward || delta == forward.Right() || delta == forward.Left()

	case RandomizableKind:
		// The random direction per ChessTime component is not resolved yet,
		// so this behaves exactly like the wrapped pattern.
		if len(pattern.inner) == 0 {
			return false
		}
		return pattern.inner[0].Matches(start, end, grid)
	case CompositeKind:
		return anyMatches(pattern.inner, start, end, grid)

	case PawnAbilityKind:
		if end != start || grid == nil {
			return false
		}
		_, found := grid.GetSquare(end.AddDirection(pattern.forward))
		return !found
	}
	return false
}

func anyMatches(patterns []PatternEnum, start, end Position, grid Grid) bool {
	for _, pattern := range patterns {
		if pattern.Matches(start, end, grid) {
			return true
		}
	}
	return false
}

func (pattern PatternEnum) Equal(other PatternEnum) bool {
	if pattern.kind != other.kind ||
		pattern.n != other.n ||
		pattern.dx != other.dx ||
		pattern.dy != other.dy ||
		pattern.forward != other.forward ||
		len(pattern.inner) != len(other.inner) {
		return false
	}
	for i := range pattern.inner {
		if !pattern.inner[i].Equal(other.inner[i]) {
			return false
		}
	}
	return true
}

func (pattern PatternEnum) String() string {
	switch pattern.kind {
	case SubdirectionalKind, DirectionalKind, DiagonalKind, CircleKind, SquareKind:
		return fmt.Sprintf("%s(%d)", pattern.kind, pattern.n)
	case KnightKind:
		return fmt.Sprintf("%s(%d,%d)", pattern.kind, pattern.dx, pattern.dy)
	case PawnMoveKind, PawnTakeKind, SuperPawnMoveKind, SuperPawnTakeKind, PawnAbilityKind:
		return fmt.Sprintf("%s(%s)", pattern.kind, pattern.forward)
	case RandomizableKind, CompositeKind:
		return fmt.Sprintf("%s(%s)", pattern.kind, joinPatterns(pattern.inner))
	}
	return pattern.kind.String()
}

func joinPatterns(patterns []PatternEnum) string {
	parts := make([]string, len(patterns))
	for i, pattern := range patterns {
		parts[i] = pattern.String()
	}
	return strings.Join(parts, ", ")
}

// Pattern is the outer container a piece carries per role. It matches
// when any member matches; the null pattern has no members and never
// matches.
type Pattern struct {
	patterns []PatternEnum
}

func NewPattern(pattern PatternEnum) Pattern {
	return Pattern{patterns: []PatternEnum{pattern}}
}

func NewPatternPair(first, second PatternEnum) Pattern {
	return Pattern{patterns: []PatternEnum{first, second}}
}

func NewPatternMany(patterns ...PatternEnum) Pattern {
	return Pattern{patterns: append([]PatternEnum(nil), patterns...)}
}

func NullPattern() Pattern {
	return Pattern{}
}

func (pattern Pattern) HasPattern() bool {
	return len(pattern.patterns) != 0
}

func (pattern Pattern) IsNull() bool {
	return len(pattern.patterns) == 0
}

func (pattern Pattern) Members() []PatternEnum {
	if len(pattern.patterns) == 0 {
		return nil
	}
	return append([]PatternEnum(nil), pattern.patterns...)
}

func (pattern Pattern) Matches(start, end Position, grid Grid) bool {
	return anyMatches(pattern.patterns, start, end, grid)
}

func (pattern Pattern) Equal(other Pattern) bool {
	if len(pattern.patterns) != len(other.patterns) {
		return false
	}
	for i := range pattern.patterns {
		if !pattern.patterns[i].Equal(other.patterns[i]) {
			return false
		}
	}
	return true
}

func (pattern Pattern) String() string {
	if pattern.IsNull() {
		return "null"
	}
	return "[" + joinPatterns(pattern.patterns) + "]"
}

// classic

func GetKingPattern() PatternEnum {
	return SubdirectionalPattern(1)
}
func GetRookPattern() PatternEnum {
	return DirectionalPattern(Unbounded)
}
func GetBishopPattern() PatternEnum {
	return DiagonalPattern(Unbounded)
}
func GetKnightPattern() PatternEnum {
	return KnightPattern(2, 1)
}
func GetQueenPattern() PatternEnum {
	return CompositePattern(GetRookPattern(), GetBishopPattern())
}
func GetPawnMovePattern(forward Direction) PatternEnum {
	return PawnMovePattern(forward)
}
func GetPawnTakePattern(forward Direction) PatternEnum {
	return PawnTakePattern(forward)
}

// starting

func GetStructureMovePattern() PatternEnum {
	return DirectionalPattern(1)
}
func GetMagicianPattern() PatternEnum {
	return DirectionalPattern(2)
}
func GetBalistaAttackPattern() PatternEnum {
	return DirectionalPattern(6)
}
func GetLeechTakePattern() PatternEnum {
	return DiagonalPattern(1)
}
func GetSuperPawnMovePattern(forward Direction) PatternEnum {
	return SuperPawnMovePattern(forward)
}
func GetSuperPawnTakePattern(forward Direction) PatternEnum {
	return SuperPawnTakePattern(forward)
}

// shapes

func GetCirclePattern(n int) PatternEnum {
	return CirclePattern(n)
}
func GetSquarePattern(n int) PatternEnum {
	return SquarePattern(n)
}
func GetArcherAttackPattern() PatternEnum {
	return GetCirclePattern(4)
}
func GetGargoylePattern() PatternEnum {
	return GetCirclePattern(5)
}
func GetCannonAttackPattern() PatternEnum {
	return GetSquarePattern(3)
}

// other

func GetCrazyPawnPattern() PatternEnum {
	return RandomizablePattern(SubdirectionalPattern(2))
}

// composite

func GetMermaidPattern() PatternEnum {
	return CompositePattern(GetKnightPattern(), GetKingPattern())
}
func GetOniPattern() PatternEnum {
	return CompositePattern(GetKnightPattern(), GetRookPattern())
}
func GetWitchPattern() PatternEnum {
	return CompositePattern(GetRookPattern(), GetKingPattern())
}
func GetArcherMovePattern() PatternEnum {
	return CompositePattern(GetMagicianPattern(), GetKingPattern())
}

// ability

func GetPawnAbilityPattern(forward Direction) PatternEnum {
	return PawnAbilityPattern(forward)
}
