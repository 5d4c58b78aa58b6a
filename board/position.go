package board

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Position struct {
	X int
	Y int
}

func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

func (pos Position) String() string {
	return fmt.Sprintf("(%d,%d)", pos.X, pos.Y)
}

// StringToPosition parses the "x,y" form printed by the CLI.
func StringToPosition(str string) (Position, error) {
	parts := strings.Split(strings.TrimSpace(str), ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, str)
	}

	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q: %w", ErrInvalidPosition, str, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q: %w", ErrInvalidPosition, str, err)
	}

	return Position{x, y}, nil
}

type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (axis Axis) Other() Axis {
	if axis == AxisX {
		return AxisY
	}
	return AxisX
}

// ToDirection returns the direction along the axis with the sign of sign.
// A zero sign gives the positive direction.
func (axis Axis) ToDirection(sign int) Direction {
	negative := sign < 0
	switch {
	case axis == AxisX && negative:
		return Left
	case axis == AxisX:
		return Right
	case negative:
		return Down
	default:
		return Up
	}
}

func (axis Axis) ToPosition() Position {
	if axis == AxisX {
		return Position{1, 0}
	}
	return Position{0, 1}
}

func (axis Axis) String() string {
	if axis == AxisX {
		return "x"
	}
	return "y"
}

// Up is +y, Right is +x.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

var AllDirections = [...]Direction{Up, Right, Down, Left}

var directionVectors = [...]Position{
	Up:    {0, 1},
	Right: {1, 0},
	Down:  {0, -1},
	Left:  {-1, 0},
}

var directionNames = [...]string{
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}

func (dir Direction) Axis() Axis {
	if dir == Up || dir == Down {
		return AxisY
	}
	return AxisX
}

func (dir Direction) Opposite() Direction {
	return (dir + 2) % 4
}

func (dir Direction) ToPosition() Position {
	return directionVectors[dir]
}

func (dir Direction) ToSubDirection() SubDirection {
	switch dir {
	case Up:
		return SubUp
	case Right:
		return SubRight
	case Down:
		return SubDown
	default:
		return SubLeft
	}
}

func (dir Direction) String() string {
	if int(dir) < len(directionNames) {
		return directionNames[dir]
	}
	return fmt.Sprintf("direction(%d)", dir)
}

func ParseDirection(str string) (Direction, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	for dir, name := range directionNames {
		if name == str {
			return Direction(dir), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, str)
}

// SubDirection is one of the 8 compass points, clockwise from Up.
type SubDirection uint8

const (
	SubUp SubDirection = iota
	SubUpRight
	SubRight
	SubDownRight
	SubDown
	SubDownLeft
	SubLeft
	SubUpLeft
)

var AllSubDirections = [...]SubDirection{
	SubUp, SubUpRight, SubRight, SubDownRight,
	SubDown, SubDownLeft, SubLeft, SubUpLeft,
}

var subDirectionVectors = [...]Position{
	SubUp:        {0, 1},
	SubUpRight:   {1, 1},
	SubRight:     {1, 0},
	SubDownRight: {1, -1},
	SubDown:      {0, -1},
	SubDownLeft:  {-1, -1},
	SubLeft:      {-1, 0},
	SubUpLeft:    {-1, 1},
}

var subDirectionNames = [...]string{
	SubUp:        "up",
	SubUpRight:   "up-right",
	SubRight:     "right",
	SubDownRight: "down-right",
	SubDown:      "down",
	SubDownLeft:  "down-left",
	SubLeft:      "left",
	SubUpLeft:    "up-left",
}

func (sub SubDirection) Opposite() SubDirection {
	return (sub + 4) % 8
}

func (sub SubDirection) ToPosition() Position {
	return subDirectionVectors[sub]
}

func (sub SubDirection) IsDiagonal() bool {
	return sub%2 == 1
}

func (sub SubDirection) String() string {
	if int(sub) < len(subDirectionNames) {
		return subDirectionNames[sub]
	}
	return fmt.Sprintf("subdirection(%d)", sub)
}

// translation

func (pos Position) Up() Position {
	return Position{pos.X, pos.Y + 1}
}
func (pos Position) Down() Position {
	return Position{pos.X, pos.Y - 1}
}
func (pos Position) Right() Position {
	return Position{pos.X + 1, pos.Y}
}
func (pos Position) Left() Position {
	return Position{pos.X - 1, pos.Y}
}

func (pos Position) Add(other Position) Position {
	return Position{pos.X + other.X, pos.Y + other.Y}
}
func (pos Position) Sub(other Position) Position {
	return Position{pos.X - other.X, pos.Y - other.Y}
}

// Diff is the delta from other to pos, i.e. pos - other.
func (pos Position) Diff(other Position) Position {
	return pos.Sub(other)
}

func (pos Position) Scale(mult int) Position {
	return Position{pos.X * mult, pos.Y * mult}
}

func (pos Position) AddDirection(dir Direction) Position {
	return pos.Add(dir.ToPosition())
}
func (pos Position) MinusDirection(dir Direction) Position {
	return pos.AddDirection(dir.Opposite())
}

func (pos Position) AddSubDirection(sub SubDirection) Position {
	return pos.Add(sub.ToPosition())
}
func (pos Position) MinusSubDirection(sub SubDirection) Position {
	return pos.AddSubDirection(sub.Opposite())
}

// metrics, all on pos read as a delta

func (pos Position) LengthSqr() int {
	return pos.X*pos.X + pos.Y*pos.Y
}

func (pos Position) Length() float64 {
	return math.Sqrt(float64(pos.LengthSqr()))
}

// JumpLength is the Chebyshev length: the number of king steps.
func (pos Position) JumpLength() int {
	return max(abs(pos.X), abs(pos.Y))
}

func (pos Position) DistanceSqr(other Position) int {
	return pos.Sub(other).LengthSqr()
}
func (pos Position) Distance(other Position) float64 {
	return pos.Sub(other).Length()
}
func (pos Position) JumpDistance(other Position) int {
	return pos.Sub(other).JumpLength()
}

func (pos Position) IsAxial() bool {
	return pos.X == 0 || pos.Y == 0
}
func (pos Position) IsDiagonal() bool {
	return abs(pos.X) == abs(pos.Y)
}
func (pos Position) IsSubdir() bool {
	return pos.IsAxial() || pos.IsDiagonal()
}

func (pos Position) IsAxialRelative(other Position) bool {
	return pos.Sub(other).IsAxial()
}
func (pos Position) IsDiagonalRelative(other Position) bool {
	return pos.Sub(other).IsDiagonal()
}
func (pos Position) IsSubdirRelative(other Position) bool {
	return pos.Sub(other).IsSubdir()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
