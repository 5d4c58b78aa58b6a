package board

import (
	"fmt"
	"strings"
)

// Placement is one "Type@x,y" entry of a placement list.
type Placement struct {
	Type PieceType
	Pos  Position
}

func (placement Placement) String() string {
	return fmt.Sprintf("%s@%d,%d", placement.Type, placement.Pos.X, placement.Pos.Y)
}

// ParsePlacements reads a ';' separated list such as "Pawn@3,1;Rook@4,2".
// Empty entries are skipped, so a trailing ';' is fine.
func ParsePlacements(str string) ([]Placement, error) {
	placements := make([]Placement, 0)
	for index, entry := range strings.Split(str, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		typeStr, posStr, found := strings.Cut(entry, "@")
		if !found {
			return nil, fmt.Errorf("%w: entry %d %q has no '@'", ErrInvalidPlacement, index, entry)
		}

		pieceType, err := ParsePieceType(typeStr)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidPlacement, index, err)
		}
		pos, err := StringToPosition(posStr)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidPlacement, index, err)
		}

		placements = append(placements, Placement{Type: pieceType, Pos: pos})
	}
	return placements, nil
}

func PlacementsString(placements []Placement) string {
	parts := make([]string, len(placements))
	for i, placement := range placements {
		parts[i] = placement.String()
	}
	return strings.Join(parts, ";")
}
