package board

type EventFunctionKind uint8

const (
	SummonEvent EventFunctionKind = iota
	AddManaEvent
	AddMovementEvent
	ApplyEffectEvent
)

// EventFunction is what an event does when its time comes. Summon uses
// PieceType, ApplyEffect uses Position.
type EventFunction struct {
	Kind      EventFunctionKind
	PieceType PieceType
	Position  Position
}

type Event struct {
	ID       uint32
	PlayerID uint32
	When     ChessTime
	Function EventFunction
}

func NewEvent(id, playerID uint32, when ChessTime, function EventFunction) Event {
	return Event{ID: id, PlayerID: playerID, When: when, Function: function}
}
