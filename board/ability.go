package board

type AbilityData struct {
	ManaCost     uint32
	Cooldown     uint32
	MovementCost uint32
	CastTime     uint32
	Pattern      Pattern
}

func NewAbilityData(manaCost, cooldown, movementCost, castTime uint32, pattern Pattern) AbilityData {
	return AbilityData{
		ManaCost:     manaCost,
		Cooldown:     cooldown,
		MovementCost: movementCost,
		CastTime:     castTime,
		Pattern:      pattern,
	}
}

func (data AbilityData) Equal(other AbilityData) bool {
	return data.ManaCost == other.ManaCost &&
		data.Cooldown == other.Cooldown &&
		data.MovementCost == other.MovementCost &&
		data.CastTime == other.CastTime &&
		data.Pattern.Equal(other.Pattern)
}

type AbilityType uint8

const (
	PawnAbility AbilityType = iota
	BishopAbility
	KnightAbility
	RookAbility
	QueenAbility
	KingAbility
)

type Ability struct {
	ID   uint32
	Type AbilityType
	Data AbilityData
}

func NewAbility(id uint32, abilityType AbilityType, data AbilityData) Ability {
	return Ability{ID: id, Type: abilityType, Data: data}
}
