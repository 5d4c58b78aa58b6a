package board

// PieceTemplate is the static data every piece of one type starts with.
type PieceTemplate struct {
	Properties []Property
	Tags       []Tag
	Move       Pattern
	Take       Pattern
	Attack     Pattern
	Ability    AbilityData
}

func TemplateFor(pieceType PieceType) (PieceTemplate, bool) {
	if int(pieceType) >= pieceTypeCount {
		return PieceTemplate{}, false
	}
	return catalog[pieceType], true
}

func tags(tags ...Tag) []Tag {
	return tags
}

func one(pattern PatternEnum) Pattern {
	return NewPattern(pattern)
}

func noAbility() AbilityData {
	return NewAbilityData(0, 0, 0, 0, NullPattern())
}

func ability(manaCost, cooldown, movementCost, castTime uint32) AbilityData {
	return NewAbilityData(manaCost, cooldown, movementCost, castTime, NullPattern())
}

var catalog = [pieceTypeCount]PieceTemplate{
	// classic

	Pawn: {
		Tags:    tags(Biologic, Transportable),
		Move:    one(GetPawnMovePattern(Up)),
		Take:    one(GetPawnTakePattern(Up)),
		Attack:  NullPattern(),
		Ability: NewAbilityData(0, 0, 1, 0, one(GetPawnAbilityPattern(Up))),
	},
	Bishop: {
		Tags:    tags(Biologic, Transportable),
		Move:    one(GetBishopPattern()),
		Take:    one(GetBishopPattern()),
		Attack:  NullPattern(),
		Ability: ability(1, 0, 0, 2),
	},
	Knight: {
		Tags:    tags(Biologic, Transportable),
		Move:    one(GetKnightPattern()),
		Take:    one(GetKnightPattern()),
		Attack:  NullPattern(),
		Ability: ability(1, 1, 1, 10),
	},
	Rook: {
		Tags:    tags(Structure),
		Move:    one(GetRookPattern()),
		Take:    one(GetRookPattern()),
		Attack:  NullPattern(),
		Ability: ability(2, 0, 0, 10),
	},
	Queen: {
		Tags:    tags(Biologic, Heroic),
		Move:    NewPatternPair(GetRookPattern(), GetBishopPattern()),
		Take:    NewPatternPair(GetRookPattern(), GetBishopPattern()),
		Attack:  NullPattern(),
		Ability: ability(1, 0, 0, 2),
	},
	King: {
		Tags:    tags(Biologic, Immune, Heroic),
		Move:    one(GetKingPattern()),
		Take:    one(GetKingPattern()),
		Attack:  NullPattern(),
		Ability: ability(0, 0, 0, 1),
	},

	// starting

	Archer: {
		Tags:    tags(Biologic, Transportable),
		Move:    NewPatternPair(GetMagicianPattern(), GetKingPattern()),
		Take:    NullPattern(),
		Attack:  one(GetArcherAttackPattern()),
		Ability: noAbility(),
	},
	Balista: {
		Tags:    tags(Structure),
		Move:    one(GetStructureMovePattern()),
		Take:    NullPattern(),
		Attack:  one(GetBalistaAttackPattern()),
		Ability: noAbility(),
	},
	Builder: {
		Tags:    tags(Biologic, Transportable),
		Move:    one(GetMagicianPattern()),
		Take:    one(GetLeechTakePattern()),
		Attack:  NullPattern(),
		Ability: ability(1, 0, 0, 10),
	},
	Cannon: {
		Tags:    tags(Structure),
		Move:    one(GetStructureMovePattern()),
		Take:    NullPattern(),
		Attack:  one(GetCannonAttackPattern()),
		Ability: noAbility(),
	},
	Catapult: {
		Tags:    tags(Structure),
		Move:    one(GetStructureMovePattern()),
		Take:    NullPattern(),
		Attack:  NullPattern(),
		Ability: ability(1, 0, 0, 4),
	},
	CrazyPawn: {
		Tags:    tags(Biologic, Transportable),
		Move:    one(GetCrazyPawnPattern()),
		Take:    one(GetCrazyPawnPattern()),
		Attack:  one(GetCrazyPawnPattern()),
		Ability: ability(1, 0, 0, 0),
	},
	Magician: {
		Tags:    tags(Biologic, Heroic, Immune, Transportable),
		Move:    one(GetMagicianPattern()),
		Take:    NullPattern(),
		Attack:  NullPattern(),
		Ability: ability(1, 2, 1, 6),
	},
	Paladin: {
		Tags:    tags(Heroic, Immune),
		Move:    NewPatternPair(GetRookPattern(), GetBishopPattern()),
		Take:    NewPatternPair(GetRookPattern(), GetBishopPattern()),
		Attack:  NullPattern(),
		Ability: ability(1, 2, 1, 4),
	},
	Ram: {
		Tags:    tags(Structure),
		Move:    one(GetStructureMovePattern()),
		Take:    NullPattern(),
		Attack:  NullPattern(),
		Ability: ability(1, 0, 0, 4),
	},
	ShieldBearer: {
		Tags:    tags(Biologic, Transportable),
		Move:    one(GetPawnMovePattern(Up)),
		Take:    one(GetPawnTakePattern(Up)),
		Attack:  NullPattern(),
		Ability: ability(1, 0, 0, 15),
	},
	Ship: {
		Tags:    tags(Structure),
		Move:    one(GetMagicianPattern()),
		Take:    one(GetKingPattern()),
		Attack:  NullPattern(),
		Ability: ability(1, 0, 0, 12),
	},
	SuperPawn: {
		Tags:    tags(Biologic, Transportable),
		Move:    one(GetSuperPawnMovePattern(Up)),
		Take:    one(GetSuperPawnTakePattern(Up)),
		Attack:  NullPattern(),
		Ability: ability(1, 0, 0, 10),
	},
	TeslaTower: {
		Tags:    tags(Structure),
		Move:    one(GetMagicianPattern()),
		Take:    one(GetStructureMovePattern()),
		Attack:  NullPattern(),
		Ability: ability(2, 0, 0, 10),
	},
	Wall: {
		Tags:    tags(Structure, Impenetrable),
		Move:    NullPattern(),
		Take:    NullPattern(),
		Attack:  NullPattern(),
		Ability: noAbility(),
	},
	Warlock: {
		Tags:    tags(Transportable, Demonic, Immune),
		Move:    one(GetMagicianPattern()),
		Take:    NullPattern(),
		Attack:  NullPattern(),
		Ability: ability(1, 3, 1, 5),
	},

	// portal

	Portal: {
		Tags:    tags(Structure, Impenetrable, Immune, Heroic),
		Move:    NullPattern(),
		Take:    NullPattern(),
		Attack:  NullPattern(),
		Ability: ability(1, 0, 0, 0),
	},
	Basilisk: {
		Tags:    tags(Demonic, Immune),
		Move:    one(GetBishopPattern()),
		Take:    one(GetBishopPattern()),
		Attack:  NullPattern(),
		Ability: ability(1, 0, 0, 20),
	},
	Dragon: {
		Tags:    tags(Immune, Heroic, Biologic, Demonic),
		Move:    NewPatternPair(GetKnightPattern(), GetKingPattern()),
		Take:    NewPatternPair(GetKnightPattern(), GetKingPattern()),
		Attack:  NullPattern(),
		Ability: ability(2, 1, 0, 2),
	},
	Gargoyle: {
		Tags:    tags(Demonic),
		Move:    one(GetGargoylePattern()),
		Take:    one(GetGargoylePattern()),
		Attack:  NullPattern(),
		Ability: noAbility(),
	},
	Golem: {
		Properties: []Property{{Kind: Life, Value: 4}},
		Tags:       tags(Heroic, Demonic, Immune, Structure, Impenetrable),
		Move:       NewPatternPair(GetMagicianPattern(), GetKingPattern()),
		Take:       NewPatternPair(GetMagicianPattern(), GetKingPattern()),
		Attack:     NullPattern(),
		Ability:    noAbility(),
	},
	Imp: {
		Tags:    tags(Demonic, Biologic),
		Move:    one(GetKnightPattern()),
		Take:    NullPattern(),
		Attack:  NullPattern(),
		Ability: ability(1, 2, 0, 5),
	},
	Mandragora: {
		Tags:    tags(Demonic, Biologic),
		Move:    one(GetKingPattern()),
		Take:    NullPattern(),
		Attack:  NullPattern(),
		Ability: ability(1, 0, 0, 10),
	},
	Mermaid: {
		Tags:    tags(Demonic, Biologic),
		Move:    NewPatternPair(GetKnightPattern(), GetKingPattern()),
		Take:    NewPatternPair(GetKnightPattern(), GetKingPattern()),
		Attack:  NullPattern(),
		Ability: ability(1, 2, 0, 5),
	},
	Necromancer: {
		Properties: []Property{{Kind: PieceList, Pieces: []Piece{}}},
		Tags:       tags(Demonic),
		Move:       one(GetMagicianPattern()),
		Take:       NullPattern(),
		Attack:     NullPattern(),
		Ability:    ability(2, 1, 0, 4),
	},
	Ogre: {
		Properties: []Property{{Kind: Life, Value: 2}},
		Tags:       tags(Demonic, Impenetrable),
		Move:       NewPatternPair(GetMagicianPattern(), GetKingPattern()),
		Take:       NewPatternPair(GetMagicianPattern(), GetKingPattern()),
		Attack:     NullPattern(),
		Ability:    ability(1, 0, 0, 4),
	},
	Oni: {
		Tags:    tags(Demonic, Biologic, Transportable),
		Move:    NewPatternPair(GetKnightPattern(), GetRookPattern()),
		Take:    NewPatternPair(GetKnightPattern(), GetRookPattern()),
		Attack:  NullPattern(),
		Ability: ability(1, 1, 0, 7),
	},
	Spider: {
		Tags:    tags(Demonic, Transportable, Biologic),
		Move:    one(GetKnightPattern()),
		Take:    one(GetKnightPattern()),
		Attack:  NullPattern(),
		Ability: ability(1, 1, 0, 12),
	},
	SpiderEgg: {
		Tags:    tags(Demonic, Biologic),
		Move:    NullPattern(),
		Take:    NullPattern(),
		Attack:  NullPattern(),
		Ability: noAbility(),
	},
	Succubus: {
		Tags:    tags(Biologic, Demonic, Transportable),
		Move:    one(GetBishopPattern()),
		Take:    one(GetBishopPattern()),
		Attack:  NullPattern(),
		Ability: ability(1, 1, 0, 10),
	},
	Witch: {
		Tags:    tags(Demonic),
		Move:    NewPatternPair(GetRookPattern(), GetKingPattern()),
		Take:    NewPatternPair(GetRookPattern(), GetKingPattern()),
		Attack:  NullPattern(),
		Ability: ability(1, 2, 0, 8),
	},

	// other

	Swamp: {
		Tags:    tags(Structure),
		Move:    NullPattern(),
		Take:    NullPattern(),
		Attack:  NullPattern(),
		Ability: ability(1, 0, 0, 5),
	},
	Leech: {
		Tags:    tags(Biologic),
		Move:    one(GetKingPattern()),
		Take:    one(GetLeechTakePattern()),
		Attack:  NullPattern(),
		Ability: ability(1, 2, 0, 8),
	},
}
