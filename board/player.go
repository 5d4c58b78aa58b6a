package board

type Player struct {
	ID           uint32
	MaxMovements uint32
	Movements    uint32
	MaxMana      uint32
	Mana         uint32

	StartingHand Deck
	StartingDeck Deck
	CurrentHand  Deck
	CurrentDeck  Deck
	CentralDeck  Deck
	DiscardPile  Deck
}

// NewPlayer takes the ids of the hand, deck, central deck and discard
// pile, in that order.
func NewPlayer(id uint32, deckIDs [4]uint32) *Player {
	return &Player{
		ID:           id,
		MaxMovements: 1,
		Movements:    1,
		MaxMana:      2,
		Mana:         2,
		StartingHand: NewDeckWithoutID(),
		StartingDeck: NewDeckWithoutID(),
		CurrentHand:  NewDeck(deckIDs[0]),
		CurrentDeck:  NewDeck(deckIDs[1]),
		CentralDeck:  NewDeck(deckIDs[2]),
		DiscardPile:  NewDeck(deckIDs[3]),
	}
}

// InitDecks moves the starting cards into play, leaving the starting
// decks holding whatever the current ones held.
func (player *Player) InitDecks() {
	player.CurrentHand.Cards, player.StartingHand.Cards = player.StartingHand.Cards, player.CurrentHand.Cards
	player.CurrentDeck.Cards, player.StartingDeck.Cards = player.StartingDeck.Cards, player.CurrentDeck.Cards
}

func (player *Player) OnTurnStart() {
	player.Movements = player.MaxMovements
	if player.Mana < player.MaxMana {
		player.Mana += 1
	}
}

func (player *Player) CanMove() bool {
	return player.Movements > 0
}

func (player *Player) CanUseMana(cost uint32) bool {
	return player.Mana >= cost
}

func (player *Player) UseMovement() bool {
	if !player.CanMove() {
		return false
	}
	player.Movements -= 1
	return true
}

func (player *Player) UseMana(cost uint32) bool {
	if !player.CanUseMana(cost) {
		return false
	}
	player.Mana -= cost
	return true
}
