package board

type Card struct {
	ID       uint32
	ManaCost uint32
}

func NewCard(id, manaCost uint32) Card {
	return Card{ID: id, ManaCost: manaCost}
}

type PlayedCard struct {
	Card     Card
	PlayerID uint32
}

type Deck struct {
	ID    uint32
	Cards []Card
}

func NewDeck(id uint32) Deck {
	return Deck{ID: id, Cards: make([]Card, 0)}
}

// starting decks are never addressed by id
func NewDeckWithoutID() Deck {
	return NewDeck(0)
}

func (deck *Deck) AddCard(card Card) {
	deck.Cards = append(deck.Cards, card)
}

func (deck *Deck) RemoveCard(index int) (Card, bool) {
	if index < 0 || index >= len(deck.Cards) {
		return Card{}, false
	}
	card := deck.Cards[index]
	deck.Cards = append(deck.Cards[:index], deck.Cards[index+1:]...)
	return card, true
}

func (deck *Deck) HasCard(cardID uint32) bool {
	for _, card := range deck.Cards {
		if card.ID == cardID {
			return true
		}
	}
	return false
}
