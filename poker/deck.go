package poker

import (
	"errors"
	rand "math/rand/v2"
)

// ErrInsufficientCards is returned when a draw asks for more cards than the
// deck has left.
var ErrInsufficientCards = errors.New("insufficient cards in deck")

// Deck is an ordered sequence of cards consumed strictly front-to-back.
// It is never replenished mid-hand.
type Deck struct {
	cards []Card
	next  int
}

// NewDeck creates a deck holding each of the 52 (suit, rank) pairs exactly
// once, shuffled with Fisher-Yates. Shuffling is deterministic for a given
// rng; use randutil.New(seed) for reproducible decks.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Diamond; suit <= Spade; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return d
}

// NewStackedDeck creates a deck with a fixed ordering. Used by tests and
// tools that need known cards in known positions. The deck may hold fewer
// than 52 cards; draws past the end fail as usual.
func NewStackedDeck(cards ...Card) *Deck {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked}
}

// Draw removes and returns the next n cards.
// Returns ErrInsufficientCards without consuming anything when fewer than n
// cards remain.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, ErrInsufficientCards
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// Remaining returns the number of cards left to draw
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
