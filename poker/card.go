// Package poker provides the card primitives and hand evaluation used by the
// hold'em hand engine: suits, ranks, decks and a 5-7 card evaluator.
package poker

import "fmt"

// Suit represents a card suit. Suits carry no ranking weight in hold'em.
type Suit int

const (
	Diamond Suit = iota
	Heart
	Club
	Spade
)

// String returns the suit icon
func (s Suit) String() string {
	switch s {
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Club:
		return "♣"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

// Rank represents a card rank. Aces are high (14); they only play low
// inside straight detection (the wheel).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character rank representation
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + int(r)))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents an immutable playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the card representation (e.g., "A♥")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// ParseCard parses compact card notation like "Ah", "Td" or "2s".
// Rank characters are 2-9, T, J, Q, K, A; suits are d, h, c, s.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: want rank and suit", s)
	}

	var rank Rank
	switch s[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(s[0] - '0')
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid card %q: unknown rank %q", s, s[0])
	}

	var suit Suit
	switch s[1] {
	case 'd', 'D':
		suit = Diamond
	case 'h', 'H':
		suit = Heart
	case 'c', 'C':
		suit = Club
	case 's', 'S':
		suit = Spade
	default:
		return Card{}, fmt.Errorf("invalid card %q: unknown suit %q", s, s[1])
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// MustParseCard parses compact card notation and panics on failure.
// Intended for tests and stacked-deck construction with literal cards.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}
