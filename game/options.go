package game

import (
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-core/poker"
)

// Seat describes one player joining a hand: insertion order is seating
// order is turn order.
type Seat struct {
	Name  string
	Chips int
}

// HandOption configures a Hand during creation
type HandOption func(*handConfig)

type handConfig struct {
	deck       *poker.Deck
	button     int
	smallBlind int
	bigBlind   int
	logger     *log.Logger
	sink       func(Event)
}

// WithDeck sets a specific pre-ordered deck, overriding the RNG shuffle.
// Used for deterministic tests and replays.
func WithDeck(deck *poker.Deck) HandOption {
	return func(c *handConfig) {
		c.deck = deck
	}
}

// WithBlinds posts blinds when the hole cards are dealt. Heads-up the
// button posts the small blind; otherwise button+1 and button+2 post.
// Blinds are policy, not a rule: the default is no blinds.
func WithBlinds(smallBlind, bigBlind int) HandOption {
	return func(c *handConfig) {
		c.smallBlind = smallBlind
		c.bigBlind = bigBlind
	}
}

// WithButton sets the dealer button seat. Defaults to seat 0.
func WithButton(seat int) HandOption {
	return func(c *handConfig) {
		c.button = seat
	}
}

// WithLogger logs every applied action and street change at debug level
func WithLogger(logger *log.Logger) HandOption {
	return func(c *handConfig) {
		c.logger = logger
	}
}

// WithEventSink forwards each emitted event to fn as it happens
func WithEventSink(fn func(Event)) HandOption {
	return func(c *handConfig) {
		c.sink = fn
	}
}
