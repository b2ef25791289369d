package game

import (
	"time"

	"github.com/lox/holdem-core/poker"
)

// EventType identifies a game event
type EventType string

const (
	EventTypeHandStart    EventType = "hand_start"
	EventTypeHandEnd      EventType = "hand_end"
	EventTypeStreetChange EventType = "street_change"
	EventTypePlayerAction EventType = "player_action"
)

// Event represents something that happened during a hand. Events accumulate
// on the hand and are forwarded to the sink configured with WithEventSink.
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// HandStartEvent is emitted when hole cards are dealt
type HandStartEvent struct {
	Players    []string
	SmallBlind int
	BigBlind   int
	timestamp  time.Time
}

func (e HandStartEvent) EventType() EventType { return EventTypeHandStart }
func (e HandStartEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is emitted after a legal player action is applied
type PlayerActionEvent struct {
	Seat      int
	Name      string
	Move      Move
	Street    Street
	PotAfter  int
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// StreetChangeEvent is emitted when community cards are dealt and a new
// betting round opens
type StreetChangeEvent struct {
	Street    Street
	Board     []poker.Card
	timestamp time.Time
}

func (e StreetChangeEvent) EventType() EventType { return EventTypeStreetChange }
func (e StreetChangeEvent) Timestamp() time.Time { return e.timestamp }

// HandEndEvent is emitted once the pot has been paid out
type HandEndEvent struct {
	Result    *HandResult
	timestamp time.Time
}

func (e HandEndEvent) EventType() EventType { return EventTypeHandEnd }
func (e HandEndEvent) Timestamp() time.Time { return e.timestamp }

func (h *Hand) emit(e Event) {
	h.events = append(h.events, e)
	if h.sink != nil {
		h.sink(e)
	}
}

// Events returns every event emitted so far, in order
func (h *Hand) Events() []Event {
	return h.events
}
