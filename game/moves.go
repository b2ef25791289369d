package game

import "fmt"

// Street represents one stage of community-card reveal and its betting round.
type Street int

const (
	PreFlop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// Action represents a player action kind
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise", "allin"}[a]
}

// Move is a single player decision. Amount carries the incremental chips
// committed for Bet and Raise and is ignored for the other actions.
type Move struct {
	Action Action
	Amount int
}

func (m Move) String() string {
	switch m.Action {
	case Bet, Raise:
		return fmt.Sprintf("%s %d", m.Action, m.Amount)
	default:
		return m.Action.String()
	}
}

// RoundState is the betting round outcome visible to the orchestrating
// driver.
type RoundState int

const (
	// AwaitingAction means the active player must act before anything else
	// can happen.
	AwaitingAction RoundState = iota

	// RoundClosed means every non-folded player has matched the bet or is
	// all-in; the street can advance.
	RoundClosed

	// HandEndedByFold means all but one player folded; the survivor wins the
	// pot without a showdown.
	HandEndedByFold
)

func (rs RoundState) String() string {
	return [...]string{"awaiting-action", "round-closed", "ended-by-fold"}[rs]
}
