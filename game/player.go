package game

import "github.com/lox/holdem-core/poker"

// PlayerStatus tracks a player's participation in the hand. Exactly one
// player is StatusActive during a betting round; zero once the round closes
// or the hand ends.
type PlayerStatus int

const (
	StatusWaitingToBeDealt PlayerStatus = iota
	StatusDealt
	StatusActive
	StatusFolded
	StatusAllIn
)

func (s PlayerStatus) String() string {
	return [...]string{"waiting", "dealt", "active", "folded", "allin"}[s]
}

// Player represents a player in a hand. The hand owns its players for the
// hand's lifetime; chip accounting beyond a single hand lives elsewhere.
type Player struct {
	Seat      int
	Name      string
	Chips     int
	HoleCards []poker.Card // exactly two once dealt
	Status    PlayerStatus
	Bet       int // committed this street
	TotalBet  int // committed this hand
}

// InHand returns true if the player still holds cards and has not folded
func (p *Player) InHand() bool {
	return p.Status == StatusDealt || p.Status == StatusActive || p.Status == StatusAllIn
}

// CanAct returns true if the player may still take betting actions
func (p *Player) CanAct() bool {
	return p.Status == StatusDealt || p.Status == StatusActive
}
