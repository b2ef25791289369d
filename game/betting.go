package game

// BettingRound encapsulates the state of one street's betting: the bet to
// call, who raised last, and who has acted since the last raise.
type BettingRound struct {
	CurrentBet int    // bet-to-call: street total each player must match
	LastRaiser int    // seat of the last bet/raise, -1 if none
	Acted      []bool // acted since the last raise, indexed by seat

	// Big-blind preflop option. BBSeat is -1 when no blinds are in play.
	BBSeat  int
	BBActed bool
}

func newBettingRound(numPlayers int) *BettingRound {
	return &BettingRound{
		LastRaiser: -1,
		Acted:      make([]bool, numPlayers),
		BBSeat:     -1,
	}
}

// reset prepares the round for a new street. The big-blind option only
// matters preflop, so BBSeat is cleared.
func (br *BettingRound) reset() {
	br.CurrentBet = 0
	br.LastRaiser = -1
	for i := range br.Acted {
		br.Acted[i] = false
	}
	br.BBSeat = -1
}

// reopen marks everyone as needing to act again after a raise, except the
// raiser.
func (br *BettingRound) reopen(raiser int) {
	for i := range br.Acted {
		br.Acted[i] = false
	}
	br.Acted[raiser] = true
	br.LastRaiser = raiser
}

// complete reports whether betting is finished for this street: every
// non-folded player has matched the current bet or is all-in, everyone due
// to act has acted since the last raise, and the big blind has had its
// preflop option.
func (br *BettingRound) complete(players []*Player) bool {
	actable := 0
	for _, p := range players {
		if p.CanAct() {
			actable++
		}
	}
	if actable == 0 {
		return true
	}

	for _, p := range players {
		if !p.CanAct() {
			continue
		}
		if p.Bet != br.CurrentBet {
			return false
		}
		if !br.Acted[p.Seat] {
			return false
		}
	}

	// Unraised preflop pot: the big blind still gets the option to raise.
	if br.BBSeat >= 0 && br.LastRaiser == -1 && !br.BBActed {
		bb := players[br.BBSeat]
		if bb.CanAct() {
			return false
		}
	}

	return true
}
