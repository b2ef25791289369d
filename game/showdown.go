package game

import (
	"time"

	"github.com/lox/holdem-core/poker"
)

// PotShare records chips awarded to one player at payout
type PotShare struct {
	Seat   int
	Name   string
	Amount int
}

/// ShowdownHand records a revealed hand: the player's best five cards and
// their rank.
type ShowdownHand struct {
	Seat int
	Name string
	Rank poker.HandRank
}

// HandResult is the outcome of a completed hand
type HandResult struct {
	Winners   []PotShare
	Revealed  []ShowdownHand // empty when the hand was won by folds
	Pot       int
	WonByFold bool
}

// Showdown settles the hand and credits winnings back to player stacks.
//
// At HandEndedByFold the sole surviving player wins the whole pot without
// revealing cards. Otherwise the river betting round must have closed;
// every non-folded player's hand is evaluated and each pot goes to the
// best rank among its eligible seats. Exact ties split a pot equally, odd
// chips going to the tied winners closest clockwise of the button.
func (h *Hand) Showdown() (*HandResult, error) {
	if h.result != nil {
		return nil, illegalMovef("hand already settled")
	}
	if !h.dealt {
		return nil, illegalMovef("hole cards not dealt")
	}

	switch {
	case h.state == HandEndedByFold:
		return h.settleFoldOut()
	case h.state == RoundClosed && h.Street == River:
		// Close out the river ourselves rather than insisting the caller
		// advance into an empty street.
		h.Pots.CollectBets(h.Players)
		h.Pots.CalculateSidePots(h.Players)
		h.Betting.reset()
		h.Street = Showdown
	case h.state == RoundClosed && h.Street == Showdown:
	default:
		return nil, illegalMovef("hand is not ready for showdown on the %s", h.Street)
	}

	return h.settleShowdown()
}

func (h *Hand) settleFoldOut() (*HandResult, error) {
	h.Pots.CollectBets(h.Players)

	var winner *Player
	for _, p := range h.Players {
		if p.InHand() {
			winner = p
			break
		}
	}

	total := h.Pots.Total()
	winner.Chips += total

	result := &HandResult{
		Winners:   []PotShare{{Seat: winner.Seat, Name: winner.Name, Amount: total}},
		Pot:       total,
		WonByFold: true,
	}
	h.finish(result)
	return result, nil
}

func (h *Hand) settleShowdown() (*HandResult, error) {
	ranks := make(map[int]poker.HandRank)
	var revealed []ShowdownHand
	for _, p := range h.Players {
		if !p.InHand() {
			continue
		}
		rank, err := poker.Evaluate(append(append([]poker.Card(nil), p.HoleCards...), h.Board...)...)
		if err != nil {
			return nil, err
		}
		ranks[p.Seat] = rank
		revealed = append(revealed, ShowdownHand{Seat: p.Seat, Name: p.Name, Rank: rank})
	}

	won := make(map[int]int)
	for _, pot := range h.Pots.Pots() {
		h.awardPot(pot, ranks, won)
	}

	total := h.Pots.Total()
	var winners []PotShare
	for _, seat := range h.clockwiseSeats() {
		amount, ok := won[seat]
		if !ok {
			continue
		}
		h.Players[seat].Chips += amount
		winners = append(winners, PotShare{Seat: seat, Name: h.Players[seat].Name, Amount: amount})
	}

	result := &HandResult{
		Winners:  winners,
		Revealed: revealed,
		Pot:      total,
	}
	h.finish(result)
	return result, nil
}

// awardPot finds the best rank among the pot's eligible seats and splits
// the pot between the holders. Single-eligible pots (uncalled bets) return
// to their owner without evaluation.
func (h *Hand) awardPot(pot Pot, ranks map[int]poker.HandRank, won map[int]int) {
	if len(pot.Eligible) == 0 || pot.Amount == 0 {
		return
	}
	if len(pot.Eligible) == 1 {
		won[pot.Eligible[0]] += pot.Amount
		return
	}

	eligible := make(map[int]bool, len(pot.Eligible))
	for _, seat := range pot.Eligible {
		eligible[seat] = true
	}

	// Walk seats clockwise from the button so the best slice is already in
	// odd-chip priority order.
	var best []int
	for _, seat := range h.clockwiseSeats() {
		if !eligible[seat] {
			continue
		}
		rank, ok := ranks[seat]
		if !ok {
			continue
		}
		if len(best) == 0 {
			best = []int{seat}
			continue
		}
		switch rank.Compare(ranks[best[0]]) {
		case 1:
			best = []int{seat}
		case 0:
			best = append(best, seat)
		}
	}

	share := pot.Amount / len(best)
	remainder := pot.Amount % len(best)
	for _, seat := range best {
		won[seat] += share
		if remainder > 0 {
			won[seat]++
			remainder--
		}
	}
}

// clockwiseSeats returns all seats starting one past the button
func (h *Hand) clockwiseSeats() []int {
	n := len(h.Players)
	seats := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		seats = append(seats, (h.Button+i)%n)
	}
	return seats
}

func (h *Hand) finish(result *HandResult) {
	h.clearActive()
	h.result = result
	h.emit(HandEndEvent{Result: result, timestamp: time.Now()})
	if h.logger != nil {
		h.logger.Debug("hand settled", "pot", result.Pot, "winners", len(result.Winners), "by_fold", result.WonByFold)
	}
}

// Result returns the settled outcome, or nil while the hand is still live
func (h *Hand) Result() *HandResult {
	return h.result
}
