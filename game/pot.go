package game

import "sort"

// Pot represents a main or side pot
type Pot struct {
	Amount       int
	Eligible     []int // seats eligible to win this pot
	MaxPerPlayer int   // contribution ceiling that defined this pot (0 = uncapped)
}

// PotManager collects street bets and layers side pots at each distinct
// all-in level. Folded players' chips stay in the pots they funded.
type PotManager struct {
	pots []Pot
}

// NewPotManager creates a pot manager with a single empty main pot
func NewPotManager(players []*Player) *PotManager {
	return &PotManager{
		pots: []Pot{{Eligible: eligibleSeats(players)}},
	}
}

func eligibleSeats(players []*Player) []int {
	seats := make([]int, 0, len(players))
	for _, p := range players {
		if p.Status != StatusFolded {
			seats = append(seats, p.Seat)
		}
	}
	return seats
}

// Total returns the chips across all pots
func (pm *PotManager) Total() int {
	total := 0
	for _, pot := range pm.pots {
		total += pot.Amount
	}
	return total
}

// CollectBets sweeps each player's street bet into the main pot
func (pm *PotManager) CollectBets(players []*Player) {
	for _, p := range players {
		if p.Bet > 0 {
			pm.pots[0].Amount += p.Bet
			p.Bet = 0
		}
	}
}

// CalculateSidePots rebuilds the pot layering from per-player hand totals.
// One capped pot per distinct all-in level, each eligible only to players
// who contributed past the previous level, plus an uncapped pot for the
// rest.
func (pm *PotManager) CalculateSidePots(players []*Player) {
	levels := make(map[int]bool)
	for _, p := range players {
		if p.Status == StatusAllIn && p.TotalBet > 0 {
			levels[p.TotalBet] = true
		}
	}
	if len(levels) == 0 {
		return
	}

	caps := make([]int, 0, len(levels))
	for level := range levels {
		caps = append(caps, level)
	}
	sort.Ints(caps)

	pm.pots = pm.pots[:0]

	prev := 0
	for _, level := range caps {
		pot := Pot{MaxPerPlayer: level}
		for _, p := range players {
			contribution := min(p.TotalBet, level) - prev
			if contribution > 0 {
				pot.Amount += contribution
			}
			if p.Status != StatusFolded && p.TotalBet > prev {
				pot.Eligible = append(pot.Eligible, p.Seat)
			}
		}
		if pot.Amount > 0 && len(pot.Eligible) > 0 {
			pm.pots = append(pm.pots, pot)
		}
		prev = level
	}

	var rest Pot
	for _, p := range players {
		if p.TotalBet > prev {
			rest.Amount += p.TotalBet - prev
			if p.Status != StatusFolded {
				rest.Eligible = append(rest.Eligible, p.Seat)
			}
		}
	}
	if rest.Amount > 0 && len(rest.Eligible) > 0 {
		pm.pots = append(pm.pots, rest)
	}
}

// Pots returns the collected pots, main pot first
func (pm *PotManager) Pots() []Pot {
	return pm.pots
}

// PotsWithUncollected returns the pots with this street's not-yet-swept
// bets added to the pot currently being contested.
func (pm *PotManager) PotsWithUncollected(players []*Player) []Pot {
	uncollected := 0
	for _, p := range players {
		uncollected += p.Bet
	}
	if uncollected == 0 {
		return pm.pots
	}

	result := make([]Pot, len(pm.pots))
	copy(result, pm.pots)
	if len(result) > 0 {
		result[len(result)-1].Amount += uncollected
	}
	return result
}
