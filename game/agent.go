package game

import (
	rand "math/rand/v2"

	"github.com/lox/holdem-core/poker"
)

// Decision is an agent's chosen move with an optional human-readable
// explanation.
type Decision struct {
	Move      Move
	Reasoning string
}

// ValidAction describes one action the active player may legally take,
// with the chip bounds for Bet/Raise (incremental amounts).
type ValidAction struct {
	Action    Action
	MinAmount int
	MaxAmount int
}

// PlayerView is a read-only snapshot of one seated player. Hole cards are
// never included; only the acting player's own cards appear on HandView.
type PlayerView struct {
	Seat     int
	Name     string
	Chips    int
	Bet      int
	TotalBet int
	Status   PlayerStatus
}

// HandView is the read-only state an agent decides from
type HandView struct {
	Street     Street
	Board      []poker.Card
	Pot        int
	CurrentBet int
	ActiveSeat int
	HoleCards  []poker.Card // the acting player's own cards
	Players    []PlayerView
}

// Agent is any entity, human or scripted, that decides moves for a seat.
// Agents receive immutable state and return decisions; they never mutate
// the hand.
type Agent interface {
	MakeDecision(view HandView, valid []ValidAction) Decision
}

// ValidActions returns the legal actions for the active player, or nil
// when nobody is due to act.
func (h *Hand) ValidActions() []ValidAction {
	if !h.dealt || h.state != AwaitingAction {
		return nil
	}

	p := h.Players[h.ActiveSeat]
	toCall := h.Betting.CurrentBet - p.Bet

	actions := []ValidAction{{Action: Fold}}
	if toCall == 0 {
		actions = append(actions, ValidAction{Action: Check})
		if p.Chips > 0 {
			actions = append(actions, ValidAction{Action: Bet, MinAmount: 1, MaxAmount: p.Chips})
		}
	} else {
		actions = append(actions, ValidAction{Action: Call, MinAmount: min(toCall, p.Chips), MaxAmount: min(toCall, p.Chips)})
		if p.Chips > toCall {
			actions = append(actions, ValidAction{Action: Raise, MinAmount: toCall + 1, MaxAmount: p.Chips})
		}
	}
	if p.Chips > 0 {
		actions = append(actions, ValidAction{Action: AllIn, MinAmount: p.Chips, MaxAmount: p.Chips})
	}
	return actions
}

// View builds the decision snapshot for the active player. Returns a zero
// view when nobody is due to act.
func (h *Hand) View() HandView {
	view := HandView{
		Street:     h.Street,
		Board:      append([]poker.Card(nil), h.Board...),
		Pot:        h.Pot(),
		CurrentBet: h.Betting.CurrentBet,
		ActiveSeat: h.ActiveSeat,
		Players:    make([]PlayerView, len(h.Players)),
	}
	for i, p := range h.Players {
		view.Players[i] = PlayerView{
			Seat:     p.Seat,
			Name:     p.Name,
			Chips:    p.Chips,
			Bet:      p.Bet,
			TotalBet: p.TotalBet,
			Status:   p.Status,
		}
	}
	if h.ActiveSeat >= 0 {
		view.HoleCards = append([]poker.Card(nil), h.Players[h.ActiveSeat].HoleCards...)
	}
	return view
}

// CallingAgent checks when free and calls any bet. The classic calling
// station.
type CallingAgent struct{}

func (CallingAgent) MakeDecision(view HandView, valid []ValidAction) Decision {
	for _, va := range valid {
		if va.Action == Check {
			return Decision{Move: Move{Action: Check}, Reasoning: "free card"}
		}
	}
	for _, va := range valid {
		if va.Action == Call {
			return Decision{Move: Move{Action: Call}, Reasoning: "calling station"}
		}
	}
	return Decision{Move: Move{Action: Fold}, Reasoning: "nothing else legal"}
}

// RandomAgent picks uniformly among the legal actions, using the midpoint
// for bet and raise sizes. Useful for simulations and fuzzing the state
// machine.
type RandomAgent struct {
	Rng *rand.Rand
}

func (a RandomAgent) MakeDecision(view HandView, valid []ValidAction) Decision {
	if len(valid) == 0 {
		return Decision{Move: Move{Action: Fold}}
	}
	va := valid[a.Rng.IntN(len(valid))]
	move := Move{Action: va.Action}
	if va.Action == Bet || va.Action == Raise {
		move.Amount = va.MinAmount + (va.MaxAmount-va.MinAmount)/2
	}
	return Decision{Move: move, Reasoning: "random"}
}
