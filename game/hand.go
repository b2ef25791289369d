// Package game implements a single hand of Texas Hold'em as a synchronous
// state machine: dealing, turn-ordered betting rounds, street progression,
// pot layering and showdown.
//
// A Hand is owned by exactly one goroutine at a time. Every operation either
// applies fully or returns an error leaving the hand unchanged; nothing
// blocks and nothing panics across the package boundary. Waiting for player
// input is the driver's problem (see Engine).
package game

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-core/poker"
)

// Hand aggregates the full state of a single hand: seated players, deck,
// community cards, pots and the current betting round.
type Hand struct {
	Players    []*Player
	Button     int
	Street     Street
	Board      []poker.Card
	Deck       *poker.Deck
	Pots       *PotManager
	Betting    *BettingRound
	ActiveSeat int // seat whose turn it is, -1 when nobody can act

	smallBlind int
	bigBlind   int
	dealt      bool
	state      RoundState
	result     *HandResult
	events     []Event
	sink       func(Event)
	logger     *log.Logger
}

// NewHand creates a hand with all players waiting to be dealt and an empty
// pot. The rng drives the deck shuffle and must be supplied unless WithDeck
// provides a deck; use randutil.New(seed) for reproducible hands.
//
// Fails with InvalidConfigurationError for fewer than two players, an empty
// or negative starting stack, or a duplicate player name.
func NewHand(rng *rand.Rand, seats []Seat, opts ...HandOption) (*Hand, error) {
	cfg := &handConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(seats) < 2 {
		return nil, &InvalidConfigurationError{Reason: fmt.Sprintf("need at least 2 players, got %d", len(seats))}
	}
	if cfg.button < 0 || cfg.button >= len(seats) {
		return nil, &InvalidConfigurationError{Reason: fmt.Sprintf("button seat %d out of range", cfg.button)}
	}
	if cfg.smallBlind < 0 || cfg.bigBlind < cfg.smallBlind {
		return nil, &InvalidConfigurationError{Reason: "blinds must be non-negative with big blind >= small blind"}
	}
	if cfg.deck == nil && rng == nil {
		return nil, &InvalidConfigurationError{Reason: "an rng is required unless a deck is supplied"}
	}

	names := make(map[string]bool, len(seats))
	players := make([]*Player, len(seats))
	for i, seat := range seats {
		if seat.Name == "" {
			return nil, &InvalidConfigurationError{Reason: fmt.Sprintf("seat %d has no name", i)}
		}
		if names[seat.Name] {
			return nil, &InvalidConfigurationError{Reason: fmt.Sprintf("duplicate player name %q", seat.Name)}
		}
		if seat.Chips <= 0 {
			return nil, &InvalidConfigurationError{Reason: fmt.Sprintf("player %q has no chips", seat.Name)}
		}
		names[seat.Name] = true
		players[i] = &Player{
			Seat:   i,
			Name:   seat.Name,
			Chips:  seat.Chips,
			Status: StatusWaitingToBeDealt,
		}
	}

	deck := cfg.deck
	if deck == nil {
		deck = poker.NewDeck(rng)
	}

	return &Hand{
		Players:    players,
		Button:     cfg.button,
		Street:     PreFlop,
		Deck:       deck,
		Pots:       NewPotManager(players),
		Betting:    newBettingRound(len(players)),
		ActiveSeat: -1,
		smallBlind: cfg.smallBlind,
		bigBlind:   cfg.bigBlind,
		state:      AwaitingAction,
		sink:       cfg.sink,
		logger:     cfg.logger,
	}, nil
}

// State returns the betting round outcome the driver acts on
func (h *Hand) State() RoundState {
	if !h.dealt {
		return AwaitingAction
	}
	return h.state
}

// Pot returns the total chips committed to the hand so far, including this
// street's not-yet-collected bets. Monotonically non-decreasing until
// payout.
func (h *Hand) Pot() int {
	total := h.Pots.Total()
	for _, p := range h.Players {
		total += p.Bet
	}
	return total
}

// Deal draws two hole cards per player in seating order, posts blinds when
// configured, and makes the first player to act Active. Fails with
// DealingError when the deck holds fewer than two cards per player.
func (h *Hand) Deal() error {
	if h.dealt {
		return illegalMovef("hole cards already dealt")
	}
	if h.Deck.Remaining() < 2*len(h.Players) {
		return &DealingError{Op: "hole cards", Err: poker.ErrInsufficientCards}
	}

	for _, p := range h.Players {
		cards, err := h.Deck.Draw(2)
		if err != nil {
			return &DealingError{Op: "hole cards", Err: err}
		}
		p.HoleCards = cards
		p.Status = StatusDealt
	}

	h.postBlinds()
	h.dealt = true

	first := h.firstToActPreFlop()
	if first == -1 {
		// Everyone all-in from the blinds; no betting this street.
		h.state = RoundClosed
	} else {
		h.setActive(first)
		h.state = AwaitingAction
	}

	h.emit(HandStartEvent{
		Players:    playerNames(h.Players),
		SmallBlind: h.smallBlind,
		BigBlind:   h.bigBlind,
		timestamp:  time.Now(),
	})
	if h.logger != nil {
		h.logger.Debug("dealt hole cards", "players", len(h.Players), "button", h.Button)
	}
	return nil
}

func (h *Hand) postBlinds() {
	if h.bigBlind == 0 {
		return
	}

	sbSeat, bbSeat := h.blindSeats()
	h.post(h.Players[sbSeat], h.smallBlind)
	h.post(h.Players[bbSeat], h.bigBlind)
	h.Betting.CurrentBet = h.bigBlind
	h.Betting.BBSeat = bbSeat
}

// blindSeats returns the small and big blind positions. Heads-up the button
// posts the small blind.
func (h *Hand) blindSeats() (int, int) {
	n := len(h.Players)
	if n == 2 {
		return h.Button, (h.Button + 1) % n
	}
	return (h.Button + 1) % n, (h.Button + 2) % n
}

func (h *Hand) post(p *Player, blind int) {
	posted := min(blind, p.Chips)
	p.Bet = posted
	p.TotalBet = posted
	p.Chips -= posted
	if p.Chips == 0 {
		p.Status = StatusAllIn
	}
}

func (h *Hand) firstToActPreFlop() int {
	n := len(h.Players)
	if h.bigBlind == 0 {
		return h.nextEligible(h.Button)
	}
	if n == 2 {
		return h.nextEligible(h.Button)
	}
	return h.nextEligible((h.Button + 3) % n)
}

// Play applies a move for the active player. Illegal moves return
// IllegalMoveError and leave the hand untouched; the caller should
// re-prompt.
func (h *Hand) Play(m Move) error {
	if !h.dealt {
		return illegalMovef("hole cards not dealt")
	}
	switch h.state {
	case HandEndedByFold:
		return illegalMovef("hand is over, all but one player folded")
	case RoundClosed:
		return illegalMovef("betting round closed, advance the street")
	}

	p := h.Players[h.ActiveSeat]
	br := h.Betting
	toCall := br.CurrentBet - p.Bet

	// Validate fully before touching anything.
	switch m.Action {
	case Fold:
	case Check:
		if toCall != 0 {
			return illegalMovef("cannot check facing a bet of %d", toCall)
		}
	case Call:
		if toCall <= 0 {
			return illegalMovef("nothing to call, check instead")
		}
	case Bet:
		if br.CurrentBet != 0 {
			return illegalMovef("facing a bet of %d, call or raise instead", br.CurrentBet)
		}
		if m.Amount <= 0 {
			return illegalMovef("bet must be positive")
		}
		if m.Amount > p.Chips {
			return illegalMovef("bet %d exceeds stack of %d", m.Amount, p.Chips)
		}
	case Raise:
		if br.CurrentBet == 0 {
			return illegalMovef("no bet to raise, bet instead")
		}
		if m.Amount <= toCall {
			return illegalMovef("raise %d must exceed the call of %d", m.Amount, toCall)
		}
		if m.Amount > p.Chips {
			return illegalMovef("raise %d exceeds stack of %d", m.Amount, p.Chips)
		}
	case AllIn:
		if p.Chips == 0 {
			return illegalMovef("no chips left to commit")
		}
	default:
		return illegalMovef("unknown action %d", m.Action)
	}

	br.Acted[p.Seat] = true
	if p.Seat == br.BBSeat {
		br.BBActed = true
	}

	switch m.Action {
	case Fold:
		p.Status = StatusFolded

	case Check:
		// No chips move.

	case Call:
		h.commit(p, min(toCall, p.Chips))

	case Bet:
		h.commit(p, m.Amount)
		br.CurrentBet = p.Bet
		br.reopen(p.Seat)

	case Raise:
		h.commit(p, m.Amount)
		br.CurrentBet = p.Bet
		br.reopen(p.Seat)

	case AllIn:
		raising := p.Bet+p.Chips > br.CurrentBet
		h.commit(p, p.Chips)
		if raising {
			br.CurrentBet = p.Bet
			br.reopen(p.Seat)
		}
	}

	h.emit(PlayerActionEvent{
		Seat:      p.Seat,
		Name:      p.Name,
		Move:      m,
		Street:    h.Street,
		PotAfter:  h.Pot(),
		timestamp: time.Now(),
	})
	if h.logger != nil {
		h.logger.Debug("applied move", "player", p.Name, "move", m.String(), "pot", h.Pot())
	}

	h.advanceTurn(p.Seat)
	return nil
}

// PlaySeat applies a move on behalf of a specific seat, rejecting plays out
// of turn.
func (h *Hand) PlaySeat(seat int, m Move) error {
	if !h.dealt {
		return illegalMovef("hole cards not dealt")
	}
	if h.state == AwaitingAction && seat != h.ActiveSeat {
		return illegalMovef("not seat %d's turn to act", seat)
	}
	return h.Play(m)
}

// commit moves chips from the player's stack into their street bet
func (h *Hand) commit(p *Player, amount int) {
	p.Chips -= amount
	p.Bet += amount
	p.TotalBet += amount
	if p.Chips == 0 {
		p.Status = StatusAllIn
	}
}

func (h *Hand) advanceTurn(from int) {
	if h.inHandCount() == 1 {
		h.clearActive()
		h.state = HandEndedByFold
		return
	}

	next := h.nextEligible(from + 1)
	if next == -1 || h.Betting.complete(h.Players) {
		h.clearActive()
		h.state = RoundClosed
		return
	}
	h.setActive(next)
}

// AdvanceStreet collects this street's bets into the pots and deals the
// next community cards: three for the flop, one each for the turn and
// river; past the river it moves to showdown. Legal only at RoundClosed.
func (h *Hand) AdvanceStreet() error {
	if !h.dealt {
		return illegalMovef("hole cards not dealt")
	}
	if h.state == HandEndedByFold {
		return illegalMovef("hand ended by fold, showdown pays the survivor")
	}
	if h.state != RoundClosed {
		return illegalMovef("betting round still open")
	}
	if h.Street == Showdown {
		return illegalMovef("hand is at showdown")
	}

	var draw int
	var op string
	switch h.Street {
	case PreFlop:
		draw, op = 3, "flop"
	case Flop:
		draw, op = 1, "turn"
	case Turn:
		draw, op = 1, "river"
	case River:
		draw = 0
	}

	if draw > 0 && h.Deck.Remaining() < draw {
		return &DealingError{Op: op, Err: poker.ErrInsufficientCards}
	}

	h.Pots.CollectBets(h.Players)
	h.Pots.CalculateSidePots(h.Players)
	h.Betting.reset()

	if draw == 0 {
		h.Street = Showdown
		return nil
	}

	cards, err := h.Deck.Draw(draw)
	if err != nil {
		return &DealingError{Op: op, Err: err}
	}
	h.Board = append(h.Board, cards...)
	h.Street++

	h.emit(StreetChangeEvent{
		Street:    h.Street,
		Board:     append([]poker.Card(nil), h.Board...),
		timestamp: time.Now(),
	})
	if h.logger != nil {
		h.logger.Debug("street advanced", "street", h.Street.String(), "board", len(h.Board))
	}

	// With fewer than two players able to act there is nobody to bet
	// against: run the board out street by street with no betting.
	if h.canActCount() < 2 {
		h.state = RoundClosed
		return nil
	}

	h.setActive(h.nextEligible(h.Button + 1))
	h.state = AwaitingAction
	return nil
}

// nextEligible returns the first seat at or after from (wrapping) that can
// still act, skipping folded and all-in players. Returns -1 when nobody
// can.
func (h *Hand) nextEligible(from int) int {
	n := len(h.Players)
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if h.Players[seat].CanAct() {
			return seat
		}
	}
	return -1
}

func (h *Hand) setActive(seat int) {
	h.clearActive()
	h.Players[seat].Status = StatusActive
	h.ActiveSeat = seat
}

func (h *Hand) clearActive() {
	if h.ActiveSeat >= 0 && h.Players[h.ActiveSeat].Status == StatusActive {
		h.Players[h.ActiveSeat].Status = StatusDealt
	}
	h.ActiveSeat = -1
}

func (h *Hand) inHandCount() int {
	count := 0
	for _, p := range h.Players {
		if p.InHand() {
			count++
		}
	}
	return count
}

func (h *Hand) canActCount() int {
	count := 0
	for _, p := range h.Players {
		if p.CanAct() {
			count++
		}
	}
	return count
}

func playerNames(players []*Player) []string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return names
}
