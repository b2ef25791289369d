package game

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// DefaultDecisionTimeout bounds how long an agent may think before the
// engine acts for them.
const DefaultDecisionTimeout = 30 * time.Second

// Engine drives a complete hand: deal, betting rounds, street progression
// and showdown, soliciting decisions from one agent per seat.
//
// Agents that exceed the decision timeout are checked when checking is
// free and folded otherwise; the hand never blocks on a slow or stuck
// agent. An agent returning an illegal move gets one fallback to a default
// move before the same policy applies.
type Engine struct {
	hand    *Hand
	agents  []Agent
	timeout time.Duration
	clock   quartz.Clock
	logger  *log.Logger
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithDecisionTimeout overrides DefaultDecisionTimeout
func WithDecisionTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.timeout = d
	}
}

// WithClock substitutes the wall clock, letting tests drive timeouts with
// quartz.NewMock.
func WithClock(clock quartz.Clock) EngineOption {
	return func(e *Engine) {
		e.clock = clock
	}
}

// WithEngineLogger logs engine decisions at debug level
func WithEngineLogger(logger *log.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine for hand with one agent per seat
func NewEngine(hand *Hand, agents []Agent, opts ...EngineOption) (*Engine, error) {
	if len(agents) != len(hand.Players) {
		return nil, &InvalidConfigurationError{Reason: "need exactly one agent per seat"}
	}
	for i, a := range agents {
		if a == nil {
			return nil, &InvalidConfigurationError{Reason: "nil agent for seat " + hand.Players[i].Name}
		}
	}

	e := &Engine{
		hand:    hand,
		agents:  agents,
		timeout: DefaultDecisionTimeout,
		clock:   quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Run plays the hand to completion and returns the settled result
func (e *Engine) Run() (*HandResult, error) {
	if err := e.hand.Deal(); err != nil {
		return nil, err
	}

	for {
		switch e.hand.State() {
		case AwaitingAction:
			if err := e.step(); err != nil {
				return nil, err
			}

		case RoundClosed:
			if e.hand.Street >= River {
				return e.hand.Showdown()
			}
			if err := e.hand.AdvanceStreet(); err != nil {
				return nil, err
			}

		case HandEndedByFold:
			return e.hand.Showdown()
		}
	}
}

// step solicits and applies one decision from the active player's agent
func (e *Engine) step() error {
	seat := e.hand.ActiveSeat
	view := e.hand.View()
	valid := e.hand.ValidActions()

	decision := e.decide(e.agents[seat], view, valid)
	if e.logger != nil {
		e.logger.Debug("agent decided", "seat", seat, "move", decision.Move.String(), "reasoning", decision.Reasoning)
	}

	err := e.hand.PlaySeat(seat, decision.Move)
	var illegal *IllegalMoveError
	if errors.As(err, &illegal) {
		fallback := defaultMove(valid)
		if e.logger != nil {
			e.logger.Warn("agent move rejected, falling back",
				"seat", seat, "move", decision.Move.String(), "reason", illegal.Reason, "fallback", fallback.String())
		}
		return e.hand.PlaySeat(seat, fallback)
	}
	return err
}

// decide runs the agent with the decision timeout. The agent goroutine may
// outlive a timed-out decision; its late answer is discarded.
func (e *Engine) decide(agent Agent, view HandView, valid []ValidAction) Decision {
	decisions := make(chan Decision, 1)
	go func() {
		decisions <- agent.MakeDecision(view, valid)
	}()

	timedOut := make(chan struct{})
	timer := e.clock.AfterFunc(e.timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case d := <-decisions:
		return d
	case <-timedOut:
		return Decision{Move: defaultMove(valid), Reasoning: "decision timeout"}
	}
}

// defaultMove checks when free, otherwise folds
func defaultMove(valid []ValidAction) Move {
	for _, va := range valid {
		if va.Action == Check {
			return Move{Action: Check}
		}
	}
	return Move{Action: Fold}
}
