package game

import "fmt"

// DealingError signals the deck ran out mid-deal: a malformed deck or a
// player-count mismatch. The hand cannot continue.
type DealingError struct {
	Op  string // "hole cards", "flop", "turn", "river"
	Err error
}

func (e *DealingError) Error() string {
	return fmt.Sprintf("dealing %s: %v", e.Op, e.Err)
}

func (e *DealingError) Unwrap() error {
	return e.Err
}

// IllegalMoveError signals an action that violates the betting rules: acting
// out of turn, checking when facing a bet, betting over a stack. The hand is
// left unchanged; the caller should re-prompt.
type IllegalMoveError struct {
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: %s", e.Reason)
}

// InvalidConfigurationError signals a hand that cannot be created: too few
// players, an empty stack, a missing RNG. No Hand is produced.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

func illegalMovef(format string, args ...any) error {
	return &IllegalMoveError{Reason: fmt.Sprintf(format, args...)}
}
