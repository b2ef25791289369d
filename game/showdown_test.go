package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-core/poker"
)

// checkDown plays check-check rounds and street advances until the river
// round closes.
func checkDown(t *testing.T, h *Hand) {
	t.Helper()
	for {
		for h.State() == AwaitingAction {
			mustPlay(t, h, Move{Action: Check})
		}
		if h.Street == River {
			return
		}
		if err := h.AdvanceStreet(); err != nil {
			t.Fatalf("AdvanceStreet failed on the %s: %v", h.Street, err)
		}
	}
}

func TestShowdownBestHandWins(t *testing.T) {
	t.Parallel()
	// Alice holds a pair of aces, Bob a pair of kings; the board misses
	// both.
	h := mustHand(t, seats(100, 100), WithDeck(stackedDeck(
		"As", "Ad", // Alice
		"Ks", "Kd", // Bob
		"2h", "7c", "9d", // flop
		"3s", // turn
		"5c", // river
	)))
	require.NoError(t, h.Deal())

	mustPlay(t, h, Move{Action: Bet, Amount: 10}, Move{Action: Call})
	require.NoError(t, h.AdvanceStreet())
	checkDown(t, h)

	result, err := h.Showdown()
	require.NoError(t, err)

	require.Len(t, result.Winners, 1)
	assert.Equal(t, 0, result.Winners[0].Seat)
	assert.Equal(t, 20, result.Winners[0].Amount)
	assert.False(t, result.WonByFold)

	require.Len(t, result.Revealed, 2)
	assert.Equal(t, 110, h.Players[0].Chips)
	assert.Equal(t, 90, h.Players[1].Chips)
	assert.Zero(t, h.Pot(), "pot is paid out at settlement")
}

func TestShowdownTieSplitsPot(t *testing.T) {
	t.Parallel()
	// Both play the board: broadway straight on the table.
	h := mustHand(t, seats(100, 100), WithDeck(stackedDeck(
		"2s", "3d", // Alice
		"2d", "3h", // Bob
		"Ah", "Kc", "Qd", // flop
		"Js", // turn
		"Tc", // river
	)))
	require.NoError(t, h.Deal())

	mustPlay(t, h, Move{Action: Bet, Amount: 10}, Move{Action: Call})
	require.NoError(t, h.AdvanceStreet())
	checkDown(t, h)

	result, err := h.Showdown()
	require.NoError(t, err)

	require.Len(t, result.Winners, 2)
	for _, w := range result.Winners {
		assert.Equal(t, 10, w.Amount, "even pot splits evenly")
	}
	assert.Equal(t, 100, h.Players[0].Chips)
	assert.Equal(t, 100, h.Players[1].Chips)
}

func TestShowdownOddChipGoesClockwiseOfButton(t *testing.T) {
	t.Parallel()
	// Alice and Bob split a 19-chip pot made odd by Charlie's dead chips:
	// 9 each plus one odd chip to the first tied seat clockwise of the
	// button.
	h := mustHand(t, seats(100, 100, 100), WithDeck(stackedDeck(
		"2s", "3d", // Alice
		"2d", "3h", // Bob
		"2c", "7s", // Charlie
		"Ah", "Kc", "Qd", // flop
		"Js", // turn
		"Tc", // river
	)), WithButton(0))
	require.NoError(t, h.Deal())

	mustPlay(t, h,
		Move{Action: Bet, Amount: 5},
		Move{Action: Call},
		Move{Action: Call},
	)
	require.NoError(t, h.AdvanceStreet())

	// Flop action starts left of the button. Bob and Charlie check, Alice
	// bets, Bob calls, Charlie folds his 5 into the pot.
	mustPlay(t, h,
		Move{Action: Check},
		Move{Action: Check},
		Move{Action: Bet, Amount: 2},
		Move{Action: Call},
		Move{Action: Fold},
	)
	require.NoError(t, h.AdvanceStreet())
	checkDown(t, h)

	require.Equal(t, 19, h.Pot())

	result, err := h.Showdown()
	require.NoError(t, err)
	require.Len(t, result.Winners, 2)

	shares := map[int]int{}
	for _, w := range result.Winners {
		shares[w.Seat] = w.Amount
	}
	assert.Equal(t, 19, shares[0]+shares[1])
	assert.Equal(t, 10, shares[1], "seat left of the button takes the odd chip")
	assert.Equal(t, 9, shares[0])
}

func TestShowdownSidePotsAwardedSeparately(t *testing.T) {
	t.Parallel()
	// Charlie is all-in short with the best hand; he can only win the main
	// pot. Alice beats Bob for the side pot.
	h := mustHand(t, seats(100, 100, 20), WithDeck(stackedDeck(
		"Ks", "Kd", // Alice
		"Qs", "Qd", // Bob
		"As", "Ad", // Charlie
		"2h", "7c", "9d", // flop
		"3s", // turn
		"5c", // river
	)))
	require.NoError(t, h.Deal())

	mustPlay(t, h,
		Move{Action: Bet, Amount: 60},
		Move{Action: Call},
		Move{Action: AllIn}, // 20
	)
	require.NoError(t, h.AdvanceStreet())
	checkDown(t, h)

	result, err := h.Showdown()
	require.NoError(t, err)

	shares := map[int]int{}
	for _, w := range result.Winners {
		shares[w.Seat] = w.Amount
	}
	assert.Equal(t, 60, shares[2], "Charlie wins the 3x20 main pot")
	assert.Equal(t, 80, shares[0], "Alice wins the 2x40 side pot over Bob")
	assert.Zero(t, shares[1])

	assert.Equal(t, 120, h.Players[0].Chips)
	assert.Equal(t, 40, h.Players[1].Chips)
	assert.Equal(t, 60, h.Players[2].Chips)
}

func TestShowdownRefundsUncalledOverbet(t *testing.T) {
	t.Parallel()
	// Bob calls all-in for 40 against Alice's 100 with the better hand: Bob
	// wins the contested 80, Alice's uncalled 60 comes back to her.
	h := mustHand(t, seats(100, 40), WithDeck(stackedDeck(
		"Qs", "Qd", // Alice
		"As", "Ad", // Bob
		"2h", "7c", "9d",
		"3s",
		"5c",
	)))
	require.NoError(t, h.Deal())

	mustPlay(t, h, Move{Action: Bet, Amount: 100}, Move{Action: AllIn})
	require.Equal(t, RoundClosed, h.State())

	for h.Street != River {
		require.NoError(t, h.AdvanceStreet())
		require.Equal(t, RoundClosed, h.State(), "nobody can act, streets run out")
	}

	result, err := h.Showdown()
	require.NoError(t, err)

	shares := map[int]int{}
	for _, w := range result.Winners {
		shares[w.Seat] = w.Amount
	}
	assert.Equal(t, 80, shares[1], "Bob wins what was matched")
	assert.Equal(t, 60, shares[0], "Alice's overbet is returned")
	assert.Equal(t, 60, h.Players[0].Chips)
	assert.Equal(t, 80, h.Players[1].Chips)
}

func TestShowdownAfterFoldOutPaysSurvivor(t *testing.T) {
	t.Parallel()
	h := mustHand(t, seats(100, 100, 100))
	require.NoError(t, h.Deal())

	mustPlay(t, h,
		Move{Action: Bet, Amount: 25},
		Move{Action: Fold},
		Move{Action: Fold},
	)
	require.Equal(t, HandEndedByFold, h.State())

	result, err := h.Showdown()
	require.NoError(t, err)

	assert.True(t, result.WonByFold)
	assert.Empty(t, result.Revealed, "nobody shows cards on a fold-out")
	require.Len(t, result.Winners, 1)
	assert.Equal(t, 0, result.Winners[0].Seat)
	assert.Equal(t, 25, result.Winners[0].Amount)
	assert.Equal(t, 100, h.Players[0].Chips, "winning your own bet back is chip-neutral")
}

func TestShowdownGuards(t *testing.T) {
	t.Parallel()
	h := mustHand(t, seats(100, 100))

	_, err := h.Showdown()
	assert.Error(t, err, "showdown before the deal is illegal")

	require.NoError(t, h.Deal())
	_, err = h.Showdown()
	assert.Error(t, err, "showdown with betting open is illegal")

	mustPlay(t, h, Move{Action: Fold})
	_, err = h.Showdown()
	require.NoError(t, err)

	_, err = h.Showdown()
	assert.Error(t, err, "settling twice is illegal")
}

func TestShowdownRevealsRanks(t *testing.T) {
	t.Parallel()
	h := mustHand(t, seats(100, 100), WithDeck(stackedDeck(
		"As", "Ad", // Alice: pair of aces
		"Kh", "Qh", // Bob: flush
		"2h", "7h", "9h", // flop
		"3c", // turn
		"4d", // river
	)))
	require.NoError(t, h.Deal())
	mustPlay(t, h, Move{Action: Bet, Amount: 5}, Move{Action: Call})
	checkDown(t, h)

	result, err := h.Showdown()
	require.NoError(t, err)

	ranks := map[int]poker.HandRank{}
	for _, sh := range result.Revealed {
		ranks[sh.Seat] = sh.Rank
	}
	assert.Equal(t, poker.Pair, ranks[0].Category)
	assert.Equal(t, poker.Flush, ranks[1].Category)
	require.Len(t, result.Winners, 1)
	assert.Equal(t, 1, result.Winners[0].Seat)
}
