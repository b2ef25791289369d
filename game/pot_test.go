package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlayers(chips ...int) []*Player {
	names := []string{"Alice", "Bob", "Charlie", "Dave"}
	players := make([]*Player, len(chips))
	for i, c := range chips {
		players[i] = &Player{Seat: i, Name: names[i], Chips: c, Status: StatusDealt}
	}
	return players
}

func commitBet(p *Player, amount int) {
	p.Chips -= amount
	p.Bet += amount
	p.TotalBet += amount
	if p.Chips == 0 {
		p.Status = StatusAllIn
	}
}

func TestCollectBetsSweepsStreetBets(t *testing.T) {
	t.Parallel()
	players := testPlayers(100, 100, 100)
	pm := NewPotManager(players)

	commitBet(players[0], 10)
	commitBet(players[1], 10)
	commitBet(players[2], 10)

	pm.CollectBets(players)

	assert.Equal(t, 30, pm.Total())
	for _, p := range players {
		assert.Zero(t, p.Bet, "street bets should be cleared after collection")
	}
}

func TestNoSidePotsWithoutAllIn(t *testing.T) {
	t.Parallel()
	players := testPlayers(100, 100, 100)
	pm := NewPotManager(players)

	for _, p := range players {
		commitBet(p, 20)
	}
	pm.CollectBets(players)
	pm.CalculateSidePots(players)

	pots := pm.Pots()
	require.Len(t, pots, 1)
	assert.Equal(t, 60, pots[0].Amount)
	assert.ElementsMatch(t, []int{0, 1, 2}, pots[0].Eligible)
}

func TestSingleAllInCreatesSidePot(t *testing.T) {
	t.Parallel()
	// Bob is all-in for 50; Alice and Charlie continue to 100.
	players := testPlayers(100, 50, 100)
	commitBet(players[0], 100)
	commitBet(players[1], 50)
	commitBet(players[2], 100)

	pm := NewPotManager(players)
	pm.CollectBets(players)
	pm.CalculateSidePots(players)

	pots := pm.Pots()
	require.Len(t, pots, 2)

	assert.Equal(t, 150, pots[0].Amount, "main pot: 50 from each")
	assert.ElementsMatch(t, []int{0, 1, 2}, pots[0].Eligible)

	assert.Equal(t, 100, pots[1].Amount, "side pot: the extra 50 from Alice and Charlie")
	assert.ElementsMatch(t, []int{0, 2}, pots[1].Eligible)
}

func TestLayeredAllIns(t *testing.T) {
	t.Parallel()
	// All-ins at 20, 50 and 100: three capped layers.
	players := testPlayers(20, 50, 100, 100)
	commitBet(players[0], 20)
	commitBet(players[1], 50)
	commitBet(players[2], 100)
	commitBet(players[3], 100)

	pm := NewPotManager(players)
	pm.CollectBets(players)
	pm.CalculateSidePots(players)

	pots := pm.Pots()
	require.Len(t, pots, 3)

	assert.Equal(t, 80, pots[0].Amount, "20 from each of four")
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, pots[0].Eligible)

	assert.Equal(t, 90, pots[1].Amount, "30 more from Bob, Charlie, Dave")
	assert.ElementsMatch(t, []int{1, 2, 3}, pots[1].Eligible)

	assert.Equal(t, 100, pots[2].Amount, "50 more from Charlie and Dave")
	assert.ElementsMatch(t, []int{2, 3}, pots[2].Eligible)

	assert.Equal(t, 270, pm.Total())
}

func TestFoldedChipsStayInPotButNotEligible(t *testing.T) {
	t.Parallel()
	players := testPlayers(100, 100, 30)
	commitBet(players[0], 60)
	commitBet(players[1], 60)
	commitBet(players[2], 30)
	players[0].Status = StatusFolded

	pm := NewPotManager(players)
	pm.CollectBets(players)
	pm.CalculateSidePots(players)

	pots := pm.Pots()
	require.Len(t, pots, 2)

	assert.Equal(t, 90, pots[0].Amount, "Alice's first 30 stays in the main pot")
	assert.ElementsMatch(t, []int{1, 2}, pots[0].Eligible, "folded players are never eligible")

	assert.Equal(t, 60, pots[1].Amount)
	assert.ElementsMatch(t, []int{1}, pots[1].Eligible)
}

func TestUncalledOverbetFormsSoloPot(t *testing.T) {
	t.Parallel()
	// Bob calls all-in for 40 against Alice's 100: the top 60 belongs to
	// Alice alone and comes back to her at showdown.
	players := testPlayers(100, 40)
	commitBet(players[0], 100)
	commitBet(players[1], 40)

	pm := NewPotManager(players)
	pm.CollectBets(players)
	pm.CalculateSidePots(players)

	pots := pm.Pots()
	require.Len(t, pots, 2)
	assert.Equal(t, 80, pots[0].Amount)
	assert.ElementsMatch(t, []int{0, 1}, pots[0].Eligible)
	assert.Equal(t, 60, pots[1].Amount)
	assert.ElementsMatch(t, []int{0}, pots[1].Eligible)
}

func TestPotsWithUncollectedIncludesLiveBets(t *testing.T) {
	t.Parallel()
	players := testPlayers(100, 100)
	pm := NewPotManager(players)

	commitBet(players[0], 10)
	commitBet(players[1], 10)
	pm.CollectBets(players)

	commitBet(players[0], 5)

	pots := pm.PotsWithUncollected(players)
	require.Len(t, pots, 1)
	assert.Equal(t, 25, pots[0].Amount)
	assert.Equal(t, 20, pm.Total(), "collected total excludes live street bets")
}
