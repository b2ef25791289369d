package poker

import (
	"fmt"
	"sort"
	"strings"
)

// Category enumerates hand categories ordered from weakest to strongest.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category description
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandRank is the totally ordered strength of a 5-card hand together with
// the cards and ranks that justify the classification.
//
// TieBreaks carries the deciding ranks in comparison order: the paired or
// matched ranks first, then kickers in descending order. A Pair of kings
// with A-7-4 kickers carries [King, Ace, Seven, Four]; a straight carries
// just its high rank (Five for the wheel).
type HandRank struct {
	Category  Category
	TieBreaks []Rank
	BestFive  []Card
}

// String returns a description like "Flush [A♥ J♥ 9♥ 6♥ 2♥]"
func (hr HandRank) String() string {
	cards := make([]string, len(hr.BestFive))
	for i, c := range hr.BestFive {
		cards[i] = c.String()
	}
	return fmt.Sprintf("%s [%s]", hr.Category, strings.Join(cards, " "))
}

// Compare returns 1 if hr beats other, -1 if other beats hr and 0 for an
// exact tie. Categories order first; equal categories compare TieBreaks
// lexicographically, descending.
func (hr HandRank) Compare(other HandRank) int {
	if hr.Category != other.Category {
		if hr.Category > other.Category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(hr.TieBreaks) && i < len(other.TieBreaks); i++ {
		if hr.TieBreaks[i] != other.TieBreaks[i] {
			if hr.TieBreaks[i] > other.TieBreaks[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Evaluate ranks the best 5-card hand available from 5-7 cards, typically
// two hole cards plus the board. It is a pure function: the same cards
// always produce the same HandRank and BestFive.
func Evaluate(cards ...Card) (HandRank, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return HandRank{}, fmt.Errorf("evaluate requires 5-7 cards, got %d", len(cards))
	}

	seen := make(map[Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return HandRank{}, fmt.Errorf("duplicate card %s", c)
		}
		seen[c] = true
	}

	var best HandRank
	first := true
	forEachFive(cards, func(five []Card) {
		hr := rankFive(five)
		if first || hr.Compare(best) > 0 {
			best = hr
			first = false
		}
	})
	return best, nil
}

// forEachFive visits every 5-card combination of cards.
func forEachFive(cards []Card, fn func([]Card)) {
	n := len(cards)
	if n == 5 {
		fn(cards)
		return
	}

	combo := make([]Card, 5)
	var visit func(start, depth int)
	visit = func(start, depth int) {
		if depth == 5 {
			fn(combo)
			return
		}
		for i := start; i <= n-(5-depth); i++ {
			combo[depth] = cards[i]
			visit(i+1, depth+1)
		}
	}
	visit(0, 0)
}

// rankFive classifies exactly five cards.
func rankFive(five []Card) HandRank {
	sorted := make([]Card, 5)
	copy(sorted, five)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Rank != sorted[j].Rank {
			return sorted[i].Rank > sorted[j].Rank
		}
		return sorted[i].Suit > sorted[j].Suit
	})

	flush := true
	for _, c := range sorted[1:] {
		if c.Suit != sorted[0].Suit {
			flush = false
			break
		}
	}

	straightHigh, straight := straightHighRank(sorted)

	// Group ranks by multiplicity. groups is ordered by count then rank so
	// the defining ranks come first.
	groups := groupRanks(sorted)

	switch {
	case straight && flush:
		return HandRank{Category: StraightFlush, TieBreaks: []Rank{straightHigh}, BestFive: sorted}
	case groups[0].count == 4:
		return HandRank{Category: FourOfAKind, TieBreaks: []Rank{groups[0].rank, groups[1].rank}, BestFive: sorted}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandRank{Category: FullHouse, TieBreaks: []Rank{groups[0].rank, groups[1].rank}, BestFive: sorted}
	case flush:
		return HandRank{Category: Flush, TieBreaks: ranksOf(sorted), BestFive: sorted}
	case straight:
		return HandRank{Category: Straight, TieBreaks: []Rank{straightHigh}, BestFive: sorted}
	case groups[0].count == 3:
		return HandRank{Category: ThreeOfAKind, TieBreaks: groupTieBreaks(groups), BestFive: sorted}
	case groups[0].count == 2 && groups[1].count == 2:
		return HandRank{Category: TwoPair, TieBreaks: groupTieBreaks(groups), BestFive: sorted}
	case groups[0].count == 2:
		return HandRank{Category: Pair, TieBreaks: groupTieBreaks(groups), BestFive: sorted}
	default:
		return HandRank{Category: HighCard, TieBreaks: ranksOf(sorted), BestFive: sorted}
	}
}

// straightHighRank reports whether the five rank-descending cards form a
// straight and its high rank. The wheel (A-5-4-3-2) is Five-high.
func straightHighRank(sorted []Card) (Rank, bool) {
	for i := 1; i < 5; i++ {
		if sorted[i].Rank == sorted[i-1].Rank {
			return 0, false
		}
	}

	if sorted[0].Rank-sorted[4].Rank == 4 {
		return sorted[0].Rank, true
	}

	// Wheel: ace plays low under the five
	if sorted[0].Rank == Ace && sorted[1].Rank == Five && sorted[1].Rank-sorted[4].Rank == 3 {
		return Five, true
	}

	return 0, false
}

type rankGroup struct {
	rank  Rank
	count int
}

func groupRanks(sorted []Card) []rankGroup {
	var groups []rankGroup
	for _, c := range sorted {
		if len(groups) > 0 && groups[len(groups)-1].rank == c.Rank {
			groups[len(groups)-1].count++
			continue
		}
		groups = append(groups, rankGroup{rank: c.Rank, count: 1})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})
	return groups
}

func groupTieBreaks(groups []rankGroup) []Rank {
	ranks := make([]Rank, len(groups))
	for i, g := range groups {
		ranks[i] = g.rank
	}
	return ranks
}

func ranksOf(cards []Card) []Rank {
	ranks := make([]Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	return ranks
}
