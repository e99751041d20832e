package engine

import (
	"sort"

	"github.com/1970jjh/minusproject/internal/game"
)

// ComputeDebt returns the forgiven-adjusted debt for a set of held cards as
// a non-negative magnitude. Cards whose magnitudes form a consecutive run
// count only the run's smallest member; the rest of the run is forgiven.
// {−30,−31,−32} costs 30, not 93.
func ComputeDebt(held game.CardList) int {
	if len(held) == 0 {
		return 0
	}
	mags := make([]int, 0, len(held))
	for _, c := range held {
		mags = append(mags, c.Magnitude())
	}
	sort.Ints(mags)

	debt := mags[0]
	for i := 1; i < len(mags); i++ {
		if mags[i] != mags[i-1]+1 {
			// New run starts; its smallest member counts.
			debt += mags[i]
		}
	}
	return debt
}

// ComputeScore is the only formula for a team's score.
func ComputeScore(t *game.Team) int {
	return t.Chips - ComputeDebt(t.HeldCards)
}

// Runs groups a team's held cards into maximal consecutive runs, ordered by
// ascending magnitude. Used by result displays to show which cards were
// forgiven.
func Runs(held game.CardList) []game.CardList {
	if len(held) == 0 {
		return nil
	}
	cards := append(game.CardList{}, held...)
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Magnitude() < cards[j].Magnitude()
	})

	runs := []game.CardList{{cards[0]}}
	for i := 1; i < len(cards); i++ {
		last := len(runs) - 1
		if cards[i].Magnitude() == cards[i-1].Magnitude()+1 {
			runs[last] = append(runs[last], cards[i])
		} else {
			runs = append(runs, game.CardList{cards[i]})
		}
	}
	return runs
}

// DetermineWinner returns the index of the winning team, or -1 for an empty
// list. Ties break toward the team with more chips, then the lower color
// index, so the result is deterministic.
func DetermineWinner(teams []game.Team) int {
	if len(teams) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(teams); i++ {
		a, b := &teams[i], &teams[best]
		switch {
		case a.Score != b.Score:
			if a.Score > b.Score {
				best = i
			}
		case a.Chips != b.Chips:
			if a.Chips > b.Chips {
				best = i
			}
		case a.ColorIndex < b.ColorIndex:
			best = i
		}
	}
	return best
}
