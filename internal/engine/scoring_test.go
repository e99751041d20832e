package engine

import (
	"testing"

	"github.com/1970jjh/minusproject/internal/game"
)

func TestComputeDebt(t *testing.T) {
	cases := []struct {
		name string
		held game.CardList
		want int
	}{
		{"empty", game.CardList{}, 0},
		{"single card", game.CardList{-40}, 40},
		{"full run counts smallest only", game.CardList{-30, -31, -32}, 30},
		{"run plus singleton", game.CardList{-30, -31, -35}, 65},
		{"two runs", game.CardList{-25, -26, -27, -29, -30}, 54},
		{"unsorted input", game.CardList{-32, -30, -31}, 30},
		{"no adjacency", game.CardList{-26, -28, -30}, 84},
	}
	for _, tc := range cases {
		if got := ComputeDebt(tc.held); got != tc.want {
			t.Errorf("%s: ComputeDebt(%v) = %d, want %d", tc.name, tc.held, got, tc.want)
		}
	}
}

func TestComputeScore(t *testing.T) {
	team := &game.Team{Chips: 4, HeldCards: game.CardList{-30}}
	if got := ComputeScore(team); got != -26 {
		t.Fatalf("ComputeScore = %d, want -26", got)
	}
}

func TestRuns(t *testing.T) {
	runs := Runs(game.CardList{-35, -30, -31, -27})
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d: %v", len(runs), runs)
	}
	if len(runs[1]) != 2 || runs[1][0] != -30 || runs[1][1] != -31 {
		t.Fatalf("expected middle run [-30 -31], got %v", runs[1])
	}
	if Runs(game.CardList{}) != nil {
		t.Fatalf("expected nil runs for empty holdings")
	}
}

func TestDetermineWinner(t *testing.T) {
	teams := []game.Team{
		{Name: "A", ColorIndex: 0, Chips: 5, Score: -10},
		{Name: "B", ColorIndex: 1, Chips: 2, Score: 3},
		{Name: "C", ColorIndex: 2, Chips: 9, Score: 3},
	}
	// B and C tie on score; C has more chips.
	if got := DetermineWinner(teams); got != 2 {
		t.Fatalf("expected winner index 2, got %d", got)
	}

	// Full tie falls back to the lower color index.
	teams[1].Chips = 9
	if got := DetermineWinner(teams); got != 1 {
		t.Fatalf("expected winner index 1 on full tie, got %d", got)
	}

	if got := DetermineWinner(nil); got != -1 {
		t.Fatalf("expected -1 for no teams, got %d", got)
	}
}
