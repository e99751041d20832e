package keys

import (
	"testing"

	"github.com/1970jjh/minusproject/internal/game"
)

func TestRecapKeyStable(t *testing.T) {
	teams := []game.Team{
		{ColorIndex: 1, Chips: 4, Score: -26},
		{ColorIndex: 0, Chips: 7, Score: 7},
	}
	a := RecapKey(" ROOM1234 ", teams)
	// Team order must not matter.
	b := RecapKey("room1234", []game.Team{teams[1], teams[0]})
	if a != b {
		t.Fatalf("key not canonical: %q vs %q", a, b)
	}
	if a != "room1234_t0.c7.s7_t1.c4.s-26" {
		t.Fatalf("unexpected key %q", a)
	}
}

func TestRecapKeyDistinguishesOutcomes(t *testing.T) {
	a := RecapKey("room1234", []game.Team{{ColorIndex: 0, Chips: 5, Score: 5}})
	b := RecapKey("room1234", []game.Team{{ColorIndex: 0, Chips: 6, Score: 6}})
	if a == b {
		t.Fatalf("different outcomes must produce different keys")
	}
}
