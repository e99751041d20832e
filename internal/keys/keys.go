package keys

import (
	"fmt"
	"sort"
	"strings"

	"github.com/1970jjh/minusproject/internal/game"
)

// RecapKey produces a canonical cache key for a finished game: the room code
// plus every seat's final chips and score, ordered by seat. Two identical
// final states (for example a re-read of the same finished room) share a key,
// while a reset-and-replayed room gets a fresh one.
func RecapKey(joinCode string, teams []game.Team) string {
	parts := make([]string, 0, len(teams))
	for _, t := range teams {
		parts = append(parts, fmt.Sprintf("t%d.c%d.s%d", t.ColorIndex, t.Chips, t.Score))
	}
	sort.Strings(parts)
	return strings.ToLower(strings.TrimSpace(joinCode)) + "_" + strings.Join(parts, "_")
}
