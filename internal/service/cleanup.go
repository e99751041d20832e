package service

import (
	"time"

	"github.com/1970jjh/minusproject/internal/constants"
	"github.com/1970jjh/minusproject/internal/logging"
	"github.com/1970jjh/minusproject/internal/storage"
)

// CleanupStaleRooms deletes rooms untouched for longer than ttl, teams
// included. Returns the number of rooms removed.
func CleanupStaleRooms(repo storage.Repository, ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)
	rooms, err := repo.FindStaleRooms(cutoff)
	if err != nil {
		logging.Error("stale room scan failed", err, nil)
		return 0
	}

	removed := 0
	for i := range rooms {
		r := &rooms[i]
		if err := repo.DeleteTeams(r.ID); err != nil {
			logging.Error("failed to delete teams of stale room", err, logging.Fields{constants.LogFieldRoomID: r.ID})
			continue
		}
		if err := repo.DeleteRoom(r.ID); err != nil {
			logging.Error("failed to delete stale room", err, logging.Fields{constants.LogFieldRoomID: r.ID})
			continue
		}
		removed++
		logging.Info("stale room removed", logging.Fields{
			constants.LogFieldRoomID:   r.ID,
			constants.LogFieldRoomCode: r.JoinCode,
		})
	}
	return removed
}
