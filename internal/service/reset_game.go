package service

import (
	"github.com/1970jjh/minusproject/internal/constants"
	"github.com/1970jjh/minusproject/internal/engine"
	"github.com/1970jjh/minusproject/internal/game"
	"github.com/1970jjh/minusproject/internal/logging"
	"github.com/1970jjh/minusproject/internal/storage"
)

// ResetGame returns the room to an empty lobby, keeping its configuration.
// Seat rows are removed so rejoining players claim seats from scratch.
func ResetGame(repo storage.Repository, pub Publisher, joinCode string) (*game.Room, error) {
	r, err := repo.FindRoomByJoinCode(joinCode)
	if err != nil || r == nil {
		return nil, ErrRoomNotFound
	}

	next := engine.Reset(r)
	if err := repo.DeleteTeams(r.ID); err != nil {
		return nil, err
	}
	if err := repo.UpdateRoom(next); err != nil {
		return nil, err
	}
	logging.Info("room reset", logging.Fields{
		constants.LogFieldRoomID:   r.ID,
		constants.LogFieldRoomCode: r.JoinCode,
	})
	publish(pub, next)
	return next, nil
}
