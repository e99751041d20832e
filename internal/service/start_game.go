package service

import (
	"errors"

	"github.com/1970jjh/minusproject/internal/constants"
	"github.com/1970jjh/minusproject/internal/engine"
	"github.com/1970jjh/minusproject/internal/game"
	"github.com/1970jjh/minusproject/internal/logging"
	"github.com/1970jjh/minusproject/internal/storage"
)

var (
	ErrGameAlreadyActive = errors.New("game is already in progress")
	ErrNotEnoughTeams    = errors.New("not enough teams to start")
)

// StartGame deals a fresh game into the room. Allowed from the lobby or from
// a finished game (a rematch with the same seats); a live game cannot be
// restarted out from under its teams.
func StartGame(repo storage.Repository, pub Publisher, joinCode string, minTeams int) (*game.Room, error) {
	r, err := repo.FindRoomByJoinCode(joinCode)
	if err != nil || r == nil {
		return nil, ErrRoomNotFound
	}
	if r.Phase == game.PhasePlaying {
		return nil, ErrGameAlreadyActive
	}
	if len(r.Teams) < minTeams {
		return nil, ErrNotEnoughTeams
	}

	next, err := engine.Initialize(r)
	if err != nil {
		return nil, err
	}
	if err := repo.UpdateRoom(next); err != nil {
		return nil, err
	}
	logging.Info("game started", logging.Fields{
		constants.LogFieldRoomID:   next.ID,
		constants.LogFieldRoomCode: next.JoinCode,
	})
	publish(pub, next)
	return next, nil
}
