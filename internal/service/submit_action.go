package service

import (
	"errors"

	"github.com/1970jjh/minusproject/internal/constants"
	"github.com/1970jjh/minusproject/internal/engine"
	"github.com/1970jjh/minusproject/internal/game"
	"github.com/1970jjh/minusproject/internal/logging"
	"github.com/1970jjh/minusproject/internal/storage"
)

var ErrMemberNotInRoom = errors.New("member not part of this room")

// SubmitAction applies one PASS or TAKE for the team the participant belongs
// to, persists the resulting state and broadcasts it. The engine rejects
// out-of-turn and otherwise invalid actions without touching the stored
// state.
func SubmitAction(repo storage.Repository, pub Publisher, joinCode, memberID string, action game.Action) (*game.Room, error) {
	r, err := repo.FindRoomByJoinCode(joinCode)
	if err != nil || r == nil {
		return nil, ErrRoomNotFound
	}

	team := r.TeamOfMember(memberID)
	if team == nil {
		// Scripted clients may act with the team id directly.
		team = r.TeamByUUID(memberID)
	}
	if team == nil {
		return nil, ErrMemberNotInRoom
	}

	next, err := engine.ApplyAction(r, team.TeamUUID, action)
	if err != nil {
		return nil, err
	}
	if err := repo.UpdateRoom(next); err != nil {
		return nil, err
	}
	logging.Info("action applied", logging.Fields{
		constants.LogFieldRoomCode: joinCode,
		constants.LogFieldTeamID:   team.TeamUUID,
		constants.LogFieldAction:   string(action),
		constants.LogFieldTurn:     next.TurnCount,
	})
	publish(pub, next)
	return next, nil
}
