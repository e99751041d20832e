package service

import (
	"context"
	"errors"

	"github.com/1970jjh/minusproject/internal/advisor"
	"github.com/1970jjh/minusproject/internal/game"
	"github.com/1970jjh/minusproject/internal/storage"
)

var (
	ErrGameNotActive      = errors.New("game is not in progress")
	ErrAdviceLimitReached = errors.New("advice limit reached for this team")
)

// RequestAdvice generates strategic advice for the participant's team and
// counts it against the team's per-game quota. Returns the advice text and
// the number of requests used so far. Failed generation does not consume
// quota; the game itself never depends on advice.
func RequestAdvice(ctx context.Context, repo storage.Repository, joinCode, memberID string, limit int) (string, int, error) {
	r, err := repo.FindRoomByJoinCode(joinCode)
	if err != nil || r == nil {
		return "", 0, ErrRoomNotFound
	}
	if r.Phase != game.PhasePlaying {
		return "", 0, ErrGameNotActive
	}

	team := r.TeamOfMember(memberID)
	if team == nil {
		team = r.TeamByUUID(memberID)
	}
	if team == nil {
		return "", 0, ErrMemberNotInRoom
	}

	used := r.AdviceUsage[team.TeamUUID]
	if used >= limit {
		return "", used, ErrAdviceLimitReached
	}

	text, err := advisor.Advise(ctx, r, team.TeamUUID)
	if err != nil {
		return "", used, err
	}

	if r.AdviceUsage == nil {
		r.AdviceUsage = game.UsageMap{}
	}
	r.AdviceUsage[team.TeamUUID] = used + 1
	if err := repo.UpdateRoom(r); err != nil {
		return "", used, err
	}
	return text, used + 1, nil
}
