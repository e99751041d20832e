package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/1970jjh/minusproject/internal/game"
	"github.com/1970jjh/minusproject/internal/storage"
)

var (
	ErrRoomNotJoinable = errors.New("room is not accepting new members")
	ErrRoomFull        = errors.New("room is full")
	ErrTeamFull        = errors.New("team is full")
	ErrInvalidSeat     = errors.New("seat index outside the room's range")
)

// JoinRequest identifies the joining participant and the seat they want.
// An empty MemberID gets a fresh identifier assigned.
type JoinRequest struct {
	MemberID   string
	MemberName string
	TeamName   string
	ColorIndex int
}

// JoinRoom seats a participant in the room identified by joinCode. Joining a
// seat that already has a team adds the participant as a member of that team;
// joining an empty seat claims it and forms a new team. A participant who is
// already seated lands back on their team regardless of phase, so reconnects
// work mid-game. A generated MemberID is written back into req.
func JoinRoom(repo storage.Repository, pub Publisher, joinCode string, req *JoinRequest) (*game.Room, *game.Team, error) {
	r, err := repo.FindRoomByJoinCode(joinCode)
	if err != nil || r == nil {
		return nil, nil, ErrRoomNotFound
	}

	if req.MemberID == "" {
		req.MemberID = uuid.NewString()
	}
	if t := r.TeamOfMember(req.MemberID); t != nil {
		return r, t, nil
	}

	if r.Phase != game.PhaseLobby {
		return nil, nil, ErrRoomNotJoinable
	}
	if req.ColorIndex < 0 || req.ColorIndex >= r.MaxTeams {
		return nil, nil, ErrInvalidSeat
	}

	if t := r.TeamByColor(req.ColorIndex); t != nil {
		if len(t.MemberIDs) >= game.MaxTeamMembers {
			return nil, nil, ErrTeamFull
		}
		t.MemberIDs = append(t.MemberIDs, req.MemberID)
		t.MemberNames = append(t.MemberNames, req.MemberName)
		if err := repo.UpdateRoom(r); err != nil {
			return nil, nil, err
		}
		publish(pub, r)
		return r, t, nil
	}

	if len(r.Teams) >= r.MaxTeams {
		return nil, nil, ErrRoomFull
	}

	name := strings.TrimSpace(req.TeamName)
	if name == "" {
		name = fmt.Sprintf("Team %d", req.ColorIndex+1)
	}
	team := game.Team{
		TeamUUID:    uuid.NewString(),
		Name:        name,
		ColorIndex:  req.ColorIndex,
		Chips:       r.StartingChips,
		Score:       r.StartingChips,
		HeldCards:   game.CardList{},
		MemberIDs:   game.StringList{req.MemberID},
		MemberNames: game.StringList{req.MemberName},
	}
	r.Teams = append(r.Teams, team)
	r.AppendLog(fmt.Sprintf("%s claimed seat %d for %s.", req.MemberName, req.ColorIndex, name))
	if err := repo.UpdateRoom(r); err != nil {
		return nil, nil, err
	}
	publish(pub, r)
	return r, r.TeamByColor(req.ColorIndex), nil
}
