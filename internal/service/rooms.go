package service

import (
	"errors"
	"strings"

	"github.com/1970jjh/minusproject/internal/config"
	"github.com/1970jjh/minusproject/internal/constants"
	"github.com/1970jjh/minusproject/internal/game"
	"github.com/1970jjh/minusproject/internal/logging"
	"github.com/1970jjh/minusproject/internal/storage"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNameTooLong  = errors.New("room name exceeds 32 characters")
	ErrBadMaxTeams      = errors.New("max teams outside the allowed range")
	ErrBadStartingChips = errors.New("starting chips must be at least 1")
)

// CreateRoomRequest carries the host-chosen room settings. Zero values for
// MaxTeams and StartingChips mean "use the configured default".
type CreateRoomRequest struct {
	Name          string
	JoinCode      string
	HostID        string
	MaxTeams      int
	StartingChips int
}

// CreateRoom validates the requested settings against the server
// configuration and persists a new lobby. The settings are fixed on the room
// at creation; nothing re-defaults them later.
func CreateRoom(repo storage.Repository, cfg *config.LoadedConfig, req CreateRoomRequest) (*game.Room, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) > 32 {
		return nil, ErrRoomNameTooLong
	}

	maxTeams := req.MaxTeams
	if maxTeams == 0 {
		maxTeams = cfg.DefaultMaxTeams
	}
	if maxTeams < cfg.MinTeams || maxTeams > cfg.MaxTeamsLimit {
		return nil, ErrBadMaxTeams
	}

	chips := req.StartingChips
	if chips == 0 {
		chips = cfg.StartingChips
	}
	if chips < 1 {
		return nil, ErrBadStartingChips
	}

	r := &game.Room{
		Name:          name,
		JoinCode:      req.JoinCode,
		HostID:        req.HostID,
		MaxTeams:      maxTeams,
		StartingChips: chips,
		Phase:         game.PhaseLobby,
		Teams:         []game.Team{},
		Message:       "Waiting for teams to join.",
	}
	if err := repo.CreateRoom(r); err != nil {
		return nil, err
	}
	logging.Info("room created", logging.Fields{
		constants.LogFieldRoomID:   r.ID,
		constants.LogFieldRoomCode: r.JoinCode,
	})
	return r, nil
}

// ListOpenRooms returns the rooms for the landing-page browser, newest
// first.
func ListOpenRooms(repo storage.Repository) ([]game.Room, error) {
	return repo.ListOpenRooms()
}

// GetRoom loads a room by join code.
func GetRoom(repo storage.Repository, joinCode string) (*game.Room, error) {
	r, err := repo.FindRoomByJoinCode(joinCode)
	if err != nil || r == nil {
		return nil, ErrRoomNotFound
	}
	return r, nil
}
