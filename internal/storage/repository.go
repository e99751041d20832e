package storage

import (
	"time"

	"github.com/1970jjh/minusproject/internal/game"
)

type Repository interface {
	CreateRoom(r *game.Room) error
	GetRoomByID(id uint) (*game.Room, error)
	FindRoomByJoinCode(code string) (*game.Room, error)
	// ListOpenRooms returns every room that is not soft-deleted, newest
	// first, for the landing-page room browser.
	ListOpenRooms() ([]game.Room, error)
	UpdateRoom(r *game.Room) error
	// DeleteTeams removes all team rows of a room. Used by game reset,
	// which returns the room to an empty lobby.
	DeleteTeams(roomID uint) error
	DeleteRoom(id uint) error
	// FindStaleRooms returns rooms whose last update is at or before the
	// provided cutoff. The caller decides how to dispose of them.
	FindStaleRooms(cutoff time.Time) ([]game.Room, error)

	// Recap cache (lookup by canonical room key)
	GetRecapByKey(key string) (*game.Recap, error)
	SaveRecap(rec *game.Recap) error
}
