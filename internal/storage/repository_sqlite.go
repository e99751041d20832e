package storage

import (
	"errors"
	"time"

	"github.com/1970jjh/minusproject/internal/game"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateRoom(rm *game.Room) error {
	return r.db.Create(rm).Error
}

func (r *sqliteRepository) GetRoomByID(id uint) (*game.Room, error) {
	var rm game.Room
	if err := r.db.Preload("Teams", func(db *gorm.DB) *gorm.DB {
		return db.Order("room_teams.id ASC")
	}).First(&rm, id).Error; err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *sqliteRepository) FindRoomByJoinCode(code string) (*game.Room, error) {
	var rm game.Room
	if err := r.db.Preload("Teams", func(db *gorm.DB) *gorm.DB {
		return db.Order("room_teams.id ASC")
	}).Where("join_code = ?", code).First(&rm).Error; err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *sqliteRepository) ListOpenRooms() ([]game.Room, error) {
	var rooms []game.Room
	if err := r.db.Preload("Teams").Order("created_at DESC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *sqliteRepository) UpdateRoom(rm *game.Room) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(rm).Error
}

func (r *sqliteRepository) DeleteTeams(roomID uint) error {
	return r.db.Unscoped().Where("room_id = ?", roomID).Delete(&game.Team{}).Error
}

func (r *sqliteRepository) DeleteRoom(id uint) error {
	if err := r.DeleteTeams(id); err != nil {
		return err
	}
	return r.db.Unscoped().Delete(&game.Room{}, id).Error
}

func (r *sqliteRepository) FindStaleRooms(cutoff time.Time) ([]game.Room, error) {
	var rooms []game.Room
	if err := r.db.Where("updated_at <= ?", cutoff).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *sqliteRepository) GetRecapByKey(key string) (*game.Recap, error) {
	var rec game.Recap
	err := r.db.Where("room_key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) SaveRecap(rec *game.Recap) error {
	return r.db.Save(rec).Error
}
