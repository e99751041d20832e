package api

import (
	"github.com/1970jjh/minusproject/internal/config"
	"github.com/1970jjh/minusproject/internal/realtime"
	"github.com/1970jjh/minusproject/internal/storage"
)

// RoomHandler groups all room-related HTTP handlers.
type RoomHandler struct {
	repo storage.Repository
	hub  *realtime.Hub
	cfg  *config.LoadedConfig
}

// NewRoomHandler creates a RoomHandler backed by the given repository,
// realtime hub and loaded configuration.
func NewRoomHandler(repo storage.Repository, hub *realtime.Hub, cfg *config.LoadedConfig) *RoomHandler {
	return &RoomHandler{repo: repo, hub: hub, cfg: cfg}
}
