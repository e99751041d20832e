package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/1970jjh/minusproject/internal/constants"
	"github.com/1970jjh/minusproject/internal/engine"
	"github.com/1970jjh/minusproject/internal/service"
)

// StartGame deals a fresh game into the room. Admin only.
func (h *RoomHandler) StartGame(c *gin.Context) {
	code := normalizeJoinCode(c.Param("roomCode"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRoomCode})
		return
	}

	next, err := service.StartGame(h.repo, h.hub, code, h.cfg.MinTeams)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRoomNotFound})
		case errors.Is(err, service.ErrGameAlreadyActive):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrGameAlreadyActive})
		case errors.Is(err, service.ErrNotEnoughTeams), errors.Is(err, engine.ErrNoTeams):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNotEnoughTeams})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateRoom})
		}
		return
	}

	out, err := MarshalIntoSnakeTimestamps(next)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateRoom})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ResetRoom returns the room to an empty lobby. Admin only.
func (h *RoomHandler) ResetRoom(c *gin.Context) {
	code := normalizeJoinCode(c.Param("roomCode"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRoomCode})
		return
	}

	next, err := service.ResetGame(h.repo, h.hub, code)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRoomNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateRoom})
		return
	}

	out, err := MarshalIntoSnakeTimestamps(next)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateRoom})
		return
	}
	c.JSON(http.StatusOK, out)
}
