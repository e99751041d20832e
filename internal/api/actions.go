package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/1970jjh/minusproject/internal/constants"
	"github.com/1970jjh/minusproject/internal/engine"
	"github.com/1970jjh/minusproject/internal/game"
	"github.com/1970jjh/minusproject/internal/service"
)

type actionRequest struct {
	MemberID string `json:"member_id"`
	Action   string `json:"action"`
}

// SubmitAction applies a PASS or TAKE for the caller's team. The engine
// validates turn order and resources; a rejected action changes nothing.
func (h *RoomHandler) SubmitAction(c *gin.Context) {
	code := normalizeJoinCode(c.Param("roomCode"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRoomCode})
		return
	}
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MemberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	next, err := service.SubmitAction(h.repo, h.hub, code, req.MemberID, game.Action(req.Action))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRoomNotFound})
		case errors.Is(err, service.ErrMemberNotInRoom):
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrMemberNotInRoom})
		case errors.Is(err, engine.ErrGameNotActive):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrGameNotActive})
		case errors.Is(err, engine.ErrNotYourTurn):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNotYourTurn})
		case errors.Is(err, engine.ErrInsufficientResources):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNoChipsToPass})
		case errors.Is(err, engine.ErrUnknownTeam):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownTeam})
		case errors.Is(err, engine.ErrUnknownAction):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownAction})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreAction})
		}
		return
	}

	out, err := MarshalIntoSnakeTimestamps(next)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreAction})
		return
	}
	c.JSON(http.StatusOK, out)
}
