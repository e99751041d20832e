package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/1970jjh/minusproject/internal/constants"
	"github.com/1970jjh/minusproject/internal/service"
)

type adviceRequest struct {
	MemberID string `json:"member_id"`
}

// Advice generates strategic advice for the caller's team, capped per team
// per game.
func (h *RoomHandler) Advice(c *gin.Context) {
	code := normalizeJoinCode(c.Param("roomCode"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRoomCode})
		return
	}
	var req adviceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MemberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	text, used, err := service.RequestAdvice(c.Request.Context(), h.repo, code, req.MemberID, h.cfg.AdviceLimit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRoomNotFound})
		case errors.Is(err, service.ErrGameNotActive):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrGameNotActive})
		case errors.Is(err, service.ErrMemberNotInRoom):
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrMemberNotInRoom})
		case errors.Is(err, service.ErrAdviceLimitReached):
			c.JSON(http.StatusTooManyRequests, gin.H{constants.JSONKeyError: constants.ErrAdviceLimit})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrAdviceFailed})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"advice": text,
		"used":   used,
		"limit":  h.cfg.AdviceLimit,
	})
}
