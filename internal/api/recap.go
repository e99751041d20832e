package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/1970jjh/minusproject/internal/constants"
	"github.com/1970jjh/minusproject/internal/recap"
	"github.com/1970jjh/minusproject/internal/service"
)

// Recap returns the cached post-game analysis for a finished game,
// generating it on first request.
func (h *RoomHandler) Recap(c *gin.Context) {
	code := normalizeJoinCode(c.Param("roomCode"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRoomCode})
		return
	}
	r, err := service.GetRoom(h.repo, code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRoomNotFound})
		return
	}

	rec, err := recap.GetOrCreate(c.Request.Context(), h.repo, r)
	if err != nil {
		if errors.Is(err, recap.ErrGameNotFinished) {
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrGameNotFinished})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrRecapFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recap_text": rec.RecapText,
		"has_poster": len(rec.PosterPNG) > 0,
	})
}

// Poster serves the generated poster image for a finished game.
func (h *RoomHandler) Poster(c *gin.Context) {
	code := normalizeJoinCode(c.Param("roomCode"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRoomCode})
		return
	}
	r, err := service.GetRoom(h.repo, code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRoomNotFound})
		return
	}

	rec, err := recap.GetOrCreate(c.Request.Context(), h.repo, r)
	if err != nil {
		if errors.Is(err, recap.ErrGameNotFinished) {
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrGameNotFinished})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrRecapFailed})
		return
	}
	if len(rec.PosterPNG) == 0 {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRecapFailed})
		return
	}

	c.Header(constants.CacheControlHeader, "public, max-age=86400")
	c.Data(http.StatusOK, constants.ContentTypePNG, rec.PosterPNG)
}
