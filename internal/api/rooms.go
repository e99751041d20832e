package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/1970jjh/minusproject/internal/constants"
	"github.com/1970jjh/minusproject/internal/service"
)

type createRoomRequest struct {
	Name          string `json:"name"`
	HostID        string `json:"host_id"`
	MaxTeams      int    `json:"max_teams"`
	StartingChips int    `json:"starting_chips"`
}

// CreateRoom opens a new lobby with a generated join code. Admin only.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	r, err := service.CreateRoom(h.repo, h.cfg, service.CreateRoomRequest{
		Name:          req.Name,
		JoinCode:      generateJoinCode(),
		HostID:        req.HostID,
		MaxTeams:      req.MaxTeams,
		StartingChips: req.StartingChips,
	})
	if err != nil {
		switch err {
		case service.ErrRoomNameTooLong:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrRoomNameExceeds})
		case service.ErrBadMaxTeams, service.ErrBadStartingChips:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateRoom})
		}
		return
	}

	out, err := MarshalIntoSnakeTimestamps(r)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateRoom})
		return
	}
	c.JSON(http.StatusCreated, out)
}

// ListRooms returns every room currently accepting players.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := service.ListOpenRooms(h.repo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRooms})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(rooms)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRooms})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetRoom returns the full state of one room by join code.
func (h *RoomHandler) GetRoom(c *gin.Context) {
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
	out, err := MarshalIntoSnakeTimestamps(r)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRooms})
		return
	}
	c.JSON(http.StatusOK, out)
}

type joinRoomRequest struct {
	RoomCode   string `json:"room_code"`
	MemberID   string `json:"member_id"`
	MemberName string `json:"member_name"`
	TeamName   string `json:"team_name"`
	ColorIndex int    `json:"color_index"`
}

// JoinRoom seats a participant: joining a claimed seat adds them to that
// team, joining an empty seat forms a new team.
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	var req joinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	code := normalizeJoinCode(req.RoomCode)
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRoomCode})
		return
	}

	join := service.JoinRequest{
		MemberID:   req.MemberID,
		MemberName: req.MemberName,
		TeamName:   req.TeamName,
		ColorIndex: req.ColorIndex,
	}
	r, team, err := service.JoinRoom(h.repo, h.hub, code, &join)
	if err != nil {
		switch err {
		case service.ErrRoomNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRoomNotFound})
		case service.ErrRoomNotJoinable:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrGameAlreadyActive})
		case service.ErrRoomFull:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrRoomFull})
		case service.ErrTeamFull:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrTeamFull})
		case service.ErrInvalidSeat:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateRoom})
		}
		return
	}

	out, err := MarshalIntoSnakeTimestamps(r)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateRoom})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"room":      out,
		"team_uuid": team.TeamUUID,
		"member_id": join.MemberID,
	})
}
