package handler

import (
	"net/http"
	"strconv"

	"clinic-appointments-api/internal/models"
	"clinic-appointments-api/internal/service"
	"clinic-appointments-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

// GetAllRooms retrieves every room
func (h *RoomHandler) GetAllRooms(c *gin.Context) {
	rooms, err := h.roomService.FindAll()
	if err != nil {
		respondError(c, err, "Failed to fetch rooms")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"rooms": rooms,
		"count": len(rooms),
	})
}

// GetRoom retrieves a specific room by ID
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	room, err := h.roomService.FindByID(uint(id))
	if err != nil {
		respondError(c, err, "Failed to fetch room")
		return
	}

	utils.SuccessResponse(c, room)
}

// CreateRoom creates a new room
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.roomService.Create(&room); err != nil {
		respondError(c, err, "Failed to create room")
		return
	}

	utils.CreatedResponse(c, room)
}

// UpdateRoom replaces all fields of an existing room
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.roomService.Update(uint(id), &room)
	if err != nil {
		respondError(c, err, "Failed to update room")
		return
	}

	utils.SuccessResponse(c, updated)
}

// DeleteRoom removes a room by ID
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	if err := h.roomService.Delete(uint(id)); err != nil {
		respondError(c, err, "Failed to delete room")
		return
	}

	c.Status(http.StatusNoContent)
}
