package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

type RoomController struct {
	Svc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{Svc: svc}
}

// GetAll (GET /api/rooms)
func (ctrl *RoomController) GetAll(c *gin.Context) {
	rooms, err := ctrl.Svc.GetAll()
	if err != nil {
		utils.ErrorLogger.Errorf("room list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// Create (POST /api/rooms)
func (ctrl *RoomController) Create(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	room.RoomType = strings.TrimSpace(room.RoomType)
	if room.RoomNumber == "" || room.RoomType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "roomNumber and roomType are required"})
		return
	}

	if err := ctrl.Svc.Create(&room); err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Room number '%s' already exists", room.RoomNumber),
			})
			return
		}
		utils.ErrorLogger.Errorf("room create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// Update (PUT /api/rooms/:id) — full replace.
func (ctrl *RoomController) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid room id"})
		return
	}

	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	ok, err := ctrl.Svc.Update(id, room)
	if err != nil {
		utils.ErrorLogger.Errorf("room update failed (id=%d): %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Room not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete (DELETE /api/rooms/:id) — soft deactivation only.
func (ctrl *RoomController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid room id"})
		return
	}

	ok, err := ctrl.Svc.Deactivate(id)
	if err != nil {
		utils.ErrorLogger.Errorf("room deactivate failed (id=%d): %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Room not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
