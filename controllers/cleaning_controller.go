package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

type CleaningController struct {
	Svc *services.CleaningService
}

func NewCleaningController(svc *services.CleaningService) *CleaningController {
	return &CleaningController{Svc: svc}
}

// Daily (GET /api/cleaning/daily?date=) — the full grid for one day,
// defaulting to today hotel-local.
func (ctrl *CleaningController) Daily(c *gin.Context) {
	day := strings.TrimSpace(c.Query("date"))
	if day != "" {
		if _, err := time.Parse("2006-01-02", day); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "date must be yyyy-MM-dd"})
			return
		}
	}

	grid, err := ctrl.Svc.DailyStatus(day)
	if err != nil {
		utils.ErrorLogger.Errorf("cleaning daily grid failed (date=%s): %v", day, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, grid)
}

// Update (POST /api/cleaning/update) — validated upsert for today's fact row.
func (ctrl *CleaningController) Update(c *gin.Context) {
	var req models.CleaningUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	req.RoomNumber = strings.TrimSpace(req.RoomNumber)
	req.AreaCode = strings.TrimSpace(req.AreaCode)
	req.Status = strings.TrimSpace(req.Status)
	if req.RoomNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "roomNumber is required"})
		return
	}
	if req.AreaCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "areaCode is required"})
		return
	}
	if req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "status is required"})
		return
	}

	day, err := ctrl.Svc.UpsertStatus(req.RoomNumber, req.AreaCode, req.Status, req.CleanerID, req.CleanerName)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCleaningStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		utils.ErrorLogger.Errorf("cleaning upsert failed (room=%s area=%s): %v", req.RoomNumber, req.AreaCode, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Cleaning status updated",
		"roomNumber":   req.RoomNumber,
		"areaCode":     req.AreaCode,
		"cleaningDate": day,
		"status":       req.Status,
	})
}
