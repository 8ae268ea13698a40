package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

type CleaningQrController struct {
	Svc *services.CleaningSyncService
}

func NewCleaningQrController(svc *services.CleaningSyncService) *CleaningQrController {
	return &CleaningQrController{Svc: svc}
}

// Complete (POST /api/cleaning-qr/complete) — marks the scanned area DONE
// and mirrors the write to the external endpoint. A mirror failure surfaces
// here with the remote status and body; the local write is not rolled back.
func (ctrl *CleaningQrController) Complete(c *gin.Context) {
	var req models.QrCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	req.RoomNumber = strings.TrimSpace(req.RoomNumber)
	req.AreaCode = strings.TrimSpace(req.AreaCode)
	if req.RoomNumber == "" || req.AreaCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "roomNumber and areaCode are required"})
		return
	}

	result, err := ctrl.Svc.CompleteDone(req.RoomNumber, req.AreaCode, req.CleanerID, req.CleanerName)
	if err != nil {
		var syncErr *services.SyncError
		switch {
		case errors.As(err, &syncErr):
			utils.ErrorLogger.Errorf("cleaning sync rejected (room=%s area=%s): %v", req.RoomNumber, req.AreaCode, err)
			c.JSON(http.StatusBadGateway, gin.H{
				"status":       "error",
				"message":      "External cleaning sync failed",
				"remoteStatus": syncErr.StatusCode,
				"remoteBody":   syncErr.Body,
			})
		case errors.Is(err, services.ErrSyncNotConfigured):
			utils.ErrorLogger.Errorf("cleaning sync not configured")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		default:
			utils.ErrorLogger.Errorf("qr complete failed (room=%s area=%s): %v", req.RoomNumber, req.AreaCode, err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
