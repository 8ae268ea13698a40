package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

type BookingController struct {
	Svc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Svc: svc}
}

// Create (POST /api/bookings)
func (ctrl *BookingController) Create(c *gin.Context) {
	var req models.BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	if strings.TrimSpace(req.IDNumber) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "idNumber is required"})
		return
	}
	if strings.TrimSpace(req.CheckInDate) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "checkInDate is required (yyyy-MM-dd)"})
		return
	}

	id, err := ctrl.Svc.Create(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadCheckInDate):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		case errors.Is(err, services.ErrCustomerNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "No customer matches the given ID number"})
		default:
			utils.ErrorLogger.Errorf("booking create failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "message": "Stay record created"})
}

// History (GET /api/bookings/history-by-customer?customerId=)
func (ctrl *BookingController) History(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Query("customerId"), 10, 64)
	if err != nil || customerID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "customerId must be a positive integer"})
		return
	}

	entries, err := ctrl.Svc.History(customerID)
	if err != nil {
		utils.ErrorLogger.Errorf("booking history failed (customer=%d): %v", customerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

type bookingSoftDeleteRequest struct {
	DeletedBy string `json:"deletedBy"`
}

// SoftDelete (POST /api/bookings/:id/soft-delete)
func (ctrl *BookingController) SoftDelete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid booking id"})
		return
	}

	var req bookingSoftDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}
	if strings.TrimSpace(req.DeletedBy) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "deletedBy is required"})
		return
	}

	ok, err := ctrl.Svc.SoftDelete(id, req.DeletedBy)
	if err != nil {
		utils.ErrorLogger.Errorf("booking soft delete failed (id=%d): %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Booking not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
