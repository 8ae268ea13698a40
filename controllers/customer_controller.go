package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

type CustomerController struct {
	Svc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{Svc: svc}
}

// Search (GET /api/customers/search?q=)
func (ctrl *CustomerController) Search(c *gin.Context) {
	results, err := ctrl.Svc.Search(c.Query("q"))
	if err != nil {
		utils.ErrorLogger.Errorf("customer search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetByID (GET /api/customers/:id)
func (ctrl *CustomerController) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid customer id"})
		return
	}

	detail, err := ctrl.Svc.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Customer not found"})
			return
		}
		utils.ErrorLogger.Errorf("customer lookup failed (id=%d): %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetByIDNumber (GET /api/customers/detail-by-idnumber?value=)
func (ctrl *CustomerController) GetByIDNumber(c *gin.Context) {
	value := strings.TrimSpace(c.Query("value"))
	if value == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "value is required"})
		return
	}

	detail, err := ctrl.Svc.GetByIDNumber(value)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Customer not found"})
			return
		}
		utils.ErrorLogger.Errorf("customer lookup by idnumber failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// SearchByField (GET /api/customers/search-by-field?field=&keyword=)
func (ctrl *CustomerController) SearchByField(c *gin.Context) {
	field := strings.TrimSpace(c.Query("field"))
	keyword := strings.TrimSpace(c.Query("keyword"))
	if field == "" || keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "field and keyword are required"})
		return
	}

	results, err := ctrl.Svc.SearchByField(field, keyword)
	if err != nil {
		utils.ErrorLogger.Errorf("customer field search failed (field=%s): %v", field, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// Update (PUT /api/customers/:id) — full replace of the mutable profile.
func (ctrl *CustomerController) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid customer id"})
		return
	}

	var req models.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	ok, err := ctrl.Svc.Update(id, req)
	if err != nil {
		utils.ErrorLogger.Errorf("customer update failed (id=%d): %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Customer not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
