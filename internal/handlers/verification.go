package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/models"
)

type VerificationHandler struct {
	DB *gorm.DB
}

type verificationRequest struct {
	VehicleNumber  string `json:"vehicleNumber" binding:"required"`
	DocumentType   string `json:"documentType" binding:"required"`
	DocumentNumber string `json:"documentNumber"`
	ExpiryDate     string `json:"expiryDate"`
	IsExpired      bool   `json:"isExpired"`
	Notes          string `json:"notes"`
}

func NewVerificationHandler(db *gorm.DB) *VerificationHandler {
	return &VerificationHandler{DB: db}
}

func (h *VerificationHandler) List(c *gin.Context) {
	query := h.DB.Order("created_at desc")
	if c.Query("expired") == "true" {
		query = query.Where("is_expired = ?", true)
	}

	var records []models.VerificationRecord
	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch verification data"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *VerificationHandler) Create(c *gin.Context) {
	var req verificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "vehicleNumber and documentType are required"})
		return
	}

	record := models.VerificationRecord{
		VehicleNumber:  req.VehicleNumber,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		ExpiryDate:     parseDate(req.ExpiryDate),
		IsExpired:      req.IsExpired,
		Notes:          req.Notes,
	}
	if err := h.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create verification document"})
		return
	}

	c.JSON(http.StatusCreated, record)
}
