package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/models"
)

type MaintenanceHandler struct {
	DB *gorm.DB
}

type maintenanceRequest struct {
	VehicleNumber   string  `json:"vehicleNumber" binding:"required"`
	DriverID        string  `json:"driverId"`
	MaintenanceType string  `json:"maintenanceType" binding:"required"`
	ServiceType     string  `json:"serviceType" binding:"required"`
	Description     string  `json:"description"`
	Cost            float64 `json:"cost"`
	LaborCost       float64 `json:"laborCost"`
	TotalCost       float64 `json:"totalCost"`
	ServiceProvider string  `json:"serviceProvider"`
	ServiceDate     string  `json:"serviceDate"`
	NextServiceDate string  `json:"nextServiceDate"`
	OdometerReading int     `json:"odometerReading"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes"`
}

type maintenanceTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

func NewMaintenanceHandler(db *gorm.DB) *MaintenanceHandler {
	return &MaintenanceHandler{DB: db}
}

func (h *MaintenanceHandler) List(c *gin.Context) {
	var maintenances []models.Maintenance
	if err := h.DB.Order("created_at desc").Find(&maintenances).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch maintenances"})
		return
	}
	c.JSON(http.StatusOK, maintenances)
}

func (h *MaintenanceHandler) Create(c *gin.Context) {
	var req maintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "vehicleNumber, maintenanceType and serviceType are required"})
		return
	}

	status := req.Status
	if status == "" {
		status = "scheduled"
	}

	maintenance := models.Maintenance{
		VehicleNumber:   req.VehicleNumber,
		MaintenanceType: req.MaintenanceType,
		ServiceType:     req.ServiceType,
		Description:     req.Description,
		Cost:            req.Cost,
		LaborCost:       req.LaborCost,
		TotalCost:       req.TotalCost,
		ServiceProvider: req.ServiceProvider,
		ServiceDate:     parseDate(req.ServiceDate),
		NextServiceDate: parseDate(req.NextServiceDate),
		OdometerReading: req.OdometerReading,
		Status:          status,
		Notes:           req.Notes,
	}
	if driverID, err := uuid.Parse(req.DriverID); err == nil {
		maintenance.DriverID = &driverID
	}

	if err := h.DB.Create(&maintenance).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create maintenance"})
		return
	}

	c.JSON(http.StatusCreated, maintenance)
}

func (h *MaintenanceHandler) ListTypes(c *gin.Context) {
	var types []models.MaintenanceType
	if err := h.DB.Order("name asc").Find(&types).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch maintenance types"})
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *MaintenanceHandler) CreateType(c *gin.Context) {
	var req maintenanceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "name is required"})
		return
	}

	var existing models.MaintenanceType
	err := h.DB.Where("name = ?", req.Name).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Type already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add maintenance type"})
		return
	}

	created := models.MaintenanceType{Name: req.Name}
	if err := h.DB.Create(&created).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add maintenance type"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": created.ID, "name": created.Name})
}
