package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/models"
)

type DriverHandler struct {
	DB *gorm.DB
}

type driverRequest struct {
	DriverCode       string `json:"driverId" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	LicenseNumber    string `json:"licenseNumber"`
	LicenseExpiry    string `json:"licenseExpiry"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone"`
	BloodGroup       string `json:"bloodGroup"`
	DateOfBirth      string `json:"dateOfBirth"`
	JoiningDate      string `json:"joiningDate"`
	Status           string `json:"status"`
	VehicleID        string `json:"vehicleId"`
}

func NewDriverHandler(db *gorm.DB) *DriverHandler {
	return &DriverHandler{DB: db}
}

func (h *DriverHandler) List(c *gin.Context) {
	var drivers []models.Driver
	if err := h.DB.Order("created_at desc").Find(&drivers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch drivers"})
		return
	}
	c.JSON(http.StatusOK, drivers)
}

func (h *DriverHandler) Create(c *gin.Context) {
	var req driverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "driverId and name are required"})
		return
	}

	driver := driverFromRequest(req)
	if err := h.DB.Create(&driver).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create driver"})
		return
	}

	c.JSON(http.StatusCreated, driver)
}

func (h *DriverHandler) Update(c *gin.Context) {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid driver id"})
		return
	}

	var req driverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "driverId and name are required"})
		return
	}

	var driver models.Driver
	if err := h.DB.First(&driver, "id = ?", driverID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Driver not found"})
		return
	}

	updated := driverFromRequest(req)
	updated.ID = driver.ID
	updated.CreatedAt = driver.CreatedAt
	if err := h.DB.Save(&updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update driver"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *DriverHandler) Delete(c *gin.Context) {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid driver id"})
		return
	}

	result := h.DB.Delete(&models.Driver{}, "id = ?", driverID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete driver"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Driver not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Driver deleted successfully"})
}

func driverFromRequest(req driverRequest) models.Driver {
	status := req.Status
	if status == "" {
		status = "active"
	}
	driver := models.Driver{
		DriverCode:       req.DriverCode,
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		LicenseNumber:    req.LicenseNumber,
		LicenseExpiry:    parseDate(req.LicenseExpiry),
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		BloodGroup:       req.BloodGroup,
		DateOfBirth:      parseDate(req.DateOfBirth),
		JoiningDate:      parseDate(req.JoiningDate),
		Status:           status,
	}
	if vehicleID, err := uuid.Parse(req.VehicleID); err == nil {
		driver.VehicleID = &vehicleID
	}
	return driver
}
