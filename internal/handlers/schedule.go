package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/models"
)

// ScheduleHandler serves both the vehicle and AC service-schedule boards.
type ScheduleHandler struct {
	DB *gorm.DB
}

type vehicleScheduleRequest struct {
	VehicleNumber string `json:"vehicleNumber" binding:"required"`
	Model         string `json:"model"`
	Make          string `json:"make"`
	Date          string `json:"date"`
}

type vehicleServiceItemRequest struct {
	KM          int    `json:"km"`
	Work        string `json:"work" binding:"required"`
	ServiceDate string `json:"serviceDate"`
}

type acScheduleRequest struct {
	VehicleNumber  string `json:"vehicleNumber" binding:"required"`
	Model          string `json:"model"`
	Make           string `json:"make"`
	ACSerialNumber string `json:"acSerialNumber"`
	ACUnit         string `json:"acUnit"`
	Date           string `json:"date"`
}

type acServiceItemRequest struct {
	KM          string `json:"km"`
	Hours       string `json:"hours"`
	ServiceDate string `json:"serviceDate"`
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{DB: db}
}

func (h *ScheduleHandler) ListVehicleSchedules(c *gin.Context) {
	var schedules []models.VehicleServiceSchedule
	if err := h.DB.Preload("Services").Order("created_at desc").Find(&schedules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch vehicle services"})
		return
	}
	c.JSON(http.StatusOK, schedules)
}

func (h *ScheduleHandler) CreateVehicleSchedule(c *gin.Context) {
	var req vehicleScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "vehicleNumber is required"})
		return
	}

	schedule := models.VehicleServiceSchedule{
		VehicleNumber: req.VehicleNumber,
		Model:         req.Model,
		Make:          req.Make,
		Date:          parseDate(req.Date),
	}
	if err := h.DB.Create(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create vehicle service"})
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

func (h *ScheduleHandler) AddVehicleServiceItem(c *gin.Context) {
	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid schedule id"})
		return
	}

	var req vehicleServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "work is required"})
		return
	}

	var schedule models.VehicleServiceSchedule
	if err := h.DB.First(&schedule, "id = ?", scheduleID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Schedule not found"})
		return
	}

	item := models.VehicleServiceItem{
		ScheduleID:  schedule.ID,
		KM:          req.KM,
		Work:        req.Work,
		ServiceDate: parseDate(req.ServiceDate),
	}
	if err := h.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add service item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

func (h *ScheduleHandler) ListACSchedules(c *gin.Context) {
	var schedules []models.ACServiceSchedule
	if err := h.DB.Preload("Services").Order("created_at desc").Find(&schedules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch ac services"})
		return
	}
	c.JSON(http.StatusOK, schedules)
}

func (h *ScheduleHandler) CreateACSchedule(c *gin.Context) {
	var req acScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "vehicleNumber is required"})
		return
	}

	schedule := models.ACServiceSchedule{
		VehicleNumber:  req.VehicleNumber,
		Model:          req.Model,
		Make:           req.Make,
		ACSerialNumber: req.ACSerialNumber,
		ACUnit:         req.ACUnit,
		Date:           parseDate(req.Date),
	}
	if err := h.DB.Create(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create ac service"})
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

func (h *ScheduleHandler) AddACServiceItem(c *gin.Context) {
	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid schedule id"})
		return
	}

	var req acServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	var schedule models.ACServiceSchedule
	if err := h.DB.First(&schedule, "id = ?", scheduleID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Schedule not found"})
		return
	}

	item := models.ACServiceItem{
		ScheduleID:  schedule.ID,
		KM:          req.KM,
		Hours:       req.Hours,
		ServiceDate: parseDate(req.ServiceDate),
	}
	if err := h.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add service item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}
