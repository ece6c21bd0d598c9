package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/models"
)

type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	var vehicleCount int64
	_ = h.DB.Model(&models.Vehicle{}).Count(&vehicleCount).Error

	var activeVehicles int64
	_ = h.DB.Model(&models.Vehicle{}).Where("status = ?", "active").Count(&activeVehicles).Error

	var driverCount int64
	_ = h.DB.Model(&models.Driver{}).Count(&driverCount).Error

	var openTickets int64
	_ = h.DB.Model(&models.Ticket{}).Where("status IN ?", []string{"open", "in_progress"}).Count(&openTickets).Error

	var operationCount int64
	_ = h.DB.Model(&models.Operation{}).Count(&operationCount).Error

	var pendingOperations int64
	_ = h.DB.Model(&models.Operation{}).Where("status = ?", "pending").Count(&pendingOperations).Error

	var totalPayable float64
	_ = h.DB.Model(&models.Operation{}).Select("COALESCE(SUM(total_inv_amount_payable),0)").Scan(&totalPayable).Error

	var expiredDocuments int64
	_ = h.DB.Model(&models.VerificationRecord{}).Where("is_expired = ?", true).Count(&expiredDocuments).Error

	c.JSON(http.StatusOK, gin.H{
		"vehicles":          vehicleCount,
		"activeVehicles":    activeVehicles,
		"drivers":           driverCount,
		"openTickets":       openTickets,
		"operations":        operationCount,
		"pendingOperations": pendingOperations,
		"totalPayable":      totalPayable,
		"expiredDocuments":  expiredDocuments,
	})
}
