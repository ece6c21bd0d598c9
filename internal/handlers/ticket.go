package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/models"
)

type TicketHandler struct {
	DB *gorm.DB
}

type createTicketRequest struct {
	VehicleNumber string  `json:"vehicleNumber" binding:"required"`
	IssueType     string  `json:"issueType" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	ReportedBy    string  `json:"reportedBy"`
	AssignedTo    string  `json:"assignedTo"`
	EstimatedCost float64 `json:"estimatedCost"`
}

type updateTicketRequest struct {
	IssueType     string  `json:"issueType"`
	Description   string  `json:"description"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	AssignedTo    string  `json:"assignedTo"`
	EstimatedCost float64 `json:"estimatedCost"`
	ActualCost    float64 `json:"actualCost"`
	Resolution    string  `json:"resolution"`
}

func NewTicketHandler(db *gorm.DB) *TicketHandler {
	return &TicketHandler{DB: db}
}

func (h *TicketHandler) List(c *gin.Context) {
	var tickets []models.Ticket
	if err := h.DB.Order("created_at desc").Find(&tickets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch tickets"})
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "vehicleNumber, issueType and description are required"})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}
	status := req.Status
	if status == "" {
		status = "open"
	}
	reportedBy := req.ReportedBy
	if reportedBy == "" {
		reportedBy = "User"
	}

	ticket := models.Ticket{
		TicketNumber:  generateTicketNumber(),
		VehicleNumber: req.VehicleNumber,
		IssueType:     req.IssueType,
		Priority:      priority,
		Status:        status,
		Description:   req.Description,
		ReportedBy:    reportedBy,
		AssignedTo:    req.AssignedTo,
		EstimatedCost: req.EstimatedCost,
	}

	if err := h.DB.Create(&ticket).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create ticket"})
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

func (h *TicketHandler) Update(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid ticket id"})
		return
	}

	var req updateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	var ticket models.Ticket
	if err := h.DB.First(&ticket, "id = ?", ticketID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ticket not found"})
		return
	}

	if req.IssueType != "" {
		ticket.IssueType = req.IssueType
	}
	if req.Description != "" {
		ticket.Description = req.Description
	}
	if req.Priority != "" {
		ticket.Priority = req.Priority
	}
	if req.AssignedTo != "" {
		ticket.AssignedTo = req.AssignedTo
	}
	if req.EstimatedCost != 0 {
		ticket.EstimatedCost = req.EstimatedCost
	}
	if req.ActualCost != 0 {
		ticket.ActualCost = req.ActualCost
	}
	if req.Resolution != "" {
		ticket.Resolution = req.Resolution
	}

	if req.Status != "" && req.Status != ticket.Status {
		now := time.Now()
		switch req.Status {
		case "resolved":
			ticket.ResolvedAt = &now
		case "closed":
			ticket.ClosedAt = &now
		}
		ticket.Status = req.Status
	}

	if err := h.DB.Save(&ticket).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update ticket"})
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) Delete(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid ticket id"})
		return
	}

	result := h.DB.Delete(&models.Ticket{}, "id = ?", ticketID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete ticket"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ticket not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Ticket deleted successfully"})
}

// generateTicketNumber derives a TKT-prefixed number from the clock's last
// six digits, matching the numbers already in circulation.
func generateTicketNumber() string {
	millis := time.Now().UnixMilli()
	return fmt.Sprintf("TKT%06d", millis%1000000)
}
