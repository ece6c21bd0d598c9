package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/authz"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/finance"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/middleware"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/models"
)

type OperationHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// Billing inputs arrive as form strings or numbers depending on the client;
// they coerce through finance.ParseNumber and never fail the request.
type createOperationRequest struct {
	VehicleNumber string `json:"vehicleNumber"`
	VehicleID     string `json:"vehicleId"`
	FormType      string `json:"formType"`
	OperationType string `json:"operationType"`
	SubPartName   string `json:"subPartName"`
	Description   string `json:"description"`
	OperationDate string `json:"operationDate"`

	DateSendToWS       string `json:"dateSendToWS"`
	Workshop           string `json:"workshop"`
	Complaints         string `json:"complaints"`
	ActionTaken        string `json:"actionTaken"`
	VehReadyDateFromWS string `json:"vehReadyDateFromWS"`
	InvoiceNo          string `json:"invoiceNo"`
	InvoiceDate        string `json:"invoiceDate"`
	InvoiceBill        string `json:"invoiceBill"`

	ACUnit    string `json:"acUnit"`
	EngineHrs any    `json:"engineHrs"`
	AdvisorNo string `json:"advisorNo"`

	ServiceKM   any    `json:"serviceKM"`
	WorkOrderNo string `json:"workOrderNo"`

	JobType   string `json:"jobType"`
	AmcNonAmc string `json:"amcNonAmc"`
	Remark    string `json:"remark"`

	Amount          any    `json:"amount"`
	SpareWithoutTax any    `json:"spareWithoutTax"`
	Labour          any    `json:"labour"`
	OutsideLabour   any    `json:"outsideLabour"`
	DiscountLabour  any    `json:"discountLabour"`
	SpareWith18GST  any    `json:"spareWith18GST"`
	SpareWith28GST  any    `json:"spareWith28GST"`
	DiscountOnParts string `json:"discountOnParts"`
	GSTOnParts      string `json:"gstOnParts"`
	GSTOnLabour     string `json:"gstOnLabour"`
}

type updateOperationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

func NewOperationHandler(db *gorm.DB, log *zap.Logger) *OperationHandler {
	return &OperationHandler{DB: db, Log: log}
}

// sessionRole resolves the request's session identifier to the account role.
func (h *OperationHandler) sessionRole(c *gin.Context) (string, bool) {
	identifier := middleware.Identifier(c)
	if identifier == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return "", false
	}

	user, err := findActiveUser(h.DB, identifier)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return "", false
	}

	role := user.Role
	if role == "" {
		role = authz.RoleUser
	}
	return role, true
}

// List returns the operations inside the caller's amount window, newest
// first. Each role sees only its own band.
func (h *OperationHandler) List(c *gin.Context) {
	role, ok := h.sessionRole(c)
	if !ok {
		return
	}

	window := authz.WindowFor(role)
	query := h.DB.Order("created_at desc")
	if window.MinExclusive {
		query = query.Where("amount > ?", window.Min)
	} else {
		query = query.Where("amount >= ?", window.Min)
	}
	if !window.Unbounded {
		query = query.Where("amount <= ?", window.Max)
	}

	var operations []models.Operation
	if err := query.Find(&operations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch operations"})
		return
	}

	c.JSON(http.StatusOK, operations)
}

func (h *OperationHandler) Create(c *gin.Context) {
	var req createOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	vehicleNumber := req.VehicleNumber
	if vehicleNumber == "" && req.VehicleID != "" {
		vehicleID, err := uuid.Parse(req.VehicleID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid vehicle id"})
			return
		}
		var vehicle models.Vehicle
		if err := h.DB.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Vehicle not found"})
			return
		}
		vehicleNumber = vehicle.VehicleNumber
	}
	if vehicleNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "vehicleNumber is required"})
		return
	}

	inputs := finance.Inputs{
		Amount:          finance.ParseNumber(req.Amount),
		SpareWithoutTax: finance.ParseNumber(req.SpareWithoutTax),
		Labour:          finance.ParseNumber(req.Labour),
		OutsideLabour:   finance.ParseNumber(req.OutsideLabour),
		DiscountLabour:  finance.ParseNumber(req.DiscountLabour),
		SpareWith18GST:  finance.ParseNumber(req.SpareWith18GST),
		SpareWith28GST:  finance.ParseNumber(req.SpareWith28GST),
		DiscountOnParts: req.DiscountOnParts,
		GSTOnParts:      req.GSTOnParts,
		GSTOnLabour:     req.GSTOnLabour,
	}
	totals := finance.Calculate(inputs)

	operationDate := time.Now()
	if parsed := parseDate(req.OperationDate); parsed != nil {
		operationDate = *parsed
	}

	operation := models.Operation{
		VehicleNumber: vehicleNumber,
		FormType:      req.FormType,
		OperationType: req.OperationType,
		SubPartName:   req.SubPartName,
		Description:   req.Description,
		OperationDate: operationDate,
		Status:        "pending",

		DateSendToWS:       req.DateSendToWS,
		Workshop:           req.Workshop,
		Complaints:         req.Complaints,
		ActionTaken:        req.ActionTaken,
		VehReadyDateFromWS: req.VehReadyDateFromWS,
		InvoiceNo:          req.InvoiceNo,
		InvoiceDate:        req.InvoiceDate,
		InvoiceBill:        req.InvoiceBill,

		ACUnit:    req.ACUnit,
		EngineHrs: finance.ParseNumber(req.EngineHrs),
		AdvisorNo: req.AdvisorNo,

		ServiceKM:   int(finance.ParseNumber(req.ServiceKM)),
		WorkOrderNo: req.WorkOrderNo,

		JobType:   req.JobType,
		AmcNonAmc: req.AmcNonAmc,
		Remark:    req.Remark,

		Amount:          inputs.Amount,
		SpareWithoutTax: inputs.SpareWithoutTax,
		Labour:          inputs.Labour,
		OutsideLabour:   inputs.OutsideLabour,
		DiscountLabour:  inputs.DiscountLabour,
		SpareWith18GST:  inputs.SpareWith18GST,
		SpareWith28GST:  inputs.SpareWith28GST,
		DiscountOnParts: req.DiscountOnParts,
		GSTOnParts:      req.GSTOnParts,
		GSTOnLabour:     req.GSTOnLabour,

		SpareDiscountAmount:                  totals.SpareDiscountAmount,
		SpareAfterDiscount:                   totals.SpareAfterDiscount,
		SpareGSTAmount:                       totals.SpareGSTAmount,
		SpareWithGST:                         totals.SpareWithGST,
		LabourAfterDiscount:                  totals.LabourAfterDiscount,
		LabourGSTAmount:                      totals.LabourGSTAmount,
		LabourWithGST:                        totals.LabourWithGST,
		Spare18WithGST:                       totals.Spare18WithGST,
		Spare28WithGST:                       totals.Spare28WithGST,
		TotalInvAmountPayable:                totals.TotalInvAmountPayable,
		TotalAmountWithDiscountButWithoutTax: totals.TotalAmountWithDiscountButWithoutTax,
	}

	if err := h.DB.Create(&operation).Error; err != nil {
		h.Log.Error("operation create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create operation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Operation created successfully",
		"data":    operation,
	})
}

// UpdateStatus moves an operation between pending/approved/rejected, gated
// by the caller's amount-based access.
func (h *OperationHandler) UpdateStatus(c *gin.Context) {
	operationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid operation id"})
		return
	}

	var req updateOperationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status. Must be pending, approved, or rejected"})
		return
	}

	role, ok := h.sessionRole(c)
	if !ok {
		return
	}

	var operation models.Operation
	if err := h.DB.First(&operation, "id = ?", operationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Operation not found"})
		return
	}

	if !authz.CanAccess(role, operation.Amount) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied. Insufficient permissions for this operation."})
		return
	}

	now := time.Now()
	if err := h.DB.Model(&operation).Updates(map[string]any{"status": req.Status, "updated_at": now}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update operation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Operation status updated successfully",
		"data": gin.H{
			"operationId": operationID,
			"status":      req.Status,
			"updatedAt":   now,
		},
	})
}
