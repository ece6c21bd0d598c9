package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Operation is one maintenance job booked against a vehicle. The billing
// fields below the raw inputs are a snapshot computed at creation time and
// are never recomputed afterwards.
type Operation struct {
	ID            uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	VehicleNumber string    `gorm:"index;size:50;not null" json:"vehicleNumber"`
	FormType      string    `gorm:"size:50" json:"formType"`
	OperationType string    `gorm:"size:255" json:"operationType"`
	SubPartName   string    `gorm:"size:255" json:"subPartName,omitempty"`
	Description   string    `gorm:"size:4096" json:"description,omitempty"`
	OperationDate time.Time `json:"operationDate"`
	Status        string    `gorm:"size:50;not null;default:pending" json:"status"`
	ApprovedBy    string    `gorm:"size:255" json:"approvedBy,omitempty"`

	// Workshop paperwork.
	DateSendToWS       string `gorm:"size:50" json:"dateSendToWS,omitempty"`
	Workshop           string `gorm:"size:255" json:"workshop,omitempty"`
	Complaints         string `gorm:"size:4096" json:"complaints,omitempty"`
	ActionTaken        string `gorm:"size:4096" json:"actionTaken,omitempty"`
	VehReadyDateFromWS string `gorm:"size:50" json:"vehReadyDateFromWS,omitempty"`
	InvoiceNo          string `gorm:"size:100" json:"invoiceNo,omitempty"`
	InvoiceDate        string `gorm:"size:50" json:"invoiceDate,omitempty"`
	InvoiceBill        string `gorm:"size:2048" json:"invoiceBill,omitempty"`

	// AC-maintenance fields.
	ACUnit    string  `gorm:"size:255" json:"acUnit,omitempty"`
	EngineHrs float64 `json:"engineHrs,omitempty"`
	AdvisorNo string  `gorm:"size:100" json:"advisorNo,omitempty"`

	// Vehicle-maintenance fields.
	ServiceKM   int    `json:"serviceKM,omitempty"`
	WorkOrderNo string `gorm:"size:100" json:"workOrderNo,omitempty"`

	JobType   string `gorm:"size:50" json:"jobType,omitempty"`
	AmcNonAmc string `gorm:"size:50" json:"amcNonAmc,omitempty"`
	Remark    string `gorm:"size:4096" json:"remark,omitempty"`

	// Raw billing inputs.
	Amount          float64 `gorm:"type:decimal(12,2);index" json:"amount"`
	SpareWithoutTax float64 `gorm:"type:decimal(12,2)" json:"spareWithoutTax"`
	Labour          float64 `gorm:"type:decimal(12,2)" json:"labour"`
	OutsideLabour   float64 `gorm:"type:decimal(12,2)" json:"outsideLabour"`
	DiscountLabour  float64 `gorm:"type:decimal(5,2)" json:"discountLabour"`
	SpareWith18GST  float64 `gorm:"type:decimal(12,2)" json:"spareWith18GST"`
	SpareWith28GST  float64 `gorm:"type:decimal(12,2)" json:"spareWith28GST"`
	DiscountOnParts string  `gorm:"size:10" json:"discountOnParts"`
	GSTOnParts      string  `gorm:"size:10" json:"gstOnParts"`
	GSTOnLabour     string  `gorm:"size:10" json:"gstOnLabour"`

	// Derived billing snapshot.
	SpareDiscountAmount                  float64 `gorm:"type:decimal(12,2)" json:"spareDiscountAmount"`
	SpareAfterDiscount                   float64 `gorm:"type:decimal(12,2)" json:"spareAfterDiscount"`
	SpareGSTAmount                       float64 `gorm:"type:decimal(12,2)" json:"spareGSTAmount"`
	SpareWithGST                         float64 `gorm:"type:decimal(12,2)" json:"spareWithGST"`
	LabourAfterDiscount                  float64 `gorm:"type:decimal(12,2)" json:"labourAfterDiscount"`
	LabourGSTAmount                      float64 `gorm:"type:decimal(12,2)" json:"labourGSTAmount"`
	LabourWithGST                        float64 `gorm:"type:decimal(12,2)" json:"labourWithGST"`
	Spare18WithGST                       float64 `gorm:"type:decimal(12,2)" json:"spare18WithGST"`
	Spare28WithGST                       float64 `gorm:"type:decimal(12,2)" json:"spare28WithGST"`
	TotalInvAmountPayable                float64 `gorm:"type:decimal(12,2)" json:"totalInvAmountPayable"`
	TotalAmountWithDiscountButWithoutTax float64 `gorm:"type:decimal(12,2)" json:"totalAmountWithDiscountButWithoutTax"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Operation) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
