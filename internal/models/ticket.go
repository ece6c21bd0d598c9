package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ticket struct {
	ID            uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	TicketNumber  string     `gorm:"uniqueIndex;size:50;not null" json:"ticketNumber"`
	VehicleNumber string     `gorm:"index;size:50;not null" json:"vehicleNumber"`
	IssueType     string     `gorm:"size:50;not null" json:"issueType"`
	Priority      string     `gorm:"size:50;not null;default:medium" json:"priority"`
	Status        string     `gorm:"size:50;not null;default:open" json:"status"`
	Description   string     `gorm:"size:4096;not null" json:"description"`
	ReportedBy    string     `gorm:"size:255" json:"reportedBy"`
	AssignedTo    string     `gorm:"size:255" json:"assignedTo,omitempty"`
	EstimatedCost float64    `gorm:"type:decimal(12,2)" json:"estimatedCost,omitempty"`
	ActualCost    float64    `gorm:"type:decimal(12,2)" json:"actualCost,omitempty"`
	Resolution    string     `gorm:"size:4096" json:"resolution,omitempty"`
	ResolvedAt    *time.Time `json:"resolvedAt,omitempty"`
	ClosedAt      *time.Time `json:"closedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
