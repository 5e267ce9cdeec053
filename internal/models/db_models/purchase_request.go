package db_models

import "github.com/google/uuid"

type PurchaseStatus string

const (
	PurchasePending  PurchaseStatus = "pending"
	PurchaseApproved PurchaseStatus = "approved"
	PurchaseRejected PurchaseStatus = "rejected"
)

// PurchaseRequest is raised pending by a cook and reviewed once by an admin.
type PurchaseRequest struct {
	BaseModel
	ProductName string         `gorm:"not null"`
	Quantity    uint           `gorm:"not null"`
	Unit        string         `gorm:"size:50"`
	Status      PurchaseStatus `gorm:"size:20;default:pending;index"`
	CreatedByID uuid.UUID      `gorm:"type:uuid;index"`

	CreatedBy User `gorm:"foreignKey:CreatedByID"`
}
