package db_models

import "github.com/google/uuid"

// MealIssued records that a meal was physically handed out. Write-once per
// (user, date, meal type): the unique index, not application logic, is what
// keeps concurrent issuance from double-recording.
type MealIssued struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_issued_user_date_meal"`
	Date     string    `gorm:"type:date;uniqueIndex:idx_issued_user_date_meal"`
	MealType MealType  `gorm:"size:20;uniqueIndex:idx_issued_user_date_meal"`
	IssuedAt int64     `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserID"`
}
