package db_models

import "github.com/google/uuid"

// MealPayment is a one-off entitlement for exactly (user, date, meal type).
// Dates are stored as YYYY-MM-DD; the composite unique index is the
// write-once guard.
type MealPayment struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_payment_user_date_meal"`
	Date     string    `gorm:"type:date;uniqueIndex:idx_payment_user_date_meal"`
	MealType MealType  `gorm:"size:20;uniqueIndex:idx_payment_user_date_meal"` // breakfast | lunch | combined
	PaidAt   int64     `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserID"`
}
