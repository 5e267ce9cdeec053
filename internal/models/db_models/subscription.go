package db_models

import "github.com/google/uuid"

// Subscription entitles a user to any meal type on every date of
// [StartDate, EndDate], inclusive both ends. EndDate defaults to
// StartDate + 30 days at purchase time.
type Subscription struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	StartDate string    `gorm:"type:date;not null"`
	EndDate   string    `gorm:"type:date;not null"`

	User User `gorm:"foreignKey:UserID"`
}
