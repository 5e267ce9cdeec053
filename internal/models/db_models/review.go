package db_models

import "github.com/google/uuid"

type Review struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;index"`
	Date     string    `gorm:"type:date"`
	MealType MealType  `gorm:"size:20"` // breakfast | lunch
	Rating   int       `gorm:"check:rating >= 1 AND rating <= 5"`
	Comment  string    `gorm:"type:text"`

	User User `gorm:"foreignKey:UserID"`
}
