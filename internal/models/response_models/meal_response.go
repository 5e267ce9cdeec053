package response_models

import "github.com/google/uuid"

type IssuedMeal struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	MealType string    `json:"meal_type"`
	Date     string    `json:"date"`
}

type IssueMealResult struct {
	Created bool
	Issued  IssuedMeal
}

type SubscriptionResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
