package response_models

import "github.com/google/uuid"

type MenuItemResponse struct {
	ID                uuid.UUID `json:"id"`
	DayOfWeek         int       `json:"day_of_week"`
	MealType          string    `json:"meal_type"`
	Dishes            string    `json:"dishes"`
	Price             string    `json:"price"`
	AvailableQuantity uint      `json:"available_quantity"`
}

// DayMenu groups the menu rows of one weekday.
type DayMenu struct {
	Breakfast []MenuItemResponse `json:"breakfast"`
	Lunch     []MenuItemResponse `json:"lunch"`
}

// WeeklyMenu maps day-of-week (1..7) to its breakfast/lunch items.
type WeeklyMenu map[int]DayMenu

type DeductPortionsResponse struct {
	Message     string `json:"message"`
	NewQuantity uint   `json:"new_quantity"`
}
