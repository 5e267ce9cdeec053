package request_models

type PayMealRequest struct {
	Date     string `json:"date" binding:"required"`
	MealType string `json:"meal_type" binding:"required,oneof=breakfast lunch combined"`
}

type IssueMealForUserRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	MealType string `json:"meal_type" binding:"required,oneof=breakfast lunch combined"`
	Date     string `json:"date" binding:"required"`
}

// Inventory deduction: portions handed out from a menu item slot.
type DeductPortionsRequest struct {
	MealID   string `json:"meal_id" binding:"required"`
	Quantity uint   `json:"quantity"`
}
