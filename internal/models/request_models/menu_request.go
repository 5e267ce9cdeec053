package request_models

type UpsertMenuItemRequest struct {
	DayOfWeek         int    `json:"day_of_week" binding:"required,min=1,max=7"`
	MealType          string `json:"meal_type" binding:"required,oneof=breakfast lunch"`
	Dishes            string `json:"dishes" binding:"required"`
	Price             string `json:"price" binding:"required"`
	AvailableQuantity uint   `json:"available_quantity"`
}
