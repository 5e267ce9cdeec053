package request_models

type CreateReviewRequest struct {
	Date     string `json:"date" binding:"required"`
	MealType string `json:"meal_type" binding:"required,oneof=breakfast lunch"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}
