package request_models

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role"`
	Allergies string `json:"allergies"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Allergies *string `json:"allergies"`
	Password  *string `json:"password" binding:"omitempty,min=6"`
}
