package auth

type RegisterRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Name        string  `json:"name" binding:"required"`
	Password    string  `json:"password" binding:"required,min=8"`
	Role        string  `json:"role" binding:"required,oneof=admin manager operator"`
	PersonnelID *string `json:"personnel_id" binding:"omitempty,uuid"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	ID          string  `json:"id"`
	PersonnelID *string `json:"personnel_id,omitempty"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
}
