package dto

type RegisterRequest struct {
	Username string `form:"username" binding:"required,min=3,max=30"`
	Email    string `form:"email" binding:"required,email"`
	FullName string `form:"fullName" binding:"required,min=1,max=100"`
	Password string `form:"password" binding:"required,min=6,max=64"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=64"`
}

type UpdateAccountRequest struct {
	FullName string `json:"fullName" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
}
