package dto

import "banarts/internal/models"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required"`
	FirstName        string `json:"first_name" validate:"max=100"`
	LastName         string `json:"last_name" validate:"max=100"`
	SecurityQuestion string `json:"security_question"`
	SecurityAnswer   string `json:"security_answer"`
}

type ChangePasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email          string `json:"email" validate:"required,email"`
	NewPassword    string `json:"newPassword" validate:"required"`
	SecurityAnswer string `json:"security_answer"`
}

// UserSummary is the user object returned with a token.
type UserSummary struct {
	ID             uint            `json:"id"`
	Email          string          `json:"email"`
	Role           models.UserRole `json:"role"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	ProfilePicture string          `json:"profile_picture"`
}

func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{
		ID:             u.ID,
		Email:          u.Email,
		Role:           u.Role,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		ProfilePicture: u.ProfilePicture,
	}
}

type AuthResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

type AuthStatusResponse struct {
	Success          bool    `json:"success"`
	HasOAuthProvider bool    `json:"hasOAuthProvider"`
	OAuthProvider    *string `json:"oauthProvider"`
}
