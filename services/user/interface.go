package user

import (
	userRepo "estateconnect/database/repository/user"
	"estateconnect/models"
)

// UserService handles accounts and authentication.
type UserService interface {
	// Registration / Authentication
	Register(req RegistrationRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	SignOut(userID string) error

	// User Management
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateProfile(userID string, req models.UserUpdateRequest) (*models.User, error)
	DeleteUser(userID string) error

	// Admin / Utility
	GetAllUsers() ([]models.User, error)
	CountUsers() (int64, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegistrationRequest carries the sign-up form fields.
type RegistrationRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	Company     string `json:"company,omitempty"`
	License     string `json:"license,omitempty"`
}

// AuthResponse contains the user's ID, token, and display details.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Role        string `json:"role,omitempty"`
}
