// File: services/user/signup.go
package user

import (
	"fmt"
	"time"

	"estateconnect/models"
	"estateconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// Register validates basic data, checks for duplicates, creates the account,
// and signs the user in.
func (s *DefaultUserService) Register(req RegistrationRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.DisplayName == "" {
		return nil, fmt.Errorf("all fields are required")
	}
	switch req.Role {
	case models.RoleBuyer, models.RoleSeller, models.RoleArchitect:
	case "":
		req.Role = models.RoleBuyer
	default:
		return nil, fmt.Errorf("unknown account type %q", req.Role)
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	rec := &models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		DisplayName:  req.DisplayName,
		Role:         req.Role,
		Phone:        req.Phone,
		Location:     req.Location,
		Company:      req.Company,
		License:      req.License,
	}

	token, err := utils.GenerateToken(rec.ID, rec.Email, rec.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}
	rec.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(rec); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &AuthResponse{
		ID:          rec.ID,
		Token:       token,
		Email:       rec.Email,
		DisplayName: rec.DisplayName,
		Role:        rec.Role,
	}, nil
}
