// File: services/user/signin.go
package user

import (
	"fmt"

	"estateconnect/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies credentials and issues a fresh token. Both unknown
// email and wrong password yield the same generic message; there is no
// lockout or backoff.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(rec.ID, rec.Email, rec.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	// Replacing the stored hash invalidates any previously issued token.
	if err := s.Repo.UpdateSetDocument(rec.ID, map[string]interface{}{
		"tokenHash": utils.HashToken(token),
	}); err != nil {
		utils.GetLogger().Error("Authenticate: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:          rec.ID,
		Token:       token,
		Email:       rec.Email,
		DisplayName: rec.DisplayName,
		Role:        rec.Role,
	}, nil
}

// SignOut revokes the user's active token.
func (s *DefaultUserService) SignOut(userID string) error {
	return s.Repo.UpdateSetDocument(userID, map[string]interface{}{
		"tokenHash": "",
	})
}
