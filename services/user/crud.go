// File: services/user/crud.go
package user

import (
	"fmt"

	"estateconnect/models"
)

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	rec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("user with id %s not found", userID)
	}
	return rec, nil
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	return rec, nil
}

// UpdateProfile applies the editable profile fields and returns the updated
// record.
func (s *DefaultUserService) UpdateProfile(userID string, req models.UserUpdateRequest) (*models.User, error) {
	fields := map[string]interface{}{}
	if req.DisplayName != "" {
		fields["displayName"] = req.DisplayName
	}
	if req.Phone != "" {
		fields["phone"] = req.Phone
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}
	if req.Bio != "" {
		fields["bio"] = req.Bio
	}
	if req.Company != "" {
		fields["company"] = req.Company
	}
	if req.License != "" {
		fields["license"] = req.License
	}
	if len(fields) > 0 {
		if err := s.Repo.UpdateSetDocument(userID, fields); err != nil {
			return nil, err
		}
	}
	return s.GetUserByID(userID)
}

// DeleteUser removes an account.
func (s *DefaultUserService) DeleteUser(userID string) error {
	return s.Repo.Delete(userID)
}

// GetAllUsers retrieves every account.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// CountUsers returns the number of accounts.
func (s *DefaultUserService) CountUsers() (int64, error) {
	return s.Repo.Count()
}
