package services

import (
	"context"
	"errors"
	"strings"

	"github.com/motorlab/apexhub/internal/app/models"
	"github.com/motorlab/apexhub/internal/app/models/dto"
	"github.com/motorlab/apexhub/internal/pkg/apperrors"
	"github.com/motorlab/apexhub/internal/pkg/helpers"
)

// UserService handles account listing, profiles and administration
type UserService struct {
	userRepo IUserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns active users, newest first
func (s *UserService) List(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	return s.userRepo.List(ctx, "", true, limit, offset)
}

// Search finds active users by username fragment. The query must be at
// least two characters.
func (s *UserService) Search(ctx context.Context, query string, limit, offset int) ([]models.User, int64, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, 0, apperrors.NewValidationError("search query must be at least 2 characters")
	}
	return s.userRepo.List(ctx, query, true, limit, offset)
}

// GetPublic returns an active user for unauthenticated consumption
func (s *UserService) GetPublic(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// GetProfile returns the caller's own account
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies the caller's profile changes. A username change is
// validated and checked for conflicts.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Clearing a field stores NULL rather than an empty string.
	if req.FirstName != nil {
		user.FirstName = helpers.StringPtr(strings.TrimSpace(*req.FirstName))
	}
	if req.LastName != nil {
		user.LastName = helpers.StringPtr(strings.TrimSpace(*req.LastName))
	}
	if req.Bio != nil {
		user.Bio = helpers.StringPtr(strings.TrimSpace(*req.Bio))
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = helpers.StringPtr(strings.TrimSpace(*req.ProfilePicture))
	}

	if req.Username != nil {
		newUsername := strings.TrimSpace(*req.Username)
		if newUsername != user.Username {
			if len(newUsername) < 3 {
				return nil, apperrors.NewValidationError("username must be at least 3 characters long")
			}
			existing, err := s.userRepo.GetByUsername(ctx, newUsername)
			if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
				return nil, err
			}
			if existing != nil {
				return nil, apperrors.ErrUsernameAlreadyUsed
			}
			user.Username = newUsername
		}
	}

	if err := s.updateAccount(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// updateAccount persists profile fields and, when changed, the username
func (s *UserService) updateAccount(ctx context.Context, user *models.User) error {
	return s.userRepo.UpdateProfile(ctx, user)
}

// UpdateRole changes a user's role. Admins cannot grant themselves admin
// through this path, which also blocks demote-then-lockout mistakes on the
// caller's own admin role.
func (s *UserService) UpdateRole(ctx context.Context, callerID, targetID int64, roleName string) (*models.User, error) {
	role, ok := models.ParseRole(roleName)
	if !ok {
		return nil, apperrors.NewValidationError("invalid role")
	}

	if callerID == targetID && role == models.RoleAdmin {
		return nil, apperrors.NewForbiddenError("cannot modify your own admin role")
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateRole(ctx, targetID, role); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, targetID)
}

// Activate re-enables a deactivated account
func (s *UserService) Activate(ctx context.Context, targetID int64) error {
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.userRepo.SetActive(ctx, targetID, true)
}

// Deactivate disables an account. Moderators cannot touch admins and nobody
// can deactivate themselves.
func (s *UserService) Deactivate(ctx context.Context, callerID int64, callerRole models.Role, targetID int64) error {
	if callerID == targetID {
		return apperrors.NewForbiddenError("cannot deactivate your own account")
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if target.Role.AtLeast(models.RoleAdmin) && !callerRole.AtLeast(models.RoleAdmin) {
		return apperrors.NewForbiddenError("cannot deactivate admin users")
	}

	return s.userRepo.SetActive(ctx, targetID, false)
}

// Stats returns the account total and a per-role breakdown in hierarchy
// order.
func (s *UserService) Stats(ctx context.Context) (*dto.UserStats, error) {
	byRole, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.UserStats{}
	for _, role := range models.Roles {
		count := byRole[role]
		stats.TotalUsers += count
		stats.RoleBreakdown = append(stats.RoleBreakdown, dto.RoleCount{
			Role:  string(role),
			Count: count,
		})
	}

	return stats, nil
}
