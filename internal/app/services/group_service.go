package services

import (
	"context"
	"strings"

	"github.com/motorlab/apexhub/internal/app/models"
	"github.com/motorlab/apexhub/internal/app/models/dto"
	"github.com/motorlab/apexhub/internal/pkg/apperrors"
	"github.com/motorlab/apexhub/internal/pkg/logger"
)

// GroupService handles interest groups and memberships
type GroupService struct {
	groupRepo IGroupRepository
}

// NewGroupService creates a new GroupService
func NewGroupService(groupRepo IGroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

// List returns public groups, optionally filtered by name search
func (s *GroupService) List(ctx context.Context, search string, limit, offset int) ([]models.InterestGroup, int64, error) {
	return s.groupRepo.List(ctx, search, limit, offset)
}

// Get returns one group
func (s *GroupService) Get(ctx context.Context, id int64) (*models.InterestGroup, error) {
	return s.groupRepo.GetByID(ctx, id)
}

// Create makes a group with the creator as its first member
func (s *GroupService) Create(ctx context.Context, creatorID int64, req *dto.CreateGroupRequest) (*models.InterestGroup, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 3 {
		return nil, apperrors.NewValidationError("group name must be at least 3 characters long")
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	group := &models.InterestGroup{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Avatar:      strings.TrimSpace(req.Avatar),
		IsPublic:    isPublic,
		CreatorID:   creatorID,
	}

	id, err := s.groupRepo.Create(ctx, group)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("group_id", id).Int64("creator_id", creatorID).Msg("Interest group created")

	return s.groupRepo.GetByID(ctx, id)
}

// Join adds the caller to a group. Joining twice is a conflict; the
// membership check here is a fast path, the insert transaction still
// rejects a racing duplicate.
func (s *GroupService) Join(ctx context.Context, groupID, userID int64) error {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return err
	}
	member, err := s.groupRepo.IsMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if member {
		return apperrors.ErrAlreadyMember
	}
	return s.groupRepo.AddMember(ctx, groupID, userID)
}
