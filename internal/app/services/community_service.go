package services

import (
	"context"

	"github.com/motorlab/apexhub/internal/app/models/dto"
)

// CommunityService aggregates cross-cutting community numbers
type CommunityService struct {
	forumRepo IForumRepository
	groupRepo IGroupRepository
	eventRepo IEventRepository
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(forumRepo IForumRepository, groupRepo IGroupRepository, eventRepo IEventRepository) *CommunityService {
	return &CommunityService{
		forumRepo: forumRepo,
		groupRepo: groupRepo,
		eventRepo: eventRepo,
	}
}

// Stats assembles the community statistics
func (s *CommunityService) Stats(ctx context.Context) (*dto.CommunityStats, error) {
	topics, err := s.forumRepo.CountTopics(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.forumRepo.CountPosts(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.groupRepo.CountGroups(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.CountUpcoming(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.CommunityStats{
		TotalTopics:    topics,
		TotalPosts:     posts,
		TotalGroups:    groups,
		UpcomingEvents: events,
	}, nil
}
