package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCommunityStats(t *testing.T) {
	forums := new(mockForumRepo)
	forums.On("CountTopics", mock.Anything).Return(int64(12), nil)
	forums.On("CountPosts", mock.Anything).Return(int64(88), nil)
	groups := new(mockGroupRepo)
	groups.On("CountGroups", mock.Anything).Return(int64(3), nil)
	events := new(mockEventRepo)
	events.On("CountUpcoming", mock.Anything).Return(int64(2), nil)

	svc := NewCommunityService(forums, groups, events)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalTopics)
	assert.Equal(t, int64(88), stats.TotalPosts)
	assert.Equal(t, int64(3), stats.TotalGroups)
	assert.Equal(t, int64(2), stats.UpcomingEvents)
}

func TestCommunityStatsPropagatesErrors(t *testing.T) {
	forums := new(mockForumRepo)
	forums.On("CountTopics", mock.Anything).Return(int64(0), errors.New("connection reset"))

	svc := NewCommunityService(forums, new(mockGroupRepo), new(mockEventRepo))

	_, err := svc.Stats(context.Background())
	assert.EqualError(t, err, "connection reset")
}
