package repositories

import (
	"github.com/motorlab/apexhub/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     *UserRepository
	ResearchRepository *ResearchRepository
	NewsRepository     *NewsRepository
	ForumRepository    *ForumRepository
	GroupRepository    *GroupRepository
	EventRepository    *EventRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(database),
		ResearchRepository: NewResearchRepository(database),
		NewsRepository:     NewNewsRepository(database),
		ForumRepository:    NewForumRepository(database),
		GroupRepository:    NewGroupRepository(database),
		EventRepository:    NewEventRepository(database),
	}
}
