// Package seed creates the default records a fresh installation needs.
package seed

import (
	"context"
	"errors"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/motorlab/apexhub/internal/app/models"
	"github.com/motorlab/apexhub/internal/app/repositories"
	"github.com/motorlab/apexhub/internal/db"
	"github.com/motorlab/apexhub/internal/pkg/apperrors"
	"github.com/motorlab/apexhub/internal/pkg/logger"
)

// defaultCategories are created on first boot so the forum is usable
// before a moderator adds custom ones.
var defaultCategories = []models.ForumCategory{
	{Name: "General Discussion", Description: "Anything motorsport that fits nowhere else", Icon: "chat"},
	{Name: "Race Analysis", Description: "Strategy, stint and lap data breakdowns", Icon: "chart"},
	{Name: "Technical Talk", Description: "Aerodynamics, power units and regulations", Icon: "wrench"},
	{Name: "Research Corner", Description: "Discussion around published research papers", Icon: "book"},
}

// CreateDefaultData ensures the admin account and default forum
// categories exist. Errors are collected so a single failure does not
// stop the remaining seeds.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB) error {
	userRepo := repositories.NewUserRepository(database)
	forumRepo := repositories.NewForumRepository(database)

	logger.Info().Msg("Checking/Creating default data...")
	var finalErr error

	if err := seedAdminUser(ctx, userRepo); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedForumCategories(ctx, forumRepo); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedAdminUser(ctx context.Context, userRepo *repositories.UserRepository) error {
	if _, err := userRepo.GetByUsername(ctx, "admin"); err == nil {
		return nil
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		logger.Error().Err(err).Msg("Error checking for admin user")
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
		logger.Warn().Msg("ADMIN_PASSWORD not set, seeding admin with the default password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     "admin",
		Email:        "admin@apexhub.app",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
		IsVerified:   true,
	}

	id, err := userRepo.Create(ctx, admin)
	if err != nil && !errors.Is(err, apperrors.ErrConflict) {
		logger.Error().Err(err).Msg("Error creating admin user")
		return err
	}
	if id > 0 {
		logger.Info().Int64("userID", id).Msg("Admin user created")
	}
	return nil
}

func seedForumCategories(ctx context.Context, forumRepo *repositories.ForumRepository) error {
	existing, err := forumRepo.ListCategories(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing forum categories")
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	var finalErr error
	for i := range defaultCategories {
		category := defaultCategories[i]
		if _, err := forumRepo.CreateCategory(ctx, &category); err != nil && !errors.Is(err, apperrors.ErrConflict) {
			logger.Error().Err(err).Str("category", category.Name).Msg("Error creating default forum category")
			finalErr = errors.Join(finalErr, err)
		}
	}
	if finalErr == nil {
		logger.Info().Int("count", len(defaultCategories)).Msg("Default forum categories created")
	}
	return finalErr
}
