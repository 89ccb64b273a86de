package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motorlab/apexhub/internal/app/controllers"
	"github.com/motorlab/apexhub/internal/app/models"
	"github.com/motorlab/apexhub/internal/middleware"
)

// SetupRouter configures all application routes under the /api prefix
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	researchController *controllers.ResearchController,
	newsController *controllers.NewsController,
	forumController *controllers.ForumController,
	communityController *controllers.CommunityController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- User directory (public) ---
	users := api.Group("/users")
	{
		users.GET("", userController.List)
		users.GET("/search", userController.Search)
		users.GET("/:id", userController.Get)

		// Admin role management
		usersAdmin := users.Group("")
		usersAdmin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
		{
			usersAdmin.PUT("/:id/role", userController.UpdateRole)
		}

		// Moderator account management
		usersModerator := users.Group("")
		usersModerator.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleModerator))
		{
			usersModerator.GET("/stats", userController.Stats)
			usersModerator.POST("/:id/activate", userController.Activate)
			usersModerator.POST("/:id/deactivate", userController.Deactivate)
		}
	}

	// --- Own profile ---
	profile := api.Group("/profile")
	profile.Use(authMiddleware.JWTAuth())
	{
		profile.GET("", userController.GetProfile)
		profile.PUT("", userController.UpdateProfile)
	}

	// --- Research papers ---
	research := api.Group("/research")
	{
		research.GET("", researchController.List)
		research.GET("/categories", researchController.Categories)
		research.GET("/stats", researchController.Stats)
		research.GET("/:id", researchController.Get)
		research.GET("/:id/download", researchController.Download)

		researchAuth := research.Group("")
		researchAuth.Use(authMiddleware.JWTAuth())
		{
			researchAuth.POST("/:id/like", researchController.Like)
			researchAuth.GET("/my-papers", researchController.MyPapers)

			researchResearcher := researchAuth.Group("")
			researchResearcher.Use(authMiddleware.RoleRequired(models.RoleResearcher))
			{
				researchResearcher.POST("", researchController.Submit)
			}

			researchModerator := researchAuth.Group("")
			researchModerator.Use(authMiddleware.RoleRequired(models.RoleModerator))
			{
				researchModerator.GET("/pending", researchController.Pending)
				researchModerator.POST("/:id/review", researchController.Review)
			}
		}
	}

	// --- News ---
	news := api.Group("/news")
	{
		news.GET("", newsController.List)
		news.GET("/featured", newsController.Featured)
		news.GET("/categories", newsController.Categories)
		news.GET("/stats", newsController.Stats)
		news.GET("/slug/:slug", newsController.GetBySlug)
		news.GET("/:id", newsController.Get)

		newsModerator := news.Group("")
		newsModerator.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleModerator))
		{
			newsModerator.GET("/drafts", newsController.Drafts)
			newsModerator.POST("", newsController.Create)
			newsModerator.PUT("/:id", newsController.Update)
			newsModerator.POST("/:id/publish", newsController.Publish)
			newsModerator.POST("/:id/unpublish", newsController.Unpublish)
		}

		newsAdmin := news.Group("")
		newsAdmin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
		{
			newsAdmin.POST("/:id/archive", newsController.Archive)
			newsAdmin.DELETE("/:id", newsController.Delete)
		}
	}

	// --- Forum ---
	forum := api.Group("/forum")
	{
		forum.GET("/categories", forumController.ListCategories)
		forum.GET("/topics", forumController.ListTopics)
		forum.GET("/topics/:id", forumController.GetTopic)

		forumAuth := forum.Group("")
		forumAuth.Use(authMiddleware.JWTAuth())
		{
			forumAuth.POST("/topics", forumController.CreateTopic)
			forumAuth.POST("/topics/:id/posts", forumController.CreatePost)

			forumModerator := forumAuth.Group("")
			forumModerator.Use(authMiddleware.RoleRequired(models.RoleModerator))
			{
				forumModerator.POST("/categories", forumController.CreateCategory)
				forumModerator.PUT("/topics/:id/pin", forumController.PinTopic)
				forumModerator.PUT("/topics/:id/lock", forumController.LockTopic)
			}
		}
	}

	// --- Interest groups ---
	groups := api.Group("/groups")
	{
		groups.GET("", communityController.ListGroups)
		groups.GET("/:id", communityController.GetGroup)

		groupsAuth := groups.Group("")
		groupsAuth.Use(authMiddleware.JWTAuth())
		{
			groupsAuth.POST("", communityController.CreateGroup)
			groupsAuth.POST("/:id/join", communityController.JoinGroup)
		}
	}

	// --- Events ---
	events := api.Group("/events")
	{
		events.GET("", communityController.ListEvents)
		events.GET("/:id", communityController.GetEvent)

		eventsAuth := events.Group("")
		eventsAuth.Use(authMiddleware.JWTAuth())
		{
			eventsAuth.POST("", communityController.CreateEvent)
			eventsAuth.POST("/:id/attend", communityController.AttendEvent)
		}
	}

	// --- Misc ---
	api.GET("/community/stats", communityController.Stats)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
