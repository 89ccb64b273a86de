package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/motorlab/apexhub/internal/app/models/dto"
	"github.com/motorlab/apexhub/internal/app/services"
	"github.com/motorlab/apexhub/internal/middleware"
	"github.com/motorlab/apexhub/internal/pkg/helpers"
)

// ForumController handles forum categories, topics and replies
type ForumController struct {
	forumService *services.ForumService
}

// NewForumController creates a new ForumController
func NewForumController(forumService *services.ForumService) *ForumController {
	return &ForumController{forumService: forumService}
}

// ListCategories handles the category listing
// @Summary List forum categories
// @Tags forum
// @Produce json
// @Success 200 {array} models.ForumCategory
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forum/categories [get]
func (c *ForumController) ListCategories(ctx *gin.Context) {
	categories, err := c.forumService.ListCategories(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// CreateCategory handles category creation
// @Summary Create a forum category
// @Description Adds a category. Category names are unique.
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateForumCategoryRequest true "Category payload"
// @Success 201 {object} models.ForumCategory
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Requires moderator role"
// @Failure 409 {object} dto.ErrorResponse "Category name already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forum/categories [post]
func (c *ForumController) CreateCategory(ctx *gin.Context) {
	var req dto.CreateForumCategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	category, err := c.forumService.CreateCategory(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

// ListTopics handles the topic listing
// @Summary List forum topics
// @Description Returns topics, pinned first then by latest activity. Accepts a category filter and a title search.
// @Tags forum
// @Produce json
// @Param category_id query int false "Category filter"
// @Param search query string false "Title search"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size, max 100" default(20)
// @Success 200 {object} dto.ListResponse{items=[]models.ForumTopic}
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forum/topics [get]
func (c *ForumController) ListTopics(ctx *gin.Context) {
	page, perPage := helpers.ParsePageParams(ctx)

	var categoryID *int64
	if raw := ctx.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid category_id parameter"))
			return
		}
		categoryID = &id
	}

	topics, total, err := c.forumService.ListTopics(ctx.Request.Context(), categoryID, ctx.Query("search"), perPage, (page-1)*perPage)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Items:      topics,
		Pagination: helpers.NewPagination(page, perPage, total),
	})
}

// CreateTopic handles topic creation
// @Summary Create a forum topic
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateForumTopicRequest true "Topic payload"
// @Success 201 {object} models.ForumTopic
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forum/topics [post]
func (c *ForumController) CreateTopic(ctx *gin.Context) {
	authorID, _ := middleware.CurrentUserID(ctx)

	var req dto.CreateForumTopicRequest
	if !bindJSON(ctx, &req) {
		return
	}

	topic, err := c.forumService.CreateTopic(ctx.Request.Context(), authorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, topic)
}

// GetTopic handles a topic read with its posts
// @Summary Get a forum topic
// @Description Returns the topic with one page of posts, oldest first, and counts the view.
// @Tags forum
// @Produce json
// @Param id path int true "Topic ID"
// @Param page query int false "Post page number" default(1)
// @Param per_page query int false "Post page size, max 100" default(20)
// @Success 200 {object} dto.TopicWithPosts
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forum/topics/{id} [get]
func (c *ForumController) GetTopic(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	page, perPage := helpers.ParsePageParams(ctx)

	topic, posts, total, err := c.forumService.GetTopic(ctx.Request.Context(), id, perPage, (page-1)*perPage)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TopicWithPosts{
		Topic:      topic,
		Posts:      posts,
		Pagination: helpers.NewPagination(page, perPage, total),
	})
}

// CreatePost handles a reply within a topic
// @Summary Reply to a forum topic
// @Description Adds a post. Locked topics reject replies.
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Param request body dto.CreateForumPostRequest true "Post payload"
// @Success 201 {object} models.ForumPost
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 403 {object} dto.ErrorResponse "Topic is locked"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forum/topics/{id}/posts [post]
func (c *ForumController) CreatePost(ctx *gin.Context) {
	topicID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	authorID, _ := middleware.CurrentUserID(ctx)

	var req dto.CreateForumPostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	post, err := c.forumService.CreatePost(ctx.Request.Context(), authorID, topicID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

// PinTopic handles pinning and unpinning
// @Summary Pin or unpin a forum topic
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Param request body dto.PinTopicRequest true "Pin flag"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Requires moderator role"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forum/topics/{id}/pin [put]
func (c *ForumController) PinTopic(ctx *gin.Context) {
	topicID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.PinTopicRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.forumService.SetTopicPinned(ctx.Request.Context(), topicID, *req.Pinned); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "topic pin state updated"})
}

// LockTopic handles locking and unlocking
// @Summary Lock or unlock a forum topic
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Param request body dto.LockTopicRequest true "Lock flag"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Requires moderator role"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forum/topics/{id}/lock [put]
func (c *ForumController) LockTopic(ctx *gin.Context) {
	topicID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.LockTopicRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.forumService.SetTopicLocked(ctx.Request.Context(), topicID, *req.Locked); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "topic lock state updated"})
}
