package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motorlab/apexhub/internal/app/models/dto"
	"github.com/motorlab/apexhub/internal/app/services"
	"github.com/motorlab/apexhub/internal/middleware"
	"github.com/motorlab/apexhub/internal/pkg/helpers"
)

// NewsController handles news reading and newsroom management
type NewsController struct {
	newsService *services.NewsService
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService *services.NewsService) *NewsController {
	return &NewsController{newsService: newsService}
}

// List handles the public article listing
// @Summary List news articles
// @Description Returns published articles. Sort keys: newest, oldest, most_viewed.
// @Tags news
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Title/content search"
// @Param sort query string false "Sort key" default(newest)
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size, max 100" default(20)
// @Success 200 {object} dto.ListResponse{items=[]models.NewsArticle}
// @Failure 400 {object} dto.ErrorResponse "Invalid category"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news [get]
func (c *NewsController) List(ctx *gin.Context) {
	page, perPage := helpers.ParsePageParams(ctx)

	articles, total, err := c.newsService.List(ctx.Request.Context(),
		ctx.Query("category"), ctx.Query("search"), ctx.DefaultQuery("sort", "newest"),
		perPage, (page-1)*perPage)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Items:      articles,
		Pagination: helpers.NewPagination(page, perPage, total),
	})
}

// Get handles a single article read by ID
// @Summary Get a news article
// @Description Returns one article and counts the view. Unpublished articles are visible only to moderators.
// @Tags news
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} models.NewsArticle
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/{id} [get]
func (c *NewsController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	viewerRole, _ := middleware.CurrentRole(ctx)

	article, err := c.newsService.Get(ctx.Request.Context(), id, viewerRole)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, article)
}

// GetBySlug handles a single article read by slug
// @Summary Get a news article by slug
// @Tags news
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} models.NewsArticle
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/slug/{slug} [get]
func (c *NewsController) GetBySlug(ctx *gin.Context) {
	viewerRole, _ := middleware.CurrentRole(ctx)

	article, err := c.newsService.GetBySlug(ctx.Request.Context(), ctx.Param("slug"), viewerRole)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, article)
}

// Featured handles the featured article strip
// @Summary Featured news
// @Description Returns the latest five published articles.
// @Tags news
// @Produce json
// @Success 200 {array} models.NewsArticle
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/featured [get]
func (c *NewsController) Featured(ctx *gin.Context) {
	articles, err := c.newsService.Featured(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, articles)
}

// Create handles draft creation
// @Summary Create a news article
// @Description Creates a draft with a slug derived from the title.
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNewsRequest true "Article payload"
// @Success 201 {object} models.NewsArticle
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Requires moderator role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news [post]
func (c *NewsController) Create(ctx *gin.Context) {
	authorID, _ := middleware.CurrentUserID(ctx)

	var req dto.CreateNewsRequest
	if !bindJSON(ctx, &req) {
		return
	}

	article, err := c.newsService.Create(ctx.Request.Context(), authorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, article)
}

// Update handles article edits
// @Summary Update a news article
// @Description Edits article fields. The slug changes only when the title changes.
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param request body dto.UpdateNewsRequest true "Fields to update"
// @Success 200 {object} models.NewsArticle
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Requires moderator role"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/{id} [put]
func (c *NewsController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateNewsRequest
	if !bindJSON(ctx, &req) {
		return
	}

	article, err := c.newsService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, article)
}

// Publish handles making an article public
// @Summary Publish a news article
// @Description Publishes a draft or archived article. Publishing an already published article is a conflict.
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} models.NewsArticle
// @Failure 403 {object} dto.ErrorResponse "Requires moderator role"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 409 {object} dto.ErrorResponse "Already published"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/{id}/publish [post]
func (c *NewsController) Publish(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	article, err := c.newsService.Publish(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, article)
}

// Unpublish handles pulling an article back to draft
// @Summary Unpublish a news article
// @Description Returns the article to draft. The original publication time is retained.
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} models.NewsArticle
// @Failure 403 {object} dto.ErrorResponse "Requires moderator role"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/{id}/unpublish [post]
func (c *NewsController) Unpublish(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	article, err := c.newsService.Unpublish(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, article)
}

// Archive handles retiring an article
// @Summary Archive a news article
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} models.NewsArticle
// @Failure 403 {object} dto.ErrorResponse "Requires admin role"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/{id}/archive [post]
func (c *NewsController) Archive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	article, err := c.newsService.Archive(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, article)
}

// Delete handles permanent removal
// @Summary Delete a news article
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Requires admin role"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/{id} [delete]
func (c *NewsController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.newsService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "article deleted"})
}

// Drafts handles the newsroom draft listing
// @Summary List draft articles
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size, max 100" default(20)
// @Success 200 {object} dto.ListResponse{items=[]models.NewsArticle}
// @Failure 403 {object} dto.ErrorResponse "Requires moderator role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/drafts [get]
func (c *NewsController) Drafts(ctx *gin.Context) {
	page, perPage := helpers.ParsePageParams(ctx)

	articles, total, err := c.newsService.Drafts(ctx.Request.Context(), perPage, (page-1)*perPage)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Items:      articles,
		Pagination: helpers.NewPagination(page, perPage, total),
	})
}

// Categories handles the category reference list
// @Summary List news categories
// @Tags news
// @Produce json
// @Success 200 {array} dto.CategoryOption
// @Router /news/categories [get]
func (c *NewsController) Categories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.newsService.Categories())
}

// Stats handles the news statistics
// @Summary News statistics
// @Tags news
// @Produce json
// @Success 200 {object} dto.NewsStats
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/stats [get]
func (c *NewsController) Stats(ctx *gin.Context) {
	stats, err := c.newsService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
