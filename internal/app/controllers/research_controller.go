package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motorlab/apexhub/internal/app/models/dto"
	"github.com/motorlab/apexhub/internal/app/services"
	"github.com/motorlab/apexhub/internal/middleware"
	"github.com/motorlab/apexhub/internal/pkg/helpers"
)

// ResearchController handles research paper submission, review and reading
type ResearchController struct {
	researchService *services.ResearchService
}

// NewResearchController creates a new ResearchController
func NewResearchController(researchService *services.ResearchService) *ResearchController {
	return &ResearchController{researchService: researchService}
}

// List handles the public paper listing
// @Summary List research papers
// @Description Returns approved papers with optional category, search and sort filters. Sort keys: newest, oldest, most_viewed, most_liked.
// @Tags research
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Title/abstract/keywords search"
// @Param sort query string false "Sort key" default(newest)
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size, max 100" default(20)
// @Success 200 {object} dto.ListResponse{items=[]models.ResearchPaper}
// @Failure 400 {object} dto.ErrorResponse "Invalid category"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research [get]
func (c *ResearchController) List(ctx *gin.Context) {
	page, perPage := helpers.ParsePageParams(ctx)

	papers, total, err := c.researchService.List(ctx.Request.Context(),
		ctx.Query("category"), ctx.Query("search"), ctx.DefaultQuery("sort", "newest"),
		perPage, (page-1)*perPage)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Items:      papers,
		Pagination: helpers.NewPagination(page, perPage, total),
	})
}

// Get handles a single paper read
// @Summary Get a research paper
// @Description Returns one paper and counts the view. Papers outside approved status are visible only to their author and moderators.
// @Tags research
// @Produce json
// @Param id path int true "Paper ID"
// @Success 200 {object} models.ResearchPaper
// @Failure 404 {object} dto.ErrorResponse "Paper not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research/{id} [get]
func (c *ResearchController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	viewerID, _ := middleware.CurrentUserID(ctx)
	viewerRole, _ := middleware.CurrentRole(ctx)

	paper, err := c.researchService.Get(ctx.Request.Context(), id, viewerID, viewerRole)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, paper)
}

// Download streams the paper file
// @Summary Download a research paper
// @Description Streams the stored file under its original filename and counts the download.
// @Tags research
// @Produce application/pdf
// @Param id path int true "Paper ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse "Paper not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research/{id}/download [get]
func (c *ResearchController) Download(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	path, filename, err := c.researchService.Download(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(path, filename)
}

// Submit handles paper submission
// @Summary Submit a research paper
// @Description Accepts a multipart form with metadata plus a PDF file. The paper enters the review queue as pending.
// @Tags research
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title, at least 10 characters"
// @Param abstract formData string true "Abstract, at least 50 characters"
// @Param keywords formData string false "Comma-separated keywords"
// @Param category formData string true "Category"
// @Param file formData file true "PDF file"
// @Success 201 {object} models.ResearchPaper
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 403 {object} dto.ErrorResponse "Requires researcher role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research [post]
func (c *ResearchController) Submit(ctx *gin.Context) {
	authorID, _ := middleware.CurrentUserID(ctx)

	var req dto.SubmitResearchRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request payload: "+err.Error()))
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("file is required"))
		return
	}

	paper, err := c.researchService.Submit(ctx.Request.Context(), authorID, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, paper)
}

// Like handles a like on an approved paper
// @Summary Like a research paper
// @Tags research
// @Produce json
// @Security BearerAuth
// @Param id path int true "Paper ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 404 {object} dto.ErrorResponse "Paper not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research/{id}/like [post]
func (c *ResearchController) Like(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.researchService.Like(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "paper liked"})
}

// Pending handles the moderator review queue
// @Summary List pending research papers
// @Description Returns papers awaiting review, oldest submission first.
// @Tags research
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size, max 100" default(20)
// @Success 200 {object} dto.ListResponse{items=[]models.ResearchPaper}
// @Failure 403 {object} dto.ErrorResponse "Requires moderator role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research/pending [get]
func (c *ResearchController) Pending(ctx *gin.Context) {
	page, perPage := helpers.ParsePageParams(ctx)

	papers, total, err := c.researchService.ListPending(ctx.Request.Context(), perPage, (page-1)*perPage)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Items:      papers,
		Pagination: helpers.NewPagination(page, perPage, total),
	})
}

// Review handles a review decision
// @Summary Review a research paper
// @Description Applies approve, reject or request_revisions. Approval publishes the paper. Re-reviewing overwrites the previous decision.
// @Tags research
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Paper ID"
// @Param request body dto.ReviewResearchRequest true "Review decision"
// @Success 200 {object} models.ResearchPaper
// @Failure 400 {object} dto.ErrorResponse "Invalid action"
// @Failure 403 {object} dto.ErrorResponse "Requires moderator role"
// @Failure 404 {object} dto.ErrorResponse "Paper not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research/{id}/review [post]
func (c *ResearchController) Review(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	reviewerID, _ := middleware.CurrentUserID(ctx)

	var req dto.ReviewResearchRequest
	if !bindJSON(ctx, &req) {
		return
	}

	paper, err := c.researchService.Review(ctx.Request.Context(), reviewerID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, paper)
}

// MyPapers handles the author's own submissions
// @Summary List own research papers
// @Description Returns the caller's papers in every status, newest first.
// @Tags research
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size, max 100" default(20)
// @Success 200 {object} dto.ListResponse{items=[]models.ResearchPaper}
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research/my-papers [get]
func (c *ResearchController) MyPapers(ctx *gin.Context) {
	authorID, _ := middleware.CurrentUserID(ctx)
	page, perPage := helpers.ParsePageParams(ctx)

	papers, total, err := c.researchService.ListByAuthor(ctx.Request.Context(), authorID, perPage, (page-1)*perPage)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Items:      papers,
		Pagination: helpers.NewPagination(page, perPage, total),
	})
}

// Categories handles the category reference list
// @Summary List research categories
// @Tags research
// @Produce json
// @Success 200 {array} dto.CategoryOption
// @Router /research/categories [get]
func (c *ResearchController) Categories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.researchService.Categories())
}

// Stats handles the research statistics
// @Summary Research statistics
// @Tags research
// @Produce json
// @Success 200 {object} dto.ResearchStats
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research/stats [get]
func (c *ResearchController) Stats(ctx *gin.Context) {
	stats, err := c.researchService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
