package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motorlab/apexhub/internal/app/models/dto"
	"github.com/motorlab/apexhub/internal/app/services"
	"github.com/motorlab/apexhub/internal/middleware"
	"github.com/motorlab/apexhub/internal/pkg/helpers"
)

// UserController handles user directory and profile operations
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// List handles the user directory listing
// @Summary List users
// @Description Returns active users, newest first.
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size, max 100" default(20)
// @Success 200 {object} dto.ListResponse{items=[]dto.PublicUser}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	page, perPage := helpers.ParsePageParams(ctx)

	users, total, err := c.userService.List(ctx.Request.Context(), perPage, (page-1)*perPage)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Items:      dto.NewPublicUsers(users),
		Pagination: helpers.NewPagination(page, perPage, total),
	})
}

// Search handles username search
// @Summary Search users
// @Description Finds active users whose username contains the query. The query needs at least 2 characters.
// @Tags users
// @Produce json
// @Param q query string true "Search query"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size, max 50" default(10)
// @Success 200 {object} dto.ListResponse{items=[]dto.PublicUser}
// @Failure 400 {object} dto.ErrorResponse "Query too short"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/search [get]
func (c *UserController) Search(ctx *gin.Context) {
	page, perPage := helpers.ParseSearchPageParams(ctx)

	users, total, err := c.userService.Search(ctx.Request.Context(), ctx.Query("q"), perPage, (page-1)*perPage)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Items:      dto.NewPublicUsers(users),
		Pagination: helpers.NewPagination(page, perPage, total),
	})
}

// Get handles public profile lookup
// @Summary Get a user
// @Description Returns the public profile of an active user.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.PublicUser
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.userService.GetPublic(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPublicUser(user))
}

// GetProfile handles the caller's own profile
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	user, err := c.userService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// UpdateProfile handles profile self-edits
// @Summary Update own profile
// @Description Updates profile fields. A username change conflicts when the name is taken.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 409 {object} dto.ErrorResponse "Username already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	var req dto.UpdateProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// UpdateRole handles admin role changes
// @Summary Change a user's role
// @Description Admins assign any valid role. An admin cannot change their own role.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateRoleRequest true "New role"
// @Success 200 {object} models.User
// @Failure 400 {object} dto.ErrorResponse "Invalid role"
// @Failure 403 {object} dto.ErrorResponse "Cannot modify own admin role"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id}/role [put]
func (c *UserController) UpdateRole(ctx *gin.Context) {
	targetID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	callerID, _ := middleware.CurrentUserID(ctx)

	var req dto.UpdateRoleRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.UpdateRole(ctx.Request.Context(), callerID, targetID, req.Role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// Activate handles account reactivation
// @Summary Activate a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id}/activate [post]
func (c *UserController) Activate(ctx *gin.Context) {
	targetID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.Activate(ctx.Request.Context(), targetID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "user activated"})
}

// Deactivate handles account deactivation
// @Summary Deactivate a user
// @Description Moderators deactivate accounts. Self-deactivation is rejected, and only admins can deactivate admins.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Deactivation not permitted"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id}/deactivate [post]
func (c *UserController) Deactivate(ctx *gin.Context) {
	targetID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	callerID, _ := middleware.CurrentUserID(ctx)
	callerRole, _ := middleware.CurrentRole(ctx)

	if err := c.userService.Deactivate(ctx.Request.Context(), callerID, callerRole, targetID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "user deactivated"})
}

// Stats handles account statistics
// @Summary Account statistics
// @Description Total accounts with a per-role breakdown.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserStats
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/stats [get]
func (c *UserController) Stats(ctx *gin.Context) {
	stats, err := c.userService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
