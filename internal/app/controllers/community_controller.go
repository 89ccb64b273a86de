package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motorlab/apexhub/internal/app/models/dto"
	"github.com/motorlab/apexhub/internal/app/services"
	"github.com/motorlab/apexhub/internal/middleware"
	"github.com/motorlab/apexhub/internal/pkg/helpers"
)

// CommunityController handles interest groups, events and community stats
type CommunityController struct {
	groupService     *services.GroupService
	eventService     *services.EventService
	communityService *services.CommunityService
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(groupService *services.GroupService, eventService *services.EventService, communityService *services.CommunityService) *CommunityController {
	return &CommunityController{
		groupService:     groupService,
		eventService:     eventService,
		communityService: communityService,
	}
}

// ListGroups handles the group listing
// @Summary List interest groups
// @Description Returns public groups ordered by member count, with an optional name search.
// @Tags community
// @Produce json
// @Param search query string false "Name search"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size, max 100" default(20)
// @Success 200 {object} dto.ListResponse{items=[]models.InterestGroup}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups [get]
func (c *CommunityController) ListGroups(ctx *gin.Context) {
	page, perPage := helpers.ParsePageParams(ctx)

	groups, total, err := c.groupService.List(ctx.Request.Context(), ctx.Query("search"), perPage, (page-1)*perPage)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Items:      groups,
		Pagination: helpers.NewPagination(page, perPage, total),
	})
}

// GetGroup handles a single group read
// @Summary Get an interest group
// @Tags community
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} models.InterestGroup
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups/{id} [get]
func (c *CommunityController) GetGroup(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	group, err := c.groupService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, group)
}

// CreateGroup handles group creation
// @Summary Create an interest group
// @Description Creates a group with the caller as its first member. Group names are unique.
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGroupRequest true "Group payload"
// @Success 201 {object} models.InterestGroup
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 409 {object} dto.ErrorResponse "Group name already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups [post]
func (c *CommunityController) CreateGroup(ctx *gin.Context) {
	creatorID, _ := middleware.CurrentUserID(ctx)

	var req dto.CreateGroupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	group, err := c.groupService.Create(ctx.Request.Context(), creatorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, group)
}

// JoinGroup handles group membership
// @Summary Join an interest group
// @Description Adds the caller to the group. Joining twice is a conflict.
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 409 {object} dto.ErrorResponse "Already a member"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups/{id}/join [post]
func (c *CommunityController) JoinGroup(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, _ := middleware.CurrentUserID(ctx)

	if err := c.groupService.Join(ctx.Request.Context(), id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "joined group"})
}

// ListEvents handles the event listing
// @Summary List community events
// @Description Returns upcoming events soonest first, with an optional type filter.
// @Tags community
// @Produce json
// @Param type query string false "Event type filter"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size, max 100" default(20)
// @Success 200 {object} dto.ListResponse{items=[]models.CommunityEvent}
// @Failure 400 {object} dto.ErrorResponse "Invalid event type"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [get]
func (c *CommunityController) ListEvents(ctx *gin.Context) {
	page, perPage := helpers.ParsePageParams(ctx)

	events, total, err := c.eventService.List(ctx.Request.Context(), ctx.Query("type"), perPage, (page-1)*perPage)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Items:      events,
		Pagination: helpers.NewPagination(page, perPage, total),
	})
}

// GetEvent handles a single event read
// @Summary Get a community event
// @Tags community
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.CommunityEvent
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id} [get]
func (c *CommunityController) GetEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	event, err := c.eventService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// CreateEvent handles event creation
// @Summary Create a community event
// @Description Schedules an event. Times are RFC 3339 and the start must be in the future.
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event payload"
// @Success 201 {object} models.CommunityEvent
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [post]
func (c *CommunityController) CreateEvent(ctx *gin.Context) {
	organizerID, _ := middleware.CurrentUserID(ctx)

	var req dto.CreateEventRequest
	if !bindJSON(ctx, &req) {
		return
	}

	event, err := c.eventService.Create(ctx.Request.Context(), organizerID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// AttendEvent handles event registration
// @Summary Attend a community event
// @Description Registers the caller. A full event rejects with 400, a duplicate registration with 409.
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Event is full"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id}/attend [post]
func (c *CommunityController) AttendEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, _ := middleware.CurrentUserID(ctx)

	if err := c.eventService.Attend(ctx.Request.Context(), id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "registered for event"})
}

// Stats handles the community statistics
// @Summary Community statistics
// @Tags community
// @Produce json
// @Success 200 {object} dto.CommunityStats
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /community/stats [get]
func (c *CommunityController) Stats(ctx *gin.Context) {
	stats, err := c.communityService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
