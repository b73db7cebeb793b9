package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/app/models/dto"
	"github.com/yigit/alumnibridge/internal/app/services"
	"github.com/yigit/alumnibridge/internal/middleware"
)

// EventController handles event proposals and registrations
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// CreateEvent submits a new event proposal
// @Summary Create an event
// @Description Submits an event proposal for admin approval (alumni only)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event information"
// @Success 201 {object} dto.APIResponse{data=models.Event} "Event created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewAPIError(errorDetail))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	event := &models.Event{
		Title:       req.Title,
		EventDate:   req.EventDate,
		Description: req.Description,
		Location:    req.Location,
	}

	created, err := c.eventService.Create(ctx, event, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// ListEvents returns the events visible to the caller
// @Summary List events
// @Description Admins see all events, alumni approved events plus their own, everyone else approved events. Registrations are included.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Event} "Events retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	role := models.RoleType(middleware.CurrentRole(ctx))

	events, err := c.eventService.List(ctx, role, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(events))
}

// UpdateApprovalStatus records a moderation decision
// @Summary Moderate an event
// @Description Approves or rejects a pending event (admin only)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.UpdateApprovalStatusRequest true "New approval status"
// @Success 200 {object} dto.APIResponse{data=models.Event} "Status updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Failure 422 {object} dto.APIResponse "Invalid status transition"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events/{id}/status [patch]
func (c *EventController) UpdateApprovalStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApprovalStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewAPIError(errorDetail))
		return
	}

	event, err := c.eventService.SetApprovalStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(event))
}

// RegisterForEvent records the caller attending an event
// @Summary Register for an event
// @Description Registers the authenticated student for an event (once per event)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 201 {object} dto.APIResponse{data=models.EventRegistration} "Registered"
// @Failure 400 {object} dto.APIResponse "Invalid event ID"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Failure 409 {object} dto.APIResponse "Already registered"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events/{id}/registrations [post]
func (c *EventController) RegisterForEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	registration, err := c.eventService.Register(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(registration))
}

// ListEventRegistrations returns the attendee list for an event
// @Summary List event registrations
// @Description Retrieves registrations for an event (admin or event creator only)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=[]models.EventRegistration} "Registrations retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid event ID"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events/{id}/registrations [get]
func (c *EventController) ListEventRegistrations(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	role := models.RoleType(middleware.CurrentRole(ctx))

	registrations, err := c.eventService.Registrations(ctx, id, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(registrations))
}
