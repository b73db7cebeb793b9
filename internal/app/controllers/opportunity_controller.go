package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/app/models/dto"
	"github.com/yigit/alumnibridge/internal/app/services"
	"github.com/yigit/alumnibridge/internal/middleware"
)

// OpportunityController handles job and mentorship posting operations
type OpportunityController struct {
	opportunityService *services.OpportunityService
}

// NewOpportunityController creates a new OpportunityController
func NewOpportunityController(opportunityService *services.OpportunityService) *OpportunityController {
	return &OpportunityController{
		opportunityService: opportunityService,
	}
}

// CreateOpportunity submits a new posting
// @Summary Create an opportunity
// @Description Submits a job or mentorship posting for admin approval (alumni only)
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOpportunityRequest true "Posting information"
// @Success 201 {object} dto.APIResponse{data=models.Opportunity} "Posting created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /opportunities [post]
func (c *OpportunityController) CreateOpportunity(ctx *gin.Context) {
	var req dto.CreateOpportunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid opportunity data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewAPIError(errorDetail))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	opportunity := &models.Opportunity{
		Type:           req.Type,
		Title:          req.Title,
		Description:    req.Description,
		Company:        req.Company,
		Location:       req.Location,
		RequiredSkills: req.RequiredSkills,
		Deadline:       req.Deadline,
	}

	created, err := c.opportunityService.Create(ctx, opportunity, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// ListOpportunities returns the postings visible to the caller
// @Summary List opportunities
// @Description Admins see all postings, alumni their own, everyone else approved postings
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Opportunity} "Postings retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /opportunities [get]
func (c *OpportunityController) ListOpportunities(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	role := models.RoleType(middleware.CurrentRole(ctx))

	opportunities, err := c.opportunityService.List(ctx, role, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(opportunities))
}

// GetOpportunityByID retrieves a single posting
// @Summary Get opportunity by ID
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID"
// @Success 200 {object} dto.APIResponse{data=models.Opportunity} "Posting retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid opportunity ID"
// @Failure 404 {object} dto.APIResponse "Opportunity not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /opportunities/{id} [get]
func (c *OpportunityController) GetOpportunityByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	role := models.RoleType(middleware.CurrentRole(ctx))

	opportunity, err := c.opportunityService.GetByID(ctx, id, role, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(opportunity))
}

// UpdateApprovalStatus records a moderation decision
// @Summary Moderate an opportunity
// @Description Approves or rejects a pending posting (admin only)
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID"
// @Param request body dto.UpdateApprovalStatusRequest true "New approval status"
// @Success 200 {object} dto.APIResponse{data=models.Opportunity} "Status updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Opportunity not found"
// @Failure 422 {object} dto.APIResponse "Invalid status transition"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /opportunities/{id}/status [patch]
func (c *OpportunityController) UpdateApprovalStatus(ctx *gin.Context) {
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

	opportunity, err := c.opportunityService.SetApprovalStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(opportunity))
}

// DeleteOpportunity removes a posting
// @Summary Delete an opportunity
// @Description Removes a posting and its applications (admin only)
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Posting deleted"
// @Failure 400 {object} dto.APIResponse "Invalid opportunity ID"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Opportunity not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /opportunities/{id} [delete]
func (c *OpportunityController) DeleteOpportunity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.opportunityService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Opportunity deleted"}))
}
