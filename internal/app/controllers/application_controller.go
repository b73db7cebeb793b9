package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/app/models/dto"
	"github.com/yigit/alumnibridge/internal/app/repositories"
	"github.com/yigit/alumnibridge/internal/app/services"
	"github.com/yigit/alumnibridge/internal/middleware"
)

// ApplicationController handles the application pipeline
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// CreateApplication submits an application
// @Summary Apply to an opportunity
// @Description Submits the authenticated student's application (once per opportunity)
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateApplicationRequest true "Target opportunity"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Opportunity not found"
// @Failure 409 {object} dto.APIResponse "Already applied"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /applications [post]
func (c *ApplicationController) CreateApplication(ctx *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid application data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewAPIError(errorDetail))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	application, err := c.applicationService.Apply(ctx, req.OpportunityID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(application))
}

// ListApplications returns applications by opportunity or student
// @Summary List applications
// @Description Filters by opportunityId or studentId. The unfiltered listing is admin only. Students may list their own applications, alumni the applications to their postings.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param opportunityId query int false "Filter by opportunity"
// @Param studentId query int false "Filter by student"
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid query parameters"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /applications [get]
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	var query dto.ApplicationListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewAPIError(errorDetail))
		return
	}

	// The full collection is reserved for admins
	if query.OpportunityID == 0 && query.StudentID == 0 &&
		middleware.CurrentRole(ctx) != string(models.RoleAdmin) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied").
			WithDetails("A filter is required for non-admin listings")
		ctx.JSON(http.StatusForbidden, dto.NewAPIError(errorDetail))
		return
	}

	applications, err := c.applicationService.List(ctx, repositories.ApplicationFilter{
		OpportunityID: query.OpportunityID,
		StudentID:     query.StudentID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}

// UpdateRecommendation records the alumni screening verdict
// @Summary Recommend an applicant
// @Description Sets the recommendation and comment on an application. Restricted to the opportunity's creator.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.RecommendRequest true "Verdict"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Recommendation recorded"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Application not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /applications/{id}/recommendation [patch]
func (c *ApplicationController) UpdateRecommendation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RecommendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid recommendation data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewAPIError(errorDetail))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	application, err := c.applicationService.Recommend(ctx, id, userID, req.Recommendation, req.Comment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application))
}

// UpdateFinalStatus records the admin decision
// @Summary Finalize an application
// @Description Shortlists or decides an application (admin only). Decisions only move forward.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.FinalizeRequest true "New decision status"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Decision recorded"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Application not found"
// @Failure 422 {object} dto.APIResponse "Invalid status transition"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /applications/{id}/status [patch]
func (c *ApplicationController) UpdateFinalStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.FinalizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewAPIError(errorDetail))
		return
	}

	application, err := c.applicationService.Finalize(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application))
}
