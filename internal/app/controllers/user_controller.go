package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/app/models/dto"
	"github.com/yigit/alumnibridge/internal/app/services"
	"github.com/yigit/alumnibridge/internal/middleware"
)

// UserController handles profile and account moderation operations
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetUserByID retrieves a user profile
// @Summary Get user by ID
// @Description Retrieves a user profile including projects and education
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.User} "User retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid user ID"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.userService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// ListUsers retrieves users filtered by role and status
// @Summary List users
// @Description Retrieves users filtered by role and/or status (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role" Enums(STUDENT, ALUMNI, ADMIN)
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED, INACTIVE)
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Users retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid filter"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	var query dto.UserListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewAPIError(errorDetail))
		return
	}

	users, err := c.userService.List(ctx, models.RoleType(query.Role), models.UserStatus(query.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(users))
}

// UpdateProfile replaces a user's profile
// @Summary Update profile
// @Description Replaces the profile fields of a user. Users may edit their own profile, admins may edit anyone's.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateProfileRequest true "Profile data"
// @Success 200 {object} dto.APIResponse{data=models.User} "Profile updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /users/{id} [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// Only the profile owner or an admin may edit
	userID, _ := middleware.CurrentUserID(ctx)
	if userID != id && middleware.CurrentRole(ctx) != string(models.RoleAdmin) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied").
			WithDetails("You may only edit your own profile")
		ctx.JSON(http.StatusForbidden, dto.NewAPIError(errorDetail))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewAPIError(errorDetail))
		return
	}

	user := &models.User{
		ID:          id,
		Name:        req.Name,
		Department:  req.Department,
		Batch:       req.Batch,
		Company:     req.Company,
		Designation: req.Designation,
		Location:    req.Location,
		Bio:         req.Bio,
		LinkedIn:    req.LinkedIn,
		ResumeLink:  req.ResumeLink,
		Skills:      req.Skills,
	}
	for _, project := range req.Projects {
		user.Projects = append(user.Projects, models.Project{
			Title:       project.Title,
			Description: project.Description,
			Link:        project.Link,
		})
	}
	for _, education := range req.Education {
		user.Education = append(user.Education, models.Education{
			Institution: education.Institution,
			Degree:      education.Degree,
			Major:       education.Major,
			Year:        education.Year,
		})
	}

	updated, err := c.userService.UpdateProfile(ctx, user)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// UpdateUserStatus moves an account through the approval lifecycle
// @Summary Update account status
// @Description Approves, rejects or deactivates an account (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.User} "Status updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Failure 422 {object} dto.APIResponse "Invalid status transition"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /users/{id}/status [patch]
func (c *UserController) UpdateUserStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewAPIError(errorDetail))
		return
	}

	user, err := c.userService.SetStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// parseIDParam reads a positive int64 path parameter or writes a 400
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name).
			WithField(name).
			WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewAPIError(errorDetail))
		return 0, false
	}
	return id, true
}
