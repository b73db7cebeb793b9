package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnibridge/internal/app/models/dto"
	"github.com/yigit/alumnibridge/internal/pkg/apperrors"
	"github.com/yigit/alumnibridge/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. When the error
// is a CustomError its per-call message replaces the generic one.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classifyError(err)

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		detail.Message = customErr.Message
	}

	if status == 500 {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		detail.WithSeverity(dto.ErrorSeverityCritical)
	}

	c.JSON(status, dto.NewAPIError(detail))
}

// classifyError resolves the sentinel behind err into a status and a
// generic error detail
func classifyError(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		return 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrOpportunityNotFound):
		return 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Opportunity not found")
	case errors.Is(err, apperrors.ErrEventNotFound):
		return 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Event not found")
	case errors.Is(err, apperrors.ErrApplicationNotFound):
		return 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Application not found")
	case errors.Is(err, apperrors.ErrNotificationNotFound):
		return 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Notification not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return 409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrDuplicateApplication):
		return 409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Application already exists for this opportunity")
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		return 409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Already registered for this event")
	case errors.Is(err, apperrors.ErrInvalidTransition):
		return 422, dto.NewErrorDetail(dto.ErrorCodeInvalidTransition, err.Error())
	case errors.Is(err, apperrors.ErrValidationFailed):
		return 400, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return 401, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		return 403, dto.NewErrorDetail(dto.ErrorCodeAccountDisabled, "Account is disabled")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return 403, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")
	default:
		return 500, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
