package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnibridge/internal/app/controllers"
	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	opportunityController *controllers.OpportunityController,
	eventController *controllers.EventController,
	applicationController *controllers.ApplicationController,
	notificationController *controllers.NotificationController,
	analyticsController *controllers.AnalyticsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	adminOnly := authMiddleware.RoleRequired(string(models.RoleAdmin))
	alumniOnly := authMiddleware.RoleRequired(string(models.RoleAlumni))
	studentOnly := authMiddleware.RoleRequired(string(models.RoleStudent))

	users := authenticated.Group("/users")
	{
		users.GET("/:id", userController.GetUserByID)
		users.PUT("/:id", userController.UpdateProfile) // ownership enforced in controller
		users.GET("", adminOnly, userController.ListUsers)
		users.PATCH("/:id/status", adminOnly, userController.UpdateUserStatus)
	}

	opportunities := authenticated.Group("/opportunities")
	{
		opportunities.GET("", opportunityController.ListOpportunities)
		opportunities.GET("/:id", opportunityController.GetOpportunityByID)
		opportunities.POST("", alumniOnly, opportunityController.CreateOpportunity)
		opportunities.PATCH("/:id/status", adminOnly, opportunityController.UpdateApprovalStatus)
		opportunities.DELETE("/:id", adminOnly, opportunityController.DeleteOpportunity)
	}

	events := authenticated.Group("/events")
	{
		events.GET("", eventController.ListEvents)
		events.POST("", alumniOnly, eventController.CreateEvent)
		events.PATCH("/:id/status", adminOnly, eventController.UpdateApprovalStatus)
		events.POST("/:id/registrations", studentOnly, eventController.RegisterForEvent)
		events.GET("/:id/registrations", eventController.ListEventRegistrations) // ownership enforced in service
	}

	applications := authenticated.Group("/applications")
	{
		applications.GET("", applicationController.ListApplications)
		applications.POST("", studentOnly, applicationController.CreateApplication)
		applications.PATCH("/:id/recommendation", alumniOnly, applicationController.UpdateRecommendation)
		applications.PATCH("/:id/status", adminOnly, applicationController.UpdateFinalStatus)
	}

	notifications := authenticated.Group("/notifications")
	{
		notifications.GET("", notificationController.ListNotifications)
		notifications.GET("/stream", notificationController.StreamNotifications)
		notifications.PATCH("/:id/read", notificationController.MarkNotificationRead)
	}

	authenticated.GET("/analytics", adminOnly, analyticsController.GetAnalytics)
}
