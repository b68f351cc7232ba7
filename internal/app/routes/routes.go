package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/skillcredit/backend/internal/app/controllers"
	"github.com/skillcredit/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	jobController *controllers.JobController,
	scoreController *controllers.ScoreController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		profile := authenticated.Group("/profile")
		{
			profile.GET("", profileController.GetProfile)
			profile.POST("/draft", profileController.BeginDraft)
			profile.POST("/draft/edits", profileController.ApplyEdit)
			profile.POST("/submit", profileController.Submit)
			profile.POST("/image", profileController.UploadImage)
		}

		authenticated.GET("/score", scoreController.GetCreditScore)

		jobs := authenticated.Group("/jobs")
		{
			jobs.GET("", jobController.ListJobs)
			jobs.POST("/:id/apply", jobController.Apply)
		}
	}
}
