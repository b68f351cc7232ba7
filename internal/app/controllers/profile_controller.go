package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/skillcredit/backend/internal/app/models/dto"
	"github.com/skillcredit/backend/internal/app/services"
	"github.com/skillcredit/backend/internal/middleware"
	"github.com/skillcredit/backend/internal/pkg/logger"
)

// ProfileController handles profile endpoints
type ProfileController struct {
	profileService *services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger.WithComponent("profile_controller"),
	}
}

// GetProfile godoc
// @Summary Get the saved profile
// @Description Returns the caller's saved profile. 404 means the user has
// @Description not completed profile setup yet.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.StudentProfile} "Profile"
// @Failure 404 {object} dto.ErrorResponse "Profile not set up yet"
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	p, err := c.profileService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(p, "Profile retrieved"))
}

// BeginDraft godoc
// @Summary Begin an editing session
// @Description Starts a draft from the saved profile, or a blank template
// @Description for new users. Replaces any previous session.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft started"
// @Router /profile/draft [post]
func (c *ProfileController) BeginDraft(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	snapshot, err := c.profileService.BeginDraft(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DraftResponse{Profile: *snapshot}, "Draft started"))
}

// ApplyEdit godoc
// @Summary Apply a draft edit
// @Description Applies one add/update/remove/set operation to the active
// @Description editing session and returns the updated draft.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EditRequest true "Edit operation"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse} "Draft updated"
// @Failure 409 {object} dto.ErrorResponse "No active editing session"
// @Router /profile/draft/edits [post]
func (c *ProfileController) ApplyEdit(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.EditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	snapshot, err := c.profileService.ApplyEdit(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DraftResponse{Profile: *snapshot}, "Draft updated"))
}

// Submit godoc
// @Summary Save the profile
// @Description Validates, filters empty rows, recomputes hackathon stats,
// @Description saves the profile and pushes scoring inputs best effort.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SubmitResponse} "Profile saved"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "No active editing session"
// @Router /profile/submit [post]
func (c *ProfileController) Submit(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	resp, err := c.profileService.Submit(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Warn().Err(err).Str("userID", userID).Msg("Profile submit failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Profile saved"
	if !resp.ScoreSynced {
		message = "Profile saved, score sync pending"
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, message))
}

// UploadImage godoc
// @Summary Upload a profile image
// @Description Stores the image and records its URL on the profile.
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Profile image"
// @Success 200 {object} dto.APIResponse{data=dto.ImageUploadResponse} "Image stored"
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Router /profile/image [post]
func (c *ProfileController) UploadImage(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "An image file is required").
				WithField("image")))
		return
	}

	imageURL, err := c.profileService.UploadImage(ctx.Request.Context(), userID, fileHeader)
	if err != nil {
		c.logger.Warn().Err(err).Str("userID", userID).Msg("Profile image upload failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ImageUploadResponse{ImageURL: imageURL}, "Image stored"))
}
