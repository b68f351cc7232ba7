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

// JobController handles job posting endpoints
type JobController struct {
	jobService *services.JobService
	logger     zerolog.Logger
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService) *JobController {
	return &JobController{
		jobService: jobService,
		logger:     logger.WithComponent("job_controller"),
	}
}

// ListJobs godoc
// @Summary List job postings
// @Description Returns all postings annotated with the caller's eligibility.
// @Description Eligibility is omitted when the score service is unavailable.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.JobListResponse} "Postings"
// @Router /jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	resp, err := c.jobService.ListJobs(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Job postings retrieved"))
}

// Apply godoc
// @Summary Apply to a job posting
// @Description Records an application when the caller's credit score meets
// @Description the posting's requirement. Re-applying is rejected.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job posting id"
// @Success 200 {object} dto.APIResponse{data=dto.ApplyResponse} "Application recorded"
// @Failure 403 {object} dto.ErrorResponse "Credit score below the required score"
// @Failure 404 {object} dto.ErrorResponse "Job posting not found"
// @Failure 409 {object} dto.ErrorResponse "Already applied"
// @Failure 502 {object} dto.ErrorResponse "Score service unavailable"
// @Router /jobs/{id}/apply [post]
func (c *JobController) Apply(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	jobID := ctx.Param("id")

	resp, err := c.jobService.Apply(ctx.Request.Context(), userID, jobID)
	if err != nil {
		c.logger.Warn().Err(err).Str("userID", userID).Str("jobID", jobID).Msg("Job application rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Application recorded"))
}
