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

// ScoreController handles credit score endpoints
type ScoreController struct {
	scoreService *services.ScoreService
	logger       zerolog.Logger
}

// NewScoreController creates a new ScoreController
func NewScoreController(scoreService *services.ScoreService) *ScoreController {
	return &ScoreController{
		scoreService: scoreService,
		logger:       logger.WithComponent("score_controller"),
	}
}

// GetCreditScore godoc
// @Summary Get the credit score
// @Description Returns the caller's credit score with its category breakdown
// @Description and hackathon win rate.
// @Tags score
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CreditScoreResponse} "Credit score"
// @Failure 502 {object} dto.ErrorResponse "Score service unavailable"
// @Router /score [get]
func (c *ScoreController) GetCreditScore(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	resp, err := c.scoreService.GetCreditScore(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Warn().Err(err).Str("userID", userID).Msg("Credit score fetch failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Credit score retrieved"))
}
