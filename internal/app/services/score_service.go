package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/skillcredit/backend/internal/app/models/dto"
	"github.com/skillcredit/backend/internal/app/profile"
	"github.com/skillcredit/backend/internal/app/scoring"
	"github.com/skillcredit/backend/internal/pkg/apperrors"
	"github.com/skillcredit/backend/internal/pkg/logger"
)

// ScoreService exposes the caller's credit score with its breakdown and
// hackathon win rate.
type ScoreService struct {
	scoreClient ScoreFetcher
	profileRepo ProfileStore
	logger      zerolog.Logger
}

// NewScoreService creates a new ScoreService
func NewScoreService(scoreClient ScoreFetcher, profileRepo ProfileStore) *ScoreService {
	return &ScoreService{
		scoreClient: scoreClient,
		profileRepo: profileRepo,
		logger:      logger.WithComponent("score_service"),
	}
}

// GetCreditScore derives the student id, fetches the score, and decorates
// it with the win rate computed from the saved profile. A missing profile
// yields the score with "N/A" as the rate.
func (s *ScoreService) GetCreditScore(ctx context.Context, userID string) (*dto.CreditScoreResponse, error) {
	studentID := scoring.DeriveStudentID(userID)

	score, err := s.scoreClient.FetchScore(ctx, studentID)
	if err != nil {
		return nil, err
	}

	participation, wins := 0, 0
	row, err := s.profileRepo.GetByID(ctx, userID)
	switch {
	case err == nil:
		p := profile.FromPersisted(row)
		participation, wins = p.HackathonParticipation, p.HackathonWins
	case errors.Is(err, apperrors.ErrProfileNotFound):
		// new user, no hackathon history yet
	default:
		return nil, err
	}

	return &dto.CreditScoreResponse{
		StudentID:   studentID,
		CreditScore: score.CreditScore,
		Breakdown: dto.ScoreBreakdown{
			Hackathon:      score.Breakdown.Hackathon,
			Academic:       score.Breakdown.Academic,
			Certifications: score.Breakdown.Certifications,
			Research:       score.Breakdown.Research,
			Extras:         score.Breakdown.Extras,
		},
		WinRate: profile.WinRate(participation, wins),
	}, nil
}
