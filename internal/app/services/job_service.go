package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillcredit/backend/internal/app/models"
	"github.com/skillcredit/backend/internal/app/models/dto"
	"github.com/skillcredit/backend/internal/app/scoring"
	"github.com/skillcredit/backend/internal/pkg/apperrors"
	"github.com/skillcredit/backend/internal/pkg/logger"
)

// JobCatalog lists and resolves job postings
type JobCatalog interface {
	List(ctx context.Context) ([]models.JobPosting, error)
	GetByID(ctx context.Context, id string) (*models.JobPosting, error)
}

// ApplicationStore persists job applications
type ApplicationStore interface {
	Create(ctx context.Context, app *models.JobApplication) error
	Exists(ctx context.Context, profileID, jobID string) (bool, error)
	ListJobIDs(ctx context.Context, profileID string) ([]string, error)
}

// ScoreFetcher retrieves credit scores from the external service
type ScoreFetcher interface {
	FetchScore(ctx context.Context, studentID int) (*scoring.Score, error)
}

// JobService lists postings with the caller's eligibility and enforces the
// score gate on applications.
type JobService struct {
	jobs        JobCatalog
	apps        ApplicationStore
	scoreClient ScoreFetcher
	logger      zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(jobs JobCatalog, apps ApplicationStore, scoreClient ScoreFetcher) *JobService {
	return &JobService{
		jobs:        jobs,
		apps:        apps,
		scoreClient: scoreClient,
		logger:      logger.WithComponent("job_service"),
	}
}

// ListJobs returns all postings annotated with the caller's eligibility and
// application status. When the score cannot be fetched the list is still
// returned with eligibility left unknown.
func (s *JobService) ListJobs(ctx context.Context, userID string) (*dto.JobListResponse, error) {
	postings, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}

	appliedIDs, err := s.apps.ListJobIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	applied := make(map[string]bool, len(appliedIDs))
	for _, id := range appliedIDs {
		applied[id] = true
	}

	var creditScore *int
	score, err := s.scoreClient.FetchScore(ctx, scoring.DeriveStudentID(userID))
	if err != nil {
		s.logger.Warn().Err(err).Str("userID", userID).Msg("Score unavailable, listing jobs without eligibility")
	} else {
		creditScore = &score.CreditScore
	}

	resp := &dto.JobListResponse{
		Jobs:        make([]dto.JobPostingResponse, 0, len(postings)),
		CreditScore: creditScore,
	}
	for _, posting := range postings {
		item := dto.JobPostingResponse{
			JobPosting: posting,
			Applied:    applied[posting.ID],
		}
		if creditScore != nil {
			eligible := scoring.IsEligible(*creditScore, posting.RequiredScore)
			item.Eligible = &eligible
		}
		resp.Jobs = append(resp.Jobs, item)
	}

	return resp, nil
}

// Apply records an application after checking the score gate. An unknown
// score blocks the application: eligibility cannot be asserted without it.
// Re-applying is rejected idempotently via the unique constraint.
func (s *JobService) Apply(ctx context.Context, userID, jobID string) (*dto.ApplyResponse, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	score, err := s.scoreClient.FetchScore(ctx, scoring.DeriveStudentID(userID))
	if err != nil {
		return nil, err
	}

	alreadyApplied, err := s.apps.Exists(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}
	if alreadyApplied {
		return nil, apperrors.ErrAlreadyApplied
	}

	if !scoring.IsEligible(score.CreditScore, job.RequiredScore) {
		return nil, apperrors.NewScoreTooLowError(fmt.Sprintf(
			"your credit score %d is below the required score %d",
			score.CreditScore, job.RequiredScore))
	}

	app := &models.JobApplication{ProfileID: userID, JobID: jobID}
	if err := s.apps.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userID", userID).Str("jobID", jobID).Int("score", score.CreditScore).Msg("Job application recorded")

	return &dto.ApplyResponse{
		JobID:     jobID,
		AppliedAt: app.AppliedAt.Format(time.RFC3339),
	}, nil
}
