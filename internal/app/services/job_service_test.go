package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillcredit/backend/internal/app/models"
	"github.com/skillcredit/backend/internal/app/repositories"
	"github.com/skillcredit/backend/internal/app/scoring"
	"github.com/skillcredit/backend/internal/pkg/apperrors"
)

type fakeApplicationStore struct {
	applied map[string][]string
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{applied: make(map[string][]string)}
}

func (f *fakeApplicationStore) Create(ctx context.Context, app *models.JobApplication) error {
	for _, id := range f.applied[app.ProfileID] {
		if id == app.JobID {
			return apperrors.ErrAlreadyApplied
		}
	}
	app.AppliedAt = time.Now()
	f.applied[app.ProfileID] = append(f.applied[app.ProfileID], app.JobID)
	return nil
}

func (f *fakeApplicationStore) Exists(ctx context.Context, profileID, jobID string) (bool, error) {
	for _, id := range f.applied[profileID] {
		if id == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationStore) ListJobIDs(ctx context.Context, profileID string) ([]string, error) {
	return f.applied[profileID], nil
}

func newJobService(apps *fakeApplicationStore, client *fakeScoreClient) *JobService {
	return NewJobService(repositories.NewJobRepository(), apps, client)
}

func TestListJobsAnnotatesEligibility(t *testing.T) {
	client := &fakeScoreClient{score: &scoring.Score{CreditScore: 180}}
	svc := newJobService(newFakeApplicationStore(), client)

	resp, err := svc.ListJobs(context.Background(), "user-1")
	require.NoError(t, err)

	require.NotNil(t, resp.CreditScore)
	assert.Equal(t, 180, *resp.CreditScore)
	assert.Len(t, resp.Jobs, 8)

	for _, job := range resp.Jobs {
		require.NotNil(t, job.Eligible, "job %s", job.ID)
		assert.Equal(t, 180 >= job.RequiredScore, *job.Eligible, "job %s", job.ID)
	}
}

func TestListJobsScoreUnavailableStillListsJobs(t *testing.T) {
	client := &fakeScoreClient{fetchErr: apperrors.ErrScoreUnavailable}
	svc := newJobService(newFakeApplicationStore(), client)

	resp, err := svc.ListJobs(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Nil(t, resp.CreditScore)
	assert.Len(t, resp.Jobs, 8)
	for _, job := range resp.Jobs {
		assert.Nil(t, job.Eligible, "eligibility unknown without a score")
	}
}

func TestListJobsMarksAppliedPostings(t *testing.T) {
	apps := newFakeApplicationStore()
	apps.applied["user-1"] = []string{"3"}
	client := &fakeScoreClient{score: &scoring.Score{CreditScore: 300}}
	svc := newJobService(apps, client)

	resp, err := svc.ListJobs(context.Background(), "user-1")
	require.NoError(t, err)

	for _, job := range resp.Jobs {
		assert.Equal(t, job.ID == "3", job.Applied, "job %s", job.ID)
	}
}

func TestApplySuccess(t *testing.T) {
	apps := newFakeApplicationStore()
	client := &fakeScoreClient{score: &scoring.Score{CreditScore: 200}}
	svc := newJobService(apps, client)

	resp, err := svc.Apply(context.Background(), "user-1", "1") // requires 150
	require.NoError(t, err)

	assert.Equal(t, "1", resp.JobID)
	assert.NotEmpty(t, resp.AppliedAt)
	assert.Equal(t, []string{"1"}, apps.applied["user-1"])
}

func TestApplyAtExactThreshold(t *testing.T) {
	client := &fakeScoreClient{score: &scoring.Score{CreditScore: 150}}
	svc := newJobService(newFakeApplicationStore(), client)

	_, err := svc.Apply(context.Background(), "user-1", "1") // requires 150
	assert.NoError(t, err)
}

func TestApplyScoreTooLow(t *testing.T) {
	client := &fakeScoreClient{score: &scoring.Score{CreditScore: 149}}
	svc := newJobService(newFakeApplicationStore(), client)

	_, err := svc.Apply(context.Background(), "user-1", "1") // requires 150
	require.ErrorIs(t, err, apperrors.ErrScoreTooLow)

	// The rejection names both scores
	assert.Contains(t, err.Error(), "149")
	assert.Contains(t, err.Error(), "150")
}

func TestApplyTwiceRejected(t *testing.T) {
	apps := newFakeApplicationStore()
	client := &fakeScoreClient{score: &scoring.Score{CreditScore: 300}}
	svc := newJobService(apps, client)

	_, err := svc.Apply(context.Background(), "user-1", "1")
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), "user-1", "1")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
	assert.Len(t, apps.applied["user-1"], 1, "no duplicate rows")
}

func TestApplyUnknownJob(t *testing.T) {
	client := &fakeScoreClient{score: &scoring.Score{CreditScore: 300}}
	svc := newJobService(newFakeApplicationStore(), client)

	_, err := svc.Apply(context.Background(), "user-1", "does-not-exist")
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestApplyScoreUnavailableBlocksApplication(t *testing.T) {
	client := &fakeScoreClient{fetchErr: apperrors.ErrScoreUnavailable}
	svc := newJobService(newFakeApplicationStore(), client)

	_, err := svc.Apply(context.Background(), "user-1", "1")
	assert.ErrorIs(t, err, apperrors.ErrScoreUnavailable)
}
