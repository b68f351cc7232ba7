package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillcredit/backend/internal/app/models"
	"github.com/skillcredit/backend/internal/app/models/dto"
	"github.com/skillcredit/backend/internal/app/profile"
	"github.com/skillcredit/backend/internal/app/scoring"
	"github.com/skillcredit/backend/internal/pkg/apperrors"
)

type fakeProfileStore struct {
	rows      map[string]*profile.Persisted
	upsertErr error
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{rows: make(map[string]*profile.Persisted)}
}

func (f *fakeProfileStore) GetByID(ctx context.Context, id string) (*profile.Persisted, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	return row, nil
}

func (f *fakeProfileStore) Upsert(ctx context.Context, row *profile.Persisted) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.rows[row.ID] = row
	return nil
}

func (f *fakeProfileStore) UpdateImage(ctx context.Context, id, imageURL string) error {
	row, ok := f.rows[id]
	if !ok {
		return apperrors.ErrProfileNotFound
	}
	row.ProfileImage = &imageURL
	return nil
}

type fakeScoreClient struct {
	pushes   []*scoring.PushRequest
	pushErr  error
	score    *scoring.Score
	fetchErr error
}

func (f *fakeScoreClient) PushScore(ctx context.Context, push *scoring.PushRequest) error {
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushes = append(f.pushes, push)
	return nil
}

func (f *fakeScoreClient) FetchScore(ctx context.Context, studentID int) (*scoring.Score, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.score, nil
}

type fakeImageStore struct {
	url     string
	err     error
	deleted []string
}

func (f *fakeImageStore) SaveUserFile(fileHeader *multipart.FileHeader, userID string) (string, error) {
	return f.url, f.err
}

func (f *fakeImageStore) DeleteFile(fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}

func newProfileService(store *fakeProfileStore, client *fakeScoreClient) *ProfileService {
	return NewProfileService(store, client, &fakeImageStore{url: "user-1/1-photo.png"})
}

func setScalar(t *testing.T, svc *ProfileService, userID, field, value string) {
	t.Helper()
	_, err := svc.ApplyEdit(context.Background(), userID, &dto.EditRequest{
		Action: dto.EditActionSetField, Field: field, Value: value,
	})
	require.NoError(t, err)
}

func requiredScalars() map[string]string {
	return map[string]string{
		"fullName":    "Asha Rao",
		"collegeName": "IIT Madras",
		"course":      "B.Tech",
		"degree":      "Computer Science",
		"address":     "Chennai",
	}
}

func fillRequiredScalars(t *testing.T, svc *ProfileService, userID string) {
	t.Helper()
	for field, value := range requiredScalars() {
		setScalar(t, svc, userID, field, value)
	}
}

func TestGetProfileNewUser(t *testing.T) {
	svc := newProfileService(newFakeProfileStore(), &fakeScoreClient{})

	_, err := svc.GetProfile(context.Background(), "user-1")
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestBeginDraftNewUserSeedsBlankRows(t *testing.T) {
	svc := newProfileService(newFakeProfileStore(), &fakeScoreClient{})

	snapshot, err := svc.BeginDraft(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", snapshot.ID)
	assert.Len(t, snapshot.Certifications, 1)
	assert.Len(t, snapshot.Projects, 1)
	assert.True(t, snapshot.Projects[0].Ongoing)
}

func TestApplyEditWithoutDraft(t *testing.T) {
	svc := newProfileService(newFakeProfileStore(), &fakeScoreClient{})

	_, err := svc.ApplyEdit(context.Background(), "user-1", &dto.EditRequest{
		Action: dto.EditActionSetField, Field: "fullName", Value: "Asha",
	})
	assert.ErrorIs(t, err, apperrors.ErrNoActiveDraft)
}

func TestSubmitWithoutDraft(t *testing.T) {
	svc := newProfileService(newFakeProfileStore(), &fakeScoreClient{})

	_, err := svc.Submit(context.Background(), "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNoActiveDraft)
}

func TestSubmitFullPipeline(t *testing.T) {
	store := newFakeProfileStore()
	client := &fakeScoreClient{}
	svc := newProfileService(store, client)

	snapshot, err := svc.BeginDraft(context.Background(), "user-1")
	require.NoError(t, err)

	fillRequiredScalars(t, svc, "user-1")
	setScalar(t, svc, "user-1", "cgpa", "8.7")
	setScalar(t, svc, "user-1", "degreeCompleted", "true")

	// Fill the seeded hackathon row and add a blank one that must be
	// filtered out on submit
	hackID := snapshot.HackathonDetails[0].ID
	_, err = svc.ApplyEdit(context.Background(), "user-1", &dto.EditRequest{
		Action: dto.EditActionUpdate, Collection: dto.CollectionHackathonDetails,
		ItemID: hackID, Field: "name", Value: "Smart India Hackathon",
	})
	require.NoError(t, err)
	_, err = svc.ApplyEdit(context.Background(), "user-1", &dto.EditRequest{
		Action: dto.EditActionUpdate, Collection: dto.CollectionHackathonDetails,
		ItemID: hackID, Field: "won", Value: "true",
	})
	require.NoError(t, err)
	_, err = svc.ApplyEdit(context.Background(), "user-1", &dto.EditRequest{
		Action: dto.EditActionAdd, Collection: dto.CollectionHackathonDetails,
	})
	require.NoError(t, err)

	resp, err := svc.Submit(context.Background(), "user-1")
	require.NoError(t, err)

	assert.True(t, resp.ScoreSynced)
	assert.Equal(t, "Asha Rao", resp.Profile.FullName)
	assert.Len(t, resp.Profile.HackathonDetails, 1, "blank row filtered out")
	assert.Equal(t, 1, resp.Profile.HackathonParticipation)
	assert.Equal(t, 1, resp.Profile.HackathonWins)
	assert.Empty(t, resp.Profile.Certifications, "untouched seeded rows filtered out")

	// Stored row matches the submitted state
	stored, err := store.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	restored := profile.FromPersisted(stored)
	assert.Equal(t, resp.Profile, restored)

	// Push carries the recomputed inputs
	require.Len(t, client.pushes, 1)
	push := client.pushes[0]
	assert.Equal(t, scoring.DeriveStudentID("user-1"), push.StudentID)
	assert.Equal(t, 1, push.HackathonParticipation)
	assert.Equal(t, 1, push.HackathonWins)
	assert.Equal(t, 8.7, push.CGPA)
	assert.True(t, push.DegreeCompleted)

	// Session consumed
	_, err = svc.Submit(context.Background(), "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNoActiveDraft)
}

func TestSubmitScorePushFailureIsNonFatal(t *testing.T) {
	store := newFakeProfileStore()
	client := &fakeScoreClient{pushErr: apperrors.ErrScoreUnavailable}
	svc := newProfileService(store, client)

	_, err := svc.BeginDraft(context.Background(), "user-1")
	require.NoError(t, err)
	fillRequiredScalars(t, svc, "user-1")

	resp, err := svc.Submit(context.Background(), "user-1")
	require.NoError(t, err, "push failure never fails the save")

	assert.False(t, resp.ScoreSynced)
	assert.NotEmpty(t, resp.Warning)

	_, err = store.GetByID(context.Background(), "user-1")
	assert.NoError(t, err, "profile was saved")
}

func TestSubmitValidation(t *testing.T) {
	// Each required scalar blocks submission on its own; whitespace does not
	// count as content
	tests := []struct {
		name     string
		override map[string]string
	}{
		{"missing full name", map[string]string{"fullName": ""}},
		{"missing college", map[string]string{"collegeName": ""}},
		{"missing course", map[string]string{"course": ""}},
		{"missing degree", map[string]string{"degree": "  "}},
		{"missing address", map[string]string{"address": ""}},
		{"cgpa above range", map[string]string{"cgpa": "10.5"}},
		{"cgpa below range", map[string]string{"cgpa": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newProfileService(newFakeProfileStore(), &fakeScoreClient{})
			_, err := svc.BeginDraft(context.Background(), "user-1")
			require.NoError(t, err)
			fillRequiredScalars(t, svc, "user-1")
			for field, value := range tt.override {
				setScalar(t, svc, "user-1", field, value)
			}

			_, err = svc.Submit(context.Background(), "user-1")
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestSubmitSaveFailureReconcilesSession(t *testing.T) {
	store := newFakeProfileStore()
	store.rows["user-1"] = profile.ToPersisted(models.StudentProfile{
		ID: "user-1", FullName: "Saved Name", CollegeName: "IIT Madras",
		Course: "B.Tech", Degree: "Computer Science", Address: "Chennai",
	})
	svc := newProfileService(store, &fakeScoreClient{})

	_, err := svc.BeginDraft(context.Background(), "user-1")
	require.NoError(t, err)
	setScalar(t, svc, "user-1", "fullName", "Unsaved Edit")

	store.upsertErr = errors.New("connection lost")
	_, err = svc.Submit(context.Background(), "user-1")
	require.Error(t, err)

	// Session reset to the stored state, not the rejected edit
	store.upsertErr = nil
	snapshot, err := svc.ApplyEdit(context.Background(), "user-1", &dto.EditRequest{
		Action: dto.EditActionSetField, Field: "course", Value: "B.Tech",
	})
	require.NoError(t, err)
	assert.Equal(t, "Saved Name", snapshot.FullName)
}

func TestSubmitRecomputesCountersFromScratch(t *testing.T) {
	// Stored counters are stale on purpose; submit must ignore them
	store := newFakeProfileStore()
	stale := models.StudentProfile{
		ID: "user-1", FullName: "Asha Rao", CollegeName: "IIT Madras",
		Course: "B.Tech", Degree: "Computer Science", Address: "Chennai",
		HackathonParticipation: 99, HackathonWins: 42,
	}
	store.rows["user-1"] = profile.ToPersisted(stale)
	svc := newProfileService(store, &fakeScoreClient{})

	_, err := svc.BeginDraft(context.Background(), "user-1")
	require.NoError(t, err)

	resp, err := svc.Submit(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Profile.HackathonParticipation)
	assert.Equal(t, 0, resp.Profile.HackathonWins)
}

func TestUploadImageUpdatesStoreAndDraft(t *testing.T) {
	store := newFakeProfileStore()
	store.rows["user-1"] = profile.ToPersisted(models.StudentProfile{
		ID: "user-1", FullName: "Asha Rao", CollegeName: "IIT Madras",
	})
	svc := newProfileService(store, &fakeScoreClient{})

	_, err := svc.BeginDraft(context.Background(), "user-1")
	require.NoError(t, err)

	imageURL, err := svc.UploadImage(context.Background(), "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "user-1/1-photo.png", imageURL)

	stored, err := store.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, stored.ProfileImage)
	assert.Equal(t, imageURL, *stored.ProfileImage)

	// Open session picked up the new image
	snapshot, err := svc.ApplyEdit(context.Background(), "user-1", &dto.EditRequest{
		Action: dto.EditActionSetField, Field: "course", Value: "B.Tech",
	})
	require.NoError(t, err)
	assert.Equal(t, imageURL, snapshot.ProfileImage)
}

func TestUploadImageDeletesReplacedFile(t *testing.T) {
	store := newFakeProfileStore()
	store.rows["user-1"] = profile.ToPersisted(models.StudentProfile{
		ID: "user-1", FullName: "Asha Rao", CollegeName: "IIT Madras",
		ProfileImage: "user-1/1-old.png",
	})
	images := &fakeImageStore{url: "user-1/2-new.png"}
	svc := NewProfileService(store, &fakeScoreClient{}, images)

	imageURL, err := svc.UploadImage(context.Background(), "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "user-1/2-new.png", imageURL)

	assert.Equal(t, []string{"user-1/1-old.png"}, images.deleted)
}

func TestUploadImageFirstUploadDeletesNothing(t *testing.T) {
	store := newFakeProfileStore()
	store.rows["user-1"] = profile.ToPersisted(models.StudentProfile{
		ID: "user-1", FullName: "Asha Rao", CollegeName: "IIT Madras",
	})
	images := &fakeImageStore{url: "user-1/1-photo.png"}
	svc := NewProfileService(store, &fakeScoreClient{}, images)

	_, err := svc.UploadImage(context.Background(), "user-1", nil)
	require.NoError(t, err)

	assert.Empty(t, images.deleted)
}
