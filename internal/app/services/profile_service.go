package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"

	"github.com/skillcredit/backend/internal/app/editor"
	"github.com/skillcredit/backend/internal/app/models"
	"github.com/skillcredit/backend/internal/app/models/dto"
	"github.com/skillcredit/backend/internal/app/profile"
	"github.com/skillcredit/backend/internal/app/scoring"
	"github.com/skillcredit/backend/internal/pkg/apperrors"
	"github.com/skillcredit/backend/internal/pkg/logger"
)

// ProfileStore is the persistence surface the profile service needs
type ProfileStore interface {
	GetByID(ctx context.Context, id string) (*profile.Persisted, error)
	Upsert(ctx context.Context, row *profile.Persisted) error
	UpdateImage(ctx context.Context, id, imageURL string) error
}

// ScorePusher pushes recomputed scoring inputs to the external service
type ScorePusher interface {
	PushScore(ctx context.Context, push *scoring.PushRequest) error
}

// ImageStore stores uploaded profile images
type ImageStore interface {
	SaveUserFile(fileHeader *multipart.FileHeader, userID string) (string, error)
	DeleteFile(fileURL string) error
}

// ProfileService owns the profile lifecycle: reads, editing sessions, and
// the submit pipeline (validate, filter, aggregate, normalize, upsert,
// push score).
type ProfileService struct {
	profileRepo ProfileStore
	scoreClient ScorePusher
	imageStore  ImageStore
	drafts      *editor.Store
	logger      zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo ProfileStore, scoreClient ScorePusher, imageStore ImageStore) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		scoreClient: scoreClient,
		imageStore:  imageStore,
		drafts:      editor.NewStore(),
		logger:      logger.WithComponent("profile_service"),
	}
}

// GetProfile loads the saved profile. ErrProfileNotFound is the expected
// answer for users who have not completed setup; callers translate it to a
// 404 and the client redirects to the setup flow.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.StudentProfile, error) {
	row, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := profile.FromPersisted(row)
	return &p, nil
}

// BeginDraft starts an editing session from the saved profile, or from a
// blank template for new users. Any previous session is discarded.
func (s *ProfileService) BeginDraft(ctx context.Context, userID string) (*models.StudentProfile, error) {
	var base models.StudentProfile
	row, err := s.profileRepo.GetByID(ctx, userID)
	switch {
	case err == nil:
		base = profile.FromPersisted(row)
	case errors.Is(err, apperrors.ErrProfileNotFound):
		base = models.StudentProfile{ID: userID}
	default:
		return nil, err
	}

	draft := s.drafts.Begin(base)
	snapshot := draft.Snapshot()
	return &snapshot, nil
}

// ApplyEdit applies one edit operation to the active session and returns
// the updated draft state.
func (s *ProfileService) ApplyEdit(ctx context.Context, userID string, op *dto.EditRequest) (*models.StudentProfile, error) {
	var snapshot models.StudentProfile
	ok := s.drafts.Mutate(userID, func(d *editor.Draft) {
		applyOp(d, op)
		snapshot = d.Snapshot()
	})
	if !ok {
		return nil, apperrors.ErrNoActiveDraft
	}
	return &snapshot, nil
}

func applyOp(d *editor.Draft, op *dto.EditRequest) {
	if op.Action == dto.EditActionSetField {
		d.SetScalar(op.Field, op.Value)
		return
	}

	switch op.Collection {
	case dto.CollectionCertifications:
		applyCollectionOp(d.Certifications, op)
	case dto.CollectionAchievements:
		applyCollectionOp(d.Achievements, op)
	case dto.CollectionResearchPapers:
		applyCollectionOp(d.ResearchPapers, op)
	case dto.CollectionHackathonDetails:
		applyCollectionOp(d.HackathonDetails, op)
	case dto.CollectionProjects:
		applyCollectionOp(d.Projects, op)
	}
}

func applyCollectionOp[T editor.Keyed](e *editor.Editor[T], op *dto.EditRequest) {
	switch op.Action {
	case dto.EditActionAdd:
		e.Add()
	case dto.EditActionUpdate:
		e.Update(op.ItemID, op.Field, op.Value)
	case dto.EditActionRemove:
		e.Remove(op.ItemID)
	}
}

// Submit consumes the active session and saves the profile: validate the
// scalars, filter each collection, recompute the hackathon counters from
// the filtered rows, normalize to the persisted shape, upsert in a single
// write, then push scoring inputs best effort.
func (s *ProfileService) Submit(ctx context.Context, userID string) (*dto.SubmitResponse, error) {
	var snapshot models.StudentProfile
	ok := s.drafts.Mutate(userID, func(d *editor.Draft) {
		snapshot = d.Snapshot()
	})
	if !ok {
		return nil, apperrors.ErrNoActiveDraft
	}

	if err := validateProfile(&snapshot); err != nil {
		return nil, err
	}

	snapshot.Certifications = profile.FilterEmpty(snapshot.Certifications)
	snapshot.Achievements = profile.FilterEmpty(snapshot.Achievements)
	snapshot.ResearchPapers = profile.FilterEmpty(snapshot.ResearchPapers)
	snapshot.HackathonDetails = profile.FilterEmpty(snapshot.HackathonDetails)
	snapshot.Projects = profile.FilterEmpty(snapshot.Projects)

	// Derived counters come from the filtered collection only, never from
	// previously stored values
	snapshot.HackathonParticipation, snapshot.HackathonWins = profile.HackathonStats(snapshot.HackathonDetails)

	row := profile.ToPersisted(snapshot)
	if err := s.profileRepo.Upsert(ctx, row); err != nil {
		// Reconcile the editing session to the last stored state so the
		// next edit starts from what the store actually holds
		if stored, getErr := s.profileRepo.GetByID(ctx, userID); getErr == nil {
			s.drafts.Begin(profile.FromPersisted(stored))
		}
		return nil, err
	}

	s.drafts.End(userID)

	resp := &dto.SubmitResponse{Profile: snapshot, ScoreSynced: true}

	push := &scoring.PushRequest{
		StudentID:              scoring.DeriveStudentID(userID),
		HackathonParticipation: snapshot.HackathonParticipation,
		HackathonWins:          snapshot.HackathonWins,
		CGPA:                   snapshot.CGPA,
		DegreeCompleted:        snapshot.DegreeCompleted,
		Certifications:         len(snapshot.Certifications),
		Extras:                 len(snapshot.Achievements) + len(snapshot.Projects),
	}
	if err := s.scoreClient.PushScore(ctx, push); err != nil {
		// The save stands; the score projection catches up on the next push
		s.logger.Warn().Err(err).Str("userID", userID).Msg("Score push failed after profile save")
		resp.ScoreSynced = false
		resp.Warning = "profile saved, but the credit score could not be refreshed"
	}

	return resp, nil
}

// UploadImage stores a profile image and records its URL, removing the
// replaced file once the new one is recorded. Failures here are reported to
// the caller but never corrupt the saved profile.
func (s *ProfileService) UploadImage(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (string, error) {
	previous := ""
	if stored, err := s.profileRepo.GetByID(ctx, userID); err == nil && stored.ProfileImage != nil {
		previous = *stored.ProfileImage
	}

	imageURL, err := s.imageStore.SaveUserFile(fileHeader, userID)
	if err != nil {
		return "", fmt.Errorf("failed to store profile image: %w", err)
	}

	if err := s.profileRepo.UpdateImage(ctx, userID, imageURL); err != nil {
		return "", err
	}

	if previous != "" && previous != imageURL {
		if err := s.imageStore.DeleteFile(previous); err != nil {
			s.logger.Warn().Err(err).Str("userID", userID).Msg("Failed to delete replaced profile image")
		}
	}

	// Keep any open editing session in sync with the stored image
	s.drafts.Mutate(userID, func(d *editor.Draft) {
		d.ProfileImage = imageURL
	})

	return imageURL, nil
}

func validateProfile(p *models.StudentProfile) error {
	if strings.TrimSpace(p.FullName) == "" {
		return apperrors.NewValidationError("full name is required")
	}
	if strings.TrimSpace(p.CollegeName) == "" {
		return apperrors.NewValidationError("college name is required")
	}
	if strings.TrimSpace(p.Course) == "" {
		return apperrors.NewValidationError("course is required")
	}
	if strings.TrimSpace(p.Degree) == "" {
		return apperrors.NewValidationError("degree is required")
	}
	if strings.TrimSpace(p.Address) == "" {
		return apperrors.NewValidationError("address is required")
	}
	if p.CGPA < 0 || p.CGPA > 10 {
		return apperrors.NewValidationError("cgpa must be between 0 and 10")
	}
	return nil
}
