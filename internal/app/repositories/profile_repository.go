package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillcredit/backend/internal/app/profile"
	"github.com/skillcredit/backend/internal/pkg/apperrors"
	"github.com/skillcredit/backend/internal/pkg/logger"
)

// IProfileRepository defines the interface for profile persistence
type IProfileRepository interface {
	GetByID(ctx context.Context, id string) (*profile.Persisted, error)
	Upsert(ctx context.Context, row *profile.Persisted) error
	UpdateImage(ctx context.Context, id, imageURL string) error
}

// ProfileRepository handles profile database operations. The row is stored
// with snake_case scalar columns and JSONB collection columns; translation
// to the in-memory shape happens in the profile package, not here.
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var profileColumns = []string{
	"id", "full_name", "college_name", "course", "degree", "address",
	"cgpa", "degree_completed", "hackathon_participation", "hackathon_wins",
	"hackathon_details", "certifications", "achievements", "research_papers",
	"projects", "profile_image", "updated_at",
}

// GetByID retrieves the stored profile row. A missing row maps to
// ErrProfileNotFound, the normal branch for users who have not completed
// profile setup yet.
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*profile.Persisted, error) {
	sql, args, err := r.sb.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get profile SQL")
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	var row profile.Persisted
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&row.ID, &row.FullName, &row.CollegeName, &row.Course, &row.Degree,
		&row.Address, &row.CGPA, &row.DegreeCompleted,
		&row.HackathonParticipation, &row.HackathonWins,
		&row.HackathonDetails, &row.Certifications, &row.Achievements,
		&row.ResearchPapers, &row.Projects, &row.ProfileImage, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Str("profileID", id).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return &row, nil
}

// Upsert writes the full profile row in one atomic statement, inserting on
// first save and replacing every column on subsequent saves.
func (r *ProfileRepository) Upsert(ctx context.Context, row *profile.Persisted) error {
	sql, args, err := r.sb.Insert("profiles").
		Columns(profileColumns...).
		Values(
			row.ID, row.FullName, row.CollegeName, row.Course, row.Degree,
			row.Address, row.CGPA, row.DegreeCompleted,
			row.HackathonParticipation, row.HackathonWins,
			row.HackathonDetails, row.Certifications, row.Achievements,
			row.ResearchPapers, row.Projects, row.ProfileImage, row.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			college_name = EXCLUDED.college_name,
			course = EXCLUDED.course,
			degree = EXCLUDED.degree,
			address = EXCLUDED.address,
			cgpa = EXCLUDED.cgpa,
			degree_completed = EXCLUDED.degree_completed,
			hackathon_participation = EXCLUDED.hackathon_participation,
			hackathon_wins = EXCLUDED.hackathon_wins,
			hackathon_details = EXCLUDED.hackathon_details,
			certifications = EXCLUDED.certifications,
			achievements = EXCLUDED.achievements,
			research_papers = EXCLUDED.research_papers,
			projects = EXCLUDED.projects,
			profile_image = EXCLUDED.profile_image,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert profile SQL")
		return fmt.Errorf("failed to build upsert profile query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("profileID", row.ID).Msg("Error executing upsert profile query")
		return fmt.Errorf("error saving profile: %w", err)
	}

	return nil
}

// UpdateImage sets only the profile image URL, leaving the rest of the row
// untouched.
func (r *ProfileRepository) UpdateImage(ctx context.Context, id, imageURL string) error {
	sql, args, err := r.sb.Update("profiles").
		Set("profile_image", imageURL).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update profile image SQL")
		return fmt.Errorf("failed to build update image query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("profileID", id).Msg("Error executing update profile image query")
		return fmt.Errorf("error updating profile image: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}
