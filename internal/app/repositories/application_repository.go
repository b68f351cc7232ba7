package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillcredit/backend/internal/app/models"
	"github.com/skillcredit/backend/internal/pkg/apperrors"
	"github.com/skillcredit/backend/internal/pkg/dberrors"
	"github.com/skillcredit/backend/internal/pkg/logger"
)

// IApplicationRepository defines the interface for job application persistence
type IApplicationRepository interface {
	Create(ctx context.Context, app *models.JobApplication) error
	Exists(ctx context.Context, profileID, jobID string) (bool, error)
	ListJobIDs(ctx context.Context, profileID string) ([]string, error)
}

// ApplicationRepository handles job application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create records an application. The (profile_id, job_id) unique constraint
// makes a repeat application surface as ErrAlreadyApplied rather than a
// second row.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.JobApplication) error {
	app.AppliedAt = time.Now()

	sql, args, err := r.sb.Insert("job_applications").
		Columns("profile_id", "job_id", "applied_at").
		Values(app.ProfileID, app.JobID, app.AppliedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create application SQL")
		return fmt.Errorf("failed to build create application query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&app.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyApplied
		}
		logger.Error().Err(err).Str("profileID", app.ProfileID).Str("jobID", app.JobID).Msg("Error executing create application query")
		return fmt.Errorf("error recording application: %w", err)
	}

	return nil
}

// Exists checks whether the profile has already applied to the job
func (r *ApplicationRepository) Exists(ctx context.Context, profileID, jobID string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("job_applications").
		Where(squirrel.Eq{"profile_id": profileID, "job_id": jobID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build application exists query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking application: %w", err)
	}

	return true, nil
}

// ListJobIDs returns the job ids the profile has applied to
func (r *ApplicationRepository) ListJobIDs(ctx context.Context, profileID string) ([]string, error) {
	sql, args, err := r.sb.Select("job_id").
		From("job_applications").
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("applied_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("profileID", profileID).Msg("Error executing list applications query")
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var jobIDs []string
	for rows.Next() {
		var jobID string
		if err := rows.Scan(&jobID); err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		jobIDs = append(jobIDs, jobID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return jobIDs, nil
}
