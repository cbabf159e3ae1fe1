package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"interviewscheduler/internal/domain"
)

const interviewColumns = `id, employer_id, candidate_id, starts_at, duration_minutes, type, status, meeting_link, location, notes, created_at`

type interviewRepository struct {
	DB *sql.DB
}

// NewInterviewRepository returns a domain.InterviewRepository implemented with Postgres.
func NewInterviewRepository(db *sql.DB) domain.InterviewRepository {
	return &interviewRepository{DB: db}
}

// Create inserts the interview. ends_at is stored alongside starts_at so the
// exclusion constraint on scheduled interviews can reject concurrent
// double-bookings that slipped past validation.
func (r *interviewRepository) Create(ctx context.Context, iv *domain.Interview) error {
	query := `
		INSERT INTO interviews (id, employer_id, candidate_id, starts_at, ends_at, duration_minutes, type, status, meeting_link, location, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.ExecContext(ctx, query,
		iv.ID, iv.EmployerID, iv.CandidateID, iv.StartsAt, iv.EndsAt(), iv.DurationMinutes,
		iv.Type, iv.Status, iv.MeetingLink, iv.Location, iv.Notes, iv.CreatedAt,
	)
	return mapInterviewWriteError(err)
}

func (r *interviewRepository) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`
	iv, err := scanInterview(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return iv, nil
}

func (r *interviewRepository) List(ctx context.Context) ([]*domain.Interview, error) {
	return r.list(ctx, `ORDER BY starts_at DESC`)
}

func (r *interviewRepository) ListByEmployer(ctx context.Context, employerID string) ([]*domain.Interview, error) {
	return r.list(ctx, `WHERE employer_id = $1 ORDER BY starts_at DESC`, employerID)
}

func (r *interviewRepository) ListByCandidate(ctx context.Context, candidateID string) ([]*domain.Interview, error) {
	return r.list(ctx, `WHERE candidate_id = $1 ORDER BY starts_at DESC`, candidateID)
}

func (r *interviewRepository) ListByStatus(ctx context.Context, status domain.InterviewStatus) ([]*domain.Interview, error) {
	return r.list(ctx, `WHERE status = $1 ORDER BY starts_at DESC`, status)
}

func (r *interviewRepository) ListByType(ctx context.Context, t domain.InterviewType) ([]*domain.Interview, error) {
	return r.list(ctx, `WHERE type = $1 ORDER BY starts_at DESC`, t)
}

func (r *interviewRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Interview, error) {
	return r.list(ctx, `WHERE starts_at >= $1 AND starts_at < $2 ORDER BY starts_at ASC`, from, to)
}

func (r *interviewRepository) list(ctx context.Context, clause string, args ...any) ([]*domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews ` + clause
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.Interview, 0)
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, rows.Err()
}

// Update rewrites every mutable column. created_at is never touched.
func (r *interviewRepository) Update(ctx context.Context, iv *domain.Interview) error {
	query := `
		UPDATE interviews
		SET employer_id = $1, candidate_id = $2, starts_at = $3, ends_at = $4, duration_minutes = $5,
			type = $6, status = $7, meeting_link = $8, location = $9, notes = $10
		WHERE id = $11
	`
	result, err := r.DB.ExecContext(ctx, query,
		iv.EmployerID, iv.CandidateID, iv.StartsAt, iv.EndsAt(), iv.DurationMinutes,
		iv.Type, iv.Status, iv.MeetingLink, iv.Location, iv.Notes, iv.ID,
	)
	if err != nil {
		return mapInterviewWriteError(err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *interviewRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *interviewRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM interviews WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *interviewRepository) HasConflict(ctx context.Context, candidateID string, start time.Time, durationMinutes int, excludeID string) (bool, error) {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	query := `
		SELECT EXISTS (
			SELECT 1 FROM interviews
			WHERE candidate_id = $1
				AND status = 'scheduled'
				AND starts_at < $2
				AND ends_at > $3`
	args := []any{candidateID, end, start}
	if excludeID != "" {
		query += `
				AND id <> $4`
		args = append(args, excludeID)
	}
	query += `
		)`
	var conflict bool
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(&conflict)
	return conflict, err
}

func (r *interviewRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM interviews`).Scan(&n)
	return n, err
}

func mapInterviewWriteError(err error) error {
	switch pqCode(err) {
	case "":
		return err
	case codeExclusionViolation:
		return domain.ErrScheduleConflict
	case codeForeignKeyViolation:
		return domain.ErrInvalidInput
	}
	return err
}

func scanInterview(row interface{ Scan(dest ...any) error }) (*domain.Interview, error) {
	iv := &domain.Interview{}
	var link, location, notes sql.NullString
	err := row.Scan(
		&iv.ID, &iv.EmployerID, &iv.CandidateID, &iv.StartsAt, &iv.DurationMinutes,
		&iv.Type, &iv.Status, &link, &location, &notes, &iv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	iv.StartsAt = iv.StartsAt.UTC()
	iv.CreatedAt = iv.CreatedAt.UTC()
	iv.MeetingLink = nullStringPtr(link)
	iv.Location = nullStringPtr(location)
	iv.Notes = nullStringPtr(notes)
	return iv, nil
}
