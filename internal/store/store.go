// Package store persists submitted assessments in PostgreSQL.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS assessments (
	id             UUID PRIMARY KEY,
	profile        JSONB NOT NULL,
	ranked_careers JSONB NOT NULL,
	target_career  TEXT NOT NULL DEFAULT '',
	report         TEXT NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS assessments_target_career_idx ON assessments (target_career);
`

// Record is one stored assessment.
type Record struct {
	ID            uuid.UUID
	Profile       models.Profile
	RankedCareers []models.RankedCareer
	TargetCareer  string
	Report        string
	CreatedAt     time.Time
}

type AssessmentStore struct {
	db *sql.DB
}

func New(db *sql.DB) *AssessmentStore {
	return &AssessmentStore{db: db}
}

// EnsureSchema creates the assessments table when missing.
func (s *AssessmentStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return errors.NewQueryExecutionFailedError("ensure_schema", err)
	}
	return nil
}

// Save inserts rec. Saving an ID that already exists is a no-op and reports
// created=false, so a retried job does not fail.
func (s *AssessmentStore) Save(ctx context.Context, rec Record) (created bool, err error) {
	profile, err := json.Marshal(rec.Profile)
	if err != nil {
		return false, errors.NewDatabaseInsertFailedError(fmt.Errorf("marshal profile: %w", err))
	}
	ranked := rec.RankedCareers
	if ranked == nil {
		ranked = []models.RankedCareer{}
	}
	careers, err := json.Marshal(ranked)
	if err != nil {
		return false, errors.NewDatabaseInsertFailedError(fmt.Errorf("marshal ranked careers: %w", err))
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO assessments (id, profile, ranked_careers, target_career, report, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`,
		rec.ID.String(), profile, careers, rec.TargetCareer, rec.Report, rec.CreatedAt.UTC(),
	)
	if err != nil {
		return false, errors.NewDatabaseInsertFailedError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.NewDatabaseInsertFailedError(err)
	}
	return n > 0, nil
}

// Get loads one assessment by ID.
func (s *AssessmentStore) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	var (
		rec             Record
		rawID           string
		profile, ranked []byte
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, profile, ranked_careers, target_career, report, created_at
		FROM assessments WHERE id = $1`, id.String(),
	).Scan(&rawID, &profile, &ranked, &rec.TargetCareer, &rec.Report, &rec.CreatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NewAssessmentNotFoundError(id.String())
	}
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("get_assessment", err)
	}

	if rec.ID, err = uuid.Parse(rawID); err != nil {
		return nil, errors.NewQueryExecutionFailedError("get_assessment", err)
	}
	if err := json.Unmarshal(profile, &rec.Profile); err != nil {
		return nil, errors.NewQueryExecutionFailedError("get_assessment", err)
	}
	if err := json.Unmarshal(ranked, &rec.RankedCareers); err != nil {
		return nil, errors.NewQueryExecutionFailedError("get_assessment", err)
	}
	return &rec, nil
}

// CountByTarget returns how many stored assessments recommended each career.
func (s *AssessmentStore) CountByTarget(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT target_career, COUNT(*) FROM assessments
		GROUP BY target_career ORDER BY target_career`)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("count_by_target", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			career string
			n      int
		)
		if err := rows.Scan(&career, &n); err != nil {
			return nil, errors.NewQueryExecutionFailedError("count_by_target", err)
		}
		counts[career] = n
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("count_by_target", err)
	}
	return counts, nil
}
