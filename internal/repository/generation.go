package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/passforge/passforge-go/internal/model"
)

var ErrNilRecord = errors.New("generation record is nil")

// GenerationLogRepository appends and reads password generation metadata.
// Rows are never updated or deleted.
type GenerationLogRepository struct {
	db *sql.DB
}

// NewGenerationLogRepository creates a new GenerationLogRepository.
func NewGenerationLogRepository(db *sql.DB) *GenerationLogRepository {
	return &GenerationLogRepository{db: db}
}

// Append inserts a record and sets its generated ID and creation time.
func (r *GenerationLogRepository) Append(ctx context.Context, rec *model.GenerationRecord) error {
	if rec == nil {
		return ErrNilRecord
	}

	query := `INSERT INTO generation_log (user_id, length, classes, strength_score, created_at)
		VALUES (?, ?, ?, ?, ?)`

	createdAt := time.Now().UTC().Truncate(time.Second)
	result, err := r.db.ExecContext(ctx, query,
		rec.UserID,
		rec.Length,
		strings.Join(rec.Classes, ","),
		rec.StrengthScore,
		createdAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	rec.ID = id
	rec.CreatedAt = createdAt
	return nil
}

// ListByUser returns up to limit records for a user, most recent first.
func (r *GenerationLogRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.GenerationRecord, error) {
	query := `SELECT id, user_id, length, classes, strength_score, created_at
		FROM generation_log WHERE user_id = ? ORDER BY id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.GenerationRecord
	for rows.Next() {
		var (
			rec     model.GenerationRecord
			classes string
		)
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Length, &classes, &rec.StrengthScore, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if classes != "" {
			rec.Classes = strings.Split(classes, ",")
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
