package service

import (
	"context"

	"github.com/passforge/passforge-go/internal/model"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// HistoryReader lists recorded generations.
type HistoryReader interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]model.GenerationRecord, error)
}

// HistoryService returns a session's generation metadata.
type HistoryService struct {
	repo HistoryReader
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(repo HistoryReader) *HistoryService {
	return &HistoryService{repo: repo}
}

// List returns the most recent records for userID. limit is clamped to [1, MaxHistoryLimit],
// with 0 meaning DefaultHistoryLimit.
func (s *HistoryService) List(ctx context.Context, userID string, limit int) ([]model.GenerationRecordResponse, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	records, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]model.GenerationRecordResponse, len(records))
	for i, r := range records {
		result[i] = model.GenerationRecordResponse{
			Length:        r.Length,
			Classes:       r.Classes,
			StrengthScore: r.StrengthScore,
			CreatedAt:     r.CreatedAt,
		}
	}
	return result, nil
}
