package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/passforge/passforge-go/internal/model"
)

type stubHistory struct {
	gotLimit int
	records  []model.GenerationRecord
	err      error
}

func (s *stubHistory) ListByUser(_ context.Context, _ string, limit int) ([]model.GenerationRecord, error) {
	s.gotLimit = limit
	return s.records, s.err
}

func TestHistoryList_LimitClamp(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, DefaultHistoryLimit},
		{-5, DefaultHistoryLimit},
		{7, 7},
		{1000, MaxHistoryLimit},
	}

	for _, tt := range tests {
		repo := &stubHistory{}
		if _, err := NewHistoryService(repo).List(context.Background(), "u1", tt.limit); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.gotLimit != tt.want {
			t.Errorf("List(limit=%d) queried %d, want %d", tt.limit, repo.gotLimit, tt.want)
		}
	}
}

func TestHistoryList_Converts(t *testing.T) {
	now := time.Now().UTC()
	repo := &stubHistory{records: []model.GenerationRecord{
		{ID: 3, UserID: "u1", Length: 16, Classes: []string{"symbol"}, StrengthScore: 19, CreatedAt: now},
	}}

	result, err := NewHistoryService(repo).List(context.Background(), "u1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(result))
	}
	if result[0].Length != 16 || result[0].StrengthScore != 19 || !result[0].CreatedAt.Equal(now) {
		t.Errorf("unexpected entry %+v", result[0])
	}
}

func TestHistoryList_EmptyIsNonNil(t *testing.T) {
	result, err := NewHistoryService(&stubHistory{}).List(context.Background(), "u1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected non-nil empty slice, got nil")
	}
}

func TestHistoryList_Error(t *testing.T) {
	boom := errors.New("query failed")
	if _, err := NewHistoryService(&stubHistory{err: boom}).List(context.Background(), "u1", 0); !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}
}
