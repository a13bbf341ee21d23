package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/passforge/passforge-go/internal/model"
)

// LogRecorder writes generation metadata to the structured log. It is used when no database
// is configured.
type LogRecorder struct{}

// Append logs the record. It never fails.
func (LogRecorder) Append(ctx context.Context, rec *model.GenerationRecord) error {
	slog.InfoContext(ctx, "password generated",
		"user_id", rec.UserID,
		"length", rec.Length,
		"classes", strings.Join(rec.Classes, ","),
		"strength_score", rec.StrengthScore,
	)
	return nil
}
