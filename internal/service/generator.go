package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/metrics"
	"github.com/passforge/passforge-go/internal/model"
)

const (
	DefaultLength = 16
	MaxLength     = 128
)

var (
	ErrLengthTooShort = errors.New("password length must be at least 1")
	ErrLengthTooLong  = errors.New("password length must be at most 128")
)

// Recorder stores metadata about generated passwords.
type Recorder interface {
	Append(ctx context.Context, rec *model.GenerationRecord) error
}

// GeneratorService handles password generation and strength scoring.
type GeneratorService struct {
	generator *crypto.Generator
	recorder  Recorder
	metrics   *metrics.Metrics
}

// NewGeneratorService creates a new GeneratorService. A nil recorder disables metadata recording.
func NewGeneratorService(gen *crypto.Generator, rec Recorder, m *metrics.Metrics) *GeneratorService {
	return &GeneratorService{
		generator: gen,
		recorder:  rec,
		metrics:   m,
	}
}

// Generate produces and scores a password for userID. Recording the generation is best effort:
// a recorder failure is logged and the password is still returned.
func (s *GeneratorService) Generate(ctx context.Context, userID string, req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
		Keyword:   req.Keyword,
	}

	if opts.Length == 0 {
		opts.Length = DefaultLength
	}
	if opts.Length < 0 {
		s.metrics.ObserveFailure("length_too_short")
		return model.GenerateResponse{}, ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		s.metrics.ObserveFailure("length_too_long")
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	password, err := s.generator.Generate(opts)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidConfiguration) {
			s.metrics.ObserveFailure("invalid_configuration")
		} else {
			s.metrics.ObserveFailure("randomness")
		}
		return model.GenerateResponse{}, err
	}

	report := crypto.Score(password, opts)
	s.metrics.ObserveGenerated(string(report.Label))
	s.record(ctx, userID, opts, report)

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: strengthToResponse(report),
	}, nil
}

// Score rates an arbitrary password. It never fails.
func (s *GeneratorService) Score(req model.StrengthRequest) model.StrengthResponse {
	report := crypto.Score(req.Password, crypto.GeneratorOptions{Keyword: req.Keyword})
	s.metrics.ObserveStrengthCheck(string(report.Label))
	return strengthToResponse(report)
}

func (s *GeneratorService) record(ctx context.Context, userID string, opts crypto.GeneratorOptions, report crypto.StrengthReport) {
	if s.recorder == nil {
		return
	}
	if userID == "" {
		userID = model.AnonymousUserID
	}

	classes := opts.Classes()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = string(c)
	}

	rec := &model.GenerationRecord{
		UserID:        userID,
		Length:        opts.Length,
		Classes:       names,
		StrengthScore: report.Score,
	}
	if err := s.recorder.Append(ctx, rec); err != nil {
		slog.Warn("recording generation failed", "user_id", userID, "error", err)
	}
}

func strengthToResponse(r crypto.StrengthReport) model.StrengthResponse {
	a := r.Analysis
	return model.StrengthResponse{
		Score: r.Score,
		Label: string(r.Label),
		Analysis: model.StrengthAnalysis{
			Length:           a.Length,
			HasLower:         a.HasLower,
			HasUpper:         a.HasUpper,
			HasNumber:        a.HasNumber,
			HasSymbol:        a.HasSymbol,
			HasRepeatRun:     a.HasRepeatRun,
			HasSequentialRun: a.HasSequentialRun,
			HasKeyword:       a.HasKeyword,
			KeywordLength:    a.KeywordLength,
		},
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
