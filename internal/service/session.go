package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

// SessionService issues anonymous sessions.
type SessionService struct {
	jwtSecret string
	ttl       time.Duration
}

// NewSessionService creates a new SessionService.
func NewSessionService(secret string, ttl time.Duration) *SessionService {
	return &SessionService{
		jwtSecret: secret,
		ttl:       ttl,
	}
}

// Start creates a new anonymous user ID and a session token for it.
func (s *SessionService) Start() (model.SessionResponse, error) {
	userID := uuid.NewString()

	token, expiresAt, err := crypto.GenerateToken(userID, s.jwtSecret, s.ttl)
	if err != nil {
		return model.SessionResponse{}, err
	}

	return model.SessionResponse{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt.UTC(),
	}, nil
}
