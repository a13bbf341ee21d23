package model

import "time"

// AnonymousUserID is recorded for callers that did not open a session.
const AnonymousUserID = "anonymous"

// SessionResponse represents a newly issued anonymous session.
type SessionResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
