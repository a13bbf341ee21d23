package model

import "time"

// GenerationRecord is the metadata kept about one generated password.
// It must never carry the password or the keyword.
type GenerationRecord struct {
	ID            int64
	UserID        string
	Length        int
	Classes       []string
	StrengthScore int
	CreatedAt     time.Time
}

// GenerationRecordResponse is a generation record safe for API responses.
type GenerationRecordResponse struct {
	Length        int       `json:"length"`
	Classes       []string  `json:"classes"`
	StrengthScore int       `json:"strength_score"`
	CreatedAt     time.Time `json:"created_at"`
}
