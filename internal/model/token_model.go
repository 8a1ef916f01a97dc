package model

import "time"

// AuthToken holds the hash of an issued bearer token. One row per user:
// re-issuing replaces the hash instead of accumulating tokens.
type AuthToken struct {
	UserID    int64      `json:"user_id"`
	TokenHash string     `json:"-"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
