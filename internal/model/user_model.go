package model

import "time"

type User struct {
	UserID       int64      `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // never JSON-encode
	Name         string     `json:"name"`
	IsActive     bool       `json:"is_active"`
	IsStaff      bool       `json:"is_staff"`
	IsSuperuser  bool       `json:"is_superuser"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}
