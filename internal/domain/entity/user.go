package entity

import (
	"time"
)

type User struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	// Secret holds a bcrypt hash, never the raw secret. Handlers must not
	// echo it back; API responses use their own response structs.
	Secret string `json:"secret"`

	Avatar    string `json:"avatar,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	Stars  int     `json:"stars"`
	Energy int     `json:"energy"`
	Level  int     `json:"level"`
	Rating float64 `json:"rating"`

	ExternalID     string `json:"external_id,omitempty"`
	ExternalHandle string `json:"external_handle,omitempty"`
	IsExternal     bool   `json:"is_external"`

	CreatedAt time.Time  `json:"created_at"`
	LastLogin time.Time  `json:"last_login"`
	LastBonus *time.Time `json:"last_bonus,omitempty"`

	// Back-references, maintained informally (not enforced as foreign keys).
	Achievements []string `json:"achievements"`
	Listings     []string `json:"listings"`
	Purchases    []string `json:"purchases"`

	IsActive bool `json:"is_active"`
}
