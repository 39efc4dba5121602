package models

import "time"

// Profile is the display identity attached to ratings and comments. Rows are
// populated by the auth layer: the OAuth callback upserts id/username/avatar
// from the provider claims, and the credential flow additionally stores the
// email and password hash.
type Profile struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
	Username     string    `gorm:"index" json:"username,omitempty"`
	Email        string    `gorm:"index" json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
}
