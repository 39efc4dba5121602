package models

import "time"

type Supplier struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Website   string    `json:"website,omitempty"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
}
