package models

import "time"

type BeanComment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	RatingID  string    `gorm:"type:uuid;not null;index" json:"rating_id"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
}
