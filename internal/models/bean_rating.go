package models

import "time"

// BeanRating holds the overall rating plus six sub-ratings, all on a 0-5
// scale in 0.5 increments. Ratings flagged public show up in the global feed
// and accept comments from any authenticated user.
type BeanRating struct {
	ID           string      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"-"`
	UserID       string      `gorm:"not null;index" json:"user_id"`
	BeanID       string      `gorm:"type:uuid;not null;index" json:"bean_id"`
	Bean         *Bean       `gorm:"foreignKey:BeanID" json:"-"`
	BrewMethodID string      `gorm:"type:uuid;not null;index" json:"brew_method_id"`
	BrewMethod   *BrewMethod `gorm:"foreignKey:BrewMethodID" json:"-"`
	Rating       float64     `gorm:"not null" json:"rating"`
	Aroma        float64     `json:"aroma"`
	Flavor       float64     `json:"flavor"`
	Aftertaste   float64     `json:"aftertaste"`
	Acidity      float64     `json:"acidity"`
	Body         float64     `json:"body"`
	Balance      float64     `json:"balance"`
	Notes        string      `gorm:"type:text" json:"notes,omitempty"`
	IsPublic     bool        `gorm:"default:false;index" json:"is_public"`
}
