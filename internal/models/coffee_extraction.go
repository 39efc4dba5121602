package models

import "time"

// CoffeeExtraction is a single brew log entry. BeanName is free text rather
// than a foreign key so extractions can be logged for beans that were never
// catalogued.
type CoffeeExtraction struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
	UserID       string    `gorm:"not null;index" json:"user_id"`
	Date         string    `gorm:"not null;index" json:"date"`
	BeanName     string    `gorm:"not null" json:"bean_name"`
	BeanPrice    float64   `json:"bean_price"`
	CoffeeWeight float64   `json:"coffee_weight"`
	WaterWeight  float64   `json:"water_weight"`
	GrindSize    string    `json:"grind_size"`
	BrewTime     string    `json:"brew_time"`
	Temperature  float64   `json:"temperature"`
	Rating       int       `json:"rating"`
	Notes        string    `gorm:"type:text" json:"notes,omitempty"`
}

// Ratio is the water-to-coffee weight ratio. It is derived for display and
// never persisted.
func (e CoffeeExtraction) Ratio() float64 {
	if e.CoffeeWeight == 0 {
		return 0
	}
	return e.WaterWeight / e.CoffeeWeight
}
