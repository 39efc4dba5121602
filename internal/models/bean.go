package models

import "time"

type Bean struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
	UserID      string    `gorm:"not null;index" json:"user_id"`
	SupplierID  string    `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Supplier    *Supplier `gorm:"foreignKey:SupplierID" json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Origin      string    `json:"origin,omitempty"`
	Process     string    `json:"process,omitempty"`
	RoastLevel  string    `json:"roast_level,omitempty"`
	Price       float64   `json:"price,omitempty"`
	PurchaseURL string    `json:"purchase_url,omitempty"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
}
