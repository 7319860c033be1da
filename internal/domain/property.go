package domain

import "time"

type Property struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	BuilderName string    `json:"builder_name,omitempty"`
	Category    string    `json:"category,omitempty"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Price       float64   `json:"price"`
	Bedrooms    int       `json:"bedrooms,omitempty"`
	AreaSqft    float64   `json:"area_sqft,omitempty"`
	Published   bool      `json:"published"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
