package models

import "time"

// Symbol is the persisted row of the symbols table.
type Symbol struct {
	Code          string    `json:"code" db:"code"` // Primary Key (e.g., "USD")
	Name          string    `json:"name" db:"name"`
	IsFavorite    bool      `json:"isFavorite" db:"is_favorite"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt" db:"last_updated_at"`
}
