package models

import "time"

// Product represents an item in the store catalog.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"` // stored filename, empty when no image was uploaded
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
