package domain

import "time"

const (
	PackageDraft  = "draft"
	PackageActive = "active"
)

// TravelPackage is a standalone catalog item sold on the public site.
// Bookings is a counter incremented whenever a package booking names it.
type TravelPackage struct {
	ID            int64     `json:"id,string"`
	Name          string    `json:"name"`
	Destination   string    `json:"destination"`
	Days          int       `json:"days"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"original_price,omitempty"`
	Status        string    `json:"status"`
	Featured      bool      `json:"featured"`
	Bookings      int       `json:"bookings"`
	Image         string    `json:"image"`
	Summary       string    `json:"summary"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
