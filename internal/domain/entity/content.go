package entity

import "time"

// HeroContent is the single row backing the landing hero section.
// It is seeded once and only ever updated in place.
type HeroContent struct {
	ID          string    `json:"id"`
	Subtitle    string    `json:"subtitle"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContactInfo is the single row backing the contact section.
// Latitude/longitude are optional but always set or cleared together.
type ContactInfo struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	MapLatitude  *float64  `json:"map_latitude"`
	MapLongitude *float64  `json:"map_longitude"`
	UpdatedAt    time.Time `json:"updated_at"`
}
