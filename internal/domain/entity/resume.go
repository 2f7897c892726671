package entity

import "time"

// Education is one entry of the resume education timeline.
// OrderIndex controls display order; deletions leave gaps that are never
// renumbered, display is simply ascending by index.
type Education struct {
	ID          string    `json:"id"`
	Degree      string    `json:"degree"`
	Institution string    `json:"institution"`
	Year        string    `json:"year"`
	Description string    `json:"description"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

// Certification is an uploaded certificate image with a display name.
type Certification struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ImageURL   string    `json:"image_url"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
}
