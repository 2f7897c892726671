package entity

import "time"

// BlogPost is a published article. PublishedDate defaults to the creation
// date and carries no time component.
type BlogPost struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	ReadTime      string    `json:"read_time"`
	ImageURL      string    `json:"image_url"`
	PublishedDate time.Time `json:"published_date"`
	CreatedAt     time.Time `json:"created_at"`
}
