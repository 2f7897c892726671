package entity

import "time"

// Project is a portfolio project card.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	LiveURL     string    `json:"live_url"`
	GithubURL   string    `json:"github_url"`
	Tags        []string  `json:"tags"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceIcons is the fixed set of icon identifiers the site can render.
var ServiceIcons = []string{"Code", "Database", "Globe", "Smartphone"}

// Service is one entry of the services section. Icon must be one of
// ServiceIcons.
type Service struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}
