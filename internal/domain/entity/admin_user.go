package entity

import "time"

// AdminUser is an operator account for the admin area.
// Password holds a bcrypt hash.
type AdminUser struct {
	ID        string
	Username  string
	Password  string
	CreatedAt time.Time
}
