package domain

import "time"

// User is the domain model for storefront customers. Exactly one of Email or
// Mobile is non-empty, fixed at registration.
type User struct {
	ID         string
	Name       string
	Email      string
	Mobile     string
	Password   string
	Address    string
	ProfilePic string
	IsAdmin    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
