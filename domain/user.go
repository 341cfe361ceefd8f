package domain

import "time"

// User is the minimal durable user record the core touches: existence checks
// on recipients and the lastSeenAt write when presence drops to zero.
type User struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Avatar     string     `json:"avatar,omitempty"`
	LastSeenAt *time.Time `json:"lastSeenAt,omitempty"`
}
