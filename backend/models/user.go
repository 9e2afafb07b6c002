package models

import "strings"

// User is the normalized session record cached after a successful login.
// The raw NocoDB row keeps its original keys in Raw so that admin tooling
// can still see every field the table exposes.
type User struct {
	ID       string                 `json:"id,omitempty"`
	Email    string                 `json:"email"`
	Name     string                 `json:"name,omitempty"`
	UserType string                 `json:"userType"`
	Lifetime bool                   `json:"lifetime"`
	Refund   bool                   `json:"refund"`
	Raw      map[string]interface{} `json:"raw,omitempty"`
}

// IsAdmin reports whether the normalized user type grants admin access.
func (u User) IsAdmin() bool {
	return strings.EqualFold(u.UserType, "admin")
}
