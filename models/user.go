package models

import "strings"

// User is the session snapshot returned by the backend's /api/auth/me
// endpoint. The frontend never stores users; it only caches the latest
// server copy.
type User struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	Phone      string            `json:"phone"`
	Role       string            `json:"role"`
	Plan       string            `json:"plan"`
	Stores     map[string]string `json:"stores"`
	StoreSlugs map[string]string `json:"stores_slugs"`
}

// Project is one entry of /api/projects/mine.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	Owner     string `json:"owner"`
}

// RoleIsSeller reports whether a role string grants access to the seller
// dashboard. The backend's role taxonomy is loose: an exact "seller" plus
// admin-like roles qualify.
func RoleIsSeller(role string) bool {
	r := strings.ToLower(role)
	return r == "seller" || strings.Contains(r, "admin") || strings.Contains(r, "owner")
}

func (u User) IsSeller() bool {
	return RoleIsSeller(u.Role)
}
