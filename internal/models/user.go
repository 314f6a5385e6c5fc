package models

// User is a registered account. PasswordHash holds the bcrypt hash only.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never serialized
}
