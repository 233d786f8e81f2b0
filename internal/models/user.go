package models

// User represents a user record in the database
type User struct {
	ID       int64  `json:"id" db:"id"`             // Primary key, assigned by the database
	Username string `json:"username" db:"username"` // Unique username
	Email    string `json:"email" db:"email"`       // Unique email
}
