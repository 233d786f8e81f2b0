package models

import "errors"

var (
	// ErrMissingFields is returned when username or email is absent on create.
	ErrMissingFields = errors.New("missing username or email")
	// ErrUserNotFound is returned when no record matches the given id.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when username or email is already taken.
	ErrUserAlreadyExists = errors.New("username or email already exists")
)
