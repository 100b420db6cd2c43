package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("record not present in current view")
	ErrForbidden = errors.New("forbidden")

	// Action errors
	ErrConfirmRequired = errors.New("confirmation required for destructive action")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)
