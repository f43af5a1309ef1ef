package domain

import "errors"

// Repository errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidQuery    = errors.New("invalid query: no filter fields set")
	ErrInvalidField    = errors.New("invalid update: no fields set")
	ErrInvalidInput    = errors.New("email and hashed password are required")
	ErrMultipleRecords = errors.New("multiple records match a unique lookup")
)

// Authentication errors
var (
	ErrAlreadyRegistered = errors.New("user already registered")
	ErrInvalidToken      = errors.New("invalid reset token")
	ErrInvalidResetRequest = errors.New("password reset requested for unknown user")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
)
