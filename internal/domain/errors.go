package domain

import "errors"

// Registration errors
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrProfileNotFound   = errors.New("registration profile not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrNotActivated      = errors.New("account not activated")
	ErrInconsistentState = errors.New("account active but activation key not consumed")
)

// Validation errors
var (
	ErrInvalidUsername  = errors.New("invalid username")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordMismatch = errors.New("passwords must match")
)
