package domain

import "errors"

// Error categories. Concrete errors in the domain subpackages wrap one of
// these so callers can classify them with errors.Is.
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrBusinessRule is returned when an operation would break a ledger rule
	ErrBusinessRule = errors.New("business rule violation")
	// ErrUnauthorized is returned when there is no valid session
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is returned when the national ID or password do not
	// match. It never says which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
