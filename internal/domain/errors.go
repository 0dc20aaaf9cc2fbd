package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrValidation         = errors.New("required fields are missing")
	ErrUnauthorized       = errors.New("not authenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrNoSession          = errors.New("no active session")
)
