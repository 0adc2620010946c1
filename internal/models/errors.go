package models

import "errors"

// Sentinel errors forming the API error taxonomy. Services wrap these with
// fmt.Errorf("...: %w", ...) so callers keep the detail, and handlers map
// them to HTTP status codes with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidAmount      = errors.New("checkout total below minimum")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)
