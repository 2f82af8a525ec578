// Package service provides application-level services for managing places and users.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped with fmt.Errorf and %w
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrPlaceNotOwned indicates a place is owned by a different user than the one making the request.
	// API layer should map this to HTTP 403 Forbidden. It carries no detail
	// beyond "not owned", so it never leaks whether the resource exists.
	ErrPlaceNotOwned = errors.New("place is owned by another user")

	// ErrPlaceNotFound indicates that the requested place does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrPlaceNotFound = errors.New("place not found")

	// ErrOwnerNotFound indicates that the user a place operation refers to does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrLocationUnresolved indicates the geocoding collaborator could not
	// resolve the supplied address to coordinates.
	// API layer should map this to HTTP 422 Unprocessable Entity.
	ErrLocationUnresolved = errors.New("could not resolve location for address")
)
