package model

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidID = errors.New("invalid director id")

	// Business Rule Errors
	ErrDirectorNotFound  = errors.New("director not found")
	ErrDirectorHasMovies = errors.New("cannot delete director with linked movies")
	ErrVersionConflict   = errors.New("director was modified by someone else, reload and try again")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrDirectorNotFound):
		return "DIRECTOR_NOT_FOUND"
	case errors.Is(err, ErrDirectorHasMovies):
		return "DIRECTOR_HAS_MOVIES"
	case errors.Is(err, ErrVersionConflict):
		return "VERSION_CONFLICT"
	case errors.Is(err, ErrInvalidID):
		return "INVALID_ID"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrDirectorNotFound), errors.Is(err, ErrInvalidID):
		return http.StatusNotFound
	case errors.Is(err, ErrDirectorHasMovies), errors.Is(err, ErrVersionConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
