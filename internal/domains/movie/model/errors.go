package model

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidID = errors.New("invalid movie id")

	ErrMovieNotFound   = errors.New("movie not found")
	ErrDirectorUnknown = errors.New("movie references a director that does not exist")
	ErrVersionConflict = errors.New("movie was modified by someone else, reload and try again")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMovieNotFound):
		return "MOVIE_NOT_FOUND"
	case errors.Is(err, ErrDirectorUnknown):
		return "DIRECTOR_UNKNOWN"
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
	case errors.Is(err, ErrMovieNotFound), errors.Is(err, ErrInvalidID):
		return http.StatusNotFound
	case errors.Is(err, ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, ErrDirectorUnknown):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
