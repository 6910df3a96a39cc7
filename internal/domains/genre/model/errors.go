package model

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidID = errors.New("invalid genre id")

	ErrGenreNotFound   = errors.New("genre not found")
	ErrGenreHasMovies  = errors.New("cannot delete genre with linked movies")
	ErrDuplicateName   = errors.New("genre with this name already exists")
	ErrVersionConflict = errors.New("genre was modified by someone else, reload and try again")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrGenreNotFound):
		return "GENRE_NOT_FOUND"
	case errors.Is(err, ErrGenreHasMovies):
		return "GENRE_HAS_MOVIES"
	case errors.Is(err, ErrDuplicateName):
		return "DUPLICATE_NAME"
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
	case errors.Is(err, ErrGenreNotFound), errors.Is(err, ErrInvalidID):
		return http.StatusNotFound
	case errors.Is(err, ErrGenreHasMovies), errors.Is(err, ErrDuplicateName), errors.Is(err, ErrVersionConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
