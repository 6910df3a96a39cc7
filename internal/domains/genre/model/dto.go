package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"movie-catalog/internal/shared/form"
)

const (
	MinNameLength = 3
	MaxNameLength = 100
)

var nameField = form.Field("name").
	Trim().
	Rule(
		validation.Required.Error("Genre name must be specified."),
		validation.RuneLength(MinNameLength, MaxNameLength).Error("Genre name must be between 3 and 100 characters."),
	).
	Escape()

// GenreInput is the create/update form for a genre.
type GenreInput struct {
	Name    string `form:"name" json:"name"`
	Version int    `form:"version" json:"version"`
}

// Validate normalizes the input in place and returns every field failure.
func (in *GenreInput) Validate() form.Errors {
	var errs form.Errors
	nameField.Apply(&in.Name, &errs)
	return errs
}

func (in *GenreInput) ToEntity(id uuid.UUID) *Genre {
	return &Genre{ID: id, Name: in.Name, Version: in.Version}
}

type GenreResponse struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Name      string    `json:"name"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g Genre) ToResponse() *GenreResponse {
	return &GenreResponse{
		ID:        g.ID,
		URL:       g.URL(),
		Name:      g.Name,
		Version:   g.Version,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// ParseID parses a path identifier.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}
