package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"movie-catalog/internal/shared/form"
)

var (
	titleField = form.Field("title").
			Trim().
			Rule(validation.Required.Error("Title must not be empty.")).
			Escape()

	summaryField = form.Field("summary").
			Trim().
			Rule(validation.Required.Error("Summary must not be empty.")).
			Escape()

	directorField = form.Field("director").
			Trim().
			Rule(validation.Required.Error("Director must not be empty.")).
			Escape().
			Rule(form.Identifier("Director must be a valid selection."))

	genreField = form.Field("genre").
			Trim().
			Escape().
			Rule(
			validation.Required.Error("Invalid genre."),
			form.Identifier("Invalid genre."),
		)
)

// MovieInput is the create/update form. Genre accepts a missing value, a
// single value or a list.
type MovieInput struct {
	Title    string          `form:"title" json:"title"`
	Director string          `form:"director" json:"director"`
	Summary  string          `form:"summary" json:"summary"`
	Genre    form.StringList `form:"genre" json:"genre"`

	Version int `form:"version" json:"version"`
}

// Validate normalizes the input in place and returns every field failure.
func (in *MovieInput) Validate() form.Errors {
	var errs form.Errors
	titleField.Apply(&in.Title, &errs)
	directorField.Apply(&in.Director, &errs)
	summaryField.Apply(&in.Summary, &errs)

	in.Genre = form.StringList(in.Genre.Values())
	genreField.ApplyEach(in.Genre, &errs)
	return errs
}

// ToEntity builds the movie described by the (normalized) input. References
// that do not parse are dropped so the result can still be redisplayed.
func (in *MovieInput) ToEntity(id uuid.UUID) *Movie {
	m := &Movie{
		ID:       id,
		Title:    in.Title,
		Summary:  in.Summary,
		GenreIDs: make([]uuid.UUID, 0, len(in.Genre)),
		Version:  in.Version,
	}
	if directorID, err := uuid.Parse(in.Director); err == nil {
		m.DirectorID = directorID
	}
	for _, g := range in.Genre {
		if genreID, err := uuid.Parse(g); err == nil {
			m.GenreIDs = append(m.GenreIDs, genreID)
		}
	}
	return m
}

// MovieResponse is the JSON representation of a movie.
type MovieResponse struct {
	ID         uuid.UUID   `json:"id"`
	URL        string      `json:"url"`
	Title      string      `json:"title"`
	Summary    string      `json:"summary"`
	DirectorID uuid.UUID   `json:"director_id"`
	GenreIDs   []uuid.UUID `json:"genre_ids"`
	Version    int         `json:"version"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (m Movie) ToResponse() *MovieResponse {
	genres := m.GenreIDs
	if genres == nil {
		genres = []uuid.UUID{}
	}
	return &MovieResponse{
		ID:         m.ID,
		URL:        m.URL(),
		Title:      m.Title,
		Summary:    m.Summary,
		DirectorID: m.DirectorID,
		GenreIDs:   genres,
		Version:    m.Version,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
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
