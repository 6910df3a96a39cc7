package model

import (
	"time"

	"github.com/google/uuid"
)

// Movie is a catalog entry. DirectorID and GenreIDs reference other
// entities by identifier only.
type Movie struct {
	ID         uuid.UUID   `json:"id" db:"id"`
	Title      string      `json:"title" db:"title"`
	Summary    string      `json:"summary" db:"summary"`
	DirectorID uuid.UUID   `json:"director_id" db:"director_id"`
	GenreIDs   []uuid.UUID `json:"genre_ids" db:"genre_ids"`

	Version   int       `json:"version" db:"version"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// URL is the path of the movie's detail page.
func (m Movie) URL() string {
	return "/catalog/movie/" + m.ID.String()
}

// HasGenre reports whether the movie lists genre id.
func (m Movie) HasGenre(id uuid.UUID) bool {
	for _, g := range m.GenreIDs {
		if g == id {
			return true
		}
	}
	return false
}

func (m Movie) IsNew() bool {
	return m.ID == uuid.Nil
}
