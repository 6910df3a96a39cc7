package model

import (
	"time"

	"github.com/google/uuid"
)

// Genre is a named movie category.
type Genre struct {
	ID      uuid.UUID `json:"id" db:"id"`
	Name    string    `json:"name" db:"name"`
	Version int       `json:"version" db:"version"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// URL is the path of the genre's detail page.
func (g Genre) URL() string {
	return "/catalog/genre/" + g.ID.String()
}

func (g Genre) IsNew() bool {
	return g.ID == uuid.Nil
}
