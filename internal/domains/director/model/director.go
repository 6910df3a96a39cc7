package model

import (
	"time"

	"github.com/google/uuid"
)

// Director is a film director in the catalog.
type Director struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	FirstName   string     `json:"first_name" db:"first_name"`
	FamilyName  string     `json:"family_name" db:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty" db:"date_of_death"`

	// Version is incremented on each update and used for conflict detection
	Version int `json:"version" db:"version"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

const displayDateLayout = "Jan 2, 2006"

// URL is the path of the director's detail page.
func (d Director) URL() string {
	return "/catalog/director/" + d.ID.String()
}

// Name returns "Family, First", or whichever part is present.
func (d Director) Name() string {
	switch {
	case d.FirstName != "" && d.FamilyName != "":
		return d.FamilyName + ", " + d.FirstName
	case d.FamilyName != "":
		return d.FamilyName
	default:
		return d.FirstName
	}
}

// Lifespan renders the birth and death dates for display, e.g.
// "Dec 18, 1946 - ". Unknown dates are left blank.
func (d Director) Lifespan() string {
	return FormatDate(d.DateOfBirth) + " - " + FormatDate(d.DateOfDeath)
}

// DateOfBirthInput is the yyyy-mm-dd value used to prefill date inputs.
func (d Director) DateOfBirthInput() string { return InputDate(d.DateOfBirth) }
func (d Director) DateOfDeathInput() string { return InputDate(d.DateOfDeath) }

// IsNew reports whether the director has not been persisted yet.
func (d Director) IsNew() bool {
	return d.ID == uuid.Nil
}

func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(displayDateLayout)
}

func InputDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
