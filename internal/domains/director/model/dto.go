package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"movie-catalog/internal/shared/form"
)

var (
	firstNameField = form.Field("first_name").
			Trim().
			Rule(validation.Required.Error("First name must be specified.")).
			Escape().
			Rule(is.Alphanumeric.Error("First name has non-alphanumeric characters."))

	familyNameField = form.Field("family_name").
			Trim().
			Rule(validation.Required.Error("Family name must be specified.")).
			Escape().
			Rule(is.Alphanumeric.Error("Family name has non-alphanumeric characters."))

	dateOfBirthField = form.Field("date_of_birth").
				Optional().
				Rule(form.ISODate("Invalid date of birth"))

	dateOfDeathField = form.Field("date_of_death").
				Optional().
				Rule(form.ISODate("Invalid date of death"))
)

// DirectorInput is the create/update form, bound from either a urlencoded
// body or JSON.
type DirectorInput struct {
	FirstName   string `form:"first_name" json:"first_name"`
	FamilyName  string `form:"family_name" json:"family_name"`
	DateOfBirth string `form:"date_of_birth" json:"date_of_birth"`
	DateOfDeath string `form:"date_of_death" json:"date_of_death"`

	// Version is the version the client edited. Zero skips the conflict check.
	Version int `form:"version" json:"version"`
}

// Validate normalizes the input in place and returns every field failure.
func (in *DirectorInput) Validate() form.Errors {
	var errs form.Errors
	firstNameField.Apply(&in.FirstName, &errs)
	familyNameField.Apply(&in.FamilyName, &errs)
	dateOfBirthField.Apply(&in.DateOfBirth, &errs)
	dateOfDeathField.Apply(&in.DateOfDeath, &errs)
	return errs
}

// ToEntity builds the director described by the (normalized) input. It is
// safe on invalid input: unparsable dates are left empty.
func (in *DirectorInput) ToEntity(id uuid.UUID) *Director {
	return &Director{
		ID:          id,
		FirstName:   in.FirstName,
		FamilyName:  in.FamilyName,
		DateOfBirth: form.OptionalDate(in.DateOfBirth),
		DateOfDeath: form.OptionalDate(in.DateOfDeath),
		Version:     in.Version,
	}
}

// DirectorResponse is the JSON representation of a director.
type DirectorResponse struct {
	ID          uuid.UUID  `json:"id"`
	URL         string     `json:"url"`
	FirstName   string     `json:"first_name"`
	FamilyName  string     `json:"family_name"`
	Name        string     `json:"name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
	Version     int        `json:"version"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToResponse converts Director entity to DirectorResponse DTO
func (d Director) ToResponse() *DirectorResponse {
	return &DirectorResponse{
		ID:          d.ID,
		URL:         d.URL(),
		FirstName:   d.FirstName,
		FamilyName:  d.FamilyName,
		Name:        d.Name(),
		DateOfBirth: d.DateOfBirth,
		DateOfDeath: d.DateOfDeath,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
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
