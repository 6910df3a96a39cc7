package form

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Identifier is a rule that accepts empty values and otherwise requires a
// non-nil UUID in any form uuid.Parse understands.
func Identifier(message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if id, err := uuid.Parse(s); err != nil || id == uuid.Nil {
			return errors.New(message)
		}
		return nil
	})
}
