package form

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// isoLayouts are the extended ISO-8601 forms accepted for date fields,
// tried in order.
var isoLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
}

// ParseISODate parses s as an extended ISO-8601 calendar date or date-time.
// Date-only values are returned at midnight UTC.
func ParseISODate(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("form: %q is not an ISO-8601 date", s)
}

// OptionalDate converts an already validated date field. Empty input
// yields nil.
func OptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := ParseISODate(s)
	if err != nil {
		return nil
	}
	return &t
}

// ISODate is a rule that accepts empty values and otherwise requires an
// extended ISO-8601 date.
func ISODate(message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if _, err := ParseISODate(s); err != nil {
			return errors.New(message)
		}
		return nil
	})
}
