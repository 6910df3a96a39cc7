package form

import "strings"

// FieldError is a single validation failure keyed to a form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// Errors collects the failures produced while validating one submission.
// A nil or empty Errors means the submission is valid.
type Errors []FieldError

// Add appends a failure for field.
func (e *Errors) Add(field, message, value string) {
	*e = append(*e, FieldError{Field: field, Message: message, Value: value})
}

// Empty reports whether no failure was recorded.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Has reports whether field has at least one failure.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// For returns the messages recorded for field, in rule order.
func (e Errors) For(field string) []string {
	var msgs []string
	for _, fe := range e {
		if fe.Field == field {
			msgs = append(msgs, fe.Message)
		}
	}
	return msgs
}

// Messages returns every message in the order the rules ran.
func (e Errors) Messages() []string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return msgs
}

func (e Errors) String() string {
	return strings.Join(e.Messages(), "; ")
}
