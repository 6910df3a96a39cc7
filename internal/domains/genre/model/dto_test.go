package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenreInputValidate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		messages []string
	}{
		{"valid", " Drama ", "Drama", nil},
		{"empty", "  ", "", []string{"Genre name must be specified."}},
		{"too short", "Sf", "Sf", []string{"Genre name must be between 3 and 100 characters."}},
		{"escaped", "Rock & Roll", "Rock &amp; Roll", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := GenreInput{Name: tt.input}
			errs := in.Validate()
			assert.Equal(t, tt.want, in.Name)
			assert.Equal(t, tt.messages, errs.For("name"))
		})
	}
}
