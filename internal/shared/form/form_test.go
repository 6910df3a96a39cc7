package form

import (
	"encoding/json"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nameChain() *Chain {
	return Field("first_name").
		Trim().
		Rule(validation.Required.Error("First name must be specified.")).
		Escape().
		Rule(is.Alphanumeric.Error("First name has non-alphanumeric characters."))
}

func TestChainRun(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		messages []string
	}{
		{"valid value is trimmed", "  Steven ", "Steven", nil},
		{"empty value reports one message", "", "", []string{"First name must be specified."}},
		{"whitespace only is empty after trim", "   \t", "", []string{"First name must be specified."}},
		{"inner whitespace is not alphanumeric", "Mary Ann", "Mary Ann", []string{"First name has non-alphanumeric characters."}},
		{"punctuation is escaped before the check", "O'Brien", "O&#x27;Brien", []string{"First name has non-alphanumeric characters."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := nameChain().Run(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.messages, errs.For("first_name"))
			assert.Len(t, errs, len(tt.messages))
		})
	}
}

func TestChainRunsEveryRule(t *testing.T) {
	c := Field("code").
		Rule(validation.Length(5, 10).Error("too short")).
		Rule(is.Digit.Error("digits only"))

	_, errs := c.Run("ab")
	assert.Equal(t, []string{"too short", "digits only"}, errs.Messages())
}

func TestOptionalDate(t *testing.T) {
	c := Field("date_of_birth").Optional().Rule(ISODate("Invalid date of birth"))

	_, errs := c.Run("")
	assert.True(t, errs.Empty())

	v, errs := c.Run("1970-07-30")
	assert.True(t, errs.Empty())
	assert.Equal(t, "1970-07-30", v)

	_, errs = c.Run("not-a-date")
	assert.Equal(t, []string{"Invalid date of birth"}, errs.For("date_of_birth"))

	_, errs = c.Run("1970-02-30")
	assert.True(t, errs.Has("date_of_birth"))
}

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("1970-07-30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1970, time.July, 30, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseISODate("1946-12-18T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1946, time.December, 18, 8, 30, 0, 0, time.UTC), d)

	_, err = ParseISODate("18/12/1946")
	assert.Error(t, err)

	assert.Nil(t, OptionalDate(""))
	assert.NotNil(t, OptionalDate("1946-12-18"))
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;Tom &amp; Jerry&#x27;s&lt;&#x2F;b&gt;", Escape("<b>Tom & Jerry's</b>"))
	assert.Equal(t, "&quot;&#x5C;&#96;", Escape("\"\\`"))
}

func TestApplyEach(t *testing.T) {
	c := Field("genre").Trim().Rule(validation.Required.Error("Invalid genre."))
	values := []string{" a ", "", "b"}
	var errs Errors
	c.ApplyEach(values, &errs)

	assert.Equal(t, []string{"a", "", "b"}, values)
	assert.Equal(t, []string{"Invalid genre."}, errs.For("genre"))
}

func TestStringListUnmarshal(t *testing.T) {
	type payload struct {
		Genre StringList `json:"genre"`
	}

	tests := []struct {
		name string
		body string
		want []string
	}{
		{"absent", `{}`, []string{}},
		{"null", `{"genre":null}`, []string{}},
		{"scalar", `{"genre":"a"}`, []string{"a"}},
		{"list", `{"genre":["a","b"]}`, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.want, p.Genre.Values())
		})
	}

	var p payload
	assert.Error(t, json.Unmarshal([]byte(`{"genre":42}`), &p))
}

func TestIdentifier(t *testing.T) {
	rule := Identifier("bad id")

	assert.NoError(t, rule.Validate(""))
	assert.NoError(t, rule.Validate("0d9f1c5e-4b7a-4f0e-9a53-2f3c6b1d8e77"))
	assert.NoError(t, rule.Validate("0D9F1C5E-4B7A-4F0E-9A53-2F3C6B1D8E77"))
	assert.EqualError(t, rule.Validate("00000000-0000-0000-0000-000000000000"), "bad id")
	assert.EqualError(t, rule.Validate("nolan"), "bad id")
}
