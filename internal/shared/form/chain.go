// Package form implements declarative per-field sanitization and validation
// for submitted forms.
//
// A Chain lists the steps for one field in order. Sanitizers rewrite the
// value, rules check it. Every rule in a chain runs and each failing rule
// contributes its own message, so the first message reported for a field is
// the one from the earliest failing rule. Rules other than Required accept
// empty values, which keeps an empty required field down to one message.
package form

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type step struct {
	sanitize func(string) string
	rule     validation.Rule
}

// Chain is the ordered rule set for one field.
type Chain struct {
	field    string
	optional bool
	steps    []step
}

// Field starts a chain for the named field.
func Field(name string) *Chain {
	return &Chain{field: name}
}

// Name returns the field the chain is keyed to.
func (c *Chain) Name() string {
	return c.field
}

// Trim appends a whitespace-trimming step.
func (c *Chain) Trim() *Chain {
	return c.Sanitize(Trim)
}

// Escape appends an HTML-escaping step.
func (c *Chain) Escape() *Chain {
	return c.Sanitize(Escape)
}

// Sanitize appends a custom sanitizer.
func (c *Chain) Sanitize(fn func(string) string) *Chain {
	c.steps = append(c.steps, step{sanitize: fn})
	return c
}

// Rule appends one or more validation rules.
func (c *Chain) Rule(rules ...validation.Rule) *Chain {
	for _, r := range rules {
		c.steps = append(c.steps, step{rule: r})
	}
	return c
}

// Optional skips the whole chain when the submitted value is empty.
func (c *Chain) Optional() *Chain {
	c.optional = true
	return c
}

// Run applies the chain to value and returns the normalized value together
// with the failures it produced. Run never fails on malformed input.
func (c *Chain) Run(value string) (string, Errors) {
	if c.optional && value == "" {
		return value, nil
	}

	var errs Errors
	for _, s := range c.steps {
		if s.sanitize != nil {
			value = s.sanitize(value)
			continue
		}
		if err := validation.Validate(value, s.rule); err != nil {
			errs.Add(c.field, err.Error(), value)
		}
	}
	return value, errs
}

// Apply runs the chain against *value in place and appends its failures to errs.
func (c *Chain) Apply(value *string, errs *Errors) {
	normalized, fieldErrs := c.Run(*value)
	*value = normalized
	*errs = append(*errs, fieldErrs...)
}

// ApplyEach runs the chain against every element of values in place.
func (c *Chain) ApplyEach(values []string, errs *Errors) {
	for i := range values {
		c.Apply(&values[i], errs)
	}
}
