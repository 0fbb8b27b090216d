// Package validate collects field-level validation messages so handlers can
// report every failing field at once instead of stopping at the first.
package validate

import (
	"fmt"
	"sort"
	"strings"
)

// Errors maps a field name to the list of messages for that field.
type Errors map[string][]string

func (e Errors) Add(field, format string, args ...any) {
	e[field] = append(e[field], fmt.Sprintf(format, args...))
}

// Error renders all messages, fields in stable order.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var parts []string
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], "; "))
	}
	return strings.Join(parts, ", ")
}

// Err returns e as an error when any field failed, nil otherwise.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Required records a failure when value is empty.
func (e Errors) Required(field, value string) {
	if value == "" {
		e.Add(field, "The %s field is required.", field)
	}
}

// MaxLen records a failure when value exceeds max characters.
func (e Errors) MaxLen(field, value string, max int) {
	if len(value) > max {
		e.Add(field, "The %s field must not be greater than %d characters.", field, max)
	}
}
