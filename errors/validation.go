package errors

import (
	// Go Internal Packages
	"sort"
	"strings"
)

// ValidationErrors collects field level validation failures.
type ValidationErrors struct {
	fields map[string][]string
}

func ValidationErrs() *ValidationErrors {
	return &ValidationErrors{fields: make(map[string][]string)}
}

// Add records a failure reason for the field.
func (v *ValidationErrors) Add(field, reason string) {
	v.fields[field] = append(v.fields[field], reason)
}

func (v *ValidationErrors) Len() int {
	return len(v.fields)
}

// Err returns nil when nothing was recorded.
func (v *ValidationErrors) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return E(Invalid, "validation failed", v)
}

func (v *ValidationErrors) Error() string {
	keys := make([]string, 0, len(v.fields))
	for k := range v.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+strings.Join(v.fields[k], ", "))
	}
	return strings.Join(parts, "; ")
}
