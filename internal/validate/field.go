package validate

import (
	"strings"

	"eventbooking/internal/domain"
)

const reasonRequired = "required and empty"

// RequiredString trims a required scalar field and rejects it when nothing
// remains.
func RequiredString(field, raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", &domain.ValidationError{Field: field, Reason: reasonRequired}
	}
	return v, nil
}

// RequiredStringSlice validates a required array field: the sequence must be
// non-empty and every element must be non-empty after trim. Returns a new
// slice; the input is never modified.
func RequiredStringSlice(field string, raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, &domain.ValidationError{Field: field, Reason: reasonRequired}
	}
	out := make([]string, len(raw))
	for i, el := range raw {
		v := strings.TrimSpace(el)
		if v == "" {
			return nil, &domain.ValidationError{Field: field, Reason: reasonRequired}
		}
		out[i] = v
	}
	return out, nil
}
