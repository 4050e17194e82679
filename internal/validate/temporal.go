package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"eventbooking/internal/domain"
)

// DateFormat is the canonical calendar form events are stored in.
const DateFormat = "2006-01-02"

// dateLayouts are tried in order when parsing a raw date. The canonical form
// comes first so that re-normalizing stored records is cheap.
var dateLayouts = []string{
	DateFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02-01-2006",
}

// Date parses a raw date string with a multi-layout calendar parser and
// rewrites it as YYYY-MM-DD in UTC. The original representation, including
// any time-of-day or timezone offset, is discarded.
func Date(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC().Format(DateFormat), nil
		}
	}
	return "", &domain.ValidationError{Field: "date", Reason: "invalid format"}
}

// clockPattern requires one or two hour digits and exactly two minute digits.
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// Clock validates a 24-hour wall clock value and rewrites it zero-padded as
// HH:MM. "9:05" normalizes to "09:05"; "9:5" is rejected because the minute
// must be two digits.
func Clock(raw string) (string, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", &domain.ValidationError{Field: "time", Reason: "invalid format"}
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return "", &domain.ValidationError{Field: "time", Reason: "out of range"}
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
