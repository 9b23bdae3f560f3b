// Package validate holds the field-level checks every screen runs before
// persisting anything. All functions are pure; callers abort the whole
// operation on the first failing rule.
package validate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// FormatError reports a value that does not match its expected layout.
type FormatError struct {
	Field  string
	Value  string
	Layout string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %q must be in %s format", e.Field, e.Value, e.Layout)
}

// ValueError reports a value that parses but is out of range.
type ValueError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s %q %s", e.Field, e.Value, e.Reason)
}

// Required reports whether value has any non-whitespace content.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ParseDate parses a YYYY-MM-DD date. The field name is only used in the
// error message.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &FormatError{Field: field, Value: value, Layout: "YYYY-MM-DD"}
	}
	return t, nil
}

// ParseTime parses a 24-hour HH:MM time of day.
func ParseTime(field, value string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return time.Time{}, &FormatError{Field: field, Value: value, Layout: "HH:MM"}
	}
	return t, nil
}

// DigitsOnly reports whether value consists solely of digits and has at
// least minLen of them. Used for phone numbers.
func DigitsOnly(value string, minLen int) bool {
	if len(value) < minLen {
		return false
	}
	for _, r := range value {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// LooksLikeEmail checks only for the presence of "@". The intake forms
// accept anything beyond that, so stricter parsing here would reject
// existing data.
func LooksLikeEmail(value string) bool {
	return strings.Contains(value, "@")
}

// ParseAmount parses a positive monetary amount.
func ParseAmount(field, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &ValueError{Field: field, Value: value, Reason: "is not a number"}
	}
	if f <= 0 {
		return 0, &ValueError{Field: field, Value: value, Reason: "must be greater than zero"}
	}
	return f, nil
}
