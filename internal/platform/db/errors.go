package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// ConstraintError is a unique-constraint violation translated into a
// message suitable for showing to the user.
type ConstraintError struct {
	Column  string // bare column name, e.g. "phone"
	Message string
	Err     error
}

func (e *ConstraintError) Error() string {
	return e.Message
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// uniqueMessages maps known "table.column" unique constraints to the
// message shown when they are violated.
var uniqueMessages = map[string]string{
	"patients.phone":         "a patient with this phone number already exists",
	"patients.email":         "a patient with this email already exists",
	"doctors.phone":          "a doctor with this phone number already exists",
	"doctors.license_number": "a doctor with this license number already exists",
}

// MapConstraint translates a sqlite unique-constraint violation into a
// *ConstraintError. Unrecognized constraints get a generic message; any
// other error is returned unchanged.
func MapConstraint(err error) error {
	if err == nil {
		return nil
	}

	var serr sqlite3.Error
	if !errors.As(err, &serr) || serr.Code != sqlite3.ErrConstraint {
		return err
	}

	// The driver message has the form
	// "UNIQUE constraint failed: patients.phone".
	msg := serr.Error()
	_, target, found := strings.Cut(msg, "UNIQUE constraint failed: ")
	if !found {
		return &ConstraintError{
			Message: "the record conflicts with an existing record",
			Err:     err,
		}
	}

	target = strings.TrimSpace(strings.Split(target, ",")[0])
	column := target
	if _, col, ok := strings.Cut(target, "."); ok {
		column = col
	}

	human, ok := uniqueMessages[target]
	if !ok {
		human = fmt.Sprintf("a record with this %s already exists", strings.ReplaceAll(column, "_", " "))
	}

	return &ConstraintError{Column: column, Message: human, Err: err}
}

// IsConstraint reports whether err is (or wraps) a unique-constraint
// violation.
func IsConstraint(err error) bool {
	var cerr *ConstraintError
	if errors.As(err, &cerr) {
		return true
	}
	var serr sqlite3.Error
	return errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint
}

// MissingTable extracts the table name from a "no such table" error so
// callers can warn about a likely schema problem.
func MissingTable(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	_, name, found := strings.Cut(err.Error(), "no such table: ")
	if !found {
		return "", false
	}
	return strings.TrimSpace(name), true
}
