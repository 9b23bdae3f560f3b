package db

import "fmt"

// Text returns a scanner that reads a nullable TEXT column into dst,
// leaving the empty string for NULL. The schema stores every optional
// field as TEXT, so repositories use this instead of sql.NullString.
func Text(dst *string) *textScanner {
	return &textScanner{dst: dst}
}

// NullIfEmpty stores an optional text value, writing NULL for the empty
// string so UNIQUE columns never collide on "".
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

type textScanner struct {
	dst *string
}

func (s *textScanner) Scan(v any) error {
	switch x := v.(type) {
	case nil:
		*s.dst = ""
	case string:
		*s.dst = x
	case []byte:
		*s.dst = string(x)
	default:
		return fmt.Errorf("cannot scan %T into string", v)
	}
	return nil
}
