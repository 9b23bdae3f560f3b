// Package refdata loads the lightweight id/name lookup sets that populate
// selection controls on every entity-editing screen.
package refdata

import (
	"context"
	"fmt"

	"github.com/hms/hms/internal/platform/db"
)

// Kind selects which lookup set to load.
type Kind int

const (
	Patients Kind = iota
	Doctors
)

var kindQueries = map[Kind]string{
	Patients: "SELECT patient_id, name FROM patients ORDER BY name ASC",
	Doctors:  "SELECT doctor_id, name FROM doctors ORDER BY name ASC",
}

// Label is one selectable option: the display string shown to the user
// and the id it resolves to.
type Label struct {
	Display string
	ID      int64
}

// Display formats an id/name pair the way selection controls show it.
func Display(id int64, name string) string {
	return fmt.Sprintf("%d - %s", id, name)
}

// Labels returns the lookup set for kind, ordered by name ascending. On a
// query failure (for example a missing table) it returns an empty set
// alongside the error; the calling screen stays usable and logs a warning.
func Labels(ctx context.Context, q db.Querier, kind Kind) ([]Label, error) {
	query, ok := kindQueries[kind]
	if !ok {
		return nil, fmt.Errorf("unknown reference-data kind %d", kind)
	}

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load reference data: %w", err)
	}
	defer rows.Close()

	var labels []Label
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("load reference data: %w", err)
		}
		labels = append(labels, Label{Display: Display(id, name), ID: id})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load reference data: %w", err)
	}
	return labels, nil
}

// Map turns an ordered label set into a display→id lookup for resolving a
// selection back to its id.
func Map(labels []Label) map[string]int64 {
	m := make(map[string]int64, len(labels))
	for _, l := range labels {
		m[l.Display] = l.ID
	}
	return m
}
