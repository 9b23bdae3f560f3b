package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/internal/platform/entity"
)

// Desc declares the appointments table for the generic record store.
// Display rows join in the patient and doctor names.
var Desc = entity.Descriptor{
	Table:         "appointments",
	IDColumn:      "appointment_id",
	InsertColumns: []string{"patient_id", "doctor_id", "appointment_date", "appointment_time", "purpose", "status"},
	ListColumns: []string{"a.appointment_id", "p.name", "d.name",
		"a.appointment_date", "a.appointment_time", "a.purpose", "a.status"},
	ListFrom: `appointments a
		JOIN patients p ON a.patient_id = p.patient_id
		JOIN doctors d ON a.doctor_id = d.doctor_id`,
	ListIDColumn:  "a.appointment_id",
	SearchColumns: []string{"p.name", "d.name", "a.purpose", "a.status"},
	OrderBy:       "a.appointment_date DESC, a.appointment_time DESC",
	Placeholder:   "No appointments found.",
}

const apptCols = `appointment_id, patient_id, doctor_id, appointment_date, appointment_time, purpose, status`

type repoSQLite struct {
	q db.Querier
}

func NewRepo(q db.Querier) Repository {
	return &repoSQLite{q: q}
}

func (r *repoSQLite) Create(ctx context.Context, a *Appointment) (int64, error) {
	id, err := entity.Insert(ctx, r.q, Desc,
		a.PatientID, a.DoctorID, a.Date, a.Time, a.Purpose, a.Status)
	if err != nil {
		return 0, err
	}
	a.ID = id
	return id, nil
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	var a Appointment
	err := r.q.QueryRowContext(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE appointment_id = ?`, id).
		Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.Time, db.Text(&a.Purpose), &a.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get appointment %d: %w", id, err)
	}
	return &a, nil
}

func (r *repoSQLite) Update(ctx context.Context, a *Appointment) (int64, error) {
	return entity.Update(ctx, r.q, Desc, a.ID,
		a.PatientID, a.DoctorID, a.Date, a.Time, a.Purpose, a.Status)
}

func (r *repoSQLite) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE appointments SET status = ? WHERE appointment_id = ?`, status, id)
	if err != nil {
		return 0, fmt.Errorf("update appointment %d status: %w", id, err)
	}
	return res.RowsAffected()
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) (int64, error) {
	return entity.Delete(ctx, r.q, Desc, id)
}

func (r *repoSQLite) ListByStatus(ctx context.Context, status string) ([]*Appointment, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE status = ?
		 ORDER BY appointment_date DESC, appointment_time DESC`, status)
	if err != nil {
		return nil, fmt.Errorf("list %s appointments: %w", status, err)
	}
	defer rows.Close()

	var out []*Appointment
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.Time,
			db.Text(&a.Purpose), &a.Status); err != nil {
			return nil, fmt.Errorf("list %s appointments: %w", status, err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *repoSQLite) Rows(ctx context.Context) ([][]string, error) {
	return entity.Rows(ctx, r.q, Desc)
}

func (r *repoSQLite) SearchRows(ctx context.Context, term string) ([][]string, error) {
	return entity.SearchRows(ctx, r.q, Desc, term)
}
