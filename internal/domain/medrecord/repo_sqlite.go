package medrecord

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/internal/platform/entity"
)

// Desc declares the medical_records table for the generic record store.
var Desc = entity.Descriptor{
	Table:         "medical_records",
	IDColumn:      "record_id",
	InsertColumns: []string{"patient_id", "doctor_id", "record_date", "diagnosis", "treatment", "prescription", "notes"},
	ListColumns:   []string{"mr.record_id", "p.name", "d.name", "mr.record_date", "mr.diagnosis"},
	ListFrom: `medical_records mr
		JOIN patients p ON mr.patient_id = p.patient_id
		JOIN doctors d ON mr.doctor_id = d.doctor_id`,
	ListIDColumn:  "mr.record_id",
	SearchColumns: []string{"p.name", "d.name", "mr.diagnosis", "mr.treatment"},
	OrderBy:       "mr.record_date DESC",
	Placeholder:   "No medical records found.",
}

const recordCols = `record_id, patient_id, doctor_id, record_date, diagnosis, treatment, prescription, notes`

type repoSQLite struct {
	q db.Querier
}

func NewRepo(q db.Querier) Repository {
	return &repoSQLite{q: q}
}

func (r *repoSQLite) Create(ctx context.Context, rec *Record) (int64, error) {
	id, err := entity.Insert(ctx, r.q, Desc,
		rec.PatientID, rec.DoctorID, rec.RecordDate, rec.Diagnosis,
		rec.Treatment, rec.Prescription, rec.Notes)
	if err != nil {
		return 0, err
	}
	rec.ID = id
	return id, nil
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Record, error) {
	var rec Record
	err := r.q.QueryRowContext(ctx,
		`SELECT `+recordCols+` FROM medical_records WHERE record_id = ?`, id).
		Scan(&rec.ID, &rec.PatientID, &rec.DoctorID, &rec.RecordDate,
			db.Text(&rec.Diagnosis), db.Text(&rec.Treatment),
			db.Text(&rec.Prescription), db.Text(&rec.Notes))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get medical record %d: %w", id, err)
	}
	return &rec, nil
}

func (r *repoSQLite) Update(ctx context.Context, rec *Record) (int64, error) {
	return entity.Update(ctx, r.q, Desc, rec.ID,
		rec.PatientID, rec.DoctorID, rec.RecordDate, rec.Diagnosis,
		rec.Treatment, rec.Prescription, rec.Notes)
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) (int64, error) {
	return entity.Delete(ctx, r.q, Desc, id)
}

func (r *repoSQLite) ListByPatient(ctx context.Context, patientID int64) ([]*Record, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+recordCols+` FROM medical_records WHERE patient_id = ?
		 ORDER BY record_date DESC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list records for patient %d: %w", patientID, err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.PatientID, &rec.DoctorID, &rec.RecordDate,
			db.Text(&rec.Diagnosis), db.Text(&rec.Treatment),
			db.Text(&rec.Prescription), db.Text(&rec.Notes)); err != nil {
			return nil, fmt.Errorf("list records for patient %d: %w", patientID, err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func (r *repoSQLite) Rows(ctx context.Context) ([][]string, error) {
	return entity.Rows(ctx, r.q, Desc)
}

func (r *repoSQLite) SearchRows(ctx context.Context, term string) ([][]string, error) {
	return entity.SearchRows(ctx, r.q, Desc, term)
}
