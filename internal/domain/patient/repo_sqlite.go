package patient

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/internal/platform/entity"
)

// Desc declares the patients table for the generic record store.
var Desc = entity.Descriptor{
	Table:         "patients",
	IDColumn:      "patient_id",
	InsertColumns: []string{"name", "date_of_birth", "gender", "address", "phone", "email", "admission_date", "medical_history"},
	ListColumns:   []string{"patient_id", "name", "gender", "phone", "date_of_birth"},
	SearchColumns: []string{"name", "phone"},
	OrderBy:       "name ASC",
	Placeholder:   "No patients found.",
}

const patientCols = `patient_id, name, date_of_birth, gender, address, phone, email, admission_date, medical_history`

type repoSQLite struct {
	q db.Querier
}

func NewRepo(q db.Querier) Repository {
	return &repoSQLite{q: q}
}

func (r *repoSQLite) values(p *Patient) []any {
	return []any{p.Name, p.DateOfBirth, p.Gender, p.Address, p.Phone,
		db.NullIfEmpty(p.Email), p.AdmissionDate, p.MedicalHistory}
}

func (r *repoSQLite) Create(ctx context.Context, p *Patient) (int64, error) {
	id, err := entity.Insert(ctx, r.q, Desc, r.values(p)...)
	if err != nil {
		return 0, err
	}
	p.ID = id
	return id, nil
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Patient, error) {
	var p Patient
	err := r.q.QueryRowContext(ctx,
		`SELECT `+patientCols+` FROM patients WHERE patient_id = ?`, id).
		Scan(&p.ID, &p.Name, db.Text(&p.DateOfBirth), db.Text(&p.Gender), db.Text(&p.Address),
			&p.Phone, db.Text(&p.Email), db.Text(&p.AdmissionDate), db.Text(&p.MedicalHistory))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get patient %d: %w", id, err)
	}
	return &p, nil
}

func (r *repoSQLite) Update(ctx context.Context, p *Patient) (int64, error) {
	return entity.Update(ctx, r.q, Desc, p.ID, r.values(p)...)
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) (int64, error) {
	return entity.Delete(ctx, r.q, Desc, id)
}

func (r *repoSQLite) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+patientCols+` FROM patients ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	var out []*Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.ID, &p.Name, db.Text(&p.DateOfBirth), db.Text(&p.Gender),
			db.Text(&p.Address), &p.Phone, db.Text(&p.Email), db.Text(&p.AdmissionDate),
			db.Text(&p.MedicalHistory)); err != nil {
			return nil, fmt.Errorf("list patients: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *repoSQLite) Rows(ctx context.Context) ([][]string, error) {
	return entity.Rows(ctx, r.q, Desc)
}

func (r *repoSQLite) SearchRows(ctx context.Context, term string) ([][]string, error) {
	return entity.SearchRows(ctx, r.q, Desc, term)
}
