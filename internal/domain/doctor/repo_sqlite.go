package doctor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/internal/platform/entity"
)

// Desc declares the doctors table for the generic record store.
var Desc = entity.Descriptor{
	Table:         "doctors",
	IDColumn:      "doctor_id",
	InsertColumns: []string{"name", "specialization", "phone", "email", "department", "license_number"},
	ListColumns:   []string{"doctor_id", "name", "specialization", "phone", "department"},
	SearchColumns: []string{"name", "specialization", "license_number"},
	OrderBy:       "name ASC",
	Placeholder:   "No doctors found.",
}

const doctorCols = `doctor_id, name, specialization, phone, email, department, license_number`

type repoSQLite struct {
	q db.Querier
}

func NewRepo(q db.Querier) Repository {
	return &repoSQLite{q: q}
}

func (r *repoSQLite) values(d *Doctor) []any {
	return []any{d.Name, d.Specialization, db.NullIfEmpty(d.Phone),
		d.Email, d.Department, d.LicenseNumber}
}

func (r *repoSQLite) Create(ctx context.Context, d *Doctor) (int64, error) {
	id, err := entity.Insert(ctx, r.q, Desc, r.values(d)...)
	if err != nil {
		return 0, err
	}
	d.ID = id
	return id, nil
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	var d Doctor
	err := r.q.QueryRowContext(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE doctor_id = ?`, id).
		Scan(&d.ID, &d.Name, db.Text(&d.Specialization), db.Text(&d.Phone),
			db.Text(&d.Email), db.Text(&d.Department), &d.LicenseNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get doctor %d: %w", id, err)
	}
	return &d, nil
}

func (r *repoSQLite) Update(ctx context.Context, d *Doctor) (int64, error) {
	return entity.Update(ctx, r.q, Desc, d.ID, r.values(d)...)
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) (int64, error) {
	return entity.Delete(ctx, r.q, Desc, id)
}

func (r *repoSQLite) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+doctorCols+` FROM doctors ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	var out []*Doctor
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.Name, db.Text(&d.Specialization), db.Text(&d.Phone),
			db.Text(&d.Email), db.Text(&d.Department), &d.LicenseNumber); err != nil {
			return nil, fmt.Errorf("list doctors: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (r *repoSQLite) Rows(ctx context.Context) ([][]string, error) {
	return entity.Rows(ctx, r.q, Desc)
}

func (r *repoSQLite) SearchRows(ctx context.Context, term string) ([][]string, error) {
	return entity.SearchRows(ctx, r.q, Desc, term)
}
