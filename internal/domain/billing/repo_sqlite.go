package billing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/internal/platform/entity"
)

// Desc declares the billing table for the generic record store.
var Desc = entity.Descriptor{
	Table:         "billing",
	IDColumn:      "bill_id",
	InsertColumns: []string{"patient_id", "appointment_id", "service_description", "amount", "bill_date", "due_date", "status"},
	ListColumns:   []string{"b.bill_id", "p.name", "b.service_description", "b.amount", "b.bill_date", "b.due_date", "b.status"},
	ListFrom: `billing b
		JOIN patients p ON b.patient_id = p.patient_id`,
	ListIDColumn:  "b.bill_id",
	SearchColumns: []string{"p.name", "b.service_description", "b.status"},
	OrderBy:       "b.bill_date DESC",
	Placeholder:   "No bills found.",
}

const billCols = `bill_id, patient_id, appointment_id, service_description, amount, bill_date, due_date, status`

type repoSQLite struct {
	q db.Querier
}

func NewRepo(q db.Querier) Repository {
	return &repoSQLite{q: q}
}

func (r *repoSQLite) Create(ctx context.Context, b *Bill) (int64, error) {
	id, err := entity.Insert(ctx, r.q, Desc,
		b.PatientID, b.AppointmentID, b.ServiceDescription, b.Amount,
		b.BillDate, b.DueDate, b.Status)
	if err != nil {
		return 0, err
	}
	b.ID = id
	return id, nil
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Bill, error) {
	var (
		b    Bill
		appt sql.NullInt64
	)
	err := r.q.QueryRowContext(ctx,
		`SELECT `+billCols+` FROM billing WHERE bill_id = ?`, id).
		Scan(&b.ID, &b.PatientID, &appt, &b.ServiceDescription, &b.Amount,
			&b.BillDate, db.Text(&b.DueDate), db.Text(&b.Status))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get bill %d: %w", id, err)
	}
	if appt.Valid {
		b.AppointmentID = &appt.Int64
	}
	return &b, nil
}

func (r *repoSQLite) Update(ctx context.Context, b *Bill) (int64, error) {
	return entity.Update(ctx, r.q, Desc, b.ID,
		b.PatientID, b.AppointmentID, b.ServiceDescription, b.Amount,
		b.BillDate, b.DueDate, b.Status)
}

func (r *repoSQLite) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE billing SET status = ? WHERE bill_id = ?`, status, id)
	if err != nil {
		return 0, fmt.Errorf("update bill %d status: %w", id, err)
	}
	return res.RowsAffected()
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) (int64, error) {
	return entity.Delete(ctx, r.q, Desc, id)
}

func (r *repoSQLite) ListByPatient(ctx context.Context, patientID int64) ([]*Bill, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+billCols+` FROM billing WHERE patient_id = ?
		 ORDER BY bill_date DESC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list bills for patient %d: %w", patientID, err)
	}
	defer rows.Close()

	var out []*Bill
	for rows.Next() {
		var (
			b    Bill
			appt sql.NullInt64
		)
		if err := rows.Scan(&b.ID, &b.PatientID, &appt, &b.ServiceDescription,
			&b.Amount, &b.BillDate, db.Text(&b.DueDate), db.Text(&b.Status)); err != nil {
			return nil, fmt.Errorf("list bills for patient %d: %w", patientID, err)
		}
		if appt.Valid {
			b.AppointmentID = &appt.Int64
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

func (r *repoSQLite) Rows(ctx context.Context) ([][]string, error) {
	return entity.Rows(ctx, r.q, Desc)
}

func (r *repoSQLite) SearchRows(ctx context.Context, term string) ([][]string, error) {
	return entity.SearchRows(ctx, r.q, Desc, term)
}
