// Package report assembles tabular reports over the hospital database and
// exports them to PDF. Each report is defined declaratively: a title, its
// column headings, and the query that fills it.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/internal/platform/entity"
	"github.com/hms/hms/internal/platform/validate"
)

// Report is one generated report, ready for display or export.
type Report struct {
	Title       string
	Columns     []string
	Rows        [][]string
	GeneratedAt time.Time

	empty bool
}

// HasData reports whether the report holds real rows rather than the
// single "no data" placeholder.
func (r *Report) HasData() bool {
	return !r.empty
}

func build(ctx context.Context, q db.Querier, title string, cols []string,
	placeholder, query string, args ...any) (*Report, error) {

	rows, err := entity.QueryDisplayRows(ctx, q, len(cols), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s report: %w", strings.ToLower(title), err)
	}
	r := &Report{
		Title:       title,
		Columns:     cols,
		Rows:        rows,
		GeneratedAt: time.Now(),
	}
	if len(rows) == 0 {
		row := make([]string, len(cols))
		row[len(row)/2] = placeholder
		r.Rows = [][]string{row}
		r.empty = true
	}
	return r, nil
}

// AppointmentFilter narrows the appointments report. Zero values mean no
// bound on that axis.
type AppointmentFilter struct {
	From   string // YYYY-MM-DD, inclusive
	To     string // YYYY-MM-DD, inclusive
	Status string
}

// Appointments lists appointments in the filter window in chronological
// order, earliest first.
func Appointments(ctx context.Context, q db.Querier, f AppointmentFilter) (*Report, error) {
	var (
		conds []string
		args  []any
	)
	if f.From != "" {
		if _, err := validate.ParseDate("from date", f.From); err != nil {
			return nil, err
		}
		conds = append(conds, "a.appointment_date >= ?")
		args = append(args, f.From)
	}
	if f.To != "" {
		if _, err := validate.ParseDate("to date", f.To); err != nil {
			return nil, err
		}
		conds = append(conds, "a.appointment_date <= ?")
		args = append(args, f.To)
	}
	if f.Status != "" {
		conds = append(conds, "a.status = ?")
		args = append(args, f.Status)
	}

	query := `SELECT a.appointment_id, p.name, d.name, a.appointment_date,
			a.appointment_time, a.purpose, a.status
		FROM appointments a
		JOIN patients p ON a.patient_id = p.patient_id
		JOIN doctors d ON a.doctor_id = d.doctor_id`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY a.appointment_date ASC, a.appointment_time ASC"

	return build(ctx, q, "Appointments Report",
		[]string{"ID", "Patient", "Doctor", "Date", "Time", "Purpose", "Status"},
		"No appointments found.", query, args...)
}

// PatientList lists every patient ordered by name.
func PatientList(ctx context.Context, q db.Querier) (*Report, error) {
	return build(ctx, q, "Patient List",
		[]string{"ID", "Name", "Date of Birth", "Gender", "Phone", "Email", "Admitted"},
		"No patients found.",
		`SELECT patient_id, name, date_of_birth, gender, phone, email, admission_date
		 FROM patients ORDER BY name`)
}

// DoctorList lists every doctor ordered by name.
func DoctorList(ctx context.Context, q db.Querier) (*Report, error) {
	return build(ctx, q, "Doctor List",
		[]string{"ID", "Name", "Specialization", "Department", "Phone", "License"},
		"No doctors found.",
		`SELECT doctor_id, name, specialization, department, phone, license_number
		 FROM doctors ORDER BY name`)
}

// BillingSummary lists every bill with its patient, newest first.
func BillingSummary(ctx context.Context, q db.Querier) (*Report, error) {
	return build(ctx, q, "Billing Summary",
		[]string{"ID", "Patient", "Service", "Amount", "Bill Date", "Due Date", "Status"},
		"No billing records found.",
		`SELECT b.bill_id, p.name, b.service_description, b.amount,
			b.bill_date, b.due_date, b.status
		 FROM billing b
		 JOIN patients p ON b.patient_id = p.patient_id
		 ORDER BY b.bill_date DESC`)
}
