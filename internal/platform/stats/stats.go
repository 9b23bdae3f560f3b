// Package stats runs the date-bucketed and grouped aggregation queries
// behind the dashboard cards, charts, and report summaries.
package stats

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/internal/platform/validate"
)

// MonthlySpec declares a trailing-months aggregation: which value to
// compute over which table's date column, with an optional fixed filter.
type MonthlySpec struct {
	Table      string
	DateColumn string
	ValueExpr  string // e.g. "COUNT(*)" or "COALESCE(SUM(amount), 0)"
	Where      string // optional extra predicate
}

// MonthBucket is one calendar month's value, labeled like "Aug'25".
type MonthBucket struct {
	Label string
	Value float64
}

// Canned specs for the dashboard charts.
var (
	AppointmentsPerMonth = MonthlySpec{
		Table:      "appointments",
		DateColumn: "appointment_date",
		ValueExpr:  "COUNT(*)",
	}
	PaidRevenuePerMonth = MonthlySpec{
		Table:      "billing",
		DateColumn: "bill_date",
		ValueExpr:  "COALESCE(SUM(amount), 0)",
		Where:      "status = 'Paid'",
	}
)

// MonthlyBuckets evaluates spec for the n calendar months ending at now's
// month. It always returns exactly n buckets in chronological order,
// zero-valued where no rows match. Month boundaries are first day through
// last day inclusive.
func MonthlyBuckets(ctx context.Context, q db.Querier, n int, spec MonthlySpec, now time.Time) ([]MonthBucket, error) {
	if n <= 0 {
		return nil, fmt.Errorf("monthly buckets: n must be positive, got %d", n)
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s BETWEEN ? AND ?",
		spec.ValueExpr, spec.Table, spec.DateColumn)
	if spec.Where != "" {
		query += " AND " + spec.Where
	}

	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	buckets := make([]MonthBucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		first := current.AddDate(0, -i, 0)
		last := first.AddDate(0, 1, -1)

		var v sql.NullFloat64
		err := q.QueryRowContext(ctx, query,
			first.Format(validate.DateLayout), last.Format(validate.DateLayout)).Scan(&v)
		if err != nil {
			return nil, fmt.Errorf("monthly buckets for %s: %w", spec.Table, err)
		}

		buckets = append(buckets, MonthBucket{
			Label: first.Format("Jan") + "'" + first.Format("06"),
			Value: v.Float64,
		})
	}
	return buckets, nil
}

// GroupCount is one category's row count.
type GroupCount struct {
	Label string
	Count int64
}

// groupQueries whitelists the category breakdowns the dashboard shows;
// the column name is interpolated, so it never comes from user input.
var groupQueries = map[string]string{
	"patients.gender": `SELECT COALESCE(NULLIF(gender, ''), 'Unspecified'), COUNT(*)
		FROM patients GROUP BY 1 ORDER BY 2 DESC, 1 ASC`,
	"doctors.specialization": `SELECT COALESCE(NULLIF(specialization, ''), 'Unspecified'), COUNT(*)
		FROM doctors GROUP BY 1 ORDER BY 2 DESC, 1 ASC`,
}

// PatientsByGender counts patients per gender value.
func PatientsByGender(ctx context.Context, q db.Querier) ([]GroupCount, error) {
	return groupCounts(ctx, q, "patients.gender")
}

// DoctorsBySpecialization counts doctors per specialization.
func DoctorsBySpecialization(ctx context.Context, q db.Querier) ([]GroupCount, error) {
	return groupCounts(ctx, q, "doctors.specialization")
}

func groupCounts(ctx context.Context, q db.Querier, key string) ([]GroupCount, error) {
	rows, err := q.QueryContext(ctx, groupQueries[key])
	if err != nil {
		return nil, fmt.Errorf("group counts %s: %w", key, err)
	}
	defer rows.Close()

	var out []GroupCount
	for rows.Next() {
		var g GroupCount
		if err := rows.Scan(&g.Label, &g.Count); err != nil {
			return nil, fmt.Errorf("group counts %s: %w", key, err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Summary holds the dashboard's headline cards.
type Summary struct {
	TotalPatients      int64
	TotalDoctors       int64
	TodaysAppointments int64 // still in Scheduled status, dated today
	PendingBills       int64 // anything not fully Paid
}

// Load computes the dashboard summary as of now's date.
func Load(ctx context.Context, q db.Querier, now time.Time) (*Summary, error) {
	s := &Summary{}
	today := now.Format(validate.DateLayout)

	cards := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&s.TotalPatients, "SELECT COUNT(*) FROM patients", nil},
		{&s.TotalDoctors, "SELECT COUNT(*) FROM doctors", nil},
		{&s.TodaysAppointments,
			"SELECT COUNT(*) FROM appointments WHERE appointment_date = ? AND status = 'Scheduled'",
			[]any{today}},
		{&s.PendingBills, "SELECT COUNT(*) FROM billing WHERE status != 'Paid'", nil},
	}
	for _, c := range cards {
		if err := q.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("dashboard summary: %w", err)
		}
	}
	return s, nil
}
