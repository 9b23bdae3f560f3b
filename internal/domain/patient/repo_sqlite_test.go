package patient

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hms/hms/internal/platform/db"
)

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "hospital.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	if err := d.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return d
}

func TestRepo_RoundTrip(t *testing.T) {
	d := openTestDB(t)
	repo := NewRepo(d)
	ctx := context.Background()

	in := &Patient{
		Name:           "Alice",
		DateOfBirth:    "1990-05-04",
		Gender:         "Female",
		Address:        "12 Main St",
		Phone:          "1234567",
		Email:          "alice@example.com",
		AdmissionDate:  "2025-08-30",
		MedicalHistory: "asthma",
	}
	id, err := repo.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected a patient row")
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", got, in)
	}
}

func TestRepo_GetMissingReturnsNil(t *testing.T) {
	d := openTestDB(t)
	repo := NewRepo(d)

	got, err := repo.GetByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for a missing id, got %+v", got)
	}
}

func TestRepo_UpdateReflectsNewValues(t *testing.T) {
	d := openTestDB(t)
	repo := NewRepo(d)
	ctx := context.Background()

	id, err := repo.Create(ctx, &Patient{Name: "Alice", Phone: "1234567"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	n, err := repo.Update(ctx, &Patient{ID: id, Name: "Alice Smith", Phone: "1234567", Address: "9 Oak Ave"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 affected row, got %d", n)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Alice Smith" || got.Address != "9 Oak Ave" {
		t.Errorf("update not reflected: %+v", got)
	}
}

func TestRepo_DuplicatePhoneNamesColumn(t *testing.T) {
	d := openTestDB(t)
	repo := NewRepo(d)
	ctx := context.Background()

	if _, err := repo.Create(ctx, &Patient{Name: "Alice", Phone: "1234567"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := repo.Create(ctx, &Patient{Name: "Bob", Phone: "1234567"})
	var cerr *db.ConstraintError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *db.ConstraintError, got %v", err)
	}
	if cerr.Column != "phone" {
		t.Errorf("expected violated column phone, got %q", cerr.Column)
	}
}

func TestRepo_SearchBlankEqualsList(t *testing.T) {
	d := openTestDB(t)
	repo := NewRepo(d)
	ctx := context.Background()

	if _, err := repo.Create(ctx, &Patient{Name: "Alice", Phone: "1234567"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, &Patient{Name: "Bob", Phone: "7654321"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	listed, err := repo.Rows(ctx)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	searched, err := repo.SearchRows(ctx, "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !reflect.DeepEqual(listed, searched) {
		t.Errorf("search with blank term should equal the full listing:\n list %v\n search %v", listed, searched)
	}
}

func TestRepo_DeleteCascades(t *testing.T) {
	d := openTestDB(t)
	repo := NewRepo(d)
	ctx := context.Background()

	pid, err := repo.Create(ctx, &Patient{Name: "Alice", Phone: "1234567"})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	if _, err := d.ExecContext(ctx,
		`INSERT INTO doctors (name, license_number) VALUES ('Dr. Grey', 'LIC-1')`); err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	if _, err := d.ExecContext(ctx,
		`INSERT INTO appointments (patient_id, doctor_id, appointment_date, appointment_time)
		 VALUES (?, 1, '2025-09-01', '09:00')`, pid); err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	if _, err := d.ExecContext(ctx,
		`INSERT INTO medical_records (patient_id, doctor_id, record_date, diagnosis)
		 VALUES (?, 1, '2025-09-01', 'flu')`, pid); err != nil {
		t.Fatalf("create record: %v", err)
	}
	if _, err := d.ExecContext(ctx,
		`INSERT INTO billing (patient_id, service_description, amount, bill_date)
		 VALUES (?, 'Consultation', 100, '2025-09-01')`, pid); err != nil {
		t.Fatalf("create bill: %v", err)
	}

	n, err := repo.Delete(ctx, pid)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 affected row, got %d", n)
	}

	for _, table := range []string{"appointments", "medical_records", "billing"} {
		var count int
		if err := d.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if count != 0 {
			t.Errorf("expected %s rows to cascade away, found %d", table, count)
		}
	}
}
