package appointment

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hms/hms/internal/platform/db"
)

func openSeededDB(t *testing.T) *db.DB {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "hospital.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	ctx := context.Background()
	if err := d.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if _, err := d.ExecContext(ctx,
		`INSERT INTO patients (name, phone) VALUES ('Alice', '1234567')`); err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	if _, err := d.ExecContext(ctx,
		`INSERT INTO doctors (name, license_number) VALUES ('Dr. Grey', 'LIC-1')`); err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return d
}

func TestRepo_RoundTrip(t *testing.T) {
	d := openSeededDB(t)
	repo := NewRepo(d)
	ctx := context.Background()

	in := &Appointment{
		PatientID: 1, DoctorID: 1,
		Date: "2025-09-01", Time: "09:30",
		Purpose: "Checkup", Status: StatusScheduled,
	}
	id, err := repo.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", got, in)
	}
}

func TestRepo_CreateRejectsDanglingReferences(t *testing.T) {
	d := openSeededDB(t)
	repo := NewRepo(d)

	_, err := repo.Create(context.Background(), &Appointment{
		PatientID: 99, DoctorID: 1,
		Date: "2025-09-01", Time: "09:30", Status: StatusScheduled,
	})
	if err == nil {
		t.Fatal("expected foreign key violation for unknown patient")
	}
}

func TestRepo_RowsJoinNames(t *testing.T) {
	d := openSeededDB(t)
	repo := NewRepo(d)
	ctx := context.Background()

	if _, err := repo.Create(ctx, &Appointment{
		PatientID: 1, DoctorID: 1,
		Date: "2025-09-01", Time: "09:30",
		Purpose: "Checkup", Status: StatusScheduled,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	rows, err := repo.Rows(ctx)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	want := []string{"1", "Alice", "Dr. Grey", "2025-09-01", "09:30", "Checkup", "Scheduled"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("display row mismatch:\n got %v\nwant %v", rows[0], want)
	}
}

func TestRepo_RowsOrderedMostRecentFirst(t *testing.T) {
	d := openSeededDB(t)
	repo := NewRepo(d)
	ctx := context.Background()

	for _, a := range []struct{ date, tm string }{
		{"2025-09-01", "09:00"},
		{"2025-09-02", "08:00"},
		{"2025-09-01", "14:00"},
	} {
		if _, err := repo.Create(ctx, &Appointment{
			PatientID: 1, DoctorID: 1, Date: a.date, Time: a.tm, Status: StatusScheduled,
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	rows, err := repo.Rows(ctx)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	var order []string
	for _, r := range rows {
		order = append(order, r[3]+" "+r[4])
	}
	want := []string{"2025-09-02 08:00", "2025-09-01 14:00", "2025-09-01 09:00"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("expected date/time descending, got %v", order)
	}
}

func TestRepo_SearchMatchesJoinedNames(t *testing.T) {
	d := openSeededDB(t)
	repo := NewRepo(d)
	ctx := context.Background()

	if _, err := repo.Create(ctx, &Appointment{
		PatientID: 1, DoctorID: 1,
		Date: "2025-09-01", Time: "09:30", Purpose: "Checkup", Status: StatusScheduled,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, term := range []string{"alice", "grey", "checkup", "sched"} {
		rows, err := repo.SearchRows(ctx, term)
		if err != nil {
			t.Fatalf("search %q: %v", term, err)
		}
		if len(rows) != 1 {
			t.Errorf("term %q should match the appointment, got %d rows", term, len(rows))
		}
	}

	rows, err := repo.SearchRows(ctx, "neurology")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no matches, got %v", rows)
	}
}

func TestRepo_EmptyListingIsPlaceholder(t *testing.T) {
	d := openSeededDB(t)
	repo := NewRepo(d)

	rows, err := repo.Rows(context.Background())
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if !Desc.IsPlaceholder(rows) {
		t.Errorf("expected placeholder listing, got %v", rows)
	}
}
