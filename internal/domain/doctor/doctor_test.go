package doctor

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

func TestService_Validation(t *testing.T) {
	d := openTestDB(t)
	svc := NewService(NewRepo(d))
	ctx := context.Background()

	cases := []struct {
		name string
		doc  *Doctor
	}{
		{"missing name", &Doctor{LicenseNumber: "LIC-1"}},
		{"missing license", &Doctor{Name: "Dr. Grey"}},
		{"non-digit phone", &Doctor{Name: "Dr. Grey", LicenseNumber: "LIC-1", Phone: "555-0101"}},
		{"bad email", &Doctor{Name: "Dr. Grey", LicenseNumber: "LIC-1", Email: "grey.example.com"}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, tc.doc); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}

	// Phone and email are optional.
	if _, err := svc.Create(ctx, &Doctor{Name: "Dr. Grey", LicenseNumber: "LIC-1"}); err != nil {
		t.Errorf("optional fields blank should pass: %v", err)
	}
}

func TestRepo_RoundTrip(t *testing.T) {
	d := openTestDB(t)
	repo := NewRepo(d)
	ctx := context.Background()

	in := &Doctor{
		Name:           "Dr. Grey",
		Specialization: "Cardiology",
		Phone:          "5550101",
		Email:          "grey@example.com",
		Department:     "Surgery",
		LicenseNumber:  "LIC-1",
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

func TestRepo_DuplicateLicenseNamesColumn(t *testing.T) {
	d := openTestDB(t)
	repo := NewRepo(d)
	ctx := context.Background()

	if _, err := repo.Create(ctx, &Doctor{Name: "Dr. Grey", LicenseNumber: "LIC-1"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := repo.Create(ctx, &Doctor{Name: "Dr. Shepherd", LicenseNumber: "LIC-1"})
	var cerr *db.ConstraintError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *db.ConstraintError, got %v", err)
	}
	if cerr.Column != "license_number" {
		t.Errorf("expected violated column license_number, got %q", cerr.Column)
	}
}

func TestRepo_UpdateNonexistent(t *testing.T) {
	d := openTestDB(t)
	repo := NewRepo(d)

	n, err := repo.Update(context.Background(), &Doctor{ID: 99, Name: "Ghost", LicenseNumber: "LIC-9"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 affected rows, got %d", n)
	}
}

func TestRepo_SearchBySpecialization(t *testing.T) {
	d := openTestDB(t)
	repo := NewRepo(d)
	ctx := context.Background()

	if _, err := repo.Create(ctx, &Doctor{Name: "Dr. Grey", Specialization: "Cardiology", LicenseNumber: "LIC-1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, &Doctor{Name: "Dr. Shepherd", Specialization: "Neurology", LicenseNumber: "LIC-2"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.SearchRows(ctx, "cardio")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0][1] != "Dr. Grey" {
		t.Errorf("expected only the cardiologist, got %v", got)
	}

	listed, err := repo.Rows(ctx)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	all, err := repo.SearchRows(ctx, "")
	if err != nil {
		t.Fatalf("blank search: %v", err)
	}
	if !reflect.DeepEqual(listed, all) {
		t.Error("blank search should equal the full listing")
	}
}
