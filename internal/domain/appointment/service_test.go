package appointment

import (
	"context"
	"errors"
	"testing"
)

// -- Mock Repository --

type mockRepo struct {
	appointments map[int64]*Appointment
	nextID       int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{appointments: make(map[int64]*Appointment)}
}

func (m *mockRepo) Create(_ context.Context, a *Appointment) (int64, error) {
	m.nextID++
	a.ID = m.nextID
	cp := *a
	m.appointments[a.ID] = &cp
	return a.ID, nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *mockRepo) Update(_ context.Context, a *Appointment) (int64, error) {
	if _, ok := m.appointments[a.ID]; !ok {
		return 0, nil
	}
	cp := *a
	m.appointments[a.ID] = &cp
	return 1, nil
}

func (m *mockRepo) UpdateStatus(_ context.Context, id int64, status string) (int64, error) {
	a, ok := m.appointments[id]
	if !ok {
		return 0, nil
	}
	a.Status = status
	return 1, nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.appointments[id]; !ok {
		return 0, nil
	}
	delete(m.appointments, id)
	return 1, nil
}

func (m *mockRepo) ListByStatus(_ context.Context, status string) ([]*Appointment, error) {
	var out []*Appointment
	for _, a := range m.appointments {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockRepo) Rows(_ context.Context) ([][]string, error) {
	return nil, nil
}

func (m *mockRepo) SearchRows(_ context.Context, _ string) ([][]string, error) {
	return nil, nil
}

func book(t *testing.T, svc *Service) int64 {
	t.Helper()
	id, err := svc.Create(context.Background(), &Appointment{
		PatientID: 1, DoctorID: 1, Date: "2025-09-01", Time: "09:30", Purpose: "Checkup",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return id
}

func TestCreate_DefaultsToScheduled(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	id := book(t, svc)
	if repo.appointments[id].Status != StatusScheduled {
		t.Errorf("expected default status Scheduled, got %s", repo.appointments[id].Status)
	}
}

func TestCreate_Validation(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()

	cases := []struct {
		name string
		a    *Appointment
	}{
		{"missing patient", &Appointment{DoctorID: 1, Date: "2025-09-01", Time: "09:30"}},
		{"missing doctor", &Appointment{PatientID: 1, Date: "2025-09-01", Time: "09:30"}},
		{"missing date", &Appointment{PatientID: 1, DoctorID: 1, Time: "09:30"}},
		{"bad date", &Appointment{PatientID: 1, DoctorID: 1, Date: "2025-13-01", Time: "09:30"}},
		{"missing time", &Appointment{PatientID: 1, DoctorID: 1, Date: "2025-09-01"}},
		{"bad time", &Appointment{PatientID: 1, DoctorID: 1, Date: "2025-09-01", Time: "25:00"}},
		{"unknown status", &Appointment{PatientID: 1, DoctorID: 1, Date: "2025-09-01", Time: "09:30", Status: "Rescheduled"}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, tc.a); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
	if len(repo.appointments) != 0 {
		t.Errorf("no appointment should be written when validation fails, got %d", len(repo.appointments))
	}
}

func TestUpdateStatus_ScheduledToCompleted(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()

	id := book(t, svc)
	n, err := svc.UpdateStatus(ctx, id, StatusCompleted)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 affected row, got %d", n)
	}

	completed, err := svc.ListByStatus(ctx, StatusCompleted)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(completed) != 1 {
		t.Errorf("appointment should appear in the completed filter, got %d", len(completed))
	}
	scheduled, err := svc.ListByStatus(ctx, StatusScheduled)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(scheduled) != 0 {
		t.Errorf("appointment should leave the scheduled filter, got %d", len(scheduled))
	}
}

func TestUpdateStatus_TerminalStatesAreFinal(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()

	id := book(t, svc)
	if _, err := svc.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	for _, next := range []string{StatusScheduled, StatusCompleted} {
		_, err := svc.UpdateStatus(ctx, id, next)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("Cancelled -> %s should be rejected, got %v", next, err)
		}
	}
	if repo.appointments[id].Status != StatusCancelled {
		t.Errorf("rejected transitions must not write, status is %s", repo.appointments[id].Status)
	}
}

func TestUpdateStatus_SameStatusIsAllowed(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	id := book(t, svc)
	if _, err := svc.UpdateStatus(ctx, id, StatusScheduled); err != nil {
		t.Errorf("no-op status write should be allowed: %v", err)
	}
}

func TestUpdateStatus_MissingRow(t *testing.T) {
	svc := NewService(newMockRepo())

	n, err := svc.UpdateStatus(context.Background(), 42, StatusCompleted)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 affected rows for a missing id, got %d", n)
	}
}

func TestUpdate_GuardsStatusChange(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()

	id := book(t, svc)
	if _, err := svc.UpdateStatus(ctx, id, StatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}

	_, err := svc.Update(ctx, &Appointment{
		ID: id, PatientID: 1, DoctorID: 1, Date: "2025-09-02", Time: "10:00",
		Status: StatusScheduled,
	})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("full update must not sneak past the state machine, got %v", err)
	}
}
