package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/hms/hms/internal/platform/validate"
)

// ErrInvalidTransition reports a status change the state machine forbids.
// Completed and Cancelled are terminal; nothing moves back to Scheduled.
var ErrInvalidTransition = errors.New("invalid appointment status transition")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) validateFields(a *Appointment) error {
	if a.PatientID <= 0 {
		return fmt.Errorf("a patient selection is required")
	}
	if a.DoctorID <= 0 {
		return fmt.Errorf("a doctor selection is required")
	}
	if !validate.Required(a.Date) {
		return fmt.Errorf("appointment date is required")
	}
	if _, err := validate.ParseDate("appointment date", a.Date); err != nil {
		return err
	}
	if !validate.Required(a.Time) {
		return fmt.Errorf("appointment time is required")
	}
	if _, err := validate.ParseTime("appointment time", a.Time); err != nil {
		return err
	}
	if a.Status != "" && !validStatuses[a.Status] {
		return fmt.Errorf("invalid status: %s", a.Status)
	}
	return nil
}

// Create validates and books an appointment, defaulting its status to
// Scheduled.
func (s *Service) Create(ctx context.Context, a *Appointment) (int64, error) {
	if err := s.validateFields(a); err != nil {
		return 0, err
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// Update rewrites an appointment. A status change rides along only when
// the state machine allows it from the stored status.
func (s *Service) Update(ctx context.Context, a *Appointment) (int64, error) {
	if err := s.validateFields(a); err != nil {
		return 0, err
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}

	current, err := s.repo.GetByID(ctx, a.ID)
	if err != nil {
		return 0, err
	}
	if current == nil {
		return 0, nil
	}
	if !canTransition(current.Status, a.Status) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, a.Status)
	}
	return s.repo.Update(ctx, a)
}

// UpdateStatus moves an appointment through the state machine. Unknown
// statuses and transitions out of a terminal state are rejected before
// any write.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	if !validStatuses[status] {
		return 0, fmt.Errorf("invalid status: %s", status)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if current == nil {
		return 0, nil
	}
	if !canTransition(current.Status, status) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]*Appointment, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	return s.repo.ListByStatus(ctx, status)
}

func (s *Service) Rows(ctx context.Context) ([][]string, error) {
	return s.repo.Rows(ctx)
}

func (s *Service) Search(ctx context.Context, term string) ([][]string, error) {
	return s.repo.SearchRows(ctx, term)
}
