package billing

import (
	"context"
	"fmt"

	"github.com/hms/hms/internal/platform/validate"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) validateFields(b *Bill) error {
	if b.PatientID <= 0 {
		return fmt.Errorf("a patient selection is required")
	}
	if !validate.Required(b.ServiceDescription) {
		return fmt.Errorf("service description is required")
	}
	if b.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	if !validate.Required(b.BillDate) {
		return fmt.Errorf("bill date is required")
	}
	if _, err := validate.ParseDate("bill date", b.BillDate); err != nil {
		return err
	}
	if b.DueDate != "" {
		if _, err := validate.ParseDate("due date", b.DueDate); err != nil {
			return err
		}
	}
	if b.Status != "" && !validStatuses[b.Status] {
		return fmt.Errorf("invalid bill status %q", b.Status)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, b *Bill) (int64, error) {
	if b.Status == "" {
		b.Status = StatusPending
	}
	if err := s.validateFields(b); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, b)
}

func (s *Service) Get(ctx context.Context, id int64) (*Bill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, b *Bill) (int64, error) {
	if err := s.validateFields(b); err != nil {
		return 0, err
	}
	return s.repo.Update(ctx, b)
}

// MarkPaid settles a bill in one step.
func (s *Service) MarkPaid(ctx context.Context, id int64) (int64, error) {
	return s.repo.UpdateStatus(ctx, id, StatusPaid)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	if !validStatuses[status] {
		return 0, fmt.Errorf("invalid bill status %q", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Bill, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) Rows(ctx context.Context) ([][]string, error) {
	return s.repo.Rows(ctx)
}

func (s *Service) Search(ctx context.Context, term string) ([][]string, error) {
	return s.repo.SearchRows(ctx, term)
}
