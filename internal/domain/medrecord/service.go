package medrecord

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

func (s *Service) validateFields(rec *Record) error {
	if rec.PatientID <= 0 {
		return fmt.Errorf("a patient selection is required")
	}
	if rec.DoctorID <= 0 {
		return fmt.Errorf("a doctor selection is required")
	}
	if !validate.Required(rec.RecordDate) {
		return fmt.Errorf("record date is required")
	}
	if _, err := validate.ParseDate("record date", rec.RecordDate); err != nil {
		return err
	}
	if !validate.Required(rec.Diagnosis) {
		return fmt.Errorf("diagnosis is required")
	}
	if len(rec.Diagnosis) > MaxDiagnosisLen {
		return fmt.Errorf("diagnosis must be at most %d characters", MaxDiagnosisLen)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, rec *Record) (int64, error) {
	if err := s.validateFields(rec); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, rec)
}

func (s *Service) Get(ctx context.Context, id int64) (*Record, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, rec *Record) (int64, error) {
	if err := s.validateFields(rec); err != nil {
		return 0, err
	}
	return s.repo.Update(ctx, rec)
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Record, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) Rows(ctx context.Context) ([][]string, error) {
	return s.repo.Rows(ctx)
}

func (s *Service) Search(ctx context.Context, term string) ([][]string, error) {
	return s.repo.SearchRows(ctx, term)
}
