package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/hms/hms/internal/platform/validate"
)

// Service validates patient fields before any mutation. The screen aborts
// on the first failing rule; nothing is written until every check passes.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) validateFields(p *Patient) error {
	if !validate.Required(p.Name) {
		return fmt.Errorf("name is required")
	}
	if !validate.Required(p.Phone) {
		return fmt.Errorf("phone is required")
	}
	if !validate.DigitsOnly(p.Phone, 7) {
		return fmt.Errorf("phone must be digits only, at least 7")
	}
	if p.DateOfBirth != "" {
		if _, err := validate.ParseDate("date of birth", p.DateOfBirth); err != nil {
			return err
		}
	}
	if p.Email != "" && !validate.LooksLikeEmail(p.Email) {
		return fmt.Errorf("email must contain @")
	}
	return nil
}

// Create validates and inserts a patient, stamping today's date as the
// admission date.
func (s *Service) Create(ctx context.Context, p *Patient) (int64, error) {
	if err := s.validateFields(p); err != nil {
		return 0, err
	}
	if p.AdmissionDate == "" {
		p.AdmissionDate = time.Now().Format(validate.DateLayout)
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// Update validates and rewrites a patient. An affected count of zero
// means the row vanished under the user; callers surface it as a warning.
func (s *Service) Update(ctx context.Context, p *Patient) (int64, error) {
	if err := s.validateFields(p); err != nil {
		return 0, err
	}
	return s.repo.Update(ctx, p)
}

// Delete removes a patient; appointments, medical records, and bills that
// reference it cascade away in the database.
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) Rows(ctx context.Context) ([][]string, error) {
	return s.repo.Rows(ctx)
}

func (s *Service) Search(ctx context.Context, term string) ([][]string, error) {
	return s.repo.SearchRows(ctx, term)
}
