package doctor

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

func (s *Service) validateFields(d *Doctor) error {
	if !validate.Required(d.Name) {
		return fmt.Errorf("name is required")
	}
	if !validate.Required(d.LicenseNumber) {
		return fmt.Errorf("license number is required")
	}
	// Phone is optional for doctors, but must be digits when present.
	if d.Phone != "" && !validate.DigitsOnly(d.Phone, 1) {
		return fmt.Errorf("phone must contain digits only")
	}
	if d.Email != "" && !validate.LooksLikeEmail(d.Email) {
		return fmt.Errorf("email must contain @")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, d *Doctor) (int64, error) {
	if err := s.validateFields(d); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id int64) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, d *Doctor) (int64, error) {
	if err := s.validateFields(d); err != nil {
		return 0, err
	}
	return s.repo.Update(ctx, d)
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	return s.repo.List(ctx)
}

func (s *Service) Rows(ctx context.Context) ([][]string, error) {
	return s.repo.Rows(ctx)
}

func (s *Service) Search(ctx context.Context, term string) ([][]string, error) {
	return s.repo.SearchRows(ctx, term)
}
