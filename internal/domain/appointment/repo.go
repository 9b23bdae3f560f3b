package appointment

import "context"

type Repository interface {
	Create(ctx context.Context, a *Appointment) (int64, error)
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	ListByStatus(ctx context.Context, status string) ([]*Appointment, error)
	Rows(ctx context.Context) ([][]string, error)
	SearchRows(ctx context.Context, term string) ([][]string, error)
}
