package billing

import "context"

type Repository interface {
	Create(ctx context.Context, b *Bill) (int64, error)
	GetByID(ctx context.Context, id int64) (*Bill, error)
	Update(ctx context.Context, b *Bill) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*Bill, error)
	Rows(ctx context.Context) ([][]string, error)
	SearchRows(ctx context.Context, term string) ([][]string, error)
}
