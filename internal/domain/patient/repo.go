package patient

import "context"

type Repository interface {
	Create(ctx context.Context, p *Patient) (int64, error)
	GetByID(ctx context.Context, id int64) (*Patient, error)
	Update(ctx context.Context, p *Patient) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]*Patient, error)
	Rows(ctx context.Context) ([][]string, error)
	SearchRows(ctx context.Context, term string) ([][]string, error)
}
