package doctor

import "context"

type Repository interface {
	Create(ctx context.Context, d *Doctor) (int64, error)
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	Update(ctx context.Context, d *Doctor) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]*Doctor, error)
	Rows(ctx context.Context) ([][]string, error)
	SearchRows(ctx context.Context, term string) ([][]string, error)
}
