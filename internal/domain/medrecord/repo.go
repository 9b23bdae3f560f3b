package medrecord

import "context"

type Repository interface {
	Create(ctx context.Context, rec *Record) (int64, error)
	GetByID(ctx context.Context, id int64) (*Record, error)
	Update(ctx context.Context, rec *Record) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*Record, error)
	Rows(ctx context.Context) ([][]string, error)
	SearchRows(ctx context.Context, term string) ([][]string, error)
}
