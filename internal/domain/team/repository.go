package team

import "context"

// Repository describes the remote team collection as seen by use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, id int64) (Team, error)
	Create(ctx context.Context, in Input) (Team, error)
	Update(ctx context.Context, id int64, in Input) (Team, error)
	Delete(ctx context.Context, id int64) error
	ListByInstitute(ctx context.Context, instituteName string) ([]Team, error)
}
