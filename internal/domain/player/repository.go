package player

import "context"

// Repository describes the remote player collection as seen by use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, error)
	Create(ctx context.Context, in Input) (Player, error)
	Update(ctx context.Context, id int64, in Input) (Player, error)
	Delete(ctx context.Context, id int64) error
}
