package tournament

import "context"

// Repository exposes the read-only tournament views computed by the server.
type Repository interface {
	DrawSheets(ctx context.Context) ([]Pool, error)
	PromotionResults(ctx context.Context, topN int) (PromotionResult, error)
}
