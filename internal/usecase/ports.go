package usecase

import (
	"context"

	"github.com/mahotsav/championship-admin/internal/render"
)

// Notifier shows transient operator-facing messages.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

type nopNotifier struct{}

func (nopNotifier) Success(context.Context, string) {}
func (nopNotifier) Error(context.Context, string)   {}

// NopNotifier discards every message.
func NopNotifier() Notifier {
	return nopNotifier{}
}

// ViewSink receives render models. Each method replaces one view wholesale.
type ViewSink interface {
	RenderTeamTable(render.TeamTable)
	RenderPlayerTable(render.PlayerTable)
	RenderTeamSelect(render.Select)
	RenderInstituteSelect(render.Select)
	RenderPools(render.PoolsView)
	RenderPromotion(render.PromotionView)
}

type discardView struct{}

func (discardView) RenderTeamTable(render.TeamTable)     {}
func (discardView) RenderPlayerTable(render.PlayerTable) {}
func (discardView) RenderTeamSelect(render.Select)       {}
func (discardView) RenderInstituteSelect(render.Select)  {}
func (discardView) RenderPools(render.PoolsView)         {}
func (discardView) RenderPromotion(render.PromotionView) {}
