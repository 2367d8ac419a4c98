package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/panjf2000/ants/v2"
)

const defaultImportWorkers = 4

// ImportRow is one player read from an import file. Line is the source line,
// used only for reporting.
type ImportRow struct {
	Line  int
	Input player.Input
}

type ImportFailure struct {
	Line               int
	RegistrationNumber string
	Err                error
}

type ImportReport struct {
	Created  []player.Player
	Failures []ImportFailure
	Outcome  MutationOutcome
}

// ImportPlayers creates players concurrently and then applies the Player
// reload set once, only if at least one player was created.
func (s *Synchronizer) ImportPlayers(ctx context.Context, rows []ImportRow, workers int) (ImportReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Synchronizer.ImportPlayers")
	defer span.End()

	if len(rows) == 0 {
		return ImportReport{}, fmt.Errorf("%w: no players to import", ErrInvalidInput)
	}
	if workers <= 0 {
		workers = defaultImportWorkers
	}

	workerPool, err := ants.NewPool(workers)
	if err != nil {
		return ImportReport{}, fmt.Errorf("create import worker pool: %w", err)
	}
	defer workerPool.Release()

	var (
		mu     sync.Mutex
		report ImportReport
		wg     sync.WaitGroup
	)
	for _, row := range rows {
		wg.Add(1)
		if err := workerPool.Submit(func() {
			defer wg.Done()

			created, err := s.importOne(ctx, row)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failures = append(report.Failures, ImportFailure{
					Line:               row.Line,
					RegistrationNumber: row.Input.RegistrationNumber,
					Err:                err,
				})
				return
			}
			report.Created = append(report.Created, created)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return report, fmt.Errorf("submit import task: %w", err)
		}
	}
	wg.Wait()

	sort.Slice(report.Created, func(i, j int) bool { return report.Created[i].ID < report.Created[j].ID })
	sort.Slice(report.Failures, func(i, j int) bool { return report.Failures[i].Line < report.Failures[j].Line })

	s.logger.InfoContext(ctx, "player import finished", "created", len(report.Created), "failed", len(report.Failures))
	if len(report.Created) == 0 {
		return report, fmt.Errorf("%w: no players imported", ErrMutationFailed)
	}

	message := fmt.Sprintf("%d players imported successfully!", len(report.Created))
	report.Outcome = s.commit(ctx, Mutation{Entity: EntityPlayer, Op: OpCreate}, message)
	return report, nil
}

func (s *Synchronizer) importOne(ctx context.Context, row ImportRow) (player.Player, error) {
	in := row.Input.Normalize()
	if err := s.validate(ctx, "player", in); err != nil {
		return player.Player{}, err
	}
	created, err := s.players.Create(ctx, in)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: import line %d: %w", ErrMutationFailed, row.Line, err)
	}
	return created, nil
}
