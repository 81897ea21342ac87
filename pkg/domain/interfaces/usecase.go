package interfaces

import (
	"context"

	"github.com/m-hayashi/relcycle/pkg/domain/model"
)

// ChangelogUseCase drives the fetch -> parse -> filter -> group pipeline.
// Each call performs a fresh fetch pass; callers own caching cadence.
type ChangelogUseCase interface {
	// Snapshot fetches and parses the changelog into a flat item list
	Snapshot(ctx context.Context) (*model.Snapshot, error)

	// Items returns the filtered flat item list of a fresh snapshot
	Items(ctx context.Context, filter model.Filter) (*model.Snapshot, []model.ReleaseItem, error)

	// Cycles returns the filtered items of a fresh snapshot grouped into
	// weekly release cycles, most recent first
	Cycles(ctx context.Context, filter model.Filter) (*model.Snapshot, []model.ReleaseCycle, error)
}

// SummaryUseCase asks the LLM collaborator to describe one release cycle
type SummaryUseCase interface {
	SummarizeCycle(ctx context.Context, cycle model.ReleaseCycle) (*model.CycleSummary, error)
}
