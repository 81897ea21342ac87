package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-hayashi/relcycle/pkg/changelog"
	"github.com/m-hayashi/relcycle/pkg/domain/interfaces"
	"github.com/m-hayashi/relcycle/pkg/domain/model"
)

type changelogUseCase struct {
	fetcher interfaces.ChangelogFetcher
	policy  changelog.Policy
	clock   func() time.Time
}

// ChangelogOption is a functional option for the changelog use case
type ChangelogOption func(*changelogUseCase)

// WithClock overrides the time source used to flag the current cycle
func WithClock(clock func() time.Time) ChangelogOption {
	return func(uc *changelogUseCase) {
		uc.clock = clock
	}
}

// NewChangelog creates the use case driving fetch -> parse -> filter -> group
func NewChangelog(fetcher interfaces.ChangelogFetcher, policy changelog.Policy, opts ...ChangelogOption) interfaces.ChangelogUseCase {
	uc := &changelogUseCase{
		fetcher: fetcher,
		policy:  policy,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Snapshot fetches the changelog and parses it into a flat item list. Each
// call is a fresh pass; no state survives between invocations.
func (uc *changelogUseCase) Snapshot(ctx context.Context) (*model.Snapshot, error) {
	logger := ctxlog.From(ctx)

	raw, err := uc.fetcher.Fetch(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch changelog")
	}

	sections := changelog.Parse(raw, uc.policy)
	snapshot := &model.Snapshot{
		ID:        uuid.NewString(),
		FetchedAt: uc.clock(),
		Items:     changelog.Items(sections),
	}

	logger.Info("Parsed changelog snapshot",
		"snapshot_id", snapshot.ID,
		"sections", len(sections),
		"items", len(snapshot.Items),
	)

	return snapshot, nil
}

// Items returns the filtered flat item list of a fresh snapshot
func (uc *changelogUseCase) Items(ctx context.Context, filter model.Filter) (*model.Snapshot, []model.ReleaseItem, error) {
	snapshot, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	return snapshot, changelog.Apply(snapshot.Items, filter), nil
}

// Cycles returns the filtered items of a fresh snapshot grouped into weekly
// release cycles, most recent first
func (uc *changelogUseCase) Cycles(ctx context.Context, filter model.Filter) (*model.Snapshot, []model.ReleaseCycle, error) {
	snapshot, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	items := changelog.Apply(snapshot.Items, filter)
	return snapshot, changelog.GroupCycles(items, uc.policy, uc.clock()), nil
}
