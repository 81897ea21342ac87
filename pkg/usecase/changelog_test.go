package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-hayashi/relcycle/pkg/changelog"
	"github.com/m-hayashi/relcycle/pkg/domain/model"
	"github.com/m-hayashi/relcycle/pkg/usecase"
)

// MockFetcher is a mock implementation of ChangelogFetcher
type MockFetcher struct {
	fetchFunc func(ctx context.Context) (string, error)
	calls     int
}

func (m *MockFetcher) Fetch(ctx context.Context) (string, error) {
	m.calls++
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx)
	}
	return "", errors.New("mock not configured")
}

const testDoc = `## [2026.1.13.0]
- [ADYEN] Added support for installments ([#4821](https://github.com/juspay/hyperswitch/pull/4821))
## [2026.1.7.0]
- Fix refund status polling for [stripe] ([#4701](https://github.com/juspay/hyperswitch/pull/4701))
- Added payout schedules
`

func fixedClock(s string) func() time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestChangelogUseCase_Snapshot(t *testing.T) {
	ctx := context.Background()
	fetcher := &MockFetcher{
		fetchFunc: func(ctx context.Context) (string, error) { return testDoc, nil },
	}

	uc := usecase.NewChangelog(fetcher, changelog.DefaultPolicy(),
		usecase.WithClock(fixedClock("2026-01-20")))

	snapshot, err := uc.Snapshot(ctx)
	gt.NoError(t, err)
	gt.Value(t, snapshot.ID).NotEqual("")
	gt.A(t, snapshot.Items).Length(3)
	gt.Value(t, snapshot.Items[0].Connector).Equal("Adyen")
	gt.Value(t, snapshot.Items[1].Type).Equal(model.ChangeTypeBugFix)
	gt.Value(t, fetcher.calls).Equal(1)
}

func TestChangelogUseCase_SnapshotIDsDiffer(t *testing.T) {
	ctx := context.Background()
	fetcher := &MockFetcher{
		fetchFunc: func(ctx context.Context) (string, error) { return testDoc, nil },
	}

	uc := usecase.NewChangelog(fetcher, changelog.DefaultPolicy())

	a, err := uc.Snapshot(ctx)
	gt.NoError(t, err)
	b, err := uc.Snapshot(ctx)
	gt.NoError(t, err)

	// Every invocation is a fresh fetch pass
	gt.Value(t, a.ID).NotEqual(b.ID)
	gt.Value(t, a.Items).Equal(b.Items)
	gt.Value(t, fetcher.calls).Equal(2)
}

func TestChangelogUseCase_FetchErrorPropagates(t *testing.T) {
	ctx := context.Background()
	fetcher := &MockFetcher{
		fetchFunc: func(ctx context.Context) (string, error) {
			return "", errors.New("remote unavailable")
		},
	}

	uc := usecase.NewChangelog(fetcher, changelog.DefaultPolicy())

	_, err := uc.Snapshot(ctx)
	gt.Error(t, err)

	_, _, err = uc.Items(ctx, model.Filter{})
	gt.Error(t, err)

	_, _, err = uc.Cycles(ctx, model.Filter{})
	gt.Error(t, err)
}

func TestChangelogUseCase_Items_Filtered(t *testing.T) {
	ctx := context.Background()
	fetcher := &MockFetcher{
		fetchFunc: func(ctx context.Context) (string, error) { return testDoc, nil },
	}

	uc := usecase.NewChangelog(fetcher, changelog.DefaultPolicy())

	_, items, err := uc.Items(ctx, model.Filter{Type: model.ChangeTypeFeature})
	gt.NoError(t, err)
	gt.A(t, items).Length(2)
	gt.Value(t, items[0].Title).Equal("Added support for installments")
	gt.Value(t, items[1].Title).Equal("Added payout schedules")
}

func TestChangelogUseCase_Cycles(t *testing.T) {
	ctx := context.Background()
	fetcher := &MockFetcher{
		fetchFunc: func(ctx context.Context) (string, error) { return testDoc, nil },
	}

	uc := usecase.NewChangelog(fetcher, changelog.DefaultPolicy(),
		usecase.WithClock(fixedClock("2026-01-14")))

	_, cycles, err := uc.Cycles(ctx, model.Filter{})
	gt.NoError(t, err)
	gt.A(t, cycles).Length(2)

	// 2026-01-13 is a Tuesday, 2026-01-07 a Wednesday
	gt.Value(t, cycles[0].CycleKey).Equal("2026-01-14")
	gt.Value(t, cycles[0].ReleaseVersion).Equal("2026.1.13.0")
	gt.True(t, cycles[0].IsCurrentCycle)

	gt.Value(t, cycles[1].CycleKey).Equal("2026-01-07")
	gt.Value(t, cycles[1].ReleaseVersion).Equal("2026.1.7.0")
	gt.False(t, cycles[1].IsCurrentCycle)
}
