package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/mock"
	"github.com/m-mizutani/gt"

	"github.com/m-hayashi/relcycle/pkg/domain/model"
	"github.com/m-hayashi/relcycle/pkg/usecase"
)

func testCycle() model.ReleaseCycle {
	return model.ReleaseCycle{
		CycleKey:       "2026-01-07",
		Headline:       "Jan 1 - Jan 7, 2026",
		ReleaseVersion: "2026.1.7.0",
		Items: []model.ReleaseItem{
			{Title: "Added support for installments", PRNumber: "4821"},
			{Title: "Fix refund status polling"},
		},
	}
}

func TestSummaryUseCase_SummarizeCycle(t *testing.T) {
	ctx := context.Background()

	var capturedInput []gollem.Input
	mockClient := &mock.LLMClientMock{
		NewSessionFunc: func(ctx context.Context, opts ...gollem.SessionOption) (gollem.Session, error) {
			return &mock.SessionMock{
				GenerateFunc: func(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
					capturedInput = input
					return &gollem.Response{
						Texts: []string{"This cycle shipped Adyen installment support."},
					}, nil
				},
			}, nil
		},
	}

	uc, err := usecase.NewSummary(mockClient, "gemini-2.5-flash")
	gt.NoError(t, err)

	summary, err := uc.SummarizeCycle(ctx, testCycle())
	gt.NoError(t, err)
	gt.Value(t, summary.CycleKey).Equal("2026-01-07")
	gt.Value(t, summary.Summary).Equal("This cycle shipped Adyen installment support.")
	gt.Value(t, summary.Model).Equal("gemini-2.5-flash")

	// The prompt carries the plain-text digest of the cycle
	gt.V(t, len(capturedInput)).NotEqual(0)
	text, ok := capturedInput[0].(gollem.Text)
	gt.True(t, ok)
	gt.String(t, string(text)).Contains("- Added support for installments (PR #4821)")
	gt.String(t, string(text)).Contains("- Fix refund status polling")
	gt.String(t, string(text)).Contains("2026.1.7.0")
}

func TestSummaryUseCase_EmptyResponse(t *testing.T) {
	ctx := context.Background()

	mockClient := &mock.LLMClientMock{
		NewSessionFunc: func(ctx context.Context, opts ...gollem.SessionOption) (gollem.Session, error) {
			return &mock.SessionMock{
				GenerateFunc: func(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
					return &gollem.Response{}, nil
				},
			}, nil
		},
	}

	uc, err := usecase.NewSummary(mockClient, "test-model")
	gt.NoError(t, err)

	_, err = uc.SummarizeCycle(ctx, testCycle())
	gt.Error(t, err)
}

func TestSummaryUseCase_GenerateError(t *testing.T) {
	ctx := context.Background()

	mockClient := &mock.LLMClientMock{
		NewSessionFunc: func(ctx context.Context, opts ...gollem.SessionOption) (gollem.Session, error) {
			return &mock.SessionMock{
				GenerateFunc: func(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
					return nil, errors.New("model overloaded")
				},
			}, nil
		},
	}

	uc, err := usecase.NewSummary(mockClient, "test-model")
	gt.NoError(t, err)

	_, err = uc.SummarizeCycle(ctx, testCycle())
	gt.Error(t, err)
}
