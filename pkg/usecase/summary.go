package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"strings"
	"text/template"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/m-hayashi/relcycle/pkg/changelog"
	"github.com/m-hayashi/relcycle/pkg/domain/interfaces"
	"github.com/m-hayashi/relcycle/pkg/domain/model"
)

//go:embed prompts/cycle_summary_system.md
var summarySystemPrompt string

//go:embed prompts/cycle_summary_user.md
var summaryUserTemplate string

type summaryUseCase struct {
	llmClient    gollem.LLMClient
	userTemplate *template.Template
	modelName    string
	clock        func() time.Time
}

// NewSummary creates a SummaryUseCase backed by an LLM client. The model
// name is informational only, echoed back in summaries.
func NewSummary(llmClient gollem.LLMClient, modelName string) (interfaces.SummaryUseCase, error) {
	tmpl, err := template.New("user").Parse(summaryUserTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse summary prompt template")
	}

	return &summaryUseCase{
		llmClient:    llmClient,
		userTemplate: tmpl,
		modelName:    modelName,
		clock:        time.Now,
	}, nil
}

// SummarizeCycle asks the LLM for a human-readable description of one
// release cycle. The response is opaque decoration: a missing or empty
// response is an error for this call but never affects parsed data.
func (uc *summaryUseCase) SummarizeCycle(ctx context.Context, cycle model.ReleaseCycle) (*model.CycleSummary, error) {
	logger := ctxlog.From(ctx)

	var buf bytes.Buffer
	if err := uc.userTemplate.Execute(&buf, map[string]string{
		"Headline":       cycle.Headline,
		"ReleaseVersion": cycle.ReleaseVersion,
		"Digest":         changelog.Digest(cycle),
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to execute summary prompt template")
	}

	logger.Debug("Calling LLM for cycle summary",
		"cycle_key", cycle.CycleKey,
		"items", len(cycle.Items),
	)

	session, err := uc.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(summarySystemPrompt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buf.String()))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate cycle summary",
			goerr.V("cycle_key", cycle.CycleKey))
	}

	summary := ""
	if resp != nil {
		summary = strings.TrimSpace(strings.Join(resp.Texts, "\n"))
	}
	if summary == "" {
		return nil, goerr.New("empty summary from LLM", goerr.V("cycle_key", cycle.CycleKey))
	}

	return &model.CycleSummary{
		CycleKey:    cycle.CycleKey,
		Summary:     summary,
		Model:       uc.modelName,
		GeneratedAt: uc.clock(),
	}, nil
}
