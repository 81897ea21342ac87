package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-hayashi/relcycle/pkg/domain/model"
)

// Summarize asks the LLM collaborator to describe the cycle identified by
// the cycleKey path parameter against a fresh snapshot
func (h *ChangelogHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.summaryUC == nil {
		writeError(w, goerr.New("summarizer not configured"), http.StatusServiceUnavailable)
		return
	}

	cycleKey := chi.URLParam(r, "cycleKey")
	if _, err := time.Parse(dateLayout, cycleKey); err != nil {
		writeError(w, goerr.New("invalid cycle key", goerr.V("cycle_key", cycleKey)), http.StatusBadRequest)
		return
	}

	_, cycles, err := h.changelogUC.Cycles(ctx, model.Filter{})
	if err != nil {
		ctxlog.From(ctx).Error("Failed to build cycle list for summary", "error", err)
		writeError(w, err, http.StatusBadGateway)
		return
	}

	var target *model.ReleaseCycle
	for i := range cycles {
		if cycles[i].CycleKey == cycleKey {
			target = &cycles[i]
			break
		}
	}
	if target == nil {
		writeError(w, goerr.New("no cycle with that key", goerr.V("cycle_key", cycleKey)), http.StatusNotFound)
		return
	}

	summary, err := h.summaryUC.SummarizeCycle(ctx, *target)
	if err != nil {
		ctxlog.From(ctx).Error("Failed to summarize cycle", "error", err, "cycle_key", cycleKey)
		writeError(w, err, http.StatusBadGateway)
		return
	}

	writeJSON(ctx, w, http.StatusOK, summary)
}
