package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-hayashi/relcycle/pkg/domain/interfaces"
	"github.com/m-hayashi/relcycle/pkg/domain/model"
	"github.com/m-hayashi/relcycle/pkg/utils/async"
)

const dateLayout = "2006-01-02"

// ChangelogHandler serves the parsed changelog to the dashboard UI
type ChangelogHandler struct {
	changelogUC interfaces.ChangelogUseCase
	summaryUC   interfaces.SummaryUseCase
	notifier    interfaces.Notifier
}

// NewChangelogHandler creates a new ChangelogHandler
func NewChangelogHandler(
	changelogUC interfaces.ChangelogUseCase,
	summaryUC interfaces.SummaryUseCase,
	notifier interfaces.Notifier,
) *ChangelogHandler {
	return &ChangelogHandler{
		changelogUC: changelogUC,
		summaryUC:   summaryUC,
		notifier:    notifier,
	}
}

type snapshotMeta struct {
	ID        string    `json:"snapshotId"`
	FetchedAt time.Time `json:"fetchedAt"`
	ItemCount int       `json:"itemCount"`
}

type itemsResponse struct {
	Snapshot snapshotMeta        `json:"snapshot"`
	Items    []model.ReleaseItem `json:"items"`
}

type cyclesResponse struct {
	Snapshot snapshotMeta         `json:"snapshot"`
	Cycles   []model.ReleaseCycle `json:"cycles"`
}

// Items returns the filtered flat item list
func (h *ChangelogHandler) Items(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	snapshot, items, err := h.changelogUC.Items(ctx, filter)
	if err != nil {
		ctxlog.From(ctx).Error("Failed to build item list", "error", err)
		writeError(w, err, http.StatusBadGateway)
		return
	}
	if items == nil {
		items = []model.ReleaseItem{}
	}

	writeJSON(ctx, w, http.StatusOK, &itemsResponse{
		Snapshot: meta(snapshot),
		Items:    items,
	})
}

// Cycles returns the filtered items grouped into weekly release cycles
func (h *ChangelogHandler) Cycles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	snapshot, cycles, err := h.changelogUC.Cycles(ctx, filter)
	if err != nil {
		ctxlog.From(ctx).Error("Failed to build cycle list", "error", err)
		writeError(w, err, http.StatusBadGateway)
		return
	}
	if cycles == nil {
		cycles = []model.ReleaseCycle{}
	}

	writeJSON(ctx, w, http.StatusOK, &cyclesResponse{
		Snapshot: meta(snapshot),
		Cycles:   cycles,
	})
}

// Notify posts the most recent cycle digest to the configured channel. The
// delivery runs asynchronously; the response only acknowledges the request.
func (h *ChangelogHandler) Notify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.notifier == nil {
		writeError(w, goerr.New("notifier not configured"), http.StatusServiceUnavailable)
		return
	}

	_, cycles, err := h.changelogUC.Cycles(ctx, model.Filter{})
	if err != nil {
		writeError(w, err, http.StatusBadGateway)
		return
	}
	if len(cycles) == 0 {
		writeError(w, goerr.New("no release cycles available"), http.StatusNotFound)
		return
	}

	cycle := cycles[0]
	async.Dispatch(ctx, func(ctx context.Context) error {
		return h.notifier.NotifyCycle(ctx, cycle)
	})

	writeJSON(ctx, w, http.StatusAccepted, map[string]string{
		"status":   "accepted",
		"cycleKey": cycle.CycleKey,
	})
}

func meta(snapshot *model.Snapshot) snapshotMeta {
	return snapshotMeta{
		ID:        snapshot.ID,
		FetchedAt: snapshot.FetchedAt,
		ItemCount: len(snapshot.Items),
	}
}

// parseFilter builds a filter from query parameters, rejecting unknown
// change types and unparsable dates
func parseFilter(r *http.Request) (model.Filter, error) {
	query := r.URL.Query()
	filter := model.Filter{
		Connector: query.Get("connector"),
	}

	if v := query.Get("type"); v != "" {
		changeType := model.ChangeType(v)
		if !changeType.Valid() {
			return filter, goerr.New("unknown change type", goerr.V("type", v))
		}
		filter.Type = changeType
	}

	if v := query.Get("from"); v != "" {
		if _, err := time.Parse(dateLayout, v); err != nil {
			return filter, goerr.Wrap(err, "invalid from date", goerr.V("from", v))
		}
		filter.FromDate = v
	}
	if v := query.Get("to"); v != "" {
		if _, err := time.Parse(dateLayout, v); err != nil {
			return filter, goerr.Wrap(err, "invalid to date", goerr.V("to", v))
		}
		filter.ToDate = v
	}

	return filter, nil
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}
