package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-hayashi/relcycle/pkg/changelog"
	controller "github.com/m-hayashi/relcycle/pkg/controller/http"
	"github.com/m-hayashi/relcycle/pkg/domain/model"
	"github.com/m-hayashi/relcycle/pkg/infra/source"
	"github.com/m-hayashi/relcycle/pkg/usecase"
)

func TestHealthEndpoint(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewChangelog(source.New("http://localhost:0"), changelog.DefaultPolicy())

	server, err := controller.NewServer(
		ctx,
		uc,
		nil, // summarizer not needed for health check
		nil, // notifier not needed for health check
		controller.WithAddr("localhost:0"),
	)
	gt.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusOK)

	var status model.HealthStatus
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&status))
	gt.Value(t, status.Status).Equal("healthy")
	gt.Value(t, status.Service).Equal("relcycle")
	gt.Value(t, status.Version).NotEqual("")
}
