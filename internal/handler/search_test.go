package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"homequery/internal/model"
	"homequery/internal/search"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuerier struct {
	topK atomic.Int64
	resp model.QueryServiceResponse
}

func (s *stubQuerier) Query(_ context.Context, _ string, topK int) (*model.QueryServiceResponse, error) {
	s.topK.Store(int64(topK))
	resp := s.resp
	return &resp, nil
}

func newTestRouter(t *testing.T, querier search.Querier) (*gin.Engine, *search.Machine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	machine := search.NewMachine()
	executor := search.NewExecutor(machine, querier, 5)
	h := NewSearchHandler(executor, 5, 10)

	router := gin.New()
	router.POST("/api/v1/search", h.Submit)
	router.GET("/api/v1/state", h.State)
	router.GET("/api/v1/state/stream", h.StateStream)
	return router, machine
}

func TestSearchHandler_Submit(t *testing.T) {
	t.Run("accepts a valid query", func(t *testing.T) {
		querier := &stubQuerier{resp: model.QueryServiceResponse{Success: true, Response: "done"}}
		router, machine := newTestRouter(t, querier)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/search", strings.NewReader(`{"query":"2 bed unit"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), `"accepted":true`)
		assert.Contains(t, w.Body.String(), `"search_id"`)

		require.Eventually(t, func() bool {
			return machine.Snapshot().Phase == model.PhaseSuccess
		}, 2*time.Second, 5*time.Millisecond)
		assert.Equal(t, int64(5), querier.topK.Load(), "default limit applies when top_k is omitted")
	})

	t.Run("rejects missing and blank queries", func(t *testing.T) {
		querier := &stubQuerier{resp: model.QueryServiceResponse{Success: true}}
		router, machine := newTestRouter(t, querier)

		for _, body := range []string{`{}`, `{"query":""}`, `{"query":"   "}`, `not json`} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/v1/search", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		}

		assert.Equal(t, model.PhaseIdle, machine.Snapshot().Phase, "rejected submissions must not touch state")
	})

	t.Run("caps top_k to the configured maximum", func(t *testing.T) {
		querier := &stubQuerier{resp: model.QueryServiceResponse{Success: true}}
		router, machine := newTestRouter(t, querier)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/search", strings.NewReader(`{"query":"anything","top_k":500}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		require.Eventually(t, func() bool {
			return machine.Snapshot().Phase == model.PhaseSuccess
		}, 2*time.Second, 5*time.Millisecond)
		assert.Equal(t, int64(10), querier.topK.Load())
	})
}

func TestSearchHandler_State(t *testing.T) {
	querier := &stubQuerier{resp: model.QueryServiceResponse{
		Success:    true,
		Response:   "Found 1 home",
		Properties: []model.PropertyPayload{{"id": "p1"}},
	}}
	router, machine := newTestRouter(t, querier)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/state", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"phase":"idle"`)

	submit := httptest.NewRequest("POST", "/api/v1/search", strings.NewReader(`{"query":"one home"}`))
	submit.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), submit)

	require.Eventually(t, func() bool {
		return machine.Snapshot().Phase == model.PhaseSuccess
	}, 2*time.Second, 5*time.Millisecond)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/state", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"phase":"success"`)
	assert.Contains(t, w.Body.String(), `"answer_text":"Found 1 home"`)
	assert.Contains(t, w.Body.String(), `"id":"p1"`)
}

func TestSearchHandler_StateStreamSendsCurrentState(t *testing.T) {
	querier := &stubQuerier{resp: model.QueryServiceResponse{Success: true}}
	router, _ := newTestRouter(t, querier)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/state/stream", nil).WithContext(ctx)
	router.ServeHTTP(w, req)

	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	assert.Contains(t, w.Body.String(), "event: state")
	assert.Contains(t, w.Body.String(), `"phase":"idle"`)
}
