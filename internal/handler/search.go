package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"homequery/internal/model"
	"homequery/internal/search"

	"github.com/gin-gonic/gin"
)

// SearchHandler exposes the search orchestrator over HTTP
type SearchHandler struct {
	executor     *search.Executor
	defaultLimit int
	maxLimit     int
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(executor *search.Executor, defaultLimit, maxLimit int) *SearchHandler {
	return &SearchHandler{
		executor:     executor,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Submit handles POST /api/v1/search. The search runs asynchronously; the
// response acknowledges the attempt and clients observe the outcome through
// the state endpoints.
func (h *SearchHandler) Submit(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query must not be empty"})
		return
	}

	// Validate and cap limits
	if req.TopK <= 0 {
		req.TopK = h.defaultLimit
	}
	if req.TopK > h.maxLimit {
		req.TopK = h.maxLimit
	}

	// The remote call outlives this request; it must not inherit the
	// request context.
	if !h.executor.Submit(context.Background(), req.Query, req.TopK) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query must not be empty"})
		return
	}

	state := h.executor.Machine().Snapshot()
	c.JSON(http.StatusAccepted, model.SearchResponse{
		Accepted: true,
		SearchID: state.SearchID,
		Message:  "Search accepted",
	})
}

// State handles GET /api/v1/state
func (h *SearchHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.Machine().Snapshot())
}

// StateStream handles GET /api/v1/state/stream - SSE state subscription
func (h *SearchHandler) StateStream(c *gin.Context) {
	// Set SSE headers
	c.Header("Content-Type", "text/event-stream; charset=utf-8")
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming not supported"})
		return
	}

	machine := h.executor.Machine()
	updates := machine.Subscribe()
	defer machine.Unsubscribe(updates)

	// Send the current state first so subscribers never start blind
	sendSSE(c, "state", machine.Snapshot())
	flusher.Flush()

	for {
		select {
		case state, open := <-updates:
			if !open {
				return
			}
			sendSSE(c, "state", state)
			flusher.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}

// sendSSE sends a Server-Sent Event
func sendSSE(c *gin.Context, event string, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		fmt.Fprintf(c.Writer, "event: error\ndata: {\"error\": \"JSON marshal failed\"}\n\n")
		return
	}
	fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, string(jsonData))
}
