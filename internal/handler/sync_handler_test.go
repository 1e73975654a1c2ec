package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/require"

	"github.com/collegemonitor/monitor-api/internal/handler"
	"github.com/collegemonitor/monitor-api/internal/service"
)

type stubSyncService struct {
	summary service.SyncSummary
	err     error
	calls   int
}

func (s *stubSyncService) Run(context.Context) (service.SyncSummary, error) {
	s.calls++
	if s.err != nil {
		return service.SyncSummary{}, s.err
	}
	return s.summary, nil
}

const syncSummarySchema = `{
	"type": "object",
	"required": ["success", "message", "data"],
	"properties": {
		"success": {"type": "boolean"},
		"message": {"type": "string"},
		"data": {
			"type": "object",
			"required": ["total_fetched", "students_processed", "errors", "message"],
			"properties": {
				"total_fetched": {"type": "integer", "minimum": 0},
				"students_processed": {"type": "integer", "minimum": 0},
				"errors": {"type": "array", "items": {"type": "string"}},
				"message": {"type": "string"}
			}
		}
	}
}`

func newSyncApp(svc *stubSyncService) *fiber.App {
	app := fiber.New()
	handler.NewSyncHandler(svc, zerolog.Nop()).Register(app.Group("/api/v1/sync"))
	return app
}

func TestSyncHandlerReturnsSummary(t *testing.T) {
	svc := &stubSyncService{summary: service.SyncSummary{
		TotalFetched:      7,
		StudentsProcessed: 3,
		Errors:            []string{},
	}}
	app := newSyncApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, 1, svc.calls)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()

	schema, err := jsonschema.CompileString("sync_summary.json", syncSummarySchema)
	require.NoError(t, err)
	require.NoError(t, schema.Validate(payload))

	data, ok := payload["data"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, float64(7), data["total_fetched"])
	require.Equal(t, "Successfully fetched 7 activities from 3 students.", data["message"])
}

func TestSyncHandlerReportsNoNewActivities(t *testing.T) {
	svc := &stubSyncService{summary: service.SyncSummary{Errors: []string{"Failed to fetch GitHub data for Ada"}}}
	app := newSyncApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Message string `json:"message"`
		Data    struct {
			Errors []string `json:"errors"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()

	require.Equal(t, "No new activities were fetched. Please check API configurations.", payload.Message)
	require.Equal(t, []string{"Failed to fetch GitHub data for Ada"}, payload.Data.Errors)
}

func TestSyncHandlerWholeRunFailure(t *testing.T) {
	svc := &stubSyncService{err: fmt.Errorf("load student roster: connection refused")}
	app := newSyncApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()

	require.False(t, payload.Success)
	require.Contains(t, payload.Message, "Data fetch failed")
}
