package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stackroast/stackroast/internal/domain/tool"
	"github.com/stackroast/stackroast/internal/pkg/logger"
	"github.com/stackroast/stackroast/internal/pkg/validator"
	"github.com/stackroast/stackroast/internal/services"
	"github.com/stackroast/stackroast/internal/testutil"
)

func newScoreHandler(t *testing.T) *ScoreHandler {
	t.Helper()

	toolRepo := testutil.NewMockToolRepository()
	stackRepo := testutil.NewMockStackRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	ctx := context.Background()
	toolRepo.Create(ctx, &tool.Tool{ID: "vercel", Name: "Vercel", Category: "hosting", BasePrice: 20})
	toolRepo.Create(ctx, &tool.Tool{ID: "supabase", Name: "Supabase", Category: "database", BasePrice: 25})

	toolSvc := services.NewToolService(toolRepo, log)
	stackSvc := services.NewStackService(stackRepo, toolSvc, log)
	return NewScoreHandler(stackSvc, log, validator.New())
}

func TestScoreHandler_Score(t *testing.T) {
	handler := newScoreHandler(t)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedScore  int
	}{
		{
			name:           "side project stack",
			body:           `{"tool_ids":["vercel","supabase"],"context":{"expected_users":50,"budget":"low","use_case":"side-project"}}`,
			expectedStatus: http.StatusOK,
			expectedScore:  40,
		},
		{
			name:           "empty stack still scores",
			body:           `{"tool_ids":[],"context":{}}`,
			expectedStatus: http.StatusOK,
			expectedScore:  30,
		},
		{
			name:           "malformed body",
			body:           `{"tool_ids":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/score", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.Score(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, tt.expectedStatus)
			}
			if rr.Code != http.StatusOK {
				return
			}

			var response struct {
				Success bool `json:"success"`
				Data    struct {
					Overall int `json:"overall"`
				} `json:"data"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if !response.Success {
				t.Error("expected success response")
			}
			if response.Data.Overall != tt.expectedScore {
				t.Errorf("Overall = %d, want %d", response.Data.Overall, tt.expectedScore)
			}
		})
	}
}

func TestScoreHandler_Percentile(t *testing.T) {
	handler := newScoreHandler(t)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedPct    int
	}{
		{name: "mid score", query: "?score=55", expectedStatus: http.StatusOK, expectedPct: 50},
		{name: "top score", query: "?score=95", expectedStatus: http.StatusOK, expectedPct: 95},
		{name: "missing score", query: "", expectedStatus: http.StatusBadRequest},
		{name: "out of range", query: "?score=250", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/scores/percentile"+tt.query, nil)
			rr := httptest.NewRecorder()

			handler.Percentile(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, tt.expectedStatus)
			}
			if rr.Code != http.StatusOK {
				return
			}

			var response struct {
				Data map[string]int `json:"data"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if got := response.Data["percentile"]; got != tt.expectedPct {
				t.Errorf("percentile = %d, want %d", got, tt.expectedPct)
			}
		})
	}
}
