package services

import (
	"context"
	"testing"

	"github.com/stackroast/stackroast/internal/domain/stack"
	"github.com/stackroast/stackroast/internal/domain/tool"
	"github.com/stackroast/stackroast/internal/pkg/logger"
	"github.com/stackroast/stackroast/internal/scoring"
	"github.com/stackroast/stackroast/internal/testutil"
)

func newStackFixture(t *testing.T) (*StackService, *testutil.MockStackRepository, *testutil.MockToolRepository) {
	t.Helper()
	stackRepo := testutil.NewMockStackRepository()
	toolRepo := testutil.NewMockToolRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	tools := NewToolService(toolRepo, log)
	return NewStackService(stackRepo, tools, log), stackRepo, toolRepo
}

func TestStackService_Create(t *testing.T) {
	service, _, _ := newStackFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		stack   *stack.Stack
		wantErr bool
	}{
		{
			name: "create stack with context",
			stack: &stack.Stack{
				UserID:  1,
				Name:    "my side project",
				ToolIDs: []string{"tool-1"},
				Context: scoring.StackContext{ExpectedUsers: 50, UseCase: scoring.UseCaseSideProject},
			},
			wantErr: false,
		},
		{
			name:    "missing name is rejected",
			stack:   &stack.Stack{UserID: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Create(ctx, tt.stack)

			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if tt.stack.ID == "" {
					t.Error("Create() did not assign an ID")
				}
				if tt.stack.Context.Budget == "" {
					t.Error("Create() did not normalize the context")
				}
			}
		})
	}
}

func TestStackService_Score(t *testing.T) {
	service, stackRepo, toolRepo := newStackFixture(t)
	ctx := context.Background()

	toolRepo.Create(ctx, &tool.Tool{ID: "vercel", Name: "Vercel", Category: tool.CategoryHosting})
	toolRepo.Create(ctx, &tool.Tool{ID: "supabase", Name: "Supabase", Category: tool.CategoryDatabase, BasePrice: 25})

	st := &stack.Stack{
		UserID:  1,
		Name:    "weekend app",
		ToolIDs: []string{"vercel", "supabase"},
		Context: scoring.StackContext{ExpectedUsers: 50, Budget: scoring.BudgetLow, Complexity: scoring.ComplexityLow, UseCase: scoring.UseCaseSideProject},
	}
	if err := service.Create(ctx, st); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	score, err := service.Score(ctx, st.ID)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	if score.Overall != 40 {
		t.Errorf("Score() overall = %d, want 40", score.Overall)
	}
	if len(stackRepo.Scores) != 1 {
		t.Fatalf("recorded scores = %d, want 1", len(stackRepo.Scores))
	}
	if stackRepo.Scores[0].Overall != score.Overall {
		t.Errorf("recorded overall = %d, want %d", stackRepo.Scores[0].Overall, score.Overall)
	}

	history, err := service.ScoreHistory(ctx, st.ID, 10)
	if err != nil {
		t.Fatalf("ScoreHistory() error = %v", err)
	}
	if len(history) != 1 {
		t.Errorf("ScoreHistory() = %d records, want 1", len(history))
	}
}

func TestStackService_ScoreUnknownStack(t *testing.T) {
	service, _, _ := newStackFixture(t)

	if _, err := service.Score(context.Background(), "nope"); err == nil {
		t.Error("Score() expected error for unknown stack")
	}
}

func TestStackService_ScoreToolsSkipsUnknownIDs(t *testing.T) {
	service, _, toolRepo := newStackFixture(t)
	ctx := context.Background()

	toolRepo.Create(ctx, &tool.Tool{ID: "vercel", Name: "Vercel", Category: tool.CategoryHosting})

	score, err := service.ScoreTools(ctx, []string{"vercel", "ghost-tool"}, scoring.StackContext{})
	if err != nil {
		t.Fatalf("ScoreTools() error = %v", err)
	}
	if score.Overall < 0 || score.Overall > 100 {
		t.Errorf("ScoreTools() overall = %d, out of range", score.Overall)
	}
}

func TestStackService_RebuildPercentiles(t *testing.T) {
	service, stackRepo, _ := newStackFixture(t)
	ctx := context.Background()

	// No history: the estimated curve stays in place.
	if err := service.RebuildPercentiles(ctx); err != nil {
		t.Fatalf("RebuildPercentiles() error = %v", err)
	}
	if got := service.PercentileOf(55); got != 50 {
		t.Errorf("PercentileOf(55) = %d, want estimated 50", got)
	}

	for _, overall := range []int{20, 30, 40, 60, 80} {
		stackRepo.RecordScore(ctx, &stack.ScoreRecord{StackID: "s", Overall: overall})
	}

	if err := service.RebuildPercentiles(ctx); err != nil {
		t.Fatalf("RebuildPercentiles() error = %v", err)
	}
	// 3 of 5 recorded scores are strictly below 55.
	if got := service.PercentileOf(55); got != 60 {
		t.Errorf("PercentileOf(55) = %d, want 60 from distribution", got)
	}
}
