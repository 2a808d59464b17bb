package services

import (
	"context"
	"testing"

	"github.com/stackroast/stackroast/internal/domain/tool"
	"github.com/stackroast/stackroast/internal/pkg/logger"
	"github.com/stackroast/stackroast/internal/testutil"
)

func TestToolService_Create(t *testing.T) {
	mockRepo := testutil.NewMockToolRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewToolService(mockRepo, log)
	ctx := context.Background()

	tests := []struct {
		name    string
		tool    *tool.Tool
		wantErr bool
	}{
		{
			name:    "create hosting tool",
			tool:    &tool.Tool{Name: "Vercel", Category: tool.CategoryHosting, BasePrice: 20},
			wantErr: false,
		},
		{
			name:    "duplicate name",
			tool:    &tool.Tool{Name: "Vercel", Category: tool.CategoryHosting},
			wantErr: true,
		},
		{
			name:    "missing name",
			tool:    &tool.Tool{Category: tool.CategoryDatabase},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Create(ctx, tt.tool)

			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestToolService_Resolve(t *testing.T) {
	mockRepo := testutil.NewMockToolRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewToolService(mockRepo, log)
	ctx := context.Background()

	mockRepo.Create(ctx, &tool.Tool{ID: "a", Name: "AWS", Category: tool.CategoryHosting})
	mockRepo.Create(ctx, &tool.Tool{ID: "b", Name: "Supabase", Category: tool.CategoryDatabase})

	tests := []struct {
		name      string
		ids       []string
		wantNames []string
	}{
		{
			name:      "resolves in input order",
			ids:       []string{"b", "a"},
			wantNames: []string{"Supabase", "AWS"},
		},
		{
			name:      "unknown ids are skipped",
			ids:       []string{"a", "missing", "b"},
			wantNames: []string{"AWS", "Supabase"},
		},
		{
			name:      "empty input",
			ids:       nil,
			wantNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.Resolve(ctx, tt.ids)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if len(got) != len(tt.wantNames) {
				t.Fatalf("Resolve() = %d tools, want %d", len(got), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if got[i].Name != want {
					t.Errorf("Resolve()[%d] = %q, want %q", i, got[i].Name, want)
				}
			}
		})
	}
}
