package services

import (
	"context"
	"testing"

	"github.com/stackroast/stackroast/internal/domain/tool"
	"github.com/stackroast/stackroast/internal/pkg/logger"
	"github.com/stackroast/stackroast/internal/scoring"
)

func TestRoastService_GenerateFallback(t *testing.T) {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewRoastService("", log) // no API key, fallback only
	ctx := context.Background()

	tools := []*tool.Tool{
		{Name: "Hostinger", Category: tool.CategoryHosting},
		{Name: "MongoDB Atlas", Category: tool.CategoryDatabase},
	}
	score := scoring.StackScore{Overall: 35, Badge: scoring.BadgeNeedsWork}

	got := service.Generate(ctx, tools, score)

	if got.Source != RoastSourceFallback {
		t.Errorf("Source = %q, want %q", got.Source, RoastSourceFallback)
	}
	if got.Text == "" {
		t.Error("Text is empty")
	}
	if got.BurnScore < 10 || got.BurnScore > 100 {
		t.Errorf("BurnScore = %d, out of range", got.BurnScore)
	}

	// Same stack, same roast.
	again := service.Generate(ctx, tools, score)
	if again.Text != got.Text {
		t.Errorf("fallback roast not deterministic: %q vs %q", again.Text, got.Text)
	}
}

func TestRoastService_GenerateEmptyStack(t *testing.T) {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewRoastService("", log)

	got := service.Generate(context.Background(), nil, scoring.StackScore{Overall: 30, Badge: scoring.BadgeNeedsWork})
	if got.Text == "" {
		t.Error("Text is empty for empty stack")
	}
}

func TestBurnScore(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		overall int
		want    int
	}{
		{
			name:    "bad stack burns hot",
			text:    "short",
			overall: 20,
			want:    80,
		},
		{
			name:    "great stack barely smolders",
			text:    "short",
			overall: 95,
			want:    10, // floored
		},
		{
			name:    "long roast gets a bump",
			text:    string(make([]byte, 150)),
			overall: 50,
			want:    60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := burnScore(tt.text, tt.overall); got != tt.want {
				t.Errorf("burnScore() = %d, want %d", got, tt.want)
			}
		})
	}
}
