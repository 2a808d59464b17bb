package recommend

import (
	"strings"
	"testing"

	"github.com/stackroast/stackroast/internal/scoring"
)

func TestHosting(t *testing.T) {
	tests := []struct {
		name     string
		ctx      scoring.StackContext
		wantTool string
		wantAlt  string
		wantScr  int
	}{
		{
			name:     "tiny low budget side project gets Hostinger with no alternative",
			ctx:      scoring.StackContext{ExpectedUsers: 50, UseCase: scoring.UseCaseSideProject, Budget: scoring.BudgetLow, Complexity: scoring.ComplexityLow},
			wantTool: "Hostinger",
			wantScr:  85,
		},
		{
			name:     "high scale production gets AWS with Railway alternative",
			ctx:      scoring.StackContext{ExpectedUsers: 8000, UseCase: scoring.UseCaseProduction, Complexity: scoring.ComplexityHigh},
			wantTool: "AWS",
			wantAlt:  "Railway",
			wantScr:  90,
		},
		{
			name:     "mid size startup gets Railway with Vercel alternative",
			ctx:      scoring.StackContext{ExpectedUsers: 2000, UseCase: scoring.UseCaseStartup, Budget: scoring.BudgetMedium, Complexity: scoring.ComplexityMedium},
			wantTool: "Railway",
			wantAlt:  "Vercel",
			wantScr:  88,
		},
		{
			name:     "high complexity alone routes to AWS",
			ctx:      scoring.StackContext{ExpectedUsers: 500, UseCase: scoring.UseCaseStartup, Budget: scoring.BudgetHigh, Complexity: scoring.ComplexityHigh},
			wantTool: "AWS",
			wantAlt:  "Railway",
			wantScr:  90,
		},
		{
			name:     "low budget wins over startup stage",
			ctx:      scoring.StackContext{ExpectedUsers: 2000, UseCase: scoring.UseCaseStartup, Budget: scoring.BudgetLow, Complexity: scoring.ComplexityMedium},
			wantTool: "Hostinger",
			wantScr:  85,
		},
		{
			name:     "nothing special falls through to Vercel",
			ctx:      scoring.StackContext{ExpectedUsers: 2000, UseCase: scoring.UseCaseEnterprise, Budget: scoring.BudgetMedium, Complexity: scoring.ComplexityMedium},
			wantTool: "AWS", // enterprise use case is a priority-1 match
			wantAlt:  "Railway",
			wantScr:  90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hosting(tt.ctx)
			if got.Tool != tt.wantTool {
				t.Errorf("Tool = %q, want %q", got.Tool, tt.wantTool)
			}
			if got.Score != tt.wantScr {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScr)
			}
			if tt.wantAlt == "" {
				if got.BudgetAlternative != nil {
					t.Errorf("BudgetAlternative = %+v, want nil", got.BudgetAlternative)
				}
			} else {
				if got.BudgetAlternative == nil {
					t.Fatalf("BudgetAlternative = nil, want %q", tt.wantAlt)
				}
				if got.BudgetAlternative.Tool != tt.wantAlt {
					t.Errorf("BudgetAlternative.Tool = %q, want %q", got.BudgetAlternative.Tool, tt.wantAlt)
				}
				if got.BudgetAlternative.Reason == "" {
					t.Error("BudgetAlternative.Reason is empty")
				}
				if len(got.BudgetAlternative.Tradeoffs) == 0 {
					t.Error("BudgetAlternative.Tradeoffs is empty")
				}
			}
			if got.Context == "" {
				t.Error("Context explanation is empty")
			}
			if got.Category != "hosting" {
				t.Errorf("Category = %q, want hosting", got.Category)
			}
		})
	}
}

func TestHostingFallback(t *testing.T) {
	// Exactly 5000 users: too big for the startup rule (strictly under
	// 5000), not big enough for the scale rule (strictly over 5000), so
	// the generic fallback fires.
	got := Hosting(scoring.StackContext{ExpectedUsers: 5000, UseCase: scoring.UseCaseStartup, Budget: scoring.BudgetMedium, Complexity: scoring.ComplexityMedium})
	if got.Tool != "Vercel" {
		t.Errorf("Tool = %q, want Vercel", got.Tool)
	}
	if got.Score != 80 {
		t.Errorf("Score = %d, want 80", got.Score)
	}
	if got.BudgetAlternative != nil {
		t.Errorf("BudgetAlternative = %+v, want nil", got.BudgetAlternative)
	}
}

func TestDatabase(t *testing.T) {
	tests := []struct {
		name     string
		ctx      scoring.StackContext
		wantTool string
		wantAlt  string
		wantScr  int
	}{
		{
			name:     "scale pushes to RDS",
			ctx:      scoring.StackContext{ExpectedUsers: 10000, UseCase: scoring.UseCaseStartup, Complexity: scoring.ComplexityMedium},
			wantTool: "AWS RDS",
			wantAlt:  "PlanetScale",
			wantScr:  90,
		},
		{
			name:     "production pushes to RDS regardless of size",
			ctx:      scoring.StackContext{ExpectedUsers: 200, UseCase: scoring.UseCaseProduction, Complexity: scoring.ComplexityLow},
			wantTool: "AWS RDS",
			wantAlt:  "PlanetScale",
			wantScr:  90,
		},
		{
			name:     "everyone else gets Supabase",
			ctx:      scoring.StackContext{ExpectedUsers: 300, UseCase: scoring.UseCaseStartup, Complexity: scoring.ComplexityLow},
			wantTool: "Supabase",
			wantScr:  85,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Database(tt.ctx)
			if got.Tool != tt.wantTool {
				t.Errorf("Tool = %q, want %q", got.Tool, tt.wantTool)
			}
			if got.Score != tt.wantScr {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScr)
			}
			if tt.wantAlt == "" {
				if got.BudgetAlternative != nil {
					t.Errorf("BudgetAlternative = %+v, want nil", got.BudgetAlternative)
				}
			} else if got.BudgetAlternative == nil || got.BudgetAlternative.Tool != tt.wantAlt {
				t.Errorf("BudgetAlternative = %+v, want %q", got.BudgetAlternative, tt.wantAlt)
			} else if got.BudgetAlternative.Reason == "" {
				t.Error("BudgetAlternative.Reason is empty")
			}
		})
	}
}

func TestExplain(t *testing.T) {
	ctx := scoring.StackContext{ExpectedUsers: 80, UseCase: scoring.UseCaseSideProject, Complexity: scoring.ComplexityLow}

	downgrade := Explain("AWS", "Hostinger", ctx)
	if !strings.Contains(downgrade, "80") {
		t.Errorf("downgrade narrative does not mention user count: %q", downgrade)
	}

	upgrade := Explain("Hostinger", "AWS", scoring.StackContext{ExpectedUsers: 9000, UseCase: scoring.UseCaseProduction, Complexity: scoring.ComplexityHigh})
	if !strings.Contains(upgrade, "9000") {
		t.Errorf("upgrade narrative does not mention user count: %q", upgrade)
	}
	if upgrade == downgrade {
		t.Error("upgrade and downgrade narratives should differ")
	}

	generic := Explain("Netlify", "Railway", ctx)
	if !strings.Contains(generic, "Railway") || !strings.Contains(generic, "Netlify") {
		t.Errorf("generic narrative should mention both tools: %q", generic)
	}
}
