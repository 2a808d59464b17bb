package scoring

import (
	"math"
	"testing"

	"github.com/stackroast/stackroast/internal/domain/tool"
)

func TestScoreToolForContext(t *testing.T) {
	tests := []struct {
		name          string
		tool          *tool.Tool
		ctx           StackContext
		wantTechnical int
		wantContext   int
	}{
		{
			name:          "managed paas for tiny side project maxes out",
			tool:          &tool.Tool{Name: "Vercel", BasePrice: 0},
			ctx:           StackContext{ExpectedUsers: 50, Budget: BudgetLow, Complexity: ComplexityLow, UseCase: UseCaseSideProject},
			wantTechnical: 100, // 50 +30 small +20 low-complexity +15 side-project, clamped
			wantContext:   100,
		},
		{
			name:          "enterprise cloud for high-scale production",
			tool:          &tool.Tool{Name: "AWS", BasePrice: 50},
			ctx:           StackContext{ExpectedUsers: 8000, Budget: BudgetHigh, Complexity: ComplexityHigh, UseCase: UseCaseProduction},
			wantTechnical: 90, // 50 +20 complexity +20 production; 8000 is below the scale threshold
			wantContext:   90,
		},
		{
			name:          "budget hosting collapses at scale",
			tool:          &tool.Tool{Name: "Hostinger", BasePrice: 4},
			ctx:           StackContext{ExpectedUsers: 20000, Budget: BudgetLow, Complexity: ComplexityLow, UseCase: UseCaseStartup},
			wantTechnical: 25, // 50 -40 scale +15 startup
			wantContext:   25, // $4 is under the low-budget price bar
		},
		{
			name:          "enterprise cloud punished for a tiny simple project",
			tool:          &tool.Tool{Name: "Google Cloud", BasePrice: 30},
			ctx:           StackContext{ExpectedUsers: 50, Budget: BudgetLow, Complexity: ComplexityLow, UseCase: UseCaseSideProject},
			wantTechnical: 0, // 50 -30 small -20 low-complexity, no bonuses
			wantContext:   0, // -30 budget penalty has nothing left to take
		},
		{
			name:          "unknown vendor stays at base",
			tool:          &tool.Tool{Name: "Some SaaS", BasePrice: 15},
			ctx:           StackContext{ExpectedUsers: 500, Budget: BudgetMedium, Complexity: ComplexityMedium, UseCase: UseCaseStartup},
			wantTechnical: 50,
			wantContext:   50,
		},
		{
			name:          "cheap tool penalized under enterprise budget",
			tool:          &tool.Tool{Name: "Some SaaS", BasePrice: 5},
			ctx:           StackContext{ExpectedUsers: 500, Budget: BudgetEnterprise, Complexity: ComplexityMedium, UseCase: UseCaseStartup},
			wantTechnical: 50,
			wantContext:   30,
		},
		{
			name:          "pricey tool penalized under low budget",
			tool:          &tool.Tool{Name: "Some SaaS", BasePrice: 49},
			ctx:           StackContext{ExpectedUsers: 500, Budget: BudgetLow, Complexity: ComplexityMedium, UseCase: UseCaseProduction},
			wantTechnical: 50,
			wantContext:   20,
		},
		{
			name:          "NaN price treated as free",
			tool:          &tool.Tool{Name: "Some SaaS", BasePrice: math.NaN()},
			ctx:           StackContext{ExpectedUsers: 500, Budget: BudgetLow, Complexity: ComplexityMedium, UseCase: UseCaseStartup},
			wantTechnical: 50,
			wantContext:   50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreToolForContext(tt.tool, NormalizeContext(tt.ctx))
			if got.TechnicalFit != tt.wantTechnical {
				t.Errorf("TechnicalFit = %d, want %d", got.TechnicalFit, tt.wantTechnical)
			}
			if got.ContextFit != tt.wantContext {
				t.Errorf("ContextFit = %d, want %d", got.ContextFit, tt.wantContext)
			}
		})
	}
}

func TestScoreToolForContextBounds(t *testing.T) {
	contexts := []StackContext{
		{ExpectedUsers: 1, Budget: BudgetLow, Complexity: ComplexityLow, UseCase: UseCaseSideProject},
		{ExpectedUsers: 1000000, Budget: BudgetEnterprise, Complexity: ComplexityHigh, UseCase: UseCaseEnterprise},
		{},
	}
	names := []string{"AWS", "Hostinger", "Vercel", "Railway", "Supabase", "nobody-heard-of-it"}

	for _, ctx := range contexts {
		for _, name := range names {
			fit := ScoreToolForContext(&tool.Tool{Name: name, BasePrice: 25}, NormalizeContext(ctx))
			if fit.TechnicalFit < 0 || fit.TechnicalFit > 100 {
				t.Errorf("%s: TechnicalFit %d out of range", name, fit.TechnicalFit)
			}
			if fit.ContextFit < 0 || fit.ContextFit > 100 {
				t.Errorf("%s: ContextFit %d out of range", name, fit.ContextFit)
			}
		}
	}
}
