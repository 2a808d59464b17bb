package scoring

import (
	"reflect"
	"testing"

	"github.com/stackroast/stackroast/internal/domain/tool"
)

func TestCalculateStackScoreEmptyStack(t *testing.T) {
	// Baseline 50, minus 10 each for missing analytics and monitoring.
	// The cicd penalty needs a production context and the default is
	// startup, so it stays out.
	got := CalculateStackScore(nil, StackContext{})

	if got.Overall != 30 {
		t.Errorf("Overall = %d, want 30", got.Overall)
	}
	if got.Badge != BadgeNeedsWork {
		t.Errorf("Badge = %q, want %q", got.Badge, BadgeNeedsWork)
	}
	if len(got.Issues) != 1 {
		t.Fatalf("Issues = %d, want 1", len(got.Issues))
	}
	if got.Issues[0].Points != -20 {
		t.Errorf("Issue points = %d, want -20", got.Issues[0].Points)
	}
	if got.Improvement.Technical != 50 {
		t.Errorf("Improvement.Technical = %d, want 50", got.Improvement.Technical)
	}
	if got.Improvement.Budget != 44 {
		t.Errorf("Improvement.Budget = %d, want 44", got.Improvement.Budget)
	}
}

func TestCalculateStackScoreEmptyStackProduction(t *testing.T) {
	got := CalculateStackScore(nil, StackContext{ExpectedUsers: 500, UseCase: UseCaseProduction})

	// Missing analytics, monitoring and cicd.
	if got.Overall != 20 {
		t.Errorf("Overall = %d, want 20", got.Overall)
	}
	if len(got.Issues) != 1 || got.Issues[0].Points != -30 {
		t.Errorf("Issues = %+v, want one issue worth -30", got.Issues)
	}
}

func TestCalculateStackScoreSideProject(t *testing.T) {
	stack := []*tool.Tool{
		{Name: "Vercel", Category: tool.CategoryHosting, BasePrice: 0},
		{Name: "Supabase", Category: tool.CategoryDatabase, BasePrice: 25},
	}
	ctx := StackContext{ExpectedUsers: 50, Budget: BudgetLow, Complexity: ComplexityLow, UseCase: UseCaseSideProject}

	got := CalculateStackScore(stack, ctx)

	// 50 baseline, +5 each for two perfect-fit tools, -20 for missing
	// analytics and monitoring.
	if got.Overall != 40 {
		t.Errorf("Overall = %d, want 40", got.Overall)
	}
	if len(got.GoodChoices) != 2 {
		t.Errorf("GoodChoices = %d, want 2", len(got.GoodChoices))
	}
	// Supabase at $25 still clears the low-budget ContextFit bar (70),
	// so no overpriced issue fires.
	for _, is := range got.Issues {
		if is.Points == -20 && is.Severity == SeverityHigh && len(is.Tools) == 1 {
			t.Errorf("unexpected overpriced issue: %+v", is)
		}
	}
}

func TestCalculateStackScoreOverpricedForLowBudget(t *testing.T) {
	// Google Cloud for a tiny side project: ContextFit bottoms out, and
	// the stack is on a low budget, so the high-severity issue fires.
	stack := []*tool.Tool{
		{Name: "Google Cloud", Category: tool.CategoryHosting, BasePrice: 30},
	}
	ctx := StackContext{ExpectedUsers: 50, Budget: BudgetLow, Complexity: ComplexityLow, UseCase: UseCaseSideProject}

	got := CalculateStackScore(stack, ctx)

	// The missing-categories issue in this scenario is also worth -20,
	// so pick the overpriced one by the tool it names, not by points.
	var overpriced *Issue
	for i := range got.Issues {
		if got.Issues[i].Severity == SeverityHigh && len(got.Issues[i].Tools) == 1 && got.Issues[i].Tools[0] == "Google Cloud" {
			overpriced = &got.Issues[i]
		}
	}
	if overpriced == nil {
		t.Fatalf("expected an overpriced issue, got %+v", got.Issues)
	}
	if overpriced.Points != -20 {
		t.Errorf("Points = %d, want -20", overpriced.Points)
	}
	// 50 -20 overpriced -20 missing categories = 10.
	if got.Overall != 10 {
		t.Errorf("Overall = %d, want 10", got.Overall)
	}
}

func TestCalculateStackScoreBestPracticeBonuses(t *testing.T) {
	stack := []*tool.Tool{
		{Name: "Railway", Category: tool.CategoryHosting, BasePrice: 5},
		{Name: "Plausible", Category: tool.CategoryAnalytics, BasePrice: 9},
		{Name: "Sentry", Category: tool.CategoryMonitoring, BasePrice: 26},
		{Name: "GitHub Actions", Category: tool.CategoryCICD, BasePrice: 0},
		{Name: "TypeScript", Category: tool.CategoryTypeScript, BasePrice: 0},
		{Name: "Vitest", Category: tool.CategoryTesting, BasePrice: 0},
	}
	ctx := StackContext{ExpectedUsers: 2000, Budget: BudgetMedium, Complexity: ComplexityMedium, UseCase: UseCaseStartup}

	got := CalculateStackScore(stack, ctx)

	// Railway: 50 +15 startup = 65 technical, which lands in the
	// suboptimal band together with every unknown-vendor tool at 50.
	// 50 -15 suboptimal +3 +3 +4 practice bonuses = 45.
	if got.Overall != 45 {
		t.Errorf("Overall = %d, want 45", got.Overall)
	}

	bonusFor := map[string]int{}
	for _, gc := range got.GoodChoices {
		bonusFor[gc.Tool] = gc.Points
	}
	wantBonuses := map[string]int{
		tool.CategoryTypeScript: 3,
		tool.CategoryTesting:    3,
		tool.CategoryCICD:       4,
	}
	for cat, pts := range wantBonuses {
		if bonusFor[cat] != pts {
			t.Errorf("bonus for %s = %d, want %d", cat, bonusFor[cat], pts)
		}
	}
}

func TestCalculateStackScoreCategoryMatchIsFuzzy(t *testing.T) {
	stack := []*tool.Tool{
		{Name: "Plausible", Category: "Web Analytics", BasePrice: 9},
		{Name: "Datadog", Category: "Monitoring & APM", BasePrice: 31},
	}
	got := CalculateStackScore(stack, StackContext{})

	for _, is := range got.Issues {
		for _, missing := range is.Tools {
			if missing == tool.CategoryAnalytics || missing == tool.CategoryMonitoring {
				t.Errorf("category %q reported missing despite fuzzy match", missing)
			}
		}
	}
}

func TestBadgeBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, BadgeNeedsWork},
		{40, BadgeNeedsWork},
		{41, BadgeBelowAverage},
		{60, BadgeBelowAverage},
		{61, BadgeGood},
		{75, BadgeGood},
		{76, BadgeGreat},
		{85, BadgeGreat},
		{86, BadgeExcellent},
		{95, BadgeExcellent},
		{96, BadgePerfect},
		{100, BadgePerfect},
	}

	for _, tt := range tests {
		if got := BadgeFor(tt.score); got != tt.want {
			t.Errorf("BadgeFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCalculateStackScoreProperties(t *testing.T) {
	stacks := [][]*tool.Tool{
		nil,
		{{Name: "AWS", Category: tool.CategoryHosting, BasePrice: 100}},
		{
			{Name: "Hostinger", Category: tool.CategoryHosting, BasePrice: 4},
			{Name: "Supabase", Category: tool.CategoryDatabase, BasePrice: 25},
			{Name: "TypeScript", Category: tool.CategoryTypeScript, BasePrice: 0},
		},
	}
	contexts := []StackContext{
		{},
		{ExpectedUsers: 50, Budget: BudgetLow, Complexity: ComplexityLow, UseCase: UseCaseSideProject},
		{ExpectedUsers: 50000, Budget: BudgetEnterprise, Complexity: ComplexityHigh, UseCase: UseCaseEnterprise},
	}

	for _, stack := range stacks {
		for _, ctx := range contexts {
			got := CalculateStackScore(stack, ctx)

			if got.Overall < 0 || got.Overall > 100 {
				t.Errorf("Overall %d out of range", got.Overall)
			}
			if got.Improvement.Technical < got.Overall {
				t.Errorf("Improvement.Technical %d below Overall %d", got.Improvement.Technical, got.Overall)
			}
			if got.Improvement.Budget < got.Overall {
				t.Errorf("Improvement.Budget %d below Overall %d", got.Improvement.Budget, got.Overall)
			}
			if got.Badge != BadgeFor(got.Overall) {
				t.Errorf("Badge %q inconsistent with Overall %d", got.Badge, got.Overall)
			}

			again := CalculateStackScore(stack, ctx)
			if !reflect.DeepEqual(got, again) {
				t.Errorf("not idempotent: %+v vs %+v", got, again)
			}
		}
	}
}
