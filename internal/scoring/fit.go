package scoring

import (
	"math"

	"github.com/stackroast/stackroast/internal/domain/tool"
)

// FitScore holds the two fit axes for a single tool in a given context.
// TechnicalFit asks "can this tool handle the workload"; ContextFit
// additionally asks "is its price sane for the stated budget".
type FitScore struct {
	TechnicalFit int `json:"technical_fit"`
	ContextFit   int `json:"context_fit"`
}

const baseFit = 50

// ScoreToolForContext scores one tool against a normalized context.
// Rules stack additively: a tool can gain or lose points from several
// rules in the same evaluation. The result is clamped to [0, 100].
func ScoreToolForContext(t *tool.Tool, ctx StackContext) FitScore {
	tier := TierOf(t.Name)
	score := baseFit

	if ctx.ExpectedUsers > 10000 {
		switch tier {
		case TierEnterpriseCloud:
			score += 30
		case TierBudgetHosting:
			score -= 40
		}
	}

	if ctx.ExpectedUsers < 100 {
		switch tier {
		case TierBudgetHosting, TierManagedPaaS:
			score += 30
		case TierEnterpriseCloud:
			score -= 30
		}
	}

	switch ctx.Complexity {
	case ComplexityHigh:
		switch tier {
		case TierEnterpriseCloud:
			score += 20
		case TierBudgetHosting:
			score -= 30
		}
	case ComplexityLow:
		switch tier {
		case TierManagedPaaS:
			score += 20
		case TierEnterpriseCloud:
			score -= 20
		}
	}

	switch ctx.UseCase {
	case UseCaseSideProject, UseCaseStartup:
		if tier == TierManagedPaaS || tier == TierBudgetHosting {
			score += 15
		}
	case UseCaseProduction, UseCaseEnterprise:
		if tier == TierEnterpriseCloud {
			score += 20
		}
	}

	technical := clampScore(score)

	contextScore := technical
	price := safePrice(t.BasePrice)
	if ctx.Budget == BudgetLow && price > 20 {
		contextScore -= 30
	}
	if ctx.Budget == BudgetEnterprise && price < 10 {
		contextScore -= 20
	}

	return FitScore{
		TechnicalFit: technical,
		ContextFit:   clampScore(contextScore),
	}
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// safePrice guards against garbage from upstream parses. A crashed or
// wildly wrong score is worse than a slightly conservative one, so
// negative and NaN prices collapse to 0.
func safePrice(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	return p
}
