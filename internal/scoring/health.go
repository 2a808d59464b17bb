package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/stackroast/stackroast/internal/domain/tool"
)

// Badge tiers derived from the overall score.
const (
	BadgeNeedsWork    = "needs-work"
	BadgeBelowAverage = "below-average"
	BadgeGood         = "good"
	BadgeGreat        = "great"
	BadgeExcellent    = "excellent"
	BadgePerfect      = "perfect"
)

// Issue severities
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
)

// Scoring weights. The score starts at the baseline and moves from there;
// penalties for the same problem class are flat, not per-tool.
const (
	baselineScore          = 50
	goodChoiceBonus        = 5
	goodChoiceThreshold    = 80
	overpricedPenalty      = 20
	overpricedFitThreshold = 60
	missingCategoryPenalty = 10
	suboptimalPenalty      = 15
	typescriptBonus        = 3
	testingBonus           = 3
	cicdBonus              = 4
)

// GoodChoice records a tool that earned the stack points.
type GoodChoice struct {
	Tool   string `json:"tool"`
	Reason string `json:"reason"`
	Points int    `json:"points"`
}

// Issue records a problem that cost the stack points. Points is negative.
type Issue struct {
	Severity    string   `json:"severity"`
	Description string   `json:"description"`
	Tools       []string `json:"tools,omitempty"`
	Points      int      `json:"points"`
}

// ImprovementPotential projects where the score could go: Technical
// assumes every issue gets fixed, Budget assumes only the high-severity
// (expensive) ones get mostly fixed.
type ImprovementPotential struct {
	Technical int `json:"technical"`
	Budget    int `json:"budget"`
}

// StackScore is the scorer's output. It is immutable once computed; a
// changed stack or context requires recomputing from scratch.
type StackScore struct {
	Overall     int                  `json:"overall"`
	Badge       string               `json:"badge"`
	Percentile  int                  `json:"percentile"`
	GoodChoices []GoodChoice         `json:"good_choices"`
	Issues      []Issue              `json:"issues"`
	Improvement ImprovementPotential `json:"improvement_potential"`
}

// Scorer computes stack health scores. The percentile strategy is
// pluggable so the estimated lookup table can later be replaced with one
// built from real score distributions.
type Scorer struct {
	percentile PercentileEstimator
}

// NewScorer creates a scorer with the given percentile estimator.
// A nil estimator falls back to the built-in estimate.
func NewScorer(est PercentileEstimator) *Scorer {
	if est == nil {
		est = EstimatedPercentile{}
	}
	return &Scorer{percentile: est}
}

// CalculateStackScore scores a whole stack against a context using the
// default estimated percentile strategy.
func CalculateStackScore(tools []*tool.Tool, ctx StackContext) StackScore {
	return NewScorer(nil).CalculateStackScore(tools, ctx)
}

// CalculateStackScore produces a StackScore for a (stack, context) pair.
// It is a pure function over its inputs and never fails: an empty stack
// degenerates to the baseline minus the missing-category penalties.
func (s *Scorer) CalculateStackScore(tools []*tool.Tool, ctx StackContext) StackScore {
	ctx = NormalizeContext(ctx)

	score := float64(baselineScore)
	var goodChoices []GoodChoice
	var issues []Issue

	fits := make([]FitScore, len(tools))
	for i, t := range tools {
		fits[i] = ScoreToolForContext(t, ctx)
	}

	// Reward tools that are a near-perfect technical match.
	for i, t := range tools {
		if fits[i].TechnicalFit >= goodChoiceThreshold {
			score += goodChoiceBonus
			goodChoices = append(goodChoices, GoodChoice{
				Tool:   t.Name,
				Reason: fmt.Sprintf("Perfect match for %s stage", ctx.UseCase),
				Points: goodChoiceBonus,
			})
		}
	}

	// One flat penalty when a low-budget stack is paying for tools that
	// don't fit the budget, however many there are.
	if ctx.Budget == BudgetLow {
		var overpriced []string
		for i, t := range tools {
			if safePrice(t.BasePrice) > 0 && fits[i].ContextFit < overpricedFitThreshold {
				overpriced = append(overpriced, t.Name)
			}
		}
		if len(overpriced) > 0 {
			score -= overpricedPenalty
			issues = append(issues, Issue{
				Severity:    SeverityHigh,
				Description: fmt.Sprintf("Paying for tools that don't fit a low budget: %s", strings.Join(overpriced, ", ")),
				Tools:       overpriced,
				Points:      -overpricedPenalty,
			})
		}
	}

	// Critical categories every stack should cover.
	critical := []string{tool.CategoryAnalytics, tool.CategoryMonitoring}
	if ctx.UseCase == UseCaseProduction {
		critical = append(critical, tool.CategoryCICD)
	}
	var missing []string
	for _, cat := range critical {
		if !hasCategory(tools, cat) {
			missing = append(missing, cat)
		}
	}
	if len(missing) > 0 {
		penalty := missingCategoryPenalty * len(missing)
		score -= float64(penalty)
		issues = append(issues, Issue{
			Severity:    SeverityHigh,
			Description: fmt.Sprintf("Missing critical tooling: %s", strings.Join(missing, ", ")),
			Tools:       missing,
			Points:      -penalty,
		})
	}

	// One flat penalty for mediocre picks. Deliberately keyed to
	// TechnicalFit, not ContextFit: a tool can be priced right and still
	// be the wrong tool.
	var suboptimal []string
	for i, t := range tools {
		if fits[i].TechnicalFit >= 40 && fits[i].TechnicalFit < 70 {
			suboptimal = append(suboptimal, t.Name)
		}
	}
	if len(suboptimal) > 0 {
		score -= suboptimalPenalty
		issues = append(issues, Issue{
			Severity:    SeverityMedium,
			Description: fmt.Sprintf("Questionable fit for this stage: %s", strings.Join(suboptimal, ", ")),
			Tools:       suboptimal,
			Points:      -suboptimalPenalty,
		})
	}

	// Best-practice bonuses, each awarded independently.
	practices := []struct {
		category string
		bonus    int
		reason   string
	}{
		{tool.CategoryTypeScript, typescriptBonus, "Type safety pays for itself"},
		{tool.CategoryTesting, testingBonus, "A test suite exists, which puts this stack ahead of most"},
		{tool.CategoryCICD, cicdBonus, "Automated delivery pipeline in place"},
	}
	for _, p := range practices {
		if hasCategory(tools, p.category) {
			score += float64(p.bonus)
			goodChoices = append(goodChoices, GoodChoice{
				Tool:   p.category,
				Reason: p.reason,
				Points: p.bonus,
			})
		}
	}

	overall := clampScore(int(math.Round(score)))

	return StackScore{
		Overall:     overall,
		Badge:       BadgeFor(overall),
		Percentile:  s.percentile.Percentile(overall),
		GoodChoices: goodChoices,
		Issues:      issues,
		Improvement: improvementPotential(overall, issues),
	}
}

// BadgeFor maps an overall score to its badge tier.
func BadgeFor(score int) string {
	switch {
	case score <= 40:
		return BadgeNeedsWork
	case score <= 60:
		return BadgeBelowAverage
	case score <= 75:
		return BadgeGood
	case score <= 85:
		return BadgeGreat
	case score <= 95:
		return BadgeExcellent
	default:
		return BadgePerfect
	}
}

func improvementPotential(overall int, issues []Issue) ImprovementPotential {
	var all, high int
	for _, is := range issues {
		pts := -is.Points
		all += pts
		if is.Severity == SeverityHigh {
			high += pts
		}
	}
	technical := overall + all
	if technical > 100 {
		technical = 100
	}
	budget := overall + int(math.Round(0.7*float64(high)))
	if budget > 100 {
		budget = 100
	}
	return ImprovementPotential{Technical: technical, Budget: budget}
}

// hasCategory reports whether any tool's category contains the wanted
// label. Categories are free text spelled inconsistently across the
// catalog ("Analytics", "web analytics", ...), so matching is a
// case-insensitive substring check.
func hasCategory(tools []*tool.Tool, category string) bool {
	for _, t := range tools {
		if strings.Contains(strings.ToLower(t.Category), strings.ToLower(category)) {
			return true
		}
	}
	return false
}
