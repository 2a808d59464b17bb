// Package recommend picks the best tool for a functional category given
// a usage context. The decision trees are deliberately opinionated and
// vendor-specific: the product voice is blunt, and the rules are keyed
// to named vendors rather than abstract capabilities.
package recommend

import (
	"fmt"

	"github.com/stackroast/stackroast/internal/scoring"
)

// BudgetAlternative is the cheaper path offered alongside a
// recommendation, with its own rationale, an explicit monthly savings
// estimate and the tradeoffs the user accepts by taking it.
type BudgetAlternative struct {
	Tool      string   `json:"tool"`
	Reason    string   `json:"reason"`
	Savings   float64  `json:"savings"`
	Tradeoffs []string `json:"tradeoffs"`
}

// Recommendation is the engine's answer for one category. Context is a
// template string built from the input numbers, not AI output.
type Recommendation struct {
	Category          string             `json:"category"`
	Tool              string             `json:"tool"`
	Score             int                `json:"score"`
	Context           string             `json:"context"`
	BudgetAlternative *BudgetAlternative `json:"budget_alternative,omitempty"`
}

// Hosting recommends a hosting provider for the given context,
// independent of what the user currently runs. Rules are evaluated in
// priority order; the first match wins.
func Hosting(ctx scoring.StackContext) Recommendation {
	ctx = scoring.NormalizeContext(ctx)

	switch {
	case ctx.ExpectedUsers > 5000 || ctx.Complexity == scoring.ComplexityHigh ||
		ctx.UseCase == scoring.UseCaseProduction || ctx.UseCase == scoring.UseCaseEnterprise:
		return Recommendation{
			Category: "hosting",
			Tool:     "AWS",
			Score:    90,
			Context: fmt.Sprintf(
				"You're claiming %d users and %s complexity. That's past the point where a toy host cuts it. AWS is overkill until suddenly it isn't.",
				ctx.ExpectedUsers, ctx.Complexity),
			BudgetAlternative: &BudgetAlternative{
				Tool:    "Railway",
				Reason:  "Most of what you'd pay AWS for, you won't use for another year",
				Savings: 250,
				Tradeoffs: []string{
					"No fine-grained infrastructure control",
					"Fewer regions, no compliance certifications",
					"You'll migrate again if you actually hit scale",
				},
			},
		}

	case ctx.ExpectedUsers < 100 || ctx.UseCase == scoring.UseCaseSideProject ||
		ctx.Budget == scoring.BudgetLow:
		return Recommendation{
			Category: "hosting",
			Tool:     "Hostinger",
			Score:    85,
			Context: fmt.Sprintf(
				"%d users does not need cloud architecture. It needs a cheap box that stays up. Stop overthinking this.",
				ctx.ExpectedUsers),
		}

	case ctx.ExpectedUsers < 5000 && ctx.UseCase == scoring.UseCaseStartup:
		return Recommendation{
			Category: "hosting",
			Tool:     "Railway",
			Score:    88,
			Context: fmt.Sprintf(
				"A startup at %d users should be shipping features, not babysitting servers. Railway deploys from a git push and gets out of your way.",
				ctx.ExpectedUsers),
			BudgetAlternative: &BudgetAlternative{
				Tool:    "Vercel",
				Reason:  "If your backend is thin, the free tier carries you further",
				Savings: 20,
				Tradeoffs: []string{
					"Frontend-only; your backend needs a home elsewhere",
				},
			},
		}

	default:
		return Recommendation{
			Category: "hosting",
			Tool:     "Vercel",
			Score:    80,
			Context:  "Nothing about your context screams for anything special, so take the default that works: Vercel.",
		}
	}
}

// Database recommends a database platform for the given context.
func Database(ctx scoring.StackContext) Recommendation {
	ctx = scoring.NormalizeContext(ctx)

	if ctx.ExpectedUsers > 5000 || ctx.Complexity == scoring.ComplexityHigh ||
		ctx.UseCase == scoring.UseCaseProduction {
		return Recommendation{
			Category: "database",
			Tool:     "AWS RDS",
			Score:    90,
			Context: fmt.Sprintf(
				"%d users and %s complexity means your database is no longer a detail. RDS gives you backups, replicas and a pager-worthy SLA.",
				ctx.ExpectedUsers, ctx.Complexity),
			BudgetAlternative: &BudgetAlternative{
				Tool:    "PlanetScale",
				Reason:  "Serverless MySQL with a real free tier beats paying for an idle instance",
				Savings: 100,
				Tradeoffs: []string{
					"MySQL only, no foreign key constraints",
					"Branching workflow takes getting used to",
				},
			},
		}
	}

	return Recommendation{
		Category: "database",
		Tool:     "Supabase",
		Score:    85,
		Context: fmt.Sprintf(
			"At %d users you want Postgres with auth and an API for free, not a DBA job. Supabase is that.",
			ctx.ExpectedUsers),
	}
}
