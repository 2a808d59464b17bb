package services

import (
	"context"

	"github.com/stackroast/stackroast/internal/domain/tool"
	"github.com/stackroast/stackroast/internal/pkg/errors"
	"github.com/stackroast/stackroast/internal/pkg/logger"
	"github.com/stackroast/stackroast/internal/pkg/metrics"
	"github.com/stackroast/stackroast/internal/recommend"
	"github.com/stackroast/stackroast/internal/savings"
	"github.com/stackroast/stackroast/internal/scoring"
)

// RecommendationService serves recommendations and savings breakdowns.
// The heavy lifting is pure logic; this layer resolves catalog tools,
// counts metrics and logs.
type RecommendationService struct {
	tools  tool.Service
	logger *logger.Logger
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(tools tool.Service, log *logger.Logger) *RecommendationService {
	return &RecommendationService{
		tools:  tools,
		logger: log,
	}
}

// Hosting recommends a hosting provider for the given context
func (s *RecommendationService) Hosting(ctx scoring.StackContext) recommend.Recommendation {
	rec := recommend.Hosting(ctx)
	metrics.RecordRecommendation(rec.Category, rec.Tool)
	return rec
}

// Database recommends a database platform for the given context
func (s *RecommendationService) Database(ctx scoring.StackContext) recommend.Recommendation {
	rec := recommend.Database(ctx)
	metrics.RecordRecommendation(rec.Category, rec.Tool)
	return rec
}

// Explain narrates a specific current-to-recommended tool switch
func (s *RecommendationService) Explain(current, recommended string, ctx scoring.StackContext) string {
	return recommend.Explain(current, recommended, ctx)
}

// SwitchRequest names one substitution by catalog tool ID.
type SwitchRequest struct {
	FromID string
	ToID   string
}

// Savings resolves the requested substitutions against the catalog and
// computes the savings breakdown. Unknown tool IDs fail the request:
// a savings figure built from half-resolved changes would be garbage.
func (s *RecommendationService) Savings(ctx context.Context, switches []SwitchRequest, migration savings.MigrationEstimate) (savings.Breakdown, error) {
	changes := make([]savings.ToolChange, 0, len(switches))
	for _, sw := range switches {
		pair, err := s.tools.Resolve(ctx, []string{sw.FromID, sw.ToID})
		if err != nil {
			return savings.Breakdown{}, err
		}
		if len(pair) != 2 {
			return savings.Breakdown{}, errors.BadRequest("Unknown tool ID in savings request")
		}
		changes = append(changes, savings.ToolChange{
			From:         pair[0],
			To:           pair[1],
			AffiliateURL: pair[1].AffiliateURL,
		})
	}

	breakdown := savings.Calculate(changes, migration)

	s.logger.WithFields(map[string]interface{}{
		"changes":        len(changes),
		"monthly_amount": breakdown.Monetary.Monthly,
	}).Info("Savings computed")

	return breakdown, nil
}
