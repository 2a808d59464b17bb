package scoring

import "sort"

// PercentileEstimator turns an overall score into a "better than N% of
// stacks" figure.
type PercentileEstimator interface {
	Percentile(score int) int
}

// EstimatedPercentile is a fixed curve used until enough real scores
// exist to build a distribution. It is an approximation, not population
// data; DistributionPercentile replaces it once score history accrues.
type EstimatedPercentile struct{}

// Percentile maps a score onto the estimated curve.
func (EstimatedPercentile) Percentile(score int) int {
	switch {
	case score <= 40:
		return 20
	case score <= 50:
		return 35
	case score <= 60:
		return 50
	case score <= 70:
		return 65
	case score <= 80:
		return 80
	case score <= 90:
		return 90
	default:
		return 95
	}
}

// DistributionPercentile ranks a score against an observed sample of
// overall scores. It is immutable after construction; the worker builds
// a fresh one from the score history and swaps it in.
type DistributionPercentile struct {
	sorted []int
}

// NewDistributionPercentile builds an estimator from observed overall
// scores. It returns nil when the sample is empty so callers can keep
// the estimated curve instead.
func NewDistributionPercentile(samples []int) *DistributionPercentile {
	if len(samples) == 0 {
		return nil
	}
	sorted := make([]int, len(samples))
	copy(sorted, samples)
	sort.Ints(sorted)
	return &DistributionPercentile{sorted: sorted}
}

// Percentile returns the share of sampled stacks that scored strictly
// below the given score, as a whole percentage.
func (d *DistributionPercentile) Percentile(score int) int {
	below := sort.SearchInts(d.sorted, score)
	return int(float64(below) / float64(len(d.sorted)) * 100)
}

// Size returns the number of samples backing the distribution.
func (d *DistributionPercentile) Size() int {
	return len(d.sorted)
}
