package scoring

import "testing"

func TestEstimatedPercentile(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{0, 20},
		{40, 20},
		{41, 35},
		{50, 35},
		{55, 50},
		{65, 65},
		{75, 80},
		{85, 90},
		{91, 95},
		{100, 95},
	}

	est := EstimatedPercentile{}
	for _, tt := range tests {
		if got := est.Percentile(tt.score); got != tt.want {
			t.Errorf("Percentile(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestDistributionPercentile(t *testing.T) {
	d := NewDistributionPercentile([]int{30, 40, 50, 60, 70, 80, 90, 100, 45, 55})
	if d == nil {
		t.Fatal("NewDistributionPercentile returned nil for non-empty sample")
	}

	tests := []struct {
		score int
		want  int
	}{
		{0, 0},     // below every sample
		{50, 30},   // 3 of 10 strictly below
		{101, 100}, // above every sample
	}
	for _, tt := range tests {
		if got := d.Percentile(tt.score); got != tt.want {
			t.Errorf("Percentile(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}

	if d.Size() != 10 {
		t.Errorf("Size() = %d, want 10", d.Size())
	}
}

func TestDistributionPercentileEmptySample(t *testing.T) {
	if d := NewDistributionPercentile(nil); d != nil {
		t.Errorf("NewDistributionPercentile(nil) = %+v, want nil", d)
	}
}

func TestNewScorerNilEstimatorFallsBack(t *testing.T) {
	s := NewScorer(nil)
	got := s.CalculateStackScore(nil, StackContext{})
	if got.Percentile != (EstimatedPercentile{}).Percentile(got.Overall) {
		t.Errorf("Percentile = %d, want estimated curve value", got.Percentile)
	}
}
