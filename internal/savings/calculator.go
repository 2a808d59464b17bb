// Package savings computes what a set of tool substitutions is worth:
// money, hours, one-time migration cost, and rate-dependent ROI.
package savings

import (
	"math"

	"github.com/stackroast/stackroast/internal/domain/tool"
)

// ToolChange is one proposed substitution. AffiliateURL is carried
// through for the presentation layer; it plays no part in the math.
type ToolChange struct {
	From         *tool.Tool `json:"from"`
	To           *tool.Tool `json:"to"`
	AffiliateURL string     `json:"affiliate_url,omitempty"`
}

// MigrationEstimate is supplied with the change set, not derived from
// the individual tools. TimeRequired is in hours.
type MigrationEstimate struct {
	TimeRequired float64  `json:"time_required"`
	Complexity   string   `json:"complexity"`
	Steps        []string `json:"steps"`
}

// Monetary savings in dollars. Monthly can be negative when the
// substitutions cost more than they save.
type Monetary struct {
	Monthly float64 `json:"monthly"`
	Annual  float64 `json:"annual"`
}

// Time savings. AnnualHours mixes a monthly-equivalent setup term with
// already-monthly maintenance and complexity terms; the unit asymmetry
// matches the displayed figures users already see and must not be
// changed without changing the product.
type Time struct {
	AnnualHours float64 `json:"annual_hours"`
}

// ROI holds the rate-independent aggregates once, so the rate-dependent
// figures can be re-evaluated per slider tick without redoing the
// tool-level arithmetic.
type ROI struct {
	MonetaryMonthly float64 `json:"monetary_monthly"`
	MonetaryAnnual  float64 `json:"monetary_annual"`
	TimeAnnualHours float64 `json:"time_annual_hours"`
	MigrationHours  float64 `json:"migration_hours"`
}

// AnnualValueAt returns the first-year value of the change set when an
// hour is worth rate dollars: monetary savings plus time savings minus
// the one-time migration effort.
func (r ROI) AnnualValueAt(rate float64) float64 {
	return r.MonetaryAnnual + r.TimeAnnualHours*rate - r.MigrationHours*rate
}

// BreakEvenMonthsAt returns how many months until the migration effort
// pays for itself at the given hourly rate. +Inf when the monthly value
// is zero or negative (the migration never pays off).
func (r ROI) BreakEvenMonthsAt(rate float64) float64 {
	monthly := r.MonetaryMonthly + (r.TimeAnnualHours/12)*rate
	if monthly <= 0 {
		return math.Inf(1)
	}
	return r.MigrationHours * rate / monthly
}

// Breakdown is the full savings report for a change set.
type Breakdown struct {
	Monetary  Monetary          `json:"monetary"`
	Time      Time              `json:"time"`
	Migration MigrationEstimate `json:"migration"`
	ROI       ROI               `json:"roi"`
}

// Calculate computes the savings breakdown for a set of substitutions.
// Monetary deltas may go negative; time savings are floored at zero per
// change. Malformed numeric inputs are clamped, never rejected.
func Calculate(changes []ToolChange, migration MigrationEstimate) Breakdown {
	var monthly, hours float64
	for _, c := range changes {
		if c.From == nil || c.To == nil {
			continue
		}
		monthly += sanitize(c.From.BasePrice) - sanitize(c.To.BasePrice)

		saved := (sanitize(c.From.SetupHours)-sanitize(c.To.SetupHours))/12 +
			(sanitize(c.From.MaintenanceHours) - sanitize(c.To.MaintenanceHours)) +
			(sanitize(c.From.ComplexityScore)-sanitize(c.To.ComplexityScore))*0.5
		if saved > 0 {
			hours += saved
		}
	}

	migration.TimeRequired = sanitize(migration.TimeRequired)

	return Breakdown{
		Monetary: Monetary{Monthly: monthly, Annual: monthly * 12},
		Time:     Time{AnnualHours: hours},
		Migration: MigrationEstimate{
			TimeRequired: migration.TimeRequired,
			Complexity:   migration.Complexity,
			Steps:        migration.Steps,
		},
		ROI: ROI{
			MonetaryMonthly: monthly,
			MonetaryAnnual:  monthly * 12,
			TimeAnnualHours: hours,
			MigrationHours:  migration.TimeRequired,
		},
	}
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
