package savings

import (
	"math"
	"testing"

	"github.com/stackroast/stackroast/internal/domain/tool"
)

func TestCalculateMonetary(t *testing.T) {
	changes := []ToolChange{
		{
			From: &tool.Tool{Name: "AWS", BasePrice: 20},
			To:   &tool.Tool{Name: "Hostinger", BasePrice: 0},
		},
	}

	got := Calculate(changes, MigrationEstimate{})

	if got.Monetary.Monthly != 20 {
		t.Errorf("Monetary.Monthly = %v, want 20", got.Monetary.Monthly)
	}
	if got.Monetary.Annual != 240 {
		t.Errorf("Monetary.Annual = %v, want 240", got.Monetary.Annual)
	}
}

func TestCalculateTimeFormula(t *testing.T) {
	// setup delta is a monthly equivalent (divided by 12), maintenance
	// and complexity deltas are already monthly.
	changes := []ToolChange{
		{
			From: &tool.Tool{SetupHours: 24, MaintenanceHours: 10, ComplexityScore: 4},
			To:   &tool.Tool{SetupHours: 0, MaintenanceHours: 2, ComplexityScore: 0},
		},
	}

	got := Calculate(changes, MigrationEstimate{})

	// 24/12 + 8 + 4*0.5 = 12
	if got.Time.AnnualHours != 12 {
		t.Errorf("Time.AnnualHours = %v, want 12", got.Time.AnnualHours)
	}
}

func TestCalculateTimeFlooredPerChange(t *testing.T) {
	changes := []ToolChange{
		{
			// Moving to a tool that takes more effort: negative time
			// savings are floored, not netted against other changes.
			From: &tool.Tool{BasePrice: 50},
			To:   &tool.Tool{BasePrice: 10, SetupHours: 12, MaintenanceHours: 5, ComplexityScore: 2},
		},
		{
			From: &tool.Tool{MaintenanceHours: 3},
			To:   &tool.Tool{},
		},
	}

	got := Calculate(changes, MigrationEstimate{})

	if got.Time.AnnualHours != 3 {
		t.Errorf("Time.AnnualHours = %v, want 3", got.Time.AnnualHours)
	}
	// The monetary side of the first change still counts.
	if got.Monetary.Monthly != 40 {
		t.Errorf("Monetary.Monthly = %v, want 40", got.Monetary.Monthly)
	}
}

func TestCalculateMigrationPassthrough(t *testing.T) {
	mig := MigrationEstimate{
		TimeRequired: 16,
		Complexity:   "medium",
		Steps:        []string{"Export data", "Provision new service", "Cut over DNS"},
	}

	got := Calculate(nil, mig)

	if got.Migration.TimeRequired != 16 {
		t.Errorf("Migration.TimeRequired = %v, want 16", got.Migration.TimeRequired)
	}
	if got.Migration.Complexity != "medium" {
		t.Errorf("Migration.Complexity = %q, want medium", got.Migration.Complexity)
	}
	if len(got.Migration.Steps) != 3 || got.Migration.Steps[0] != "Export data" {
		t.Errorf("Migration.Steps = %v, want ordered steps preserved", got.Migration.Steps)
	}
}

func TestROIAnnualValueAt(t *testing.T) {
	changes := []ToolChange{
		{
			From: &tool.Tool{BasePrice: 20, MaintenanceHours: 5},
			To:   &tool.Tool{BasePrice: 0, MaintenanceHours: 1},
		},
	}
	got := Calculate(changes, MigrationEstimate{TimeRequired: 10})

	// At a zero rate the time and migration terms vanish.
	if v := got.ROI.AnnualValueAt(0); v != got.Monetary.Annual {
		t.Errorf("AnnualValueAt(0) = %v, want %v", v, got.Monetary.Annual)
	}

	// monetary 240, time 4h, migration 10h: 240 + 4*50 - 10*50 = -60
	if v := got.ROI.AnnualValueAt(50); v != 240+4*50-10*50 {
		t.Errorf("AnnualValueAt(50) = %v, want %v", v, 240+4*50-10*50)
	}
}

func TestROIBreakEvenMonthsAt(t *testing.T) {
	changes := []ToolChange{
		{
			From: &tool.Tool{BasePrice: 20},
			To:   &tool.Tool{BasePrice: 0},
		},
	}
	got := Calculate(changes, MigrationEstimate{TimeRequired: 10})

	// 10 hours * $50/h migration cost against $20/month savings.
	if v := got.ROI.BreakEvenMonthsAt(50); v != 25 {
		t.Errorf("BreakEvenMonthsAt(50) = %v, want 25", v)
	}
}

func TestROIBreakEvenNeverPaysOff(t *testing.T) {
	changes := []ToolChange{
		{
			// Switching to the more expensive tool.
			From: &tool.Tool{BasePrice: 0},
			To:   &tool.Tool{BasePrice: 30},
		},
	}
	got := Calculate(changes, MigrationEstimate{TimeRequired: 5})

	if v := got.ROI.BreakEvenMonthsAt(50); !math.IsInf(v, 1) {
		t.Errorf("BreakEvenMonthsAt(50) = %v, want +Inf", v)
	}
	if v := got.ROI.BreakEvenMonthsAt(0); !math.IsInf(v, 1) {
		t.Errorf("BreakEvenMonthsAt(0) = %v, want +Inf", v)
	}
}

func TestCalculateIgnoresIncompleteChanges(t *testing.T) {
	changes := []ToolChange{
		{From: &tool.Tool{BasePrice: 100}}, // missing To
		{To: &tool.Tool{BasePrice: 100}},   // missing From
		{From: &tool.Tool{BasePrice: 15}, To: &tool.Tool{BasePrice: 5}},
	}

	got := Calculate(changes, MigrationEstimate{})

	if got.Monetary.Monthly != 10 {
		t.Errorf("Monetary.Monthly = %v, want 10", got.Monetary.Monthly)
	}
}

func TestCalculateSanitizesGarbage(t *testing.T) {
	changes := []ToolChange{
		{
			From: &tool.Tool{BasePrice: math.NaN(), MaintenanceHours: -3},
			To:   &tool.Tool{BasePrice: -7},
		},
	}

	got := Calculate(changes, MigrationEstimate{TimeRequired: math.NaN()})

	if got.Monetary.Monthly != 0 {
		t.Errorf("Monetary.Monthly = %v, want 0", got.Monetary.Monthly)
	}
	if got.Time.AnnualHours != 0 {
		t.Errorf("Time.AnnualHours = %v, want 0", got.Time.AnnualHours)
	}
	if got.ROI.MigrationHours != 0 {
		t.Errorf("ROI.MigrationHours = %v, want 0", got.ROI.MigrationHours)
	}
}
