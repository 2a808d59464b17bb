package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackroast/stackroast/pkg/client"
)

func newSavingsCmd() *cobra.Command {
	var switches []string
	var migrationHours float64

	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Calculate what switching tools would save",
		Example: `  stackroast savings --switch aws:railway
  stackroast savings --switch aws:railway --switch aws-rds:supabase --migration-hours 40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(switches) == 0 {
				return fmt.Errorf("at least one --switch from:to pair is required")
			}

			changes := make([]client.ToolSwitch, 0, len(switches))
			for _, sw := range switches {
				parts := strings.SplitN(sw, ":", 2)
				if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
					return fmt.Errorf("invalid --switch %q, expected from:to", sw)
				}
				changes = append(changes, client.ToolSwitch{From: parts[0], To: parts[1]})
			}

			breakdown, err := apiClient.Recommendations().Savings(context.Background(), client.SavingsRequest{
				Changes: changes,
				Migration: client.MigrationEstimate{
					TimeRequired: migrationHours,
				},
			})
			if err != nil {
				return fmt.Errorf("failed to calculate savings: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(breakdown)
			}

			fmt.Printf("Monthly savings: $%.2f\n", breakdown.Monetary.Monthly)
			fmt.Printf("Annual savings:  $%.2f\n", breakdown.Monetary.Annual)
			fmt.Printf("Time saved:      %.1f hours/year\n", breakdown.Time.AnnualHours)
			if breakdown.ROI.MigrationHours > 0 {
				fmt.Printf("Migration cost:  %.1f hours\n", breakdown.ROI.MigrationHours)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&switches, "switch", nil, "tool substitution as from:to catalog IDs (repeatable)")
	cmd.Flags().Float64Var(&migrationHours, "migration-hours", 0, "estimated one-time migration effort in hours")

	return cmd
}
