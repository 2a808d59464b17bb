package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackroast/stackroast/pkg/client"
)

func newRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Get context-fit tool recommendations",
	}

	cmd.AddCommand(newRecommendHostingCmd())
	cmd.AddCommand(newRecommendDatabaseCmd())

	return cmd
}

func newRecommendHostingCmd() *cobra.Command {
	var getContext func() client.StackContext

	cmd := &cobra.Command{
		Use:   "hosting",
		Short: "Recommend a hosting provider",
		Example: `  stackroast recommend hosting --users 8000 --complexity high --use-case production
  stackroast recommend hosting --users 50 --budget low`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := apiClient.Recommendations().Hosting(context.Background(), getContext())
			if err != nil {
				return fmt.Errorf("failed to get recommendation: %w", err)
			}
			return printRecommendation(rec)
		},
	}

	getContext = contextFlags(cmd)
	return cmd
}

func newRecommendDatabaseCmd() *cobra.Command {
	var getContext func() client.StackContext

	cmd := &cobra.Command{
		Use:   "database",
		Short: "Recommend a database platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := apiClient.Recommendations().Database(context.Background(), getContext())
			if err != nil {
				return fmt.Errorf("failed to get recommendation: %w", err)
			}
			return printRecommendation(rec)
		},
	}

	getContext = contextFlags(cmd)
	return cmd
}

func printRecommendation(rec *client.Recommendation) error {
	format := getOutputFormat()
	if format != "table" {
		return printOutput(rec)
	}

	fmt.Printf("%s: %s (score %d)\n\n", capitalize(rec.Category), rec.Tool, rec.Score)
	fmt.Println(rec.Context)

	if alt := rec.BudgetAlternative; alt != nil {
		fmt.Printf("\nBudget alternative: %s (saves $%.0f/mo)\n", alt.Tool, alt.Savings)
		if alt.Reason != "" {
			fmt.Printf("  %s\n", alt.Reason)
		}
		for _, tradeoff := range alt.Tradeoffs {
			fmt.Printf("  - %s\n", tradeoff)
		}
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
