package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackroast/stackroast/pkg/client"
)

func newToolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Browse the tool catalog",
	}

	cmd.AddCommand(newToolListCmd())
	cmd.AddCommand(newToolGetCmd())

	return cmd
}

func newToolListCmd() *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tools, err := apiClient.Tools().List(ctx, &client.ToolListOptions{
				Category: category,
				Search:   search,
			})
			if err != nil {
				return fmt.Errorf("failed to list tools: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(tools)
			}

			table := NewTable("ID", "NAME", "CATEGORY", "PRICE/MO", "SETUP HRS")
			for _, t := range tools {
				table.AddRow(
					t.ID,
					truncate(t.Name, 24),
					t.Category,
					fmt.Sprintf("$%.0f", t.BasePrice),
					fmt.Sprintf("%.1f", t.SetupHours),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive name search")

	return cmd
}

func newToolGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one catalog tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := apiClient.Tools().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get tool: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(t)
			}

			fmt.Printf("ID:          %s\n", t.ID)
			fmt.Printf("Name:        %s\n", t.Name)
			fmt.Printf("Category:    %s\n", t.Category)
			fmt.Printf("Price:       $%.2f/mo\n", t.BasePrice)
			fmt.Printf("Setup:       %.1f hours\n", t.SetupHours)
			fmt.Printf("Maintenance: %.1f hours/mo\n", t.MaintenanceHours)
			fmt.Printf("Complexity:  %.1f/10\n", t.ComplexityScore)
			return nil
		},
	}
}
