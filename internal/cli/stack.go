package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stackroast/stackroast/pkg/client"
)

func newStackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stack",
		Short: "Manage saved stacks",
	}

	cmd.AddCommand(newStackListCmd())
	cmd.AddCommand(newStackCreateCmd())
	cmd.AddCommand(newStackGetCmd())
	cmd.AddCommand(newStackDeleteCmd())
	cmd.AddCommand(newStackScoreCmd())
	cmd.AddCommand(newStackHistoryCmd())
	cmd.AddCommand(newStackRoastCmd())

	return cmd
}

func newStackListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your stacks",
		RunE: func(cmd *cobra.Command, args []string) error {
			stacks, err := apiClient.Stacks().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list stacks: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(stacks)
			}

			table := NewTable("ID", "NAME", "TOOLS", "USE CASE", "USERS")
			for _, s := range stacks {
				table.AddRow(
					truncate(s.ID, 12),
					truncate(s.Name, 24),
					strconv.Itoa(len(s.ToolIDs)),
					s.Context.UseCase,
					strconv.Itoa(s.Context.ExpectedUsers),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newStackCreateCmd() *cobra.Command {
	var name string
	var tools []string
	var getContext func() client.StackContext

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Save a new stack",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			stack, err := apiClient.Stacks().Create(context.Background(), client.CreateStackRequest{
				Name:    name,
				ToolIDs: tools,
				Context: getContext(),
			})
			if err != nil {
				return fmt.Errorf("failed to create stack: %w", err)
			}

			fmt.Printf("Stack %q created (%s)\n", stack.Name, stack.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "stack name")
	cmd.Flags().StringSliceVar(&tools, "tools", nil, "catalog tool IDs (comma separated)")
	getContext = contextFlags(cmd)

	return cmd
}

func newStackGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one stack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := apiClient.Stacks().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get stack: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(stack)
			}

			fmt.Printf("ID:       %s\n", stack.ID)
			fmt.Printf("Name:     %s\n", stack.Name)
			fmt.Printf("Tools:    %v\n", stack.ToolIDs)
			fmt.Printf("Use case: %s\n", stack.Context.UseCase)
			fmt.Printf("Users:    %d\n", stack.Context.ExpectedUsers)
			fmt.Printf("Budget:   %s\n", stack.Context.Budget)
			return nil
		},
	}
}

func newStackDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiClient.Stacks().Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete stack: %w", err)
			}
			fmt.Println("Stack deleted")
			return nil
		},
	}
}

func newStackScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <id>",
		Short: "Score a saved stack and record the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := apiClient.Stacks().Score(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to score stack: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(score)
			}

			printScore(score)
			return nil
		},
	}
}

func newStackHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <id>",
		Short: "Show a stack's recorded scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := apiClient.Stacks().History(context.Background(), args[0], limit)
			if err != nil {
				return fmt.Errorf("failed to get score history: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(records)
			}

			table := NewTable("SCORED AT", "SCORE", "BADGE")
			for _, rec := range records {
				table.AddRow(
					rec.CreatedAt.Format("2006-01-02 15:04"),
					strconv.Itoa(rec.Overall),
					formatBadge(rec.Badge),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum records to show")

	return cmd
}

func newStackRoastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roast <id>",
		Short: "Get your stack roasted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roast, err := apiClient.Stacks().Roast(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to roast stack: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(roast)
			}

			fmt.Println(roast.Text)
			fmt.Printf("\nBurn score: %d/100\n", roast.BurnScore)
			return nil
		},
	}
}
