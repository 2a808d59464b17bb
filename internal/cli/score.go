package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackroast/stackroast/pkg/client"
)

func newScoreCmd() *cobra.Command {
	var tools []string
	var getContext func() client.StackContext

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a list of tools against a context",
		Example: `  stackroast score --tools vercel,supabase --users 500 --budget low --use-case side-project
  stackroast score --tools aws,aws-rds,datadog --users 20000 --use-case production -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			score, err := apiClient.Scoring().Score(ctx, client.ScoreRequest{
				ToolIDs: tools,
				Context: getContext(),
			})
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

	cmd.Flags().StringSliceVar(&tools, "tools", nil, "catalog tool IDs (comma separated)")
	getContext = contextFlags(cmd)

	cmd.AddCommand(newPercentileCmd())

	return cmd
}

func newPercentileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "percentile <score>",
		Short: "Show where a score lands in the distribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("score must be an integer: %w", err)
			}

			pct, err := apiClient.Scoring().Percentile(context.Background(), score)
			if err != nil {
				return fmt.Errorf("failed to get percentile: %w", err)
			}

			fmt.Printf("A score of %d beats %d%% of scored stacks\n", score, pct)
			return nil
		},
	}
}

// printScore renders a stack score in the table format.
func printScore(score *client.StackScore) {
	fmt.Printf("Score: %d/100  %s  (better than %d%% of stacks)\n\n",
		score.Overall, formatBadge(score.Badge), score.Percentile)

	if len(score.GoodChoices) > 0 {
		fmt.Println("Good choices:")
		for _, gc := range score.GoodChoices {
			fmt.Printf("  +%d  %s - %s\n", gc.Points, gc.Tool, gc.Reason)
		}
		fmt.Println()
	}

	if len(score.Issues) > 0 {
		fmt.Println("Issues:")
		for _, issue := range score.Issues {
			line := fmt.Sprintf("  %d  %s  %s", issue.Points, formatSeverity(issue.Severity), issue.Description)
			if len(issue.Tools) > 0 {
				line += " (" + strings.Join(issue.Tools, ", ") + ")"
			}
			fmt.Println(line)
		}
		fmt.Println()
	}

	fmt.Printf("Improvement potential: %d technical, %d budget\n",
		score.Improvement.Technical, score.Improvement.Budget)
}
