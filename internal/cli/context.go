package cli

import (
	"github.com/spf13/cobra"

	"github.com/stackroast/stackroast/pkg/client"
)

// contextFlags binds the shared stack-context flags to a command and
// returns a function that reads them back into a StackContext.
func contextFlags(cmd *cobra.Command) func() client.StackContext {
	var (
		users      int
		budget     string
		complexity string
		useCase    string
		scaling    bool
	)

	cmd.Flags().IntVar(&users, "users", 0, "expected user count")
	cmd.Flags().StringVar(&budget, "budget", "", "budget tier: low, medium, high, enterprise")
	cmd.Flags().StringVar(&complexity, "complexity", "", "project complexity: low, medium, high")
	cmd.Flags().StringVar(&useCase, "use-case", "", "stage: side-project, startup, production, enterprise")
	cmd.Flags().BoolVar(&scaling, "scaling", false, "expect rapid scaling")

	return func() client.StackContext {
		return client.StackContext{
			ExpectedUsers: users,
			Budget:        budget,
			Complexity:    complexity,
			UseCase:       useCase,
			ScalingNeeds:  scaling,
		}
	}
}
