package recommend

import (
	"fmt"

	"github.com/stackroast/stackroast/internal/scoring"
)

// Explain produces a one-off narrative for a specific current→recommended
// switch. The two named cases are hand-written product copy; every other
// pair gets the generic template.
func Explain(current, recommended string, ctx scoring.StackContext) string {
	ctx = scoring.NormalizeContext(ctx)

	switch {
	case current == "AWS" && recommended == "Hostinger":
		return fmt.Sprintf(
			"You're running AWS for %d users. That's like hiring a moving company to carry your groceries. Hostinger does everything you actually use for a fraction of the bill, and you can stop pretending you read the IAM docs.",
			ctx.ExpectedUsers)

	case current == "Hostinger" && recommended == "AWS":
		return fmt.Sprintf(
			"Shared hosting was fine until it wasn't. At %d users with %s complexity, Hostinger is the bottleneck, not the bargain. Moving to AWS hurts for a week and then stops being the thing that wakes you up.",
			ctx.ExpectedUsers, ctx.Complexity)

	default:
		return fmt.Sprintf(
			"For %d expected users at the %s stage, %s fits your context better than %s does.",
			ctx.ExpectedUsers, ctx.UseCase, recommended, current)
	}
}
