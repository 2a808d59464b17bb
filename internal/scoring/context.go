package scoring

// Budget describes how much money the user is willing to spend per month.
type Budget string

// Budget tiers
const (
	BudgetLow        Budget = "low"
	BudgetMedium     Budget = "medium"
	BudgetHigh       Budget = "high"
	BudgetEnterprise Budget = "enterprise"
)

// Complexity describes how technically involved the project is.
type Complexity string

// Complexity levels
const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// UseCase describes the stage the project is at.
type UseCase string

// Use case stages
const (
	UseCaseSideProject UseCase = "side-project"
	UseCaseStartup     UseCase = "startup"
	UseCaseProduction  UseCase = "production"
	UseCaseEnterprise  UseCase = "enterprise"
)

// Defaults applied by NormalizeContext for unset or invalid fields.
const (
	DefaultExpectedUsers = 100
	DefaultBudget        = BudgetMedium
	DefaultComplexity    = ComplexityMedium
	DefaultUseCase       = UseCaseStartup
	DefaultScalingNeeds  = false
)

// StackContext describes the usage situation a stack is evaluated against.
// Fields come straight from a web form, so any of them may be missing or
// garbage; run a context through NormalizeContext before scoring.
type StackContext struct {
	ExpectedUsers int        `json:"expected_users"`
	Budget        Budget     `json:"budget"`
	Complexity    Complexity `json:"complexity"`
	UseCase       UseCase    `json:"use_case"`
	ScalingNeeds  bool       `json:"scaling_needs"`
}

// NormalizeContext returns a fully-populated copy of ctx with defaults
// substituted for any missing or invalid field. It never fails: unknown
// enum values fall back to the default rather than erroring, and a
// non-positive user count is treated as unspecified.
func NormalizeContext(ctx StackContext) StackContext {
	if ctx.ExpectedUsers <= 0 {
		ctx.ExpectedUsers = DefaultExpectedUsers
	}
	switch ctx.Budget {
	case BudgetLow, BudgetMedium, BudgetHigh, BudgetEnterprise:
	default:
		ctx.Budget = DefaultBudget
	}
	switch ctx.Complexity {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
	default:
		ctx.Complexity = DefaultComplexity
	}
	switch ctx.UseCase {
	case UseCaseSideProject, UseCaseStartup, UseCaseProduction, UseCaseEnterprise:
	default:
		ctx.UseCase = DefaultUseCase
	}
	return ctx
}
