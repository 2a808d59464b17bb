package client

import "time"

// Tool represents a catalog tool
type Tool struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	BasePrice        float64   `json:"base_price"`
	SetupHours       float64   `json:"setup_hours,omitempty"`
	MaintenanceHours float64   `json:"maintenance_hours,omitempty"`
	ComplexityScore  float64   `json:"complexity_score,omitempty"`
	LogoURL          string    `json:"logo_url,omitempty"`
	AffiliateURL     string    `json:"affiliate_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at,omitempty"`
}

// StackContext describes the usage situation a stack is judged against
type StackContext struct {
	ExpectedUsers int    `json:"expected_users,omitempty"`
	Budget        string `json:"budget,omitempty"`
	Complexity    string `json:"complexity,omitempty"`
	UseCase       string `json:"use_case,omitempty"`
	ScalingNeeds  bool   `json:"scaling_needs,omitempty"`
}

// Stack represents a saved stack
type Stack struct {
	ID        string       `json:"id"`
	UserID    int64        `json:"user_id"`
	Name      string       `json:"name"`
	ToolIDs   []string     `json:"tool_ids"`
	Context   StackContext `json:"context"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// GoodChoice is one positively scored element of a stack score
type GoodChoice struct {
	Tool   string `json:"tool"`
	Reason string `json:"reason"`
	Points int    `json:"points"`
}

// Issue is one negatively scored element of a stack score
type Issue struct {
	Severity    string   `json:"severity"`
	Description string   `json:"description"`
	Tools       []string `json:"tools,omitempty"`
	Points      int      `json:"points"`
}

// ImprovementPotential reports the reachable score ceilings
type ImprovementPotential struct {
	Technical int `json:"technical"`
	Budget    int `json:"budget"`
}

// StackScore is the full health scoring result
type StackScore struct {
	Overall     int                  `json:"overall"`
	Badge       string               `json:"badge"`
	Percentile  int                  `json:"percentile"`
	GoodChoices []GoodChoice         `json:"good_choices"`
	Issues      []Issue              `json:"issues"`
	Improvement ImprovementPotential `json:"improvement_potential"`
}

// ScoreRecord is one historical scoring of a stack
type ScoreRecord struct {
	ID        int64     `json:"id"`
	StackID   string    `json:"stack_id"`
	Overall   int       `json:"overall"`
	Badge     string    `json:"badge"`
	CreatedAt time.Time `json:"created_at"`
}

// Roast is a humorous critique of a stack
type Roast struct {
	Text      string `json:"text"`
	BurnScore int    `json:"burn_score"`
	Source    string `json:"source"`
}

// BudgetAlternative is a cheaper option attached to a recommendation
type BudgetAlternative struct {
	Tool      string   `json:"tool"`
	Reason    string   `json:"reason"`
	Savings   float64  `json:"savings"`
	Tradeoffs []string `json:"tradeoffs,omitempty"`
}

// Recommendation is a context-fit tool recommendation
type Recommendation struct {
	Category          string             `json:"category"`
	Tool              string             `json:"tool"`
	Score             int                `json:"score"`
	Context           string             `json:"context"`
	BudgetAlternative *BudgetAlternative `json:"budget_alternative,omitempty"`
}

// Monetary is the money side of a savings breakdown
type Monetary struct {
	Monthly float64 `json:"monthly"`
	Annual  float64 `json:"annual"`
}

// TimeSavings is the time side of a savings breakdown
type TimeSavings struct {
	AnnualHours float64 `json:"annual_hours"`
}

// MigrationEstimate carries the caller's migration effort estimate
type MigrationEstimate struct {
	TimeRequired float64  `json:"time_required"`
	Complexity   string   `json:"complexity,omitempty"`
	Steps        []string `json:"steps,omitempty"`
}

// ROI holds the aggregates a return-on-investment projection is built from
type ROI struct {
	MonetaryMonthly float64 `json:"monetary_monthly"`
	MonetaryAnnual  float64 `json:"monetary_annual"`
	TimeAnnualHours float64 `json:"time_annual_hours"`
	MigrationHours  float64 `json:"migration_hours"`
}

// SavingsBreakdown is the result of a savings calculation
type SavingsBreakdown struct {
	Monetary  Monetary          `json:"monetary"`
	Time      TimeSavings       `json:"time"`
	Migration MigrationEstimate `json:"migration"`
	ROI       ROI               `json:"roi"`
}
