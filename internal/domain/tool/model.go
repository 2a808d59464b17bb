package tool

import "time"

// Tool represents one piece of software or hosted service in the catalog.
// BasePrice is the monthly cost in USD; a zero value means the tool is free
// or its price is unknown (the scorer treats both the same way).
type Tool struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	BasePrice        float64   `json:"base_price"`
	SetupHours       float64   `json:"setup_hours,omitempty"`
	MaintenanceHours float64   `json:"maintenance_hours,omitempty"` // hours per month
	ComplexityScore  float64   `json:"complexity_score,omitempty"`
	LogoURL          string    `json:"logo_url,omitempty"`
	AffiliateURL     string    `json:"affiliate_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at,omitempty"`
}

// Common category labels. The catalog is free text, so these are hints for
// seed data rather than a closed enum; matching is substring-based and
// case-insensitive throughout.
const (
	CategoryHosting    = "hosting"
	CategoryDatabase   = "database"
	CategoryAnalytics  = "analytics"
	CategoryMonitoring = "monitoring"
	CategoryCICD       = "cicd"
	CategoryTypeScript = "typescript"
	CategoryTesting    = "testing"
)

// Filter contains tool catalog filtering options
type Filter struct {
	Category string
	Search   string
}
