package dto

// ToolSwitchDTO names one tool substitution by catalog tool ID
type ToolSwitchDTO struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

// MigrationDTO carries the caller's migration effort estimate
type MigrationDTO struct {
	TimeRequired float64  `json:"time_required,omitempty" validate:"gte=0"`
	Complexity   string   `json:"complexity,omitempty" validate:"omitempty,oneof=low medium high"`
	Steps        []string `json:"steps,omitempty"`
}

// SavingsRequest represents a savings calculation request
type SavingsRequest struct {
	Changes   []ToolSwitchDTO `json:"changes" validate:"required,min=1,dive"`
	Migration MigrationDTO    `json:"migration,omitempty"`
}
