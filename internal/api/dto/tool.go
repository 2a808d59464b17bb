package dto

// CreateToolRequest represents a catalog tool creation request
type CreateToolRequest struct {
	ID               string  `json:"id,omitempty" validate:"omitempty,max=64"`
	Name             string  `json:"name" validate:"required,max=100"`
	Category         string  `json:"category" validate:"required,max=50"`
	BasePrice        float64 `json:"base_price" validate:"gte=0"`
	SetupHours       float64 `json:"setup_hours,omitempty" validate:"gte=0"`
	MaintenanceHours float64 `json:"maintenance_hours,omitempty" validate:"gte=0"`
	ComplexityScore  float64 `json:"complexity_score,omitempty" validate:"gte=0,lte=10"`
	LogoURL          string  `json:"logo_url,omitempty" validate:"omitempty,url"`
	AffiliateURL     string  `json:"affiliate_url,omitempty" validate:"omitempty,url"`
}

// UpdateToolRequest represents a catalog tool update request
type UpdateToolRequest struct {
	Name             *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Category         *string  `json:"category,omitempty" validate:"omitempty,max=50"`
	BasePrice        *float64 `json:"base_price,omitempty" validate:"omitempty,gte=0"`
	SetupHours       *float64 `json:"setup_hours,omitempty" validate:"omitempty,gte=0"`
	MaintenanceHours *float64 `json:"maintenance_hours,omitempty" validate:"omitempty,gte=0"`
	ComplexityScore  *float64 `json:"complexity_score,omitempty" validate:"omitempty,gte=0,lte=10"`
	LogoURL          *string  `json:"logo_url,omitempty" validate:"omitempty,url"`
	AffiliateURL     *string  `json:"affiliate_url,omitempty" validate:"omitempty,url"`
}
