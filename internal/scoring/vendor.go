package scoring

// VendorTier classifies well-known vendors into the buckets the scoring
// rules care about. All vendor-specific rules (fit scoring and the
// recommendation engine) consume this one table instead of keeping their
// own name lists, so adding a vendor here is enough to teach every rule
// about it.
type VendorTier int

// Vendor tiers
const (
	// TierUnknown covers tools the rules have no opinion on; they only
	// receive the use-case and budget adjustments that apply to all tools.
	TierUnknown VendorTier = iota

	// TierEnterpriseCloud is the big-cloud bucket: powerful, complex,
	// expensive to run casually.
	TierEnterpriseCloud

	// TierBudgetHosting is cheap shared hosting: fine for small sites,
	// hopeless at scale.
	TierBudgetHosting

	// TierManagedPaaS is the deploy-and-forget bucket: low operational
	// overhead, opinionated, mid-priced.
	TierManagedPaaS
)

// Lookup is exact and case-sensitive on the catalog display name.
// Business rules are keyed to specific vendor names, so a tool that is
// not listed here is TierUnknown by design, not an error.
var vendorTiers = map[string]VendorTier{
	"AWS":          TierEnterpriseCloud,
	"AWS RDS":      TierEnterpriseCloud,
	"Google Cloud": TierEnterpriseCloud,
	"Azure":        TierEnterpriseCloud,

	"Hostinger": TierBudgetHosting,
	"Bluehost":  TierBudgetHosting,

	"Vercel":      TierManagedPaaS,
	"Netlify":     TierManagedPaaS,
	"Railway":     TierManagedPaaS,
	"Supabase":    TierManagedPaaS,
	"PlanetScale": TierManagedPaaS,
}

// TierOf returns the vendor tier for a tool name.
func TierOf(name string) VendorTier {
	return vendorTiers[name]
}
