package pricing

const (
	// PerFeaturePrice is charged for every selected add-on beyond a tier's
	// allowance, regardless of the feature's own listed price.
	PerFeaturePrice = 500

	// QuizDiscountPercent applies when a quote follows a completed quiz.
	QuizDiscountPercent = 10

	// UnlimitedIncluded marks a tier that never charges for extra add-ons.
	UnlimitedIncluded = -1

	// The top tier grows by a fixed increment per page beyond this threshold.
	topTierPageThreshold = 15
	topTierPerPage       = 120
)

// Tier is a priced service level. MaxPages of 0 means unbounded.
type Tier struct {
	Name             string `json:"name"`
	BasePrice        int    `json:"basePrice"`
	IncludedFeatures int    `json:"includedFeatures"`
	MaxPages         int    `json:"maxPages"`
}

// Declaration order matters: ties on cost resolve to the earliest tier.
var tiers = []Tier{
	{Name: "Essential", BasePrice: 750, IncludedFeatures: 1, MaxPages: 5},
	{Name: "Professional", BasePrice: 1700, IncludedFeatures: 3, MaxPages: 12},
	{Name: "Premium", BasePrice: 3100, IncludedFeatures: 6, MaxPages: 0},
}

// Tiers returns a copy of the static tier table.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// basePriceAt returns the tier's base price for the given page count. Only
// the unbounded top tier scales with pages.
func basePriceAt(t Tier, pageCount int) int {
	if t.MaxPages != 0 {
		return t.BasePrice
	}
	extra := pageCount - topTierPageThreshold
	if extra <= 0 {
		return t.BasePrice
	}
	return t.BasePrice + extra*topTierPerPage
}

func fitsPages(t Tier, pageCount int) bool {
	return t.MaxPages == 0 || pageCount <= t.MaxPages
}

// chargeableExtras counts add-ons beyond the allowance. A tier with the
// UnlimitedIncluded sentinel never charges for extras.
func chargeableExtras(selected, included int) int {
	if included == UnlimitedIncluded {
		return 0
	}
	extra := selected - included
	if extra < 0 {
		return 0
	}
	return extra
}
