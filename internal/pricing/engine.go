package pricing

// Plan describes the tier chosen for a page count and feature selection.
type Plan struct {
	Tier             string `json:"tier"`
	BasePrice        int    `json:"basePrice"`
	IncludedFeatures int    `json:"includedFeatures"`
	// PageTier is the tier page count alone would have picked, kept for
	// traceability when cost optimization moves the quote to another tier.
	PageTier string `json:"pageTier"`
}

// Discount reports the quiz-completion discount applied to a quote.
type Discount struct {
	Applied bool `json:"applied"`
	Percent int  `json:"percent"`
	Amount  int  `json:"amount"`
}

// Quote is the full output of the pricing engine for one request.
type Quote struct {
	Plan         Plan     `json:"plan"`
	PricedAddOns int      `json:"pricedAddOns"`
	ExtraCost    int      `json:"extraCost"`
	Subtotal     int      `json:"subtotal"`
	Discount     Discount `json:"discount"`
	Total        int      `json:"total"`
}

// advancedCount counts selections that are enabled and not always included.
// This is the filter tier selection uses; TotalPrice uses Price > 0 instead.
// The two coincide in the current catalog but are not interchangeable.
func advancedCount(features []Selection) int {
	n := 0
	for _, f := range features {
		if f.Enabled && !f.AlwaysIncluded {
			n++
		}
	}
	return n
}

func pricedCount(features []Selection) int {
	n := 0
	for _, f := range features {
		if f.Enabled && f.Price > 0 {
			n++
		}
	}
	return n
}

// SelectTier picks the minimum-cost tier among all tiers whose page ceiling
// accommodates pageCount. A larger tier can win when its allowance absorbs
// enough selected add-ons. Ties resolve to the earliest declared tier.
func SelectTier(pageCount int, features []Selection) Plan {
	advanced := advancedCount(features)

	var best Tier
	bestCost := -1
	pageTier := ""
	for _, t := range tiers {
		if !fitsPages(t, pageCount) {
			continue
		}
		if pageTier == "" {
			pageTier = t.Name
		}
		cost := basePriceAt(t, pageCount) + chargeableExtras(advanced, t.IncludedFeatures)*PerFeaturePrice
		if bestCost < 0 || cost < bestCost {
			best = t
			bestCost = cost
		}
	}

	return Plan{
		Tier:             best.Name,
		BasePrice:        basePriceAt(best, pageCount),
		IncludedFeatures: best.IncludedFeatures,
		PageTier:         pageTier,
	}
}

// TotalPrice computes the one-time price for a plan: base price plus the
// per-feature charge for priced add-ons beyond the plan's allowance.
func TotalPrice(plan Plan, features []Selection) int {
	extra := chargeableExtras(pricedCount(features), plan.IncludedFeatures)
	return plan.BasePrice + extra*PerFeaturePrice
}

// BuildQuote runs tier selection and total pricing, applying the quiz
// discount as a single deduction from the final total when fromQuiz is set.
func BuildQuote(pageCount int, features []Selection, fromQuiz bool) Quote {
	plan := SelectTier(pageCount, features)
	subtotal := TotalPrice(plan, features)

	q := Quote{
		Plan:         plan,
		PricedAddOns: pricedCount(features),
		ExtraCost:    subtotal - plan.BasePrice,
		Subtotal:     subtotal,
		Total:        subtotal,
	}
	if fromQuiz {
		amount := (subtotal*QuizDiscountPercent + 50) / 100
		q.Discount = Discount{Applied: true, Percent: QuizDiscountPercent, Amount: amount}
		q.Total = subtotal - amount
	}
	return q
}
