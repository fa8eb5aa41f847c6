package pricing

import "math"

const (
	saasPerPageMonthly = 12
	saasPerUserMonthly = 18
)

// Additional seats on scaling features are billed at a tiered discount:
// users 2-5 at 50% of list, users beyond that at 30%.
var scalingFeatures = map[string]bool{
	"user-accounts":   true,
	"crm-integration": true,
	"live-chat":       true,
}

// Comparison contrasts the one-time build price with a synthetic monthly
// rented-SaaS baseline over 1/3/5-year horizons.
type Comparison struct {
	MonthlyCost      int `json:"monthlyCost"`
	OneYearCost      int `json:"oneYearCost"`
	ThreeYearCost    int `json:"threeYearCost"`
	FiveYearCost     int `json:"fiveYearCost"`
	OneYearSavings   int `json:"oneYearSavings"`
	ThreeYearSavings int `json:"threeYearSavings"`
	FiveYearSavings  int `json:"fiveYearSavings"`
}

// userFactor converts a seat count into billable-seat units under the
// tiered additional-user discount. One seat is always full price.
func userFactor(users int) float64 {
	if users <= 1 {
		return 1
	}
	discounted := users - 1
	if discounted > 4 {
		return 1 + 4*0.5 + float64(discounted-4)*0.3
	}
	return 1 + float64(discounted)*0.5
}

// CompareSaaS computes the synthetic SaaS baseline for the given page count,
// seat count and feature selection, and the savings of paying oneTimeTotal
// once instead. Savings never go below zero.
func CompareSaaS(pageCount, users int, features []Selection, oneTimeTotal int) Comparison {
	if pageCount < 1 {
		pageCount = 1
	}
	if users < 1 {
		users = 1
	}
	factor := userFactor(users)

	monthly := float64(pageCount*saasPerPageMonthly) + float64(saasPerUserMonthly)*factor
	for _, f := range features {
		if !f.Enabled && !f.AlwaysIncluded {
			continue
		}
		cost := float64(f.MonthlyCost)
		if scalingFeatures[f.ID] {
			cost *= factor
		}
		monthly += cost
	}

	oneYear := int(math.Round(monthly * 12))
	threeYear := int(math.Round(monthly * 36))
	fiveYear := int(math.Round(monthly * 60))

	return Comparison{
		MonthlyCost:      int(math.Round(monthly)),
		OneYearCost:      oneYear,
		ThreeYearCost:    threeYear,
		FiveYearCost:     fiveYear,
		OneYearSavings:   savings(oneYear, oneTimeTotal),
		ThreeYearSavings: savings(threeYear, oneTimeTotal),
		FiveYearSavings:  savings(fiveYear, oneTimeTotal),
	}
}

func savings(saasCost, oneTime int) int {
	s := saasCost - oneTime
	if s < 0 {
		return 0
	}
	return s
}
