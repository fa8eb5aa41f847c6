package pricing

import "testing"

func TestUserFactorTiers(t *testing.T) {
	cases := []struct {
		users int
		want  float64
	}{
		{0, 1},
		{1, 1},
		{2, 1.5},
		{5, 3},
		{6, 3.3},
		{10, 4.5},
	}
	for _, tc := range cases {
		if got := userFactor(tc.users); got != tc.want {
			t.Fatalf("userFactor(%d) = %v, want %v", tc.users, got, tc.want)
		}
	}
}

func TestCompareSaaSBaseline(t *testing.T) {
	// No add-ons, one user: pages*12 + 18.
	cmp := CompareSaaS(5, 1, Select(nil), 0)
	if cmp.MonthlyCost != 5*saasPerPageMonthly+saasPerUserMonthly {
		t.Fatalf("unexpected monthly cost %d", cmp.MonthlyCost)
	}
	if cmp.OneYearCost != cmp.MonthlyCost*12 {
		t.Fatalf("one-year cost %d does not match monthly %d", cmp.OneYearCost, cmp.MonthlyCost)
	}
	if cmp.ThreeYearCost != cmp.MonthlyCost*36 || cmp.FiveYearCost != cmp.MonthlyCost*60 {
		t.Fatalf("horizon costs inconsistent: %+v", cmp)
	}
}

func TestCompareSaaSScalingFeature(t *testing.T) {
	flat := CompareSaaS(5, 1, Select([]string{"user-accounts"}), 0)
	scaled := CompareSaaS(5, 3, Select([]string{"user-accounts"}), 0)

	// Two extra seats at 50%: the user-accounts monthly cost doubles and the
	// per-user fee doubles alongside it.
	wantFlat := 5*saasPerPageMonthly + saasPerUserMonthly + 49
	if flat.MonthlyCost != wantFlat {
		t.Fatalf("flat monthly = %d, want %d", flat.MonthlyCost, wantFlat)
	}
	wantScaled := 5*saasPerPageMonthly + saasPerUserMonthly*2 + 49*2
	if scaled.MonthlyCost != wantScaled {
		t.Fatalf("scaled monthly = %d, want %d", scaled.MonthlyCost, wantScaled)
	}
}

func TestCompareSaaSNonScalingFeatureStaysFlat(t *testing.T) {
	one := CompareSaaS(5, 1, Select([]string{"analytics"}), 0)
	many := CompareSaaS(5, 4, Select([]string{"analytics"}), 0)
	// Only the per-user fee moves; the analytics cost must not scale.
	diff := many.MonthlyCost - one.MonthlyCost
	wantDiff := int(float64(saasPerUserMonthly)*userFactor(4)) - saasPerUserMonthly
	if diff != wantDiff {
		t.Fatalf("monthly moved by %d, want %d", diff, wantDiff)
	}
}

func TestSavingsFlooredAtZero(t *testing.T) {
	cmp := CompareSaaS(1, 1, Select(nil), 1_000_000)
	if cmp.OneYearSavings != 0 || cmp.ThreeYearSavings != 0 || cmp.FiveYearSavings != 0 {
		t.Fatalf("savings went negative: %+v", cmp)
	}
}

func TestSavingsSubtractOneTimeTotal(t *testing.T) {
	cmp := CompareSaaS(5, 1, Select(nil), 500)
	if cmp.FiveYearSavings != cmp.FiveYearCost-500 {
		t.Fatalf("five-year savings %d, want %d", cmp.FiveYearSavings, cmp.FiveYearCost-500)
	}
}
