package quiz

import (
	"encoding/json"
	"reflect"
	"testing"
)

func containsString(items []string, want string) bool {
	for _, s := range items {
		if s == want {
			return true
		}
	}
	return false
}

func TestRecommendationLowEndScenario(t *testing.T) {
	rec := GetRecommendation(Answers{
		Investment:   "budget-conscious",
		Timeline:     "flexible",
		ProjectScope: "simple-landing",
	})
	if rec.Solution != SolutionLanding {
		t.Fatalf("expected landing, got %s", rec.Solution)
	}
	if rec.Scores != (Scores{Budget: 1, Urgency: 1, Complexity: 1}) {
		t.Fatalf("unexpected scores %+v", rec.Scores)
	}
	if rec.PriorityScore != 1 || rec.PriorityLabel != "standard" {
		t.Fatalf("unexpected priority %d/%s", rec.PriorityScore, rec.PriorityLabel)
	}
}

func TestRecommendationHighEndScenario(t *testing.T) {
	rec := GetRecommendation(Answers{
		Investment:   "premium",
		Timeline:     "urgent",
		ProjectScope: "custom-app",
	})
	if rec.Solution != SolutionCustomApp {
		t.Fatalf("expected custom-app, got %s", rec.Solution)
	}
	if rec.Scores.Complexity != 4 || rec.Scores.Urgency != 4 || rec.Scores.Budget != 3 {
		t.Fatalf("unexpected scores %+v", rec.Scores)
	}
	if rec.PriorityScore != 48 || rec.PriorityLabel != "high" {
		t.Fatalf("unexpected priority %d/%s", rec.PriorityScore, rec.PriorityLabel)
	}
}

func TestSolutionDefaultsToWebsite(t *testing.T) {
	for _, scope := range []string{"", "not-sure", "something-else"} {
		rec := GetRecommendation(Answers{ProjectScope: scope})
		if rec.Solution != SolutionWebsite {
			t.Fatalf("scope %q: expected website, got %s", scope, rec.Solution)
		}
	}
}

func TestSolutionAlwaysInClosedSet(t *testing.T) {
	valid := map[SolutionType]bool{
		SolutionLanding:   true,
		SolutionWebsite:   true,
		SolutionEcommerce: true,
		SolutionCustomApp: true,
	}
	for scope := range scopeScores {
		rec := GetRecommendation(Answers{ProjectScope: scope})
		if !valid[rec.Solution] {
			t.Fatalf("scope %q produced unknown solution %q", scope, rec.Solution)
		}
	}
}

func TestPartialAnswersSucceed(t *testing.T) {
	rec := GetRecommendation(Answers{
		Investment:   "moderate",
		Timeline:     "one-month",
		ProjectScope: "full-website",
	})
	if rec.PriorityScore <= 0 {
		t.Fatalf("expected positive priority score, got %d", rec.PriorityScore)
	}
	if rec.Name == "" || rec.Timeline == "" || rec.InvestmentRange == "" {
		t.Fatalf("incomplete recommendation: %+v", rec)
	}
}

func TestUrgentTimelineShrinks(t *testing.T) {
	relaxed := GetRecommendation(Answers{ProjectScope: "full-website", Timeline: "flexible"})
	urgent := GetRecommendation(Answers{ProjectScope: "full-website", Timeline: "urgent"})
	if relaxed.Timeline != "4-6 weeks" {
		t.Fatalf("unexpected relaxed timeline %q", relaxed.Timeline)
	}
	if urgent.Timeline != "3-4 weeks" {
		t.Fatalf("unexpected urgent timeline %q", urgent.Timeline)
	}
}

func TestInvestmentRangeCarriesDiscount(t *testing.T) {
	rec := GetRecommendation(Answers{ProjectScope: "simple-landing"})
	// Landing range 750-1500 with the 10% quiz discount on both ends.
	if rec.InvestmentRange != "$675 - $1,350" {
		t.Fatalf("unexpected investment range %q", rec.InvestmentRange)
	}
}

func TestIncludesList(t *testing.T) {
	rec := GetRecommendation(Answers{
		ProjectScope: "full-website",
		Features:     []string{"cms", "payments", "unknown-feature", "cms"},
	})

	for _, want := range []string{
		"Custom design",
		"Mobile-responsive build",
		"Up to 12 pages",
		"Content management system",
		"Secure payment processing",
		seoInclude,
	} {
		if !containsString(rec.Includes, want) {
			t.Fatalf("includes missing %q: %v", want, rec.Includes)
		}
	}

	// Duplicates and unknown features must not produce entries.
	seen := map[string]int{}
	for _, item := range rec.Includes {
		seen[item]++
		if seen[item] > 1 {
			t.Fatalf("duplicate include %q", item)
		}
	}
}

func TestSEOGuaranteedWithoutExplicitRequest(t *testing.T) {
	rec := GetRecommendation(Answers{ProjectScope: "simple-landing"})
	if !containsString(rec.Includes, seoInclude) {
		t.Fatalf("SEO entry missing: %v", rec.Includes)
	}

	// Requesting it explicitly must not duplicate it.
	rec = GetRecommendation(Answers{ProjectScope: "simple-landing", Features: []string{"seo"}})
	count := 0
	for _, item := range rec.Includes {
		if item == seoInclude {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one SEO entry, got %d", count)
	}
}

func TestRecommendationJSONRoundTrip(t *testing.T) {
	rec := GetRecommendation(Answers{
		Investment:   "enterprise",
		Timeline:     "urgent",
		ProjectScope: "ecommerce",
		Features:     []string{"payments", "analytics"},
	})

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Recommendation
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(rec, decoded) {
		t.Fatalf("round trip mismatch:\n  in:  %+v\n  out: %+v", rec, decoded)
	}
}

func TestFormatUSD(t *testing.T) {
	cases := map[int]string{
		0:       "$0",
		750:     "$750",
		1350:    "$1,350",
		12000:   "$12,000",
		1234567: "$1,234,567",
	}
	for in, want := range cases {
		if got := formatUSD(in); got != want {
			t.Fatalf("formatUSD(%d) = %q, want %q", in, got, want)
		}
	}
}
