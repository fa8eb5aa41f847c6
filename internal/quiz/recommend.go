package quiz

import (
	"fmt"
	"math"
	"strconv"

	"agency-backend/internal/pricing"
)

// GetRecommendation converts a completed questionnaire into a recommendation.
// It is a pure function: unknown answer values fall back to defaults and
// missing fields never fail.
func GetRecommendation(a Answers) Recommendation {
	scores := ComputeScores(a)
	score := PriorityScore(scores)

	solution := solutionFor(a.ProjectScope)
	profile := solutionProfiles[solution]

	timeline := profile.Timeline
	if a.Timeline == "urgent" {
		timeline = profile.UrgentTimeline
	}

	return Recommendation{
		Solution:        solution,
		Name:            profile.Name,
		Description:     profile.Description,
		Timeline:        timeline,
		InvestmentRange: investmentRange(profile, pricing.QuizDiscountPercent),
		Includes:        buildIncludes(profile, a.Features),
		PriorityScore:   score,
		PriorityLabel:   PriorityLabel(score),
		Scores:          scores,
	}
}

// solutionFor maps project scope to a solution category; anything
// unrecognized, including "not-sure", lands on the website category.
func solutionFor(scope string) SolutionType {
	if s, ok := scopeSolutions[scope]; ok {
		return s
	}
	return SolutionWebsite
}

// investmentRange formats the profile's range with the quiz-completion
// discount applied to both ends.
func investmentRange(p solutionProfile, discountPercent int) string {
	factor := 1 - float64(discountPercent)/100
	low := int(math.Round(float64(p.InvestMin) * factor))
	high := int(math.Round(float64(p.InvestMax) * factor))
	return fmt.Sprintf("%s - %s", formatUSD(low), formatUSD(high))
}

// buildIncludes assembles the "what's included" list: the universal entries,
// the category's page descriptor, one entry per recognized selected feature,
// and always an SEO entry.
func buildIncludes(p solutionProfile, features []string) []string {
	includes := make([]string, 0, len(universalIncludes)+len(features)+2)
	includes = append(includes, universalIncludes...)
	includes = append(includes, p.PageDescriptor)

	seen := make(map[string]bool, len(features))
	hasSEO := false
	for _, f := range features {
		desc, ok := featureIncludes[f]
		if !ok || seen[desc] {
			continue
		}
		seen[desc] = true
		includes = append(includes, desc)
		if desc == seoInclude {
			hasSEO = true
		}
	}
	if !hasSEO {
		includes = append(includes, seoInclude)
	}
	return includes
}

func formatUSD(amount int) string {
	s := strconv.Itoa(amount)
	if len(s) <= 3 {
		return "$" + s
	}
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return "$" + string(out)
}
