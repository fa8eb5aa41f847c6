package quiz

import "testing"

func TestComputeScoresReferenceLeads(t *testing.T) {
	cases := []struct {
		name string
		in   Answers
		want Scores
	}{
		{
			name: "low end",
			in:   Answers{Investment: "budget-conscious", Timeline: "flexible", ProjectScope: "simple-landing"},
			want: Scores{Budget: 1, Urgency: 1, Complexity: 1},
		},
		{
			name: "high end",
			in:   Answers{Investment: "premium", Timeline: "urgent", ProjectScope: "custom-app"},
			want: Scores{Budget: 3, Urgency: 4, Complexity: 4},
		},
		{
			name: "flexible budget counts as top tier",
			in:   Answers{Investment: "flexible", Timeline: "one-month", ProjectScope: "full-website"},
			want: Scores{Budget: 4, Urgency: 3, Complexity: 2},
		},
		{
			name: "need guidance defaults to mid-range",
			in:   Answers{Investment: "need-guidance", Timeline: "three-months", ProjectScope: "ecommerce"},
			want: Scores{Budget: 2, Urgency: 2, Complexity: 3},
		},
		{
			name: "empty answers use defaults",
			in:   Answers{},
			want: Scores{Budget: 2, Urgency: 2, Complexity: 2},
		},
		{
			name: "unrecognized values use defaults",
			in:   Answers{Investment: "???", Timeline: "yesterday", ProjectScope: "metaverse"},
			want: Scores{Budget: 2, Urgency: 2, Complexity: 2},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeScores(tc.in); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestComplexFeatureBumpsComplexity(t *testing.T) {
	base := ComputeScores(Answers{ProjectScope: "full-website"})
	bumped := ComputeScores(Answers{ProjectScope: "full-website", Features: []string{"payments"}})
	if bumped.Complexity != base.Complexity+1 {
		t.Fatalf("expected bump from %d to %d, got %d", base.Complexity, base.Complexity+1, bumped.Complexity)
	}

	// The bump applies once even with several complex features.
	many := ComputeScores(Answers{ProjectScope: "full-website", Features: []string{"payments", "booking", "analytics"}})
	if many.Complexity != base.Complexity+1 {
		t.Fatalf("expected single bump, got %d", many.Complexity)
	}
}

func TestComplexityClampedToFour(t *testing.T) {
	got := ComputeScores(Answers{ProjectScope: "custom-app", Features: []string{"payments"}})
	if got.Complexity != 4 {
		t.Fatalf("expected complexity clamped to 4, got %d", got.Complexity)
	}
}

func TestSubScoresAlwaysInRange(t *testing.T) {
	inputs := []Answers{
		{},
		{Investment: "enterprise", Timeline: "urgent", ProjectScope: "custom-app", Features: []string{"payments", "user-accounts"}},
		{Investment: "nonsense", Timeline: "nonsense", ProjectScope: "nonsense", Features: []string{"nonsense"}},
		{ProjectScope: "simple-landing", Features: []string{"payments"}},
	}
	for i, in := range inputs {
		s := ComputeScores(in)
		for name, v := range map[string]int{"budget": s.Budget, "urgency": s.Urgency, "complexity": s.Complexity} {
			if v < 1 || v > 4 {
				t.Fatalf("input %d: %s score %d out of range", i, name, v)
			}
		}
	}
}

func TestPriorityScoreAndLabel(t *testing.T) {
	cases := []struct {
		scores Scores
		score  int
		label  string
	}{
		{Scores{1, 1, 1}, 1, "standard"},
		{Scores{2, 2, 2}, 8, "standard"},
		{Scores{2, 2, 3}, 12, "medium"},
		{Scores{3, 4, 4}, 48, "high"},
		{Scores{4, 4, 4}, 64, "high"},
	}
	for _, tc := range cases {
		if got := PriorityScore(tc.scores); got != tc.score {
			t.Fatalf("%+v: score %d, want %d", tc.scores, got, tc.score)
		}
		if got := PriorityLabel(tc.score); got != tc.label {
			t.Fatalf("score %d: label %q, want %q", tc.score, got, tc.label)
		}
	}
}
