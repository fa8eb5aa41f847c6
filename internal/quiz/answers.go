package quiz

// Answers is a completed questionnaire. Every field is optional; absent
// values fall back to neutral mid-range defaults during scoring.
type Answers struct {
	Investment       string   `json:"investment"`
	Timeline         string   `json:"timeline"`
	ProjectScope     string   `json:"projectScope"`
	Features         []string `json:"features"`
	CompanySize      string   `json:"companySize"`
	DecisionRole     string   `json:"decisionRole"`
	Industry         string   `json:"industry"`
	BusinessGoals    []string `json:"businessGoals"`
	CurrentSituation string   `json:"currentSituation"`
	TargetAudience   string   `json:"targetAudience"`
	BrandAssets      string   `json:"brandAssets"`
}

// SolutionType is the closed set of recommended solution categories.
type SolutionType string

const (
	SolutionLanding   SolutionType = "landing"
	SolutionWebsite   SolutionType = "website"
	SolutionEcommerce SolutionType = "ecommerce"
	SolutionCustomApp SolutionType = "custom-app"
)

// Scores holds the raw sub-scores behind a priority score.
type Scores struct {
	Budget     int `json:"budget"`
	Urgency    int `json:"urgency"`
	Complexity int `json:"complexity"`
}

// Recommendation is the derived output of a completed quiz.
type Recommendation struct {
	Solution        SolutionType `json:"solution"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Timeline        string       `json:"timeline"`
	InvestmentRange string       `json:"investmentRange"`
	Includes        []string     `json:"includes"`
	PriorityScore   int          `json:"priorityScore"`
	PriorityLabel   string       `json:"priorityLabel"`
	Scores          Scores       `json:"scores"`
}
