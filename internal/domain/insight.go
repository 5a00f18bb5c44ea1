package domain

type InsightCategory string

const (
	CategoryWorkout     InsightCategory = "workout"
	CategoryNutrition   InsightCategory = "nutrition"
	CategoryRecovery    InsightCategory = "recovery"
	CategoryProgression InsightCategory = "progression"
	CategoryTiming      InsightCategory = "timing"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities, higher is more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Insight is a single explainable recommendation.
type Insight struct {
	ID             string          `json:"id"`
	Key            string          `json:"key"`
	Category       InsightCategory `json:"category"`
	Priority       Priority        `json:"priority"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Recommendation string          `json:"recommendation"`
	ExpectedImpact int             `json:"expectedImpact"` // 0-100
	Confidence     int             `json:"confidence"`     // 0-100
	DataPoints     []string        `json:"dataPoints"`
	ActionRequired bool            `json:"actionRequired"`
	// ThresholdExceeded is set when the measured deviation crossed the
	// detector's threshold, which allows ActionRequired below high priority.
	ThresholdExceeded bool `json:"thresholdExceeded"`
}

// InsightReport is the ranked output of the insight generator.
type InsightReport struct {
	Insights          []Insight `json:"insights"`
	OptimizationScore int       `json:"optimizationScore"`
	RiskFactors       []string  `json:"riskFactors"`
	Opportunities     []string  `json:"opportunities"`
}
