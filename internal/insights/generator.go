package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/2beens/recoverycoach/internal/aggregate"
	"github.com/2beens/recoverycoach/internal/domain"
	"github.com/2beens/recoverycoach/internal/trends"

	"github.com/google/uuid"
)

const (
	KeyRecoveryLow       = "recovery.low"
	KeyRecoveryModerate  = "recovery.moderate"
	KeyRecoveryPrimed    = "recovery.primed"
	KeyRecoveryUntracked = "recovery.untracked"
	KeyIntensityHigh     = "workout.intensity-high"
	KeyIntensityLow      = "workout.intensity-low"
	KeyVolumeLow         = "workout.volume-low"
	KeyVolumeHigh        = "workout.volume-high"

	opportunityImpact = 70
	highPriorityCost  = 15
)

// insightNamespace seeds the name-based insight ids.
var insightNamespace = uuid.MustParse("6f1c7a52-3d0e-4c8b-9a57-2b8e1f4d9c31")

type Config struct {
	IntensityWindowDays  int
	IntensityMinSessions int
	HighRPE              float64
	LowRPE               float64

	VolumeSetsPerExercise int
	VolumeSessionsPerWeek int
	VolumeLowRatio        float64
	VolumeHighRatio       float64
}

func DefaultConfig() Config {
	return Config{
		IntensityWindowDays:  14,
		IntensityMinSessions: 3,
		HighRPE:              8,
		LowRPE:               5,

		VolumeSetsPerExercise: 3,
		VolumeSessionsPerWeek: 4,
		VolumeLowRatio:        0.7,
		VolumeHighRatio:       1.3,
	}
}

type Input struct {
	UserID   string
	Recovery domain.RecoveryScore
	// SleepTracked is false when the recovery score is the neutral default.
	SleepTracked bool
	Workouts     []domain.WorkoutRecord
	Trends       trends.Report
	Now          time.Time
}

// Generator merges recovery, workout metric and trend outputs into one ranked
// report. A missing signal only means fewer insights.
type Generator struct {
	config Config
}

func NewGenerator(config Config) *Generator {
	return &Generator{
		config: config,
	}
}

func (g *Generator) Generate(in Input) domain.InsightReport {
	all := make([]domain.Insight, 0, len(in.Trends.Insights)+3)

	if insight := g.recoveryInsight(in.Recovery, in.SleepTracked); insight != nil {
		all = append(all, *insight)
	}
	if insight := g.intensityInsight(in.Workouts, in.Now); insight != nil {
		all = append(all, *insight)
	}
	if insight := g.volumeInsight(in.Workouts, in.Now); insight != nil {
		all = append(all, *insight)
	}
	all = append(all, in.Trends.Insights...)

	for i := range all {
		all[i] = normalize(in.UserID, all[i])
	}
	Rank(all)

	return domain.InsightReport{
		Insights:          all,
		OptimizationScore: OptimizationScore(all),
		RiskFactors:       riskFactors(all),
		Opportunities:     opportunities(all),
	}
}

// Rank sorts by priority, then expected impact, both descending. Ties keep a
// stable title order.
func Rank(insights []domain.Insight) {
	sort.SliceStable(insights, func(i, j int) bool {
		a, b := insights[i], insights[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() > b.Priority.Rank()
		}
		if a.ExpectedImpact != b.ExpectedImpact {
			return a.ExpectedImpact > b.ExpectedImpact
		}
		return a.Title < b.Title
	})
}

// OptimizationScore is round((meanConfidence + max(0, 100 - 15*highPriority)) / 2).
// With no insights the mean confidence counts as 0.
func OptimizationScore(insights []domain.Insight) int {
	var confidenceSum float64
	highPriority := 0
	for _, in := range insights {
		confidenceSum += float64(in.Confidence)
		if in.Priority == domain.PriorityHigh {
			highPriority++
		}
	}

	meanConfidence := 0.0
	if len(insights) > 0 {
		meanConfidence = confidenceSum / float64(len(insights))
	}
	penalized := math.Max(0, float64(100-highPriorityCost*highPriority))
	return int(math.Round((meanConfidence + penalized) / 2))
}

// InsightID is stable for a user and an insight key.
func InsightID(userID, key string) string {
	return uuid.NewSHA1(insightNamespace, []byte(userID+"/"+key)).String()
}

func normalize(userID string, insight domain.Insight) domain.Insight {
	insight.ID = InsightID(userID, insight.Key)
	insight.ExpectedImpact = clamp(insight.ExpectedImpact)
	insight.Confidence = clamp(insight.Confidence)
	insight.ActionRequired = insight.ActionRequired &&
		(insight.Priority == domain.PriorityHigh || insight.ThresholdExceeded)
	if insight.DataPoints == nil {
		insight.DataPoints = []string{}
	}
	return insight
}

func riskFactors(insights []domain.Insight) []string {
	risks := make([]string, 0)
	for _, in := range insights {
		if in.Priority == domain.PriorityHigh && in.ActionRequired {
			risks = append(risks, in.Title)
		}
	}
	return risks
}

func opportunities(insights []domain.Insight) []string {
	opps := make([]string, 0)
	for _, in := range insights {
		if in.ExpectedImpact > opportunityImpact {
			opps = append(opps, in.Title)
		}
	}
	return opps
}

func (g *Generator) recoveryInsight(score domain.RecoveryScore, sleepTracked bool) *domain.Insight {
	dataPoints := []string{
		fmt.Sprintf("Recovery score: %d", score.Overall),
		fmt.Sprintf("Sleep score: %d", score.Sleep),
		fmt.Sprintf("Stress score: %d", score.Stress),
		fmt.Sprintf("Readiness: %d", score.Readiness),
		fmt.Sprintf("Training load (7 days): %.0f", score.TrainingLoad),
	}

	if !sleepTracked {
		return &domain.Insight{
			Key:            KeyRecoveryUntracked,
			Category:       domain.CategoryRecovery,
			Priority:       domain.PriorityLow,
			Title:          "Start tracking recovery",
			Description:    "There is no sleep or stress data yet, the recovery score is a neutral default.",
			Recommendation: "Log sleep hours, sleep quality and stress each morning.",
			ExpectedImpact: 40,
			Confidence:     30,
			DataPoints:     dataPoints[:1],
		}
	}

	switch {
	case score.Overall < 40:
		return &domain.Insight{
			Key:               KeyRecoveryLow,
			Category:          domain.CategoryRecovery,
			Priority:          domain.PriorityHigh,
			Title:             "Recovery is low",
			Description:       fmt.Sprintf("Your recovery score of %d is below 40.", score.Overall),
			Recommendation:    "Swap today's session for mobility or an easy walk and focus on sleep tonight.",
			ExpectedImpact:    80,
			Confidence:        80,
			DataPoints:        dataPoints,
			ActionRequired:    true,
			ThresholdExceeded: true,
		}
	case score.Overall < 60:
		return &domain.Insight{
			Key:               KeyRecoveryModerate,
			Category:          domain.CategoryRecovery,
			Priority:          domain.PriorityMedium,
			Title:             "Recovery below baseline",
			Description:       fmt.Sprintf("Your recovery score of %d suggests a lighter day.", score.Overall),
			Recommendation:    "Train at reduced volume and keep RPE at 7 or below.",
			ExpectedImpact:    65,
			Confidence:        75,
			DataPoints:        dataPoints,
			ActionRequired:    true,
			ThresholdExceeded: true,
		}
	case score.Overall >= 80:
		return &domain.Insight{
			Key:            KeyRecoveryPrimed,
			Category:       domain.CategoryRecovery,
			Priority:       domain.PriorityLow,
			Title:          "Primed for a hard session",
			Description:    fmt.Sprintf("Your recovery score of %d supports high intensity today.", score.Overall),
			Recommendation: "Schedule your heaviest or longest session of the week today.",
			ExpectedImpact: 60,
			Confidence:     75,
			DataPoints:     dataPoints,
		}
	default:
		return nil
	}
}

func (g *Generator) intensityInsight(workouts []domain.WorkoutRecord, now time.Time) *domain.Insight {
	window := aggregate.Window(
		aggregate.Series(workouts,
			func(w domain.WorkoutRecord) time.Time { return w.Date },
			func(w domain.WorkoutRecord) float64 { return w.RPE },
		),
		now, g.config.IntensityWindowDays,
	)
	if window.Count < g.config.IntensityMinSessions {
		return nil
	}

	dataPoints := []string{
		fmt.Sprintf("Average RPE (%d days): %.1f", window.WindowDays, window.Average),
		fmt.Sprintf("Sessions (%d days): %d", window.WindowDays, window.Count),
	}
	if window.HasChange() {
		dataPoints = append(dataPoints, fmt.Sprintf("RPE change vs previous %d days: %.1f%%", window.WindowDays, window.PercentChange))
	}

	switch {
	case window.Average > g.config.HighRPE:
		return &domain.Insight{
			Key:               KeyIntensityHigh,
			Category:          domain.CategoryWorkout,
			Priority:          domain.PriorityMedium,
			Title:             "Training intensity is consistently high",
			Description:       fmt.Sprintf("Your sessions averaged RPE %.1f over the last %d days.", window.Average, window.WindowDays),
			Recommendation:    "Keep most working sets at RPE 7-8 and reserve RPE 9+ for one top set per lift.",
			ExpectedImpact:    70,
			Confidence:        confidenceFor(window.Count),
			DataPoints:        dataPoints,
			ActionRequired:    true,
			ThresholdExceeded: true,
		}
	case window.Average < g.config.LowRPE:
		return &domain.Insight{
			Key:            KeyIntensityLow,
			Category:       domain.CategoryWorkout,
			Priority:       domain.PriorityLow,
			Title:          "Room to push harder",
			Description:    fmt.Sprintf("Your sessions averaged RPE %.1f over the last %d days.", window.Average, window.WindowDays),
			Recommendation: "Add load or reps until working sets land around RPE 7.",
			ExpectedImpact: 60,
			Confidence:     confidenceFor(window.Count),
			DataPoints:     dataPoints,
		}
	default:
		return nil
	}
}

// volumeInsight compares sets done in the last 7 days with the weekly target
// exerciseCount x sets per exercise x sessions per week, exerciseCount being
// the mean number of exercises per session over the last 14 days.
func (g *Generator) volumeInsight(workouts []domain.WorkoutRecord, now time.Time) *domain.Insight {
	exerciseCounts := aggregate.Window(
		aggregate.Series(workouts,
			func(w domain.WorkoutRecord) time.Time { return w.Date },
			func(w domain.WorkoutRecord) float64 { return float64(len(w.Exercises)) },
		),
		now, 14,
	)
	exerciseCount := int(math.Round(exerciseCounts.Average))
	if exerciseCounts.Count == 0 || exerciseCount == 0 {
		return nil
	}

	weekSets := aggregate.Between(
		aggregate.Series(workouts,
			func(w domain.WorkoutRecord) time.Time { return w.Date },
			func(w domain.WorkoutRecord) float64 { return float64(w.TotalSets()) },
		),
		now.AddDate(0, 0, -7), now,
	)
	var sets float64
	for _, p := range weekSets {
		sets += p.Value
	}

	target := exerciseCount * g.config.VolumeSetsPerExercise * g.config.VolumeSessionsPerWeek
	if target == 0 {
		return nil
	}
	ratio := sets / float64(target)

	dataPoints := []string{
		fmt.Sprintf("Sets in the last 7 days: %.0f", sets),
		fmt.Sprintf("Weekly target: %d sets (%d exercises x %d sets x %d sessions)",
			target, exerciseCount, g.config.VolumeSetsPerExercise, g.config.VolumeSessionsPerWeek),
		fmt.Sprintf("Volume vs target: %.0f%%", ratio*100),
	}

	switch {
	case ratio < g.config.VolumeLowRatio:
		return &domain.Insight{
			Key:               KeyVolumeLow,
			Category:          domain.CategoryWorkout,
			Priority:          domain.PriorityMedium,
			Title:             "Training volume below target",
			Description:       fmt.Sprintf("You completed %.0f of %d weekly target sets.", sets, target),
			Recommendation:    "Add a session or 1-2 sets per exercise to close the volume gap.",
			ExpectedImpact:    75,
			Confidence:        confidenceFor(exerciseCounts.Count),
			DataPoints:        dataPoints,
			ActionRequired:    true,
			ThresholdExceeded: true,
		}
	case ratio > g.config.VolumeHighRatio:
		return &domain.Insight{
			Key:            KeyVolumeHigh,
			Category:       domain.CategoryWorkout,
			Priority:       domain.PriorityLow,
			Title:          "Training volume above target",
			Description:    fmt.Sprintf("You completed %.0f sets against a weekly target of %d.", sets, target),
			Recommendation: "Make sure recovery keeps up, or trim accessory sets.",
			ExpectedImpact: 50,
			Confidence:     confidenceFor(exerciseCounts.Count),
			DataPoints:     dataPoints,
		}
	default:
		return nil
	}
}

func confidenceFor(points int) int {
	return min(90, 50+5*points)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
