package trends

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/recoverycoach/internal/aggregate"
	"github.com/2beens/recoverycoach/internal/domain"
)

// Insight keys, stable across runs. The insight generator derives ids from them.
const (
	KeyPlateau          = "trend.plateau"
	KeyOvertraining     = "trend.overtraining"
	KeyGoalTrajectory   = "trend.goal-trajectory"
	KeyNutritionGap     = "trend.protein-gap"
	KeyStrengthDecline  = "trend.strength-decline"
	KeyBiometricStrain  = "trend.biometric-strain"
	KeyEnduranceDecline = "trend.endurance-decline"
)

type Config struct {
	PlateauBlockDays   int
	PlateauDropPercent float64

	OvertrainingMinWorkouts   int
	OvertrainingLookbackDays  int
	OvertrainingWeeklySession int
	OvertrainingRPE           float64

	TrajectoryMinWorkouts int
	TrajectoryMinWeeks    float64
	TrajectoryMaxWeeks    float64

	ProteinPerKg    float64
	ProteinGapGrams float64

	DeclineWindowDays       int
	StrengthDeclinePercent  float64
	EnduranceDeclinePercent float64

	ConsistencyWindowDays     int
	ConsistencyTargetSessions int

	RestingHRLimit float64
	HRVFloor       float64
}

func DefaultConfig() Config {
	return Config{
		PlateauBlockDays:   21,
		PlateauDropPercent: 25,

		OvertrainingMinWorkouts:   7,
		OvertrainingLookbackDays:  14,
		OvertrainingWeeklySession: 5,
		OvertrainingRPE:           8,

		TrajectoryMinWorkouts: 4,
		TrajectoryMinWeeks:    1,
		TrajectoryMaxWeeks:    52,

		ProteinPerKg:    2,
		ProteinGapGrams: 20,

		DeclineWindowDays:       14,
		StrengthDeclinePercent:  -5,
		EnduranceDeclinePercent: -10,

		ConsistencyWindowDays:     28,
		ConsistencyTargetSessions: 12,

		RestingHRLimit: 75,
		HRVFloor:       30,
	}
}

type Input struct {
	Profile    domain.UserProfile
	Workouts   []domain.WorkoutRecord
	Nutrition  []domain.NutritionRecord
	Progress   []domain.ProgressRecord
	Biometrics *domain.BiometricSample
	Recovery   domain.RecoveryScore
	// TDEE is the estimated daily expenditure, 0 when the profile could not
	// produce one.
	TDEE float64
	Now  time.Time
}

// Flags are the trend signals the plan adaptor reacts to.
type Flags struct {
	StrengthDeclining  bool `json:"strengthDeclining"`
	EnduranceDeclining bool `json:"enduranceDeclining"`
	// Consistency is 0-100, sessions logged in the consistency window against
	// the target count. Only meaningful when ConsistencyMeasured is set.
	Consistency         int  `json:"consistency"`
	ConsistencyMeasured bool `json:"consistencyMeasured"`
	OvertrainingRisk    bool `json:"overtrainingRisk"`
	Plateau             bool `json:"plateau"`
}

type Report struct {
	Insights   []domain.Insight `json:"insights"`
	Prediction *Prediction      `json:"prediction,omitempty"`
	Flags      Flags            `json:"flags"`
}

// Analyzer runs the trend and risk detectors. Every detector yields zero or
// one insight, missing history never produces an error.
type Analyzer struct {
	config Config
}

func NewAnalyzer(config Config) *Analyzer {
	return &Analyzer{
		config: config,
	}
}

func (a *Analyzer) Analyze(in Input) Report {
	report := Report{
		Insights: make([]domain.Insight, 0),
	}

	plateau := a.Plateau(in.Workouts, in.Now)
	overtraining := a.Overtraining(in.Workouts, in.Now)
	strength := a.StrengthDecline(in.Workouts, in.Now)
	endurance := a.EnduranceDecline(in.Workouts, in.Now)
	prediction := a.GoalTrajectory(in)

	for _, insight := range []*domain.Insight{
		plateau,
		overtraining,
		strength,
		endurance,
		a.NutritionGap(in.Profile, in.Nutrition, in.Progress, in.Now),
		a.BiometricStrain(in.Biometrics),
	} {
		if insight != nil {
			report.Insights = append(report.Insights, *insight)
		}
	}
	if prediction != nil {
		report.Prediction = prediction
		report.Insights = append(report.Insights, prediction.Insight())
	}

	consistency, measured := a.Consistency(in.Workouts, in.Now)
	report.Flags = Flags{
		StrengthDeclining:   strength != nil,
		EnduranceDeclining:  endurance != nil,
		Consistency:         consistency,
		ConsistencyMeasured: measured,
		OvertrainingRisk:    overtraining != nil,
		Plateau:             plateau != nil,
	}

	return report
}

// Consistency scores sessions in the consistency window against the target,
// capped at 100. measured is false when there is no workout history at all.
func (a *Analyzer) Consistency(workouts []domain.WorkoutRecord, now time.Time) (score int, measured bool) {
	if len(workouts) == 0 || a.config.ConsistencyTargetSessions <= 0 {
		return 0, false
	}
	stats := aggregate.Window(workoutCounts(workouts), now, a.config.ConsistencyWindowDays)
	ratio := float64(stats.Count) / float64(a.config.ConsistencyTargetSessions) * 100
	return int(math.Round(math.Min(100, ratio))), true
}

// currentWeight is the latest logged body weight up to now, falling back to
// the profile weight.
func currentWeight(profile domain.UserProfile, progress []domain.ProgressRecord, now time.Time) float64 {
	sorted := make([]domain.ProgressRecord, 0, len(progress))
	for _, p := range progress {
		if p.WeightKg > 0 && !p.Date.After(now) {
			sorted = append(sorted, p)
		}
	}
	if len(sorted) == 0 {
		return profile.WeightKg
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted[len(sorted)-1].WeightKg
}

func workoutCounts(workouts []domain.WorkoutRecord) []aggregate.Point {
	return aggregate.Series(workouts,
		func(w domain.WorkoutRecord) time.Time { return w.Date },
		func(domain.WorkoutRecord) float64 { return 1 },
	)
}

func confidence(base, perPoint, points, ceiling int) int {
	c := base + perPoint*points
	if c > ceiling {
		return ceiling
	}
	return c
}
