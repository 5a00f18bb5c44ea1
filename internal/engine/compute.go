package engine

import (
	"fmt"
	"time"

	"github.com/2beens/recoverycoach/internal/domain"
	"github.com/2beens/recoverycoach/internal/insights"
	"github.com/2beens/recoverycoach/internal/nutrition"
	"github.com/2beens/recoverycoach/internal/plan"
	"github.com/2beens/recoverycoach/internal/recovery"
	"github.com/2beens/recoverycoach/internal/trends"
)

// Input is everything one computation reads. Records may be in any order.
type Input struct {
	Profile    domain.UserProfile       `json:"profile"`
	Sleep      []domain.SleepRecord     `json:"sleep"`
	Workouts   []domain.WorkoutRecord   `json:"workouts"`
	Nutrition  []domain.NutritionRecord `json:"nutrition"`
	Progress   []domain.ProgressRecord  `json:"progress"`
	Biometrics *domain.BiometricSample  `json:"biometrics,omitempty"`
	// Workout is the candidate session to adapt, nil uses the goal template.
	Workout *domain.Workout `json:"workout,omitempty"`
	Now     time.Time       `json:"now"`
}

type Output struct {
	Recovery  domain.RecoveryScore    `json:"recovery"`
	Trends    trends.Report           `json:"trends"`
	Insights  domain.InsightReport    `json:"insights"`
	Nutrition domain.NutritionTargets `json:"nutrition"`
	Workout   domain.AdaptedWorkout   `json:"workout"`
}

type CoreConfig struct {
	Recovery recovery.Config
	Trends   trends.Config
	Insights insights.Config
	// Catalog nil uses the embedded default.
	Catalog *plan.Catalog
}

func DefaultCoreConfig() CoreConfig {
	return CoreConfig{
		Recovery: recovery.DefaultConfig(),
		Trends:   trends.DefaultConfig(),
		Insights: insights.DefaultConfig(),
	}
}

// Core composes the six calculators. It holds no per-user state and every
// method is a pure function of its arguments.
type Core struct {
	scorer     *recovery.Scorer
	analyzer   *trends.Analyzer
	generator  *insights.Generator
	calculator *nutrition.Calculator
	adaptor    *plan.Adaptor
	catalog    *plan.Catalog
}

func NewCore(config CoreConfig) (*Core, error) {
	catalog := config.Catalog
	if catalog == nil {
		var err error
		if catalog, err = plan.DefaultCatalog(); err != nil {
			return nil, fmt.Errorf("load default catalog: %w", err)
		}
	}

	nutritionConfig := nutrition.DefaultConfig()
	nutritionConfig.GoalAdjustments = catalog.MacroTable()

	return &Core{
		scorer:     recovery.NewScorer(config.Recovery),
		analyzer:   trends.NewAnalyzer(config.Trends),
		generator:  insights.NewGenerator(config.Insights),
		calculator: nutrition.NewCalculator(nutritionConfig),
		adaptor:    plan.NewAdaptor(catalog),
		catalog:    catalog,
	}, nil
}

// Recovery scores the day. sleepTracked is false when no sleep record
// exists up to in.Now and the score is the neutral default.
func (c *Core) Recovery(in Input) (score domain.RecoveryScore, sleepTracked bool) {
	score = c.scorer.Score(recovery.Input{
		Sleep:    in.Sleep,
		Workouts: in.Workouts,
		Profile:  in.Profile,
		Now:      in.Now,
	})
	for _, s := range in.Sleep {
		if !s.Date.After(in.Now) {
			sleepTracked = true
			break
		}
	}
	return score, sleepTracked
}

// Trends runs the detectors. An incomplete profile only disables the goal
// trajectory, which needs the TDEE.
func (c *Core) Trends(in Input, score domain.RecoveryScore) trends.Report {
	var tdee float64
	if _, t, err := c.calculator.Energy(in.Profile); err == nil {
		tdee = t
	}
	return c.analyzer.Analyze(trends.Input{
		Profile:    in.Profile,
		Workouts:   in.Workouts,
		Nutrition:  in.Nutrition,
		Progress:   in.Progress,
		Biometrics: in.Biometrics,
		Recovery:   score,
		TDEE:       tdee,
		Now:        in.Now,
	})
}

func (c *Core) Insights(in Input, score domain.RecoveryScore, sleepTracked bool, report trends.Report) domain.InsightReport {
	return c.generator.Generate(insights.Input{
		UserID:       in.Profile.UserID,
		Recovery:     score,
		SleepTracked: sleepTracked,
		Workouts:     in.Workouts,
		Trends:       report,
		Now:          in.Now,
	})
}

func (c *Core) Nutrition(profile domain.UserProfile) (*domain.NutritionTargets, error) {
	return c.calculator.Calculate(profile)
}

// AdaptWorkout adapts in.Workout, or the goal template when it is nil.
func (c *Core) AdaptWorkout(in Input, score domain.RecoveryScore, flags trends.Flags) (domain.AdaptedWorkout, error) {
	goal := in.Profile.ResolvedGoal()
	var candidate domain.Workout
	if in.Workout != nil {
		candidate = *in.Workout
	} else {
		var err error
		if candidate, err = c.catalog.Template(goal); err != nil {
			return domain.AdaptedWorkout{}, err
		}
	}
	return c.adaptor.Adapt(candidate, score, flags, goal), nil
}

// Compute runs everything. The only failure is an invalid profile, which the
// nutrition targets cannot be computed without.
func (c *Core) Compute(in Input) (*Output, error) {
	targets, err := c.Nutrition(in.Profile)
	if err != nil {
		return nil, err
	}

	score, sleepTracked := c.Recovery(in)
	report := c.Trends(in, score)
	adapted, err := c.AdaptWorkout(in, score, report.Flags)
	if err != nil {
		return nil, err
	}

	return &Output{
		Recovery:  score,
		Trends:    report,
		Insights:  c.Insights(in, score, sleepTracked, report),
		Nutrition: *targets,
		Workout:   adapted,
	}, nil
}
