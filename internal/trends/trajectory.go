package trends

import (
	"fmt"
	"math"
	"time"

	"github.com/2beens/recoverycoach/internal/aggregate"
	"github.com/2beens/recoverycoach/internal/domain"
)

// KcalPerKg is the energy surplus or deficit that moves body weight by 1 kg.
const KcalPerKg = 7700.0

// Prediction estimates when the user reaches the goal weight at the current
// energy balance.
type Prediction struct {
	CurrentWeightKg float64 `json:"currentWeightKg"`
	GoalWeightKg    float64 `json:"goalWeightKg"`
	// WeeklyChangeKg is positive for a surplus (weight gain).
	WeeklyChangeKg  float64   `json:"weeklyChangeKg"`
	WeeksToGoal     float64   `json:"weeksToGoal"`
	AvgCalories     float64   `json:"avgCalories"`
	TDEE            float64   `json:"tdee"`
	EstimatedDate   time.Time `json:"estimatedDate"`
	NutritionDays   int       `json:"nutritionDays"`
	WorkoutsTracked int       `json:"workoutsTracked"`
}

// GoalTrajectory returns nil when there is no goal weight, too little
// history, the user is already within 1 kg of the goal, or the estimate falls
// outside the reliable range of weeks.
func (a *Analyzer) GoalTrajectory(in Input) *Prediction {
	if in.Profile.GoalWeightKg == nil || in.TDEE <= 0 {
		return nil
	}
	if len(in.Workouts) < a.config.TrajectoryMinWorkouts {
		return nil
	}

	current := currentWeight(in.Profile, in.Progress, in.Now)
	goal := *in.Profile.GoalWeightKg
	remaining := goal - current
	if current <= 0 || math.Abs(remaining) < 1 {
		return nil
	}

	week := aggregate.Window(
		aggregate.Series(in.Nutrition,
			func(n domain.NutritionRecord) time.Time { return n.Date },
			func(n domain.NutritionRecord) float64 { return n.Calories },
		),
		in.Now, 7,
	)
	if week.Count == 0 {
		return nil
	}

	weeklyChange := (week.Average - in.TDEE) * 7 / KcalPerKg
	if weeklyChange == 0 {
		return nil
	}

	// negative when the balance moves away from the goal
	weeks := remaining / weeklyChange
	if weeks < a.config.TrajectoryMinWeeks || weeks > a.config.TrajectoryMaxWeeks {
		return nil
	}

	return &Prediction{
		CurrentWeightKg: current,
		GoalWeightKg:    goal,
		WeeklyChangeKg:  weeklyChange,
		WeeksToGoal:     weeks,
		AvgCalories:     week.Average,
		TDEE:            in.TDEE,
		EstimatedDate:   in.Now.Add(time.Duration(weeks * 7 * 24 * float64(time.Hour))),
		NutritionDays:   week.Count,
		WorkoutsTracked: len(in.Workouts),
	}
}

func (p Prediction) Insight() domain.Insight {
	direction := "lose"
	if p.WeeklyChangeKg > 0 {
		direction = "gain"
	}

	conf := 50
	if p.NutritionDays >= 7 {
		conf = 70
	}

	return domain.Insight{
		Key:      KeyGoalTrajectory,
		Category: domain.CategoryTiming,
		Priority: domain.PriorityLow,
		Title:    "Goal weight projection",
		Description: fmt.Sprintf(
			"At your current intake you %s about %.2f kg per week and reach %.1f kg in roughly %.0f weeks.",
			direction, math.Abs(p.WeeklyChangeKg), p.GoalWeightKg, math.Ceil(p.WeeksToGoal),
		),
		Recommendation: "Keep logging meals and weigh in weekly so the projection stays accurate.",
		ExpectedImpact: 50,
		Confidence:     conf,
		DataPoints: []string{
			fmt.Sprintf("Current weight: %.1f kg", p.CurrentWeightKg),
			fmt.Sprintf("Goal weight: %.1f kg", p.GoalWeightKg),
			fmt.Sprintf("Average intake (7 days): %.0f kcal vs TDEE %.0f kcal", p.AvgCalories, p.TDEE),
			fmt.Sprintf("Projected change: %.2f kg/week", p.WeeklyChangeKg),
			fmt.Sprintf("Estimated weeks to goal: %.1f", p.WeeksToGoal),
		},
	}
}
