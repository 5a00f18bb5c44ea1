package plan

import (
	"fmt"
	"math"
	"strings"

	"github.com/2beens/recoverycoach/internal/domain"
	"github.com/2beens/recoverycoach/internal/trends"
)

const (
	baseConfidence = 0.8

	lowRecoveryThreshold      = 40
	moderateRecoveryThreshold = 60
	highRecoveryThreshold     = 80

	lowRecoveryScale      = 0.6
	moderateRecoveryScale = 0.8
	highRecoveryScale     = 1.1

	lowRecoveryExtraRestSeconds = 30

	consistencyThreshold   = 60
	consistencyMaxExercise = 4
	consistencyMaxMinutes  = 30

	muscleSetFloor = 4
	muscleRepFloor = 8

	fatLossFinishers      = 2
	fatLossMinimumMinutes = 45
)

// Adaptor rewrites a candidate workout from the recovery score, the trend
// flags and the goal. The input workout is never modified.
type Adaptor struct {
	catalog *Catalog
}

func NewAdaptor(catalog *Catalog) *Adaptor {
	return &Adaptor{
		catalog: catalog,
	}
}

type adaptation struct {
	workout    domain.Workout
	changes    []domain.WorkoutChange
	reasons    []string
	confidence float64
}

func (a *adaptation) change(changeType domain.ChangeType, impact domain.ChangeImpact, format string, args ...any) {
	a.changes = append(a.changes, domain.WorkoutChange{
		Type:        changeType,
		Impact:      impact,
		Description: fmt.Sprintf(format, args...),
	})
}

// Adapt applies the rules in order, each one appending to the changelog.
// Only one recovery band scales the session. Overtraining risk scales a
// session the recovery score alone would leave untouched or increase.
func (ad *Adaptor) Adapt(
	workout domain.Workout,
	recovery domain.RecoveryScore,
	flags trends.Flags,
	goal domain.Goal,
) domain.AdaptedWorkout {
	a := &adaptation{
		workout:    workout.Clone(),
		changes:    make([]domain.WorkoutChange, 0),
		confidence: baseConfidence,
	}
	overall := recovery.Overall

	switch {
	case overall < lowRecoveryThreshold:
		scale(&a.workout, lowRecoveryScale)
		a.change(domain.ChangeIntensity, domain.ImpactPositive,
			"Reduced sets, reps and duration to 60%% because recovery is %d", overall)
		for i := range a.workout.Exercises {
			a.workout.Exercises[i].RestSeconds += lowRecoveryExtraRestSeconds
		}
		a.change(domain.ChangeRest, domain.ImpactPositive,
			"Added %d seconds of rest between sets", lowRecoveryExtraRestSeconds)
		a.reasons = append(a.reasons, fmt.Sprintf("recovery score %d is low, reduce intensity", overall))
		a.confidence = 0.9
	case overall < moderateRecoveryThreshold:
		scale(&a.workout, moderateRecoveryScale)
		a.change(domain.ChangeIntensity, domain.ImpactPositive,
			"Reduced sets, reps and duration to 80%% because recovery is %d", overall)
		a.reasons = append(a.reasons, fmt.Sprintf("recovery score %d is moderate, ease off slightly", overall))
	case flags.OvertrainingRisk:
		scale(&a.workout, moderateRecoveryScale)
		a.change(domain.ChangeIntensity, domain.ImpactPositive,
			"Reduced sets, reps and duration to 80%% because of overtraining risk (high frequency at high RPE)")
		a.reasons = append(a.reasons, fmt.Sprintf("overtraining risk despite recovery score %d, ease off", overall))
	case overall > highRecoveryThreshold:
		scale(&a.workout, highRecoveryScale)
		a.change(domain.ChangeIntensity, domain.ImpactPositive,
			"Increased sets, reps and duration by 10%% because recovery is %d", overall)
		a.reasons = append(a.reasons, fmt.Sprintf("recovery score %d is high, increase intensity", overall))
		a.confidence = 0.7
	}

	// the cap applies to the planned exercises, trend additions come after it
	if flags.ConsistencyMeasured && flags.Consistency < consistencyThreshold {
		if n := len(a.workout.Exercises); n > consistencyMaxExercise {
			a.workout.Exercises = a.workout.Exercises[:consistencyMaxExercise]
			a.change(domain.ChangeExercises, domain.ImpactNeutral,
				"Kept the first %d of %d planned exercises to make the session easier to complete", consistencyMaxExercise, n)
		}
		if a.workout.DurationMinutes > consistencyMaxMinutes {
			a.workout.DurationMinutes = consistencyMaxMinutes
			a.change(domain.ChangeDuration, domain.ImpactNeutral,
				"Capped the session at %d minutes", consistencyMaxMinutes)
		}
		a.reasons = append(a.reasons, fmt.Sprintf("consistency is %d%%, shorter sessions first", flags.Consistency))
	}

	if flags.StrengthDeclining {
		n := 1
		if overall >= moderateRecoveryThreshold {
			n = 2
		}
		if added := ad.appendFrom(a, poolCompounds, n); len(added) > 0 {
			a.change(domain.ChangeExercises, domain.ImpactPositive,
				"Added compound lifts: %s", strings.Join(added, ", "))
		}
		a.reasons = append(a.reasons, "working weights are declining")
	}

	if flags.EnduranceDeclining {
		n := 2
		if overall >= moderateRecoveryThreshold {
			n = 3
		}
		if added := ad.appendFrom(a, poolConditioning, n); len(added) > 0 {
			a.change(domain.ChangeExercises, domain.ImpactPositive,
				"Added high-rep conditioning: %s", strings.Join(added, ", "))
		}
		a.reasons = append(a.reasons, "session endurance is declining")
	}

	switch goal {
	case domain.GoalMuscleGain:
		raised := 0
		for i := range a.workout.Exercises {
			ex := &a.workout.Exercises[i]
			before := *ex
			ex.Sets = max(ex.Sets, muscleSetFloor)
			if ex.Reps > 0 || ex.DurationSeconds == 0 {
				ex.Reps = max(ex.Reps, muscleRepFloor)
			}
			if *ex != before {
				raised++
			}
		}
		if raised > 0 {
			a.change(domain.ChangeVolume, domain.ImpactPositive,
				"Raised %d exercises to at least %d sets of %d reps for hypertrophy", raised, muscleSetFloor, muscleRepFloor)
			a.reasons = append(a.reasons, "muscle gain goal needs volume")
		}
	case domain.GoalFatLoss:
		added := ad.appendFrom(a, poolFinishers, fatLossFinishers)
		if len(added) > 0 {
			a.change(domain.ChangeExercises, domain.ImpactPositive,
				"Added cardio finishers: %s", strings.Join(added, ", "))
		}
		if a.workout.DurationMinutes < fatLossMinimumMinutes {
			a.change(domain.ChangeDuration, domain.ImpactNeutral,
				"Extended the session from %d to %d minutes", a.workout.DurationMinutes, fatLossMinimumMinutes)
			a.workout.DurationMinutes = fatLossMinimumMinutes
		}
		a.reasons = append(a.reasons, "fat loss goal benefits from extra conditioning")
	}

	reason := "No adaptation needed, the planned session fits today's recovery."
	if len(a.reasons) > 0 {
		reason = "Adapted because " + strings.Join(a.reasons, "; ") + "."
	}

	return domain.AdaptedWorkout{
		Original:   workout.Clone(),
		Adapted:    a.workout,
		Changes:    a.changes,
		Reason:     reason,
		Confidence: a.confidence,
	}
}

func (ad *Adaptor) appendFrom(a *adaptation, kind poolKind, n int) []string {
	picked := pick(ad.catalog.pool(kind), a.workout, n)
	names := make([]string, 0, len(picked))
	for _, ex := range picked {
		a.workout.Exercises = append(a.workout.Exercises, ex)
		names = append(names, ex.Name)
	}
	return names
}

func scale(w *domain.Workout, factor float64) {
	w.DurationMinutes = scaleInt(w.DurationMinutes, factor)
	for i := range w.Exercises {
		ex := &w.Exercises[i]
		ex.Sets = scaleInt(ex.Sets, factor)
		ex.Reps = scaleInt(ex.Reps, factor)
		ex.DurationSeconds = scaleInt(ex.DurationSeconds, factor)
	}
}

// scaleInt keeps zero at zero and never scales a positive value below 1.
func scaleInt(v int, factor float64) int {
	if v <= 0 {
		return v
	}
	return max(1, int(math.Round(float64(v)*factor)))
}
