package trends

import (
	"fmt"
	"time"

	"github.com/2beens/recoverycoach/internal/aggregate"
	"github.com/2beens/recoverycoach/internal/domain"
)

// Plateau compares workout frequency of the latest block with the block
// before it. Without any workouts in the previous block, the most recent week
// is compared with the weekly mean of the two weeks before it.
func (a *Analyzer) Plateau(workouts []domain.WorkoutRecord, now time.Time) *domain.Insight {
	blockDays := a.config.PlateauBlockDays
	if blockDays <= 0 || len(workouts) == 0 {
		return nil
	}

	points := workoutCounts(workouts)
	blocks := aggregate.Window(points, now, blockDays)

	var recentRate, previousRate float64
	var basis string
	if blocks.PreviousCount > 0 {
		recentRate = float64(blocks.Count)
		previousRate = float64(blocks.PreviousCount)
		basis = fmt.Sprintf("%d-day block", blockDays)
	} else {
		lastWeekFrom := now.AddDate(0, 0, -7)
		blockFrom := now.AddDate(0, 0, -blockDays)
		lastWeek := aggregate.Between(points, lastWeekFrom, now)
		earlier := aggregate.Between(points, blockFrom, lastWeekFrom)
		earlierWeeks := float64(blockDays-7) / 7
		if earlierWeeks <= 0 {
			return nil
		}
		recentRate = float64(len(lastWeek))
		previousRate = float64(len(earlier)) / earlierWeeks
		basis = "week"
	}

	change, ok := aggregate.PercentChange(recentRate, previousRate)
	if !ok {
		return nil
	}
	drop := -change
	if drop <= a.config.PlateauDropPercent {
		return nil
	}

	return &domain.Insight{
		Key:      KeyPlateau,
		Category: domain.CategoryProgression,
		Priority: domain.PriorityHigh,
		Title:    "Training plateau warning",
		Description: fmt.Sprintf(
			"Your training frequency dropped by %.1f%% per %s compared with the period before.", drop, basis,
		),
		Recommendation: "Raise frequency back to 3-4 sessions per week. Rotate exercise variations and add weight or reps each week for progressive overload.",
		ExpectedImpact: 85,
		Confidence:     confidence(60, 3, blocks.Count+blocks.PreviousCount, 95),
		DataPoints: []string{
			fmt.Sprintf("Workouts in the last %d days: %d", blockDays, blocks.Count),
			fmt.Sprintf("Workouts in the previous %d days: %d", blockDays, blocks.PreviousCount),
			fmt.Sprintf("Recent rate: %.1f, earlier rate: %.1f per %s", recentRate, previousRate, basis),
			fmt.Sprintf("Frequency drop: %.1f%%", drop),
		},
		ActionRequired:    true,
		ThresholdExceeded: true,
	}
}

// Overtraining flags a high weekly frequency combined with a high average RPE.
func (a *Analyzer) Overtraining(workouts []domain.WorkoutRecord, now time.Time) *domain.Insight {
	lookback := aggregate.Between(
		aggregate.Series(workouts,
			func(w domain.WorkoutRecord) time.Time { return w.Date },
			func(w domain.WorkoutRecord) float64 { return w.RPE },
		),
		now.AddDate(0, 0, -a.config.OvertrainingLookbackDays),
		now,
	)
	if len(lookback) < a.config.OvertrainingMinWorkouts {
		return nil
	}

	lastWeek := aggregate.Between(lookback, now.AddDate(0, 0, -7), now)
	rpes := make([]float64, 0, len(lastWeek))
	for _, p := range lastWeek {
		rpes = append(rpes, p.Value)
	}
	avgRPE, ok := aggregate.Mean(rpes)
	if !ok {
		return nil
	}

	frequency := len(lastWeek)
	if frequency <= a.config.OvertrainingWeeklySession || avgRPE <= a.config.OvertrainingRPE {
		return nil
	}

	return &domain.Insight{
		Key:      KeyOvertraining,
		Category: domain.CategoryRecovery,
		Priority: domain.PriorityHigh,
		Title:    "Overtraining risk",
		Description: fmt.Sprintf(
			"You trained %d times in the last 7 days at an average RPE of %.1f.", frequency, avgRPE,
		),
		Recommendation: "Add 1-2 rest days this week and keep working sets at RPE 6-7 until recovery improves.",
		ExpectedImpact: 90,
		Confidence:     confidence(70, 2, len(lookback), 95),
		DataPoints: []string{
			fmt.Sprintf("Sessions in the last 7 days: %d", frequency),
			fmt.Sprintf("Average RPE in the last 7 days: %.1f", avgRPE),
			fmt.Sprintf("Sessions in the last %d days: %d", a.config.OvertrainingLookbackDays, len(lookback)),
		},
		ActionRequired:    true,
		ThresholdExceeded: true,
	}
}

// NutritionGap flags average daily protein below weight x ProteinPerKg by
// more than ProteinGapGrams over the trailing week.
func (a *Analyzer) NutritionGap(
	profile domain.UserProfile,
	nutrition []domain.NutritionRecord,
	progress []domain.ProgressRecord,
	now time.Time,
) *domain.Insight {
	weight := currentWeight(profile, progress, now)
	if weight <= 0 {
		return nil
	}

	week := aggregate.Window(
		aggregate.Series(nutrition,
			func(n domain.NutritionRecord) time.Time { return n.Date },
			func(n domain.NutritionRecord) float64 { return n.ProteinG },
		),
		now, 7,
	)
	if week.Count == 0 {
		return nil
	}

	target := weight * a.config.ProteinPerKg
	gap := target - week.Average
	if gap <= a.config.ProteinGapGrams {
		return nil
	}

	return &domain.Insight{
		Key:      KeyNutritionGap,
		Category: domain.CategoryNutrition,
		Priority: domain.PriorityMedium,
		Title:    "Protein intake below target",
		Description: fmt.Sprintf(
			"You averaged %.0f g of protein per day over the last week, %.0f g below your %.0f g target.",
			week.Average, gap, target,
		),
		Recommendation: fmt.Sprintf(
			"Add roughly %.0f g of protein per day, e.g. a protein shake or an extra lean meat, fish or dairy serving.", gap,
		),
		ExpectedImpact: 75,
		Confidence:     confidence(50, 6, week.Count, 90),
		DataPoints: []string{
			fmt.Sprintf("Average protein (7 days): %.1f g", week.Average),
			fmt.Sprintf("Target: %.1f g (%.1f kg x %.1f g/kg)", target, weight, a.config.ProteinPerKg),
			fmt.Sprintf("Days logged: %d", week.Count),
		},
		ActionRequired:    true,
		ThresholdExceeded: true,
	}
}

// StrengthDecline compares the average working-set weight of the recent
// window with the window before it.
func (a *Analyzer) StrengthDecline(workouts []domain.WorkoutRecord, now time.Time) *domain.Insight {
	loaded := make([]domain.WorkoutRecord, 0, len(workouts))
	for _, w := range workouts {
		if w.AvgWorkingWeight() > 0 {
			loaded = append(loaded, w)
		}
	}

	stats := aggregate.Window(
		aggregate.Series(loaded,
			func(w domain.WorkoutRecord) time.Time { return w.Date },
			domain.WorkoutRecord.AvgWorkingWeight,
		),
		now, a.config.DeclineWindowDays,
	)
	if !stats.HasChange() || stats.PercentChange >= a.config.StrengthDeclinePercent {
		return nil
	}

	return &domain.Insight{
		Key:      KeyStrengthDecline,
		Category: domain.CategoryProgression,
		Priority: domain.PriorityMedium,
		Title:    "Working weights are dropping",
		Description: fmt.Sprintf(
			"Your average working-set weight fell by %.1f%% over the last %d days.",
			-stats.PercentChange, stats.WindowDays,
		),
		Recommendation: "Prioritize heavy compound lifts early in the session and check that sleep and protein intake support recovery.",
		ExpectedImpact: 70,
		Confidence:     confidence(50, 4, stats.Count+stats.PreviousCount, 90),
		DataPoints: []string{
			fmt.Sprintf("Average working weight, last %d days: %.1f", stats.WindowDays, stats.Average),
			fmt.Sprintf("Average working weight, previous %d days: %.1f", stats.WindowDays, stats.PreviousAverage),
			fmt.Sprintf("Change: %.1f%%", stats.PercentChange),
		},
		ActionRequired:    true,
		ThresholdExceeded: true,
	}
}

// EnduranceDecline compares average session duration window over window.
func (a *Analyzer) EnduranceDecline(workouts []domain.WorkoutRecord, now time.Time) *domain.Insight {
	stats := aggregate.Window(
		aggregate.Series(workouts,
			func(w domain.WorkoutRecord) time.Time { return w.Date },
			func(w domain.WorkoutRecord) float64 { return float64(w.DurationMinutes) },
		),
		now, a.config.DeclineWindowDays,
	)
	if !stats.HasChange() || stats.PercentChange >= a.config.EnduranceDeclinePercent {
		return nil
	}

	return &domain.Insight{
		Key:      KeyEnduranceDecline,
		Category: domain.CategoryWorkout,
		Priority: domain.PriorityLow,
		Title:    "Sessions are getting shorter",
		Description: fmt.Sprintf(
			"Average session length fell from %.0f to %.0f minutes.", stats.PreviousAverage, stats.Average,
		),
		Recommendation: "Add short high-rep conditioning blocks to rebuild work capacity.",
		ExpectedImpact: 55,
		Confidence:     confidence(50, 3, stats.Count+stats.PreviousCount, 85),
		DataPoints: []string{
			fmt.Sprintf("Average duration, last %d days: %.1f min", stats.WindowDays, stats.Average),
			fmt.Sprintf("Average duration, previous %d days: %.1f min", stats.WindowDays, stats.PreviousAverage),
			fmt.Sprintf("Change: %.1f%%", stats.PercentChange),
		},
		ThresholdExceeded: true,
	}
}

// BiometricStrain reads the latest device sample. A nil sample is no data.
func (a *Analyzer) BiometricStrain(sample *domain.BiometricSample) *domain.Insight {
	if sample == nil {
		return nil
	}

	highRestingHR := sample.RestingHR > a.config.RestingHRLimit
	lowHRV := sample.HRV > 0 && sample.HRV < a.config.HRVFloor
	if !highRestingHR && !lowHRV {
		return nil
	}

	dataPoints := []string{
		fmt.Sprintf("Resting heart rate: %.0f bpm (limit %.0f)", sample.RestingHR, a.config.RestingHRLimit),
		fmt.Sprintf("HRV: %.0f ms (floor %.0f)", sample.HRV, a.config.HRVFloor),
	}
	if sample.Steps > 0 {
		dataPoints = append(dataPoints, fmt.Sprintf("Steps: %d", sample.Steps))
	}

	return &domain.Insight{
		Key:            KeyBiometricStrain,
		Category:       domain.CategoryRecovery,
		Priority:       domain.PriorityMedium,
		Title:          "Elevated physiological strain",
		Description:    "Your latest device reading points to incomplete recovery.",
		Recommendation: "Keep today's session light and prioritize an early night.",
		ExpectedImpact: 60,
		Confidence:     65,
		DataPoints:     dataPoints,
	}
}
