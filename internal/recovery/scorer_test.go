package recovery_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/2beens/recoverycoach/internal/domain"
	"github.com/2beens/recoverycoach/internal/recovery"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)

func sleepDays(n int, hours float64, quality, stress int) []domain.SleepRecord {
	records := make([]domain.SleepRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, domain.SleepRecord{
			ID:          gofakeit.UUID(),
			UserID:      "user-1",
			Date:        now.AddDate(0, 0, -i),
			HoursSlept:  hours,
			Quality:     quality,
			StressLevel: stress,
		})
	}
	return records
}

func containsText(recs []string, needle string) bool {
	for _, r := range recs {
		if strings.Contains(strings.ToLower(r), strings.ToLower(needle)) {
			return true
		}
	}
	return false
}

func assertInvariants(t *testing.T, score domain.RecoveryScore) {
	t.Helper()
	for _, s := range []int{score.Overall, score.Sleep, score.Stress, score.Readiness} {
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}
	mean := float64(score.Sleep+score.Stress+score.Readiness) / 3
	assert.Equal(t, int(math.Round(mean)), score.Overall)
	assert.NotEmpty(t, score.Recommendations)
}

func TestScore_NoSleepRecords_Neutral(t *testing.T) {
	scorer := recovery.NewScorer(recovery.DefaultConfig())
	score := scorer.Score(recovery.Input{Now: now})

	assert.Equal(t, 50, score.Overall)
	assert.Equal(t, 50, score.Sleep)
	assert.Equal(t, 50, score.Stress)
	assert.Equal(t, 50, score.Readiness)
	require.Len(t, score.Recommendations, 1)
	assert.True(t, containsText(score.Recommendations, "start tracking"))
	assert.Equal(t, domain.IntensityLow, score.Workout.Intensity)
	assert.Equal(t, domain.SessionShort, score.Workout.Duration)
}

func TestScore_ShortSleepHighStress(t *testing.T) {
	scorer := recovery.NewScorer(recovery.DefaultConfig())
	score := scorer.Score(recovery.Input{
		Sleep: sleepDays(7, 6.2, 5, 8),
		Now:   now,
	})

	assertInvariants(t, score)
	assert.Equal(t, 68, score.Sleep)
	assert.Equal(t, 20, score.Stress)
	// (68+20)/2 = 44, x1.1 for low load
	assert.Equal(t, 48, score.Readiness)
	assert.Equal(t, 45, score.Overall)
	assert.GreaterOrEqual(t, score.Overall, 30)
	assert.LessOrEqual(t, score.Overall, 45)

	assert.True(t, containsText(score.Recommendations, "7-9 hours"))
	assert.True(t, containsText(score.Recommendations, "stress"))
	assert.True(t, containsText(score.Recommendations, "sleep quality"))
	assert.True(t, containsText(score.Recommendations, "room to increase"))
	assert.Equal(t, "light movement and technique work", score.Workout.Focus)
}

func TestScore_UsesOnlyMostRecentWindow(t *testing.T) {
	records := sleepDays(7, 8, 9, 2)
	for i := 7; i < 14; i++ {
		records = append(records, domain.SleepRecord{
			Date:        now.AddDate(0, 0, -i),
			HoursSlept:  3,
			Quality:     1,
			StressLevel: 10,
		})
	}
	// a future record is ignored
	records = append(records, domain.SleepRecord{
		Date:        now.AddDate(0, 0, 2),
		HoursSlept:  2,
		Quality:     1,
		StressLevel: 10,
	})

	scorer := recovery.NewScorer(recovery.DefaultConfig())
	score := scorer.Score(recovery.Input{Sleep: records, Now: now})
	assertInvariants(t, score)
	// 100*0.6 + 90*0.4
	assert.Equal(t, 96, score.Sleep)
	assert.Equal(t, 80, score.Stress)
}

func TestScore_HighLoadReducesReadiness(t *testing.T) {
	workouts := []domain.WorkoutRecord{
		{Date: now.AddDate(0, 0, -1), DurationMinutes: 60, RPE: 8},
		{Date: now.AddDate(0, 0, -3), DurationMinutes: 45, RPE: 7},
		// outside the 7 day window
		{Date: now.AddDate(0, 0, -9), DurationMinutes: 10, RPE: 1},
	}
	scorer := recovery.NewScorer(recovery.DefaultConfig())
	score := scorer.Score(recovery.Input{
		Sleep:    sleepDays(7, 8, 8, 3),
		Workouts: workouts,
		Now:      now,
	})

	assertInvariants(t, score)
	assert.InDelta(t, (480.0+315.0)/2, score.TrainingLoad, 0.0001)
	// sleep 92, stress 70, (92+70)/2 = 81, x0.8
	assert.Equal(t, 92, score.Sleep)
	assert.Equal(t, 70, score.Stress)
	assert.Equal(t, 65, score.Readiness)
	assert.True(t, containsText(score.Recommendations, "deload"))
}

func TestScore_CaffeineGapTip(t *testing.T) {
	records := sleepDays(3, 8, 8, 3)
	gap := 4.0
	records[0].CaffeineHoursBeforeBed = &gap

	score := recovery.NewScorer(recovery.DefaultConfig()).Score(recovery.Input{
		Sleep: records,
		Now:   now,
	})
	assert.True(t, containsText(score.Recommendations, "caffeine"))
}

func TestScore_ExcellentRecovery_HighIntensityForGoal(t *testing.T) {
	scorer := recovery.NewScorer(recovery.DefaultConfig())
	score := scorer.Score(recovery.Input{
		Sleep:   sleepDays(7, 8, 10, 1),
		Profile: domain.UserProfile{Goal: domain.GoalStrength},
		Now:     now,
	})

	assertInvariants(t, score)
	assert.GreaterOrEqual(t, score.Overall, 80)
	assert.Equal(t, domain.IntensityHigh, score.Workout.Intensity)
	assert.Equal(t, domain.SessionLong, score.Workout.Duration)
	assert.Equal(t, "heavy compound lifts", score.Workout.Focus)
}

func TestScore_SleepMonotonicBetweenFiveAndEight(t *testing.T) {
	scorer := recovery.NewScorer(recovery.DefaultConfig())
	prev := -1
	for hours := 5.0; hours <= 8.0; hours += 0.25 {
		score := scorer.Score(recovery.Input{
			Sleep: sleepDays(7, hours, 6, 5),
			Now:   now,
		})
		assert.GreaterOrEqual(t, score.Sleep, prev, "hours %.2f", hours)
		prev = score.Sleep
	}
}

func TestScore_InvariantsOnRandomHistory(t *testing.T) {
	gofakeit.Seed(42)
	scorer := recovery.NewScorer(recovery.DefaultConfig())

	for i := 0; i < 200; i++ {
		n := gofakeit.Number(1, 14)
		records := make([]domain.SleepRecord, 0, n)
		for d := 0; d < n; d++ {
			records = append(records, domain.SleepRecord{
				Date:        now.AddDate(0, 0, -d),
				HoursSlept:  gofakeit.Float64Range(0, 14),
				Quality:     gofakeit.Number(1, 10),
				StressLevel: gofakeit.Number(1, 10),
			})
		}
		workoutCount := gofakeit.Number(0, 6)
		workouts := make([]domain.WorkoutRecord, 0, workoutCount)
		for w := 0; w < workoutCount; w++ {
			workouts = append(workouts, domain.WorkoutRecord{
				Date:            now.AddDate(0, 0, -gofakeit.Number(0, 6)),
				DurationMinutes: gofakeit.Number(10, 120),
				RPE:             float64(gofakeit.Number(1, 10)),
			})
		}

		in := recovery.Input{Sleep: records, Workouts: workouts, Now: now}
		score := scorer.Score(in)
		assertInvariants(t, score)
		assert.Equal(t, score, scorer.Score(in))
	}
}

func TestDurationScore(t *testing.T) {
	tests := []struct {
		hours float64
		want  float64
	}{
		{4.9, 30},
		{5, 60},
		{5.9, 60},
		{6, 80},
		{7, 100},
		{9, 100},
		{9.5, 90},
		{10, 90},
		{11, 70},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, recovery.DurationScore(tt.hours), "hours %.1f", tt.hours)
	}
}

func TestWorkoutFor_Bands(t *testing.T) {
	assert.Equal(t, domain.IntensityHigh, recovery.WorkoutFor(80, domain.GoalMaintenance).Intensity)
	mid := recovery.WorkoutFor(79, domain.GoalFatLoss)
	assert.Equal(t, domain.IntensityMedium, mid.Intensity)
	assert.Equal(t, domain.SessionMedium, mid.Duration)
	assert.Equal(t, domain.IntensityLow, recovery.WorkoutFor(40, domain.GoalFatLoss).Intensity)

	low := recovery.WorkoutFor(39, domain.GoalMuscleGain)
	assert.Equal(t, domain.IntensityLow, low.Intensity)
	assert.Equal(t, domain.SessionShort, low.Duration)
	assert.Equal(t, "recovery and stretching", low.Focus)
}
