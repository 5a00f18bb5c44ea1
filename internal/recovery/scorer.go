package recovery

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/2beens/recoverycoach/internal/domain"
)

const (
	neutralScore = 50

	highLoadThreshold = 50.0
	lowLoadThreshold  = 20.0

	highLoadMultiplier = 0.8
	lowLoadMultiplier  = 1.1

	sleepDurationWeight = 0.6
	sleepQualityWeight  = 0.4

	lowQualityThreshold    = 6.0
	highStressThreshold    = 7.0
	minCaffeineGapHours    = 6.0
	recommendedSleepHours  = 7.0
	excessiveSleepHours    = 10.0
	startTrackingAdvice    = "Start tracking your sleep, stress and workouts daily to unlock a personalized recovery score."
	noIssuesRecommendation = "Recovery markers look solid, keep your current sleep and training routine."
)

type Config struct {
	// SleepWindow is the number of most recent sleep records considered.
	SleepWindow int
	// LoadWindowDays is the look-back used for the training load.
	LoadWindowDays int
}

func DefaultConfig() Config {
	return Config{
		SleepWindow:    7,
		LoadWindowDays: 7,
	}
}

type Input struct {
	Sleep    []domain.SleepRecord
	Workouts []domain.WorkoutRecord
	Profile  domain.UserProfile
	Now      time.Time
}

// Scorer computes the composite recovery score. It never fails, missing
// history degrades to neutral values.
type Scorer struct {
	config Config
}

func NewScorer(config Config) *Scorer {
	if config.SleepWindow <= 0 {
		config.SleepWindow = DefaultConfig().SleepWindow
	}
	if config.LoadWindowDays <= 0 {
		config.LoadWindowDays = DefaultConfig().LoadWindowDays
	}
	return &Scorer{
		config: config,
	}
}

type sleepStats struct {
	avgHours    float64
	avgQuality  float64
	avgStress   float64
	avgCaffeine *float64
	count       int
}

func (s *Scorer) Score(in Input) domain.RecoveryScore {
	load := TrainingLoad(in.Workouts, in.Now, s.config.LoadWindowDays)
	goal := in.Profile.ResolvedGoal()

	stats := s.sleepStats(in.Sleep, in.Now)
	if stats.count == 0 {
		return domain.RecoveryScore{
			Overall:         neutralScore,
			Sleep:           neutralScore,
			Stress:          neutralScore,
			Readiness:       neutralScore,
			TrainingLoad:    load,
			Workout:         WorkoutFor(neutralScore, goal),
			Recommendations: []string{startTrackingAdvice},
		}
	}

	sleepScore := clamp(math.Round(
		DurationScore(stats.avgHours)*sleepDurationWeight +
			stats.avgQuality*10*sleepQualityWeight,
	))
	stressScore := clamp(math.Round(math.Max(0, 100-stats.avgStress*10)))

	readiness := float64(sleepScore+stressScore) / 2
	switch {
	case load > highLoadThreshold:
		readiness *= highLoadMultiplier
	case load < lowLoadThreshold:
		readiness *= lowLoadMultiplier
	}
	readinessScore := clamp(math.Round(readiness))

	overall := clamp(math.Round(float64(sleepScore+stressScore+readinessScore) / 3))

	return domain.RecoveryScore{
		Overall:         overall,
		Sleep:           sleepScore,
		Stress:          stressScore,
		Readiness:       readinessScore,
		TrainingLoad:    load,
		Workout:         WorkoutFor(overall, goal),
		Recommendations: recommendations(stats, load),
	}
}

func (s *Scorer) sleepStats(records []domain.SleepRecord, now time.Time) sleepStats {
	window := make([]domain.SleepRecord, 0, len(records))
	for _, r := range records {
		if !now.IsZero() && r.Date.After(now) {
			continue
		}
		window = append(window, r)
	}
	sort.SliceStable(window, func(i, j int) bool {
		return window[i].Date.After(window[j].Date)
	})
	if len(window) > s.config.SleepWindow {
		window = window[:s.config.SleepWindow]
	}

	stats := sleepStats{count: len(window)}
	if stats.count == 0 {
		return stats
	}

	var caffeineSum float64
	var caffeineCount int
	for _, r := range window {
		stats.avgHours += r.HoursSlept
		stats.avgQuality += float64(r.Quality)
		stats.avgStress += float64(r.StressLevel)
		if r.CaffeineHoursBeforeBed != nil {
			caffeineSum += *r.CaffeineHoursBeforeBed
			caffeineCount++
		}
	}
	n := float64(stats.count)
	stats.avgHours /= n
	stats.avgQuality /= n
	stats.avgStress /= n
	if caffeineCount > 0 {
		avg := caffeineSum / float64(caffeineCount)
		stats.avgCaffeine = &avg
	}

	return stats
}

// DurationScore maps average hours slept onto 0-100.
func DurationScore(hours float64) float64 {
	switch {
	case hours >= 7 && hours <= 9:
		return 100
	case hours > 9 && hours <= 10:
		return 90
	case hours >= 6 && hours < 7:
		return 80
	case hours > 10:
		return 70
	case hours >= 5 && hours < 6:
		return 60
	default:
		return 30
	}
}

// TrainingLoad is the mean of duration x RPE over workouts in (now-days, now],
// 0 when there are none.
func TrainingLoad(workouts []domain.WorkoutRecord, now time.Time, days int) float64 {
	from := now.AddDate(0, 0, -days)
	var sum float64
	var n int
	for _, w := range workouts {
		if !w.Date.After(from) || w.Date.After(now) {
			continue
		}
		sum += w.Load()
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// WorkoutFor maps the overall score onto today's session shape.
func WorkoutFor(overall int, goal domain.Goal) domain.WorkoutRecommendation {
	switch {
	case overall >= 80:
		return domain.WorkoutRecommendation{
			Intensity: domain.IntensityHigh,
			Duration:  domain.SessionLong,
			Focus:     goalFocus(goal),
		}
	case overall >= 60:
		return domain.WorkoutRecommendation{
			Intensity: domain.IntensityMedium,
			Duration:  domain.SessionMedium,
			Focus:     goalFocus(goal) + " at moderate effort",
		}
	case overall >= 40:
		return domain.WorkoutRecommendation{
			Intensity: domain.IntensityLow,
			Duration:  domain.SessionShort,
			Focus:     "light movement and technique work",
		}
	default:
		return domain.WorkoutRecommendation{
			Intensity: domain.IntensityLow,
			Duration:  domain.SessionShort,
			Focus:     "recovery and stretching",
		}
	}
}

func goalFocus(goal domain.Goal) string {
	switch goal {
	case domain.GoalMuscleGain:
		return "hypertrophy volume on compound and accessory lifts"
	case domain.GoalStrength:
		return "heavy compound lifts"
	case domain.GoalFatLoss:
		return "full-body circuits and metabolic conditioning"
	case domain.GoalEndurance:
		return "aerobic base work with intervals"
	default:
		return "full-body strength and mobility"
	}
}

func recommendations(stats sleepStats, load float64) []string {
	recs := make([]string, 0)

	if stats.avgHours < recommendedSleepHours {
		recs = append(recs, fmt.Sprintf(
			"Aim for 7-9 hours of sleep per night, you averaged %.1f hours recently.", stats.avgHours,
		))
	} else if stats.avgHours > excessiveSleepHours {
		recs = append(recs, fmt.Sprintf(
			"You averaged %.1f hours of sleep, consistently sleeping over 10 hours can point to under-recovery or illness.", stats.avgHours,
		))
	}

	if stats.avgQuality < lowQualityThreshold {
		recs = append(recs, fmt.Sprintf(
			"Sleep quality averaged %.1f/10: keep a fixed bedtime, a dark and cool room, and no screens in the last hour.", stats.avgQuality,
		))
	}

	if stats.avgStress > highStressThreshold {
		recs = append(recs, fmt.Sprintf(
			"Stress averaged %.1f/10: add 10 minutes of breathing work or a walk, and schedule lighter sessions on high-stress days.", stats.avgStress,
		))
	}

	if stats.avgCaffeine != nil && *stats.avgCaffeine < minCaffeineGapHours {
		recs = append(recs, fmt.Sprintf(
			"Your last caffeine was %.1f hours before bed on average, keep at least 6 hours between caffeine and sleep.", *stats.avgCaffeine,
		))
	}

	switch {
	case load > highLoadThreshold:
		recs = append(recs, fmt.Sprintf(
			"Training load is high (%.0f), consider a deload with reduced volume for the next few sessions.", load,
		))
	case load < lowLoadThreshold:
		recs = append(recs, fmt.Sprintf(
			"Training load is low (%.0f), there is room to increase training volume or intensity.", load,
		))
	}

	if len(recs) == 0 {
		recs = append(recs, noIssuesRecommendation)
	}

	return recs
}

func clamp(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
