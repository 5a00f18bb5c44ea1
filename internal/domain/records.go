package domain

import (
	"errors"
	"fmt"
	"time"
)

// DateRange is inclusive on both ends.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (dr DateRange) Contains(t time.Time) bool {
	return !t.Before(dr.From) && !t.After(dr.To)
}

// LastDays returns the range [now - days, now].
func LastDays(now time.Time, days int) DateRange {
	return DateRange{
		From: now.AddDate(0, 0, -days),
		To:   now,
	}
}

// RecordKind names the append-only record logs.
type RecordKind string

const (
	RecordKindSleep     RecordKind = "sleep"
	RecordKindWorkout   RecordKind = "workout"
	RecordKindNutrition RecordKind = "nutrition"
	RecordKindProgress  RecordKind = "progress"
)

func (rk RecordKind) IsValid() bool {
	switch rk {
	case RecordKindSleep,
		RecordKindWorkout,
		RecordKindNutrition,
		RecordKindProgress:
		return true
	default:
		return false
	}
}

type SleepRecord struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Date        time.Time `json:"date"`
	HoursSlept  float64   `json:"hoursSlept"`
	Quality     int       `json:"quality"`     // 1-10
	StressLevel int       `json:"stressLevel"` // 1-10
	// CaffeineHoursBeforeBed is the gap between the last caffeine intake and
	// bedtime, nil when not recorded.
	CaffeineHoursBeforeBed *float64 `json:"caffeineHoursBeforeBed,omitempty"`
}

type ExerciseSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
	RPE    float64 `json:"rpe"`
}

type ExerciseLog struct {
	Name string        `json:"name"`
	Sets []ExerciseSet `json:"sets"`
}

type WorkoutRecord struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	Date            time.Time     `json:"date"`
	DurationMinutes int           `json:"durationMinutes"`
	RPE             float64       `json:"rpe"` // 1-10, whole session
	Exercises       []ExerciseLog `json:"exercises"`
}

// Load is the session training load, duration (minutes) x RPE.
func (w WorkoutRecord) Load() float64 {
	return float64(w.DurationMinutes) * w.RPE
}

func (w WorkoutRecord) TotalSets() int {
	total := 0
	for _, ex := range w.Exercises {
		total += len(ex.Sets)
	}
	return total
}

// AvgWorkingWeight is the mean weight over all sets with a load, 0 if none.
func (w WorkoutRecord) AvgWorkingWeight() float64 {
	var sum float64
	var n int
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			if s.Weight <= 0 {
				continue
			}
			sum += s.Weight
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

type NutritionRecord struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	Date     time.Time `json:"date"`
	Calories float64   `json:"calories"`
	ProteinG float64   `json:"proteinG"`
	CarbsG   float64   `json:"carbsG"`
	FatG     float64   `json:"fatG"`
}

type ProgressRecord struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Date           time.Time `json:"date"`
	WeightKg       float64   `json:"weightKg"`
	BodyFatPercent *float64  `json:"bodyFatPercent,omitempty"`
}

// BiometricSample is supplied by the device sync and is read-only here.
type BiometricSample struct {
	Timestamp time.Time `json:"timestamp"`
	HRV       float64   `json:"hrv"`       // ms
	RestingHR float64   `json:"restingHr"` // bpm
	Steps     int       `json:"steps"`
}

var ErrInvalidRecord = errors.New("invalid record")

func invalidRecord(kind RecordKind, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidRecord, kind, fmt.Sprintf(format, args...))
}

func (s SleepRecord) Validate() error {
	switch {
	case s.Date.IsZero():
		return invalidRecord(RecordKindSleep, "date missing")
	case s.HoursSlept < 0 || s.HoursSlept > 24:
		return invalidRecord(RecordKindSleep, "hours slept %.1f out of [0, 24]", s.HoursSlept)
	case s.Quality < 1 || s.Quality > 10:
		return invalidRecord(RecordKindSleep, "quality %d out of [1, 10]", s.Quality)
	case s.StressLevel < 1 || s.StressLevel > 10:
		return invalidRecord(RecordKindSleep, "stress level %d out of [1, 10]", s.StressLevel)
	case s.CaffeineHoursBeforeBed != nil && *s.CaffeineHoursBeforeBed < 0:
		return invalidRecord(RecordKindSleep, "negative caffeine gap")
	}
	return nil
}

func (w WorkoutRecord) Validate() error {
	switch {
	case w.Date.IsZero():
		return invalidRecord(RecordKindWorkout, "date missing")
	case w.DurationMinutes <= 0:
		return invalidRecord(RecordKindWorkout, "duration must be positive")
	case w.RPE < 1 || w.RPE > 10:
		return invalidRecord(RecordKindWorkout, "rpe %.1f out of [1, 10]", w.RPE)
	}
	for _, ex := range w.Exercises {
		for _, set := range ex.Sets {
			if set.Reps < 0 || set.Weight < 0 {
				return invalidRecord(RecordKindWorkout, "negative reps or weight in %s", ex.Name)
			}
		}
	}
	return nil
}

func (n NutritionRecord) Validate() error {
	switch {
	case n.Date.IsZero():
		return invalidRecord(RecordKindNutrition, "date missing")
	case n.Calories < 0 || n.ProteinG < 0 || n.CarbsG < 0 || n.FatG < 0:
		return invalidRecord(RecordKindNutrition, "negative intake")
	}
	return nil
}

func (p ProgressRecord) Validate() error {
	switch {
	case p.Date.IsZero():
		return invalidRecord(RecordKindProgress, "date missing")
	case p.WeightKg <= 0:
		return invalidRecord(RecordKindProgress, "weight must be positive")
	case p.BodyFatPercent != nil && (*p.BodyFatPercent < 0 || *p.BodyFatPercent >= 100):
		return invalidRecord(RecordKindProgress, "body fat %.1f out of [0, 100)", *p.BodyFatPercent)
	}
	return nil
}
