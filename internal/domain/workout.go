package domain

// PlannedExercise is one entry of a candidate workout.
type PlannedExercise struct {
	Name            string `json:"name"`
	Sets            int    `json:"sets"`
	Reps            int    `json:"reps"`
	DurationSeconds int    `json:"durationSeconds,omitempty"` // timed work (planks, intervals)
	RestSeconds     int    `json:"restSeconds,omitempty"`
	Compound        bool   `json:"compound,omitempty"`
}

// Workout is a proposed session.
type Workout struct {
	Name            string            `json:"name"`
	DurationMinutes int               `json:"durationMinutes"`
	Exercises       []PlannedExercise `json:"exercises"`
}

// Clone returns a deep copy.
func (w Workout) Clone() Workout {
	c := w
	if w.Exercises != nil {
		c.Exercises = make([]PlannedExercise, len(w.Exercises))
		copy(c.Exercises, w.Exercises)
	}
	return c
}

type ChangeType string

const (
	ChangeIntensity ChangeType = "intensity"
	ChangeDuration  ChangeType = "duration"
	ChangeExercises ChangeType = "exercises"
	ChangeVolume    ChangeType = "volume"
	ChangeRest      ChangeType = "rest"
)

// ChangeImpact is the expected effect of a change on the user's outcome.
type ChangeImpact string

const (
	ImpactPositive ChangeImpact = "positive"
	ImpactNegative ChangeImpact = "negative"
	ImpactNeutral  ChangeImpact = "neutral"
)

type WorkoutChange struct {
	Type        ChangeType   `json:"type"`
	Impact      ChangeImpact `json:"impact"`
	Description string       `json:"description"`
}

// AdaptedWorkout keeps the untouched original next to the adapted copy.
type AdaptedWorkout struct {
	Original   Workout         `json:"original"`
	Adapted    Workout         `json:"adapted"`
	Changes    []WorkoutChange `json:"changes"`
	Reason     string          `json:"reason"`
	Confidence float64         `json:"confidence"`
}
