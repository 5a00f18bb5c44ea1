package domain

type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

type SessionLength string

const (
	SessionShort  SessionLength = "short"
	SessionMedium SessionLength = "medium"
	SessionLong   SessionLength = "long"
)

// WorkoutRecommendation is the session shape suggested for today.
type WorkoutRecommendation struct {
	Intensity Intensity     `json:"intensity"`
	Duration  SessionLength `json:"duration"`
	Focus     string        `json:"focus"`
}

// RecoveryScore holds the composite readiness for a day.
// Overall is always round(mean(Sleep, Stress, Readiness)), every score in [0,100].
type RecoveryScore struct {
	Overall         int                   `json:"overall"`
	Sleep           int                   `json:"sleep"`
	Stress          int                   `json:"stress"`
	Readiness       int                   `json:"readiness"`
	TrainingLoad    float64               `json:"trainingLoad"`
	Workout         WorkoutRecommendation `json:"workout"`
	Recommendations []string              `json:"recommendations"`
}
