package domain

import "strings"

// Goal is the closed set of training goals the engine understands.
// Legacy free-text physique labels are mapped onto it with ParseGoal.
type Goal string

const (
	GoalMuscleGain  Goal = "muscle_gain"
	GoalStrength    Goal = "strength"
	GoalFatLoss     Goal = "fat_loss"
	GoalEndurance   Goal = "endurance"
	GoalMaintenance Goal = "maintenance"
)

var AllGoals = []Goal{
	GoalMuscleGain,
	GoalStrength,
	GoalFatLoss,
	GoalEndurance,
	GoalMaintenance,
}

func (g Goal) String() string {
	return string(g)
}

func (g Goal) IsValid() bool {
	switch g {
	case GoalMuscleGain,
		GoalStrength,
		GoalFatLoss,
		GoalEndurance,
		GoalMaintenance:
		return true
	default:
		return false
	}
}

// goalKeywords is checked in order, first match wins.
var goalKeywords = []struct {
	goal     Goal
	keywords []string
}{
	{GoalMuscleGain, []string{"muscle", "muscular", "bulk", "mass", "hypertrophy", "bodybuild"}},
	{GoalStrength, []string{"power", "strength", "strong", "powerlift"}},
	{GoalFatLoss, []string{"lean", "fat", "cut", "shred", "tone", "slim", "weight loss"}},
	{GoalEndurance, []string{"endurance", "athletic", "cardio", "run", "marathon", "stamina"}},
	{GoalMaintenance, []string{"maintain", "maintenance", "health", "general"}},
}

// ParseGoal translates a free-text target physique label (e.g. "Muscular",
// "Lean & Toned") into a Goal. Already normalized values are returned as is.
// Unknown or empty labels map to GoalMaintenance.
func ParseGoal(label string) Goal {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if g := Goal(normalized); g.IsValid() {
		return g
	}

	for _, gk := range goalKeywords {
		for _, kw := range gk.keywords {
			if strings.Contains(normalized, kw) {
				return gk.goal
			}
		}
	}

	return GoalMaintenance
}

// ActivityLevel drives the TDEE multiplier and a few goal-independent bonuses.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
)

func (al ActivityLevel) String() string {
	return string(al)
}

func (al ActivityLevel) IsValid() bool {
	switch al {
	case ActivitySedentary,
		ActivityLightlyActive,
		ActivityModeratelyActive,
		ActivityVeryActive:
		return true
	default:
		return false
	}
}

// ParseActivityLevel accepts both the normalized values and the display labels
// used by the onboarding forms ("Moderately Active").
func ParseActivityLevel(s string) (ActivityLevel, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", " ")
	normalized = strings.ReplaceAll(normalized, "_", " ")
	switch normalized {
	case "sedentary":
		return ActivitySedentary, true
	case "lightly active", "light":
		return ActivityLightlyActive, true
	case "moderately active", "moderate":
		return ActivityModeratelyActive, true
	case "very active", "active":
		return ActivityVeryActive, true
	default:
		return "", false
	}
}

// Sex is the biological sex used by body-composition formulas only.
type Sex string

const (
	SexUnspecified Sex = ""
	SexMale        Sex = "male"
	SexFemale      Sex = "female"
)

func (s Sex) IsValid() bool {
	switch s {
	case SexUnspecified, SexMale, SexFemale:
		return true
	default:
		return false
	}
}
