package nutrition

import (
	"fmt"
	"math"

	"github.com/2beens/recoverycoach/internal/domain"
)

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9

	fiberPerThousandKcal = 14.0
	waterLitersPerKg     = 0.035

	minCarbPercent = 20.0
	maxCarbPercent = 65.0
)

// GoalAdjustment is one row of the macro multiplier table.
type GoalAdjustment struct {
	// ProteinBonus is added to the body-fat bracket, in g/kg.
	ProteinBonus float64 `toml:"protein_bonus"`
	// CarbShift is added to the activity carb percentage, in percentage points.
	CarbShift float64 `toml:"carb_shift"`
}

type Config struct {
	ProteinCapPerKg   float64
	VeryActiveBonus   float64
	FatFloorPerKg     float64
	GoalAdjustments   map[domain.Goal]GoalAdjustment
	ActivityCarbShare map[domain.ActivityLevel]float64
}

func DefaultGoalAdjustments() map[domain.Goal]GoalAdjustment {
	return map[domain.Goal]GoalAdjustment{
		domain.GoalMuscleGain:  {ProteinBonus: 0.3, CarbShift: 5},
		domain.GoalStrength:    {ProteinBonus: 0.3},
		domain.GoalFatLoss:     {ProteinBonus: 0.2, CarbShift: -5},
		domain.GoalEndurance:   {},
		domain.GoalMaintenance: {},
	}
}

func DefaultConfig() Config {
	return Config{
		ProteinCapPerKg: 2.6,
		VeryActiveBonus: 0.2,
		FatFloorPerKg:   0.8,
		GoalAdjustments: DefaultGoalAdjustments(),
		ActivityCarbShare: map[domain.ActivityLevel]float64{
			domain.ActivitySedentary:        35,
			domain.ActivityLightlyActive:    40,
			domain.ActivityModeratelyActive: 45,
			domain.ActivityVeryActive:       50,
		},
	}
}

var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:        1.2,
	domain.ActivityLightlyActive:    1.375,
	domain.ActivityModeratelyActive: 1.55,
	domain.ActivityVeryActive:       1.725,
}

var waterBonusLiters = map[domain.ActivityLevel]float64{
	domain.ActivityModeratelyActive: 0.5,
	domain.ActivityVeryActive:       1.0,
}

// ActivityMultiplier returns the TDEE multiplier, ok is false for unknown levels.
func ActivityMultiplier(level domain.ActivityLevel) (float64, bool) {
	m, ok := activityMultipliers[level]
	return m, ok
}

// Calculator is a stateless function of the user profile.
type Calculator struct {
	config Config
}

func NewCalculator(config Config) *Calculator {
	defaults := DefaultConfig()
	if config.GoalAdjustments == nil {
		config.GoalAdjustments = defaults.GoalAdjustments
	}
	if config.ActivityCarbShare == nil {
		config.ActivityCarbShare = defaults.ActivityCarbShare
	}
	return &Calculator{
		config: config,
	}
}

// Energy returns BMR and TDEE for a valid profile.
func (c *Calculator) Energy(profile domain.UserProfile) (bmr, tdee float64, err error) {
	if err := profile.Validate(); err != nil {
		return 0, 0, err
	}
	bmr = BMR(profile)
	multiplier, _ := ActivityMultiplier(profile.ActivityLevel)
	return bmr, bmr * multiplier, nil
}

// Calculate returns daily targets. The only failure is an invalid profile,
// reported as *domain.InvalidProfileError.
func (c *Calculator) Calculate(profile domain.UserProfile) (*domain.NutritionTargets, error) {
	bmr, tdee, err := c.Energy(profile)
	if err != nil {
		return nil, err
	}

	weight := profile.WeightKg
	goal := profile.ResolvedGoal()
	adjustment := c.config.GoalAdjustments[goal]
	multiplier, _ := ActivityMultiplier(profile.ActivityLevel)
	rationale := make([]string, 0, 8)

	if profile.Sex == domain.SexUnspecified {
		rationale = append(rationale,
			"No biological sex on the profile: BMR and lean mass use the midpoint of the male and female equations.")
	}
	rationale = append(rationale, fmt.Sprintf(
		"BMR %.0f kcal (Mifflin-St Jeor) x %g for %s activity gives a TDEE of %.0f kcal.",
		bmr, multiplier, activityLabel(profile.ActivityLevel), tdee,
	))

	// protein
	proteinPerKg, bracketReason := proteinBracket(profile.BodyFatPercent)
	rationale = append(rationale, bracketReason)
	if profile.ActivityLevel == domain.ActivityVeryActive && c.config.VeryActiveBonus > 0 {
		proteinPerKg += c.config.VeryActiveBonus
		rationale = append(rationale, fmt.Sprintf(
			"Very active: +%.1f g/kg protein for recovery.", c.config.VeryActiveBonus))
	}
	if adjustment.ProteinBonus != 0 {
		proteinPerKg += adjustment.ProteinBonus
		rationale = append(rationale, fmt.Sprintf(
			"Goal %s: +%.1f g/kg protein.", goal, adjustment.ProteinBonus))
	}
	if c.config.ProteinCapPerKg > 0 && proteinPerKg > c.config.ProteinCapPerKg {
		proteinPerKg = c.config.ProteinCapPerKg
		rationale = append(rationale, fmt.Sprintf(
			"Protein capped at %.1f g/kg.", c.config.ProteinCapPerKg))
	}
	proteinG := int(math.Round(weight * proteinPerKg))

	// carbs
	carbPercent := c.config.ActivityCarbShare[profile.ActivityLevel] + adjustment.CarbShift
	carbPercent = math.Max(minCarbPercent, math.Min(maxCarbPercent, carbPercent))
	carbsG := int(math.Round(tdee * carbPercent / 100 / kcalPerGramCarbs))
	carbReason := fmt.Sprintf("Carbs at %.0f%% of TDEE for %s activity", carbPercent, activityLabel(profile.ActivityLevel))
	if adjustment.CarbShift != 0 {
		carbReason += fmt.Sprintf(", shifted %+.0f%% for goal %s", adjustment.CarbShift, goal)
	}
	rationale = append(rationale, carbReason+".")

	// fat takes the remainder, with a floor
	remaining := tdee - float64(proteinG*kcalPerGramProtein) - float64(carbsG*kcalPerGramCarbs)
	fatFloor := weight * c.config.FatFloorPerKg
	fat := remaining / kcalPerGramFat
	if fat < fatFloor {
		fat = fatFloor
		rationale = append(rationale, fmt.Sprintf(
			"Fat raised to the %.1f g/kg minimum.", c.config.FatFloorPerKg))
	} else {
		rationale = append(rationale, "Fat covers the calories left after protein and carbs.")
	}
	fatG := int(math.Round(fat))

	calories := proteinG*kcalPerGramProtein + carbsG*kcalPerGramCarbs + fatG*kcalPerGramFat
	if delta := float64(calories) - tdee; math.Abs(delta) >= 50 {
		rationale = append(rationale, fmt.Sprintf(
			"Calories are %d kcal from the rounded macros, %+.0f kcal vs TDEE.", calories, delta))
	}

	fiberG := int(math.Round(tdee / 1000 * fiberPerThousandKcal))
	water := weight*waterLitersPerKg + waterBonusLiters[profile.ActivityLevel]
	rationale = append(rationale, fmt.Sprintf(
		"Fiber at 14 g per 1000 kcal; water at 35 mL/kg plus %.1f L for activity.",
		waterBonusLiters[profile.ActivityLevel]))

	return &domain.NutritionTargets{
		Calories:       calories,
		ProteinG:       proteinG,
		CarbsG:         carbsG,
		FatG:           fatG,
		FiberG:         fiberG,
		WaterLiters:    math.Round(water*10) / 10,
		Macros:         macroBreakdown(proteinG, carbsG, fatG, calories),
		BMR:            int(math.Round(bmr)),
		TDEE:           int(math.Round(tdee)),
		LeanBodyMassKg: math.Round(LeanBodyMass(profile)*10) / 10,
		Rationale:      rationale,
	}, nil
}

// LeanBodyMass uses the Boer formula.
func LeanBodyMass(profile domain.UserProfile) float64 {
	w, h := profile.WeightKg, profile.HeightCm
	male := 0.407*w + 0.267*h - 19.2
	female := 0.252*w + 0.473*h - 48.3
	return bySex(profile.Sex, male, female)
}

// BMR uses the Mifflin-St Jeor equation.
func BMR(profile domain.UserProfile) float64 {
	base := 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.Age)
	return bySex(profile.Sex, base+5, base-161)
}

func bySex(sex domain.Sex, male, female float64) float64 {
	switch sex {
	case domain.SexMale:
		return male
	case domain.SexFemale:
		return female
	default:
		return (male + female) / 2
	}
}

func proteinBracket(bodyFat float64) (float64, string) {
	switch {
	case bodyFat <= 0:
		return 1.8, "Body fat not measured: base protein 1.8 g/kg."
	case bodyFat > 25:
		return 1.6, fmt.Sprintf("Body fat %.1f%% (above 25%%): base protein 1.6 g/kg.", bodyFat)
	case bodyFat >= 15:
		return 1.8, fmt.Sprintf("Body fat %.1f%% (15-25%%): base protein 1.8 g/kg.", bodyFat)
	default:
		return 2.0, fmt.Sprintf("Body fat %.1f%% (below 15%%): base protein 2.0 g/kg.", bodyFat)
	}
}

func macroBreakdown(proteinG, carbsG, fatG, calories int) domain.MacroBreakdown {
	if calories <= 0 {
		return domain.MacroBreakdown{}
	}
	pct := func(kcal int) int {
		return int(math.Round(float64(kcal) / float64(calories) * 100))
	}
	return domain.MacroBreakdown{
		ProteinPercent: pct(proteinG * kcalPerGramProtein),
		CarbsPercent:   pct(carbsG * kcalPerGramCarbs),
		FatPercent:     pct(fatG * kcalPerGramFat),
	}
}

func activityLabel(level domain.ActivityLevel) string {
	switch level {
	case domain.ActivitySedentary:
		return "sedentary"
	case domain.ActivityLightlyActive:
		return "lightly active"
	case domain.ActivityModeratelyActive:
		return "moderately active"
	case domain.ActivityVeryActive:
		return "very active"
	default:
		return string(level)
	}
}
