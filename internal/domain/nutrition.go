package domain

type MacroBreakdown struct {
	ProteinPercent int `json:"proteinPercent"`
	CarbsPercent   int `json:"carbsPercent"`
	FatPercent     int `json:"fatPercent"`
}

// NutritionTargets are the daily targets for a profile.
// Calories always equal ProteinG*4 + CarbsG*4 + FatG*9.
type NutritionTargets struct {
	Calories       int            `json:"calories"`
	ProteinG       int            `json:"proteinG"`
	CarbsG         int            `json:"carbsG"`
	FatG           int            `json:"fatG"`
	FiberG         int            `json:"fiberG"`
	WaterLiters    float64        `json:"waterLiters"`
	Macros         MacroBreakdown `json:"macros"`
	BMR            int            `json:"bmr"`
	TDEE           int            `json:"tdee"`
	LeanBodyMassKg float64        `json:"leanBodyMassKg"`
	Rationale      []string       `json:"rationale"`
}
