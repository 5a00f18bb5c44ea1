package plan

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/recoverycoach/internal/domain"
	"github.com/2beens/recoverycoach/internal/nutrition"

	"github.com/BurntSushi/toml"
)

//go:embed catalog.toml
var defaultCatalogData []byte

var ErrGoalTemplateMissing = errors.New("goal template missing")

type CatalogExercise struct {
	Name            string `toml:"name"`
	Sets            int    `toml:"sets"`
	Reps            int    `toml:"reps"`
	DurationSeconds int    `toml:"duration_seconds"`
	RestSeconds     int    `toml:"rest_seconds"`
	Compound        bool   `toml:"compound"`
}

func (ce CatalogExercise) toPlanned() domain.PlannedExercise {
	return domain.PlannedExercise{
		Name:            ce.Name,
		Sets:            ce.Sets,
		Reps:            ce.Reps,
		DurationSeconds: ce.DurationSeconds,
		RestSeconds:     ce.RestSeconds,
		Compound:        ce.Compound,
	}
}

type GoalTemplate struct {
	Name            string                   `toml:"name"`
	DurationMinutes int                      `toml:"duration_minutes"`
	Exercises       []CatalogExercise        `toml:"exercises"`
	Macros          nutrition.GoalAdjustment `toml:"macros"`
}

// Catalog is the static lookup from goal to a default workout and a macro
// row, plus the exercise pools the adaptor appends from.
type Catalog struct {
	Goals        map[domain.Goal]GoalTemplate `toml:"goals"`
	Compounds    []CatalogExercise            `toml:"compounds"`
	Conditioning []CatalogExercise            `toml:"conditioning"`
	Finishers    []CatalogExercise            `toml:"finishers"`
}

// DefaultCatalog decodes the embedded catalog.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(defaultCatalogData)
}

// LoadCatalog decodes a TOML catalog and checks every goal has a template.
func LoadCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	md, err := toml.Decode(string(data), &catalog)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown catalog keys: %s", strings.Join(keys, ", "))
	}

	for goal := range catalog.Goals {
		if !goal.IsValid() {
			return nil, fmt.Errorf("unknown goal in catalog: %s", goal)
		}
	}
	for _, goal := range domain.AllGoals {
		if _, ok := catalog.Goals[goal]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrGoalTemplateMissing, goal)
		}
	}

	return &catalog, nil
}

// Template returns the candidate workout for a goal.
func (c *Catalog) Template(goal domain.Goal) (domain.Workout, error) {
	tmpl, ok := c.Goals[goal]
	if !ok {
		return domain.Workout{}, fmt.Errorf("%w: %s", ErrGoalTemplateMissing, goal)
	}

	exercises := make([]domain.PlannedExercise, 0, len(tmpl.Exercises))
	for _, ex := range tmpl.Exercises {
		exercises = append(exercises, ex.toPlanned())
	}
	return domain.Workout{
		Name:            tmpl.Name,
		DurationMinutes: tmpl.DurationMinutes,
		Exercises:       exercises,
	}, nil
}

// MacroTable returns the per-goal nutrition adjustments.
func (c *Catalog) MacroTable() map[domain.Goal]nutrition.GoalAdjustment {
	table := make(map[domain.Goal]nutrition.GoalAdjustment, len(c.Goals))
	for goal, tmpl := range c.Goals {
		table[goal] = tmpl.Macros
	}
	return table
}

type poolKind int

const (
	poolCompounds poolKind = iota
	poolConditioning
	poolFinishers
)

func (c *Catalog) pool(kind poolKind) []CatalogExercise {
	if c == nil {
		return nil
	}
	switch kind {
	case poolCompounds:
		return c.Compounds
	case poolConditioning:
		return c.Conditioning
	case poolFinishers:
		return c.Finishers
	default:
		return nil
	}
}

// pick returns up to n exercises from the pool that are not already part of
// the workout, in catalog order.
func pick(pool []CatalogExercise, workout domain.Workout, n int) []domain.PlannedExercise {
	present := make(map[string]bool, len(workout.Exercises))
	for _, ex := range workout.Exercises {
		present[strings.ToLower(ex.Name)] = true
	}

	picked := make([]domain.PlannedExercise, 0, n)
	for _, ex := range pool {
		if len(picked) == n {
			break
		}
		if present[strings.ToLower(ex.Name)] {
			continue
		}
		picked = append(picked, ex.toPlanned())
	}
	return picked
}
