package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidProfile = errors.New("invalid profile")

// InvalidProfileError names the profile fields that prevent BMR/TDEE
// computation. It matches ErrInvalidProfile with errors.Is.
type InvalidProfileError struct {
	Fields []string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid profile, missing or non-positive: %s", strings.Join(e.Fields, ", "))
}

func (e *InvalidProfileError) Is(target error) bool {
	return target == ErrInvalidProfile
}

const (
	kgPerPound = 0.45359237
	cmPerInch  = 2.54
)

func PoundsToKg(lb float64) float64 {
	return lb * kgPerPound
}

func InchesToCm(in float64) float64 {
	return in * cmPerInch
}

// UserProfile is created at onboarding and edited by the user; the engine
// only reads it.
type UserProfile struct {
	UserID   string  `json:"userId"`
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	HeightCm float64 `json:"heightCm"`
	WeightKg float64 `json:"weightKg"`
	// BodyFatPercent of 0 means not measured
	BodyFatPercent float64       `json:"bodyFatPercent"`
	ActivityLevel  ActivityLevel `json:"activityLevel"`
	GoalWeightKg   *float64      `json:"goalWeightKg,omitempty"`
	// TargetPhysique is the legacy free-form label, kept for display.
	// Goal takes precedence when set.
	TargetPhysique string `json:"targetPhysique"`
	Goal           Goal   `json:"goal"`
	Sex            Sex    `json:"sex"`
}

// ResolvedGoal returns the explicit goal, falling back to the translation of
// the legacy physique label.
func (p UserProfile) ResolvedGoal() Goal {
	if p.Goal.IsValid() {
		return p.Goal
	}
	return ParseGoal(p.TargetPhysique)
}

// Validate checks the numeric fields needed for BMR/TDEE.
func (p UserProfile) Validate() error {
	var missing []string
	if p.Age <= 0 {
		missing = append(missing, "age")
	}
	if p.HeightCm <= 0 {
		missing = append(missing, "heightCm")
	}
	if p.WeightKg <= 0 {
		missing = append(missing, "weightKg")
	}
	if !p.ActivityLevel.IsValid() {
		missing = append(missing, "activityLevel")
	}
	if len(missing) > 0 {
		return &InvalidProfileError{Fields: missing}
	}
	return nil
}
