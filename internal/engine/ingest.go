package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/recoverycoach/internal/domain"
	"github.com/2beens/recoverycoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// SaveProfile stores the profile. Incomplete profiles are accepted, the
// computations that need BMR report them as invalid. A missing goal is
// translated from the legacy physique label.
func (e *Engine) SaveProfile(ctx context.Context, profile domain.UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.save-profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if profile.UserID == "" {
		return ErrUserIDEmpty
	}
	if !profile.Sex.IsValid() {
		return fmt.Errorf("%w: sex %q", domain.ErrInvalidRecord, profile.Sex)
	}
	if profile.ActivityLevel != "" && !profile.ActivityLevel.IsValid() {
		return fmt.Errorf("%w: activity level %q", domain.ErrInvalidRecord, profile.ActivityLevel)
	}
	if profile.Age < 0 || profile.HeightCm < 0 || profile.WeightKg < 0 || profile.BodyFatPercent < 0 {
		return fmt.Errorf("%w: negative profile measurement", domain.ErrInvalidRecord)
	}
	if !profile.Goal.IsValid() {
		profile.Goal = domain.ParseGoal(profile.TargetPhysique)
	}

	span.SetAttributes(attribute.String("goal", profile.Goal.String()))
	if err := e.records.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	log.Debugf("profile [%s] saved, goal %s", profile.UserID, profile.Goal)
	return nil
}

func (e *Engine) AddSleep(ctx context.Context, userID string, record domain.SleepRecord) (_ *domain.SleepRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.add-sleep")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return nil, ErrUserIDEmpty
	}
	record.UserID = userID
	record.Date = record.Date.UTC()
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return e.records.AddSleep(ctx, record)
}

func (e *Engine) AddWorkout(ctx context.Context, userID string, record domain.WorkoutRecord) (_ *domain.WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.add-workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return nil, ErrUserIDEmpty
	}
	record.UserID = userID
	record.Date = record.Date.UTC()
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return e.records.AddWorkout(ctx, record)
}

func (e *Engine) AddNutrition(ctx context.Context, userID string, record domain.NutritionRecord) (_ *domain.NutritionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.add-nutrition")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return nil, ErrUserIDEmpty
	}
	record.UserID = userID
	record.Date = record.Date.UTC()
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return e.records.AddNutrition(ctx, record)
}

func (e *Engine) AddProgress(ctx context.Context, userID string, record domain.ProgressRecord) (_ *domain.ProgressRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.add-progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return nil, ErrUserIDEmpty
	}
	record.UserID = userID
	record.Date = record.Date.UTC()
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return e.records.AddProgress(ctx, record)
}

// SaveBiometrics is the device sync entry point. A zero timestamp is
// stamped with the engine clock.
func (e *Engine) SaveBiometrics(ctx context.Context, userID string, sample domain.BiometricSample) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.save-biometrics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return ErrUserIDEmpty
	}
	if e.biometrics == nil {
		return ErrBiometricsUnavailable
	}
	if sample.HRV < 0 || sample.RestingHR < 0 || sample.Steps < 0 {
		return fmt.Errorf("%w: negative biometric value", domain.ErrInvalidRecord)
	}
	if sample.Timestamp.IsZero() {
		sample.Timestamp = e.clock()
	}
	sample.Timestamp = sample.Timestamp.UTC().Truncate(time.Second)
	return e.biometrics.Save(ctx, userID, sample)
}
