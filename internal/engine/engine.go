package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/recoverycoach/internal/domain"
	"github.com/2beens/recoverycoach/internal/snapshot"
	"github.com/2beens/recoverycoach/internal/telemetry/metrics"
	"github.com/2beens/recoverycoach/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=engine_test

const DefaultHistoryDays = 90

var (
	ErrUserIDEmpty      = errors.New("user id empty")
	ErrSnapshotNotFound = errors.New("no snapshot computed yet")

	ErrBiometricsUnavailable = errors.New("biometrics store not configured")
)

type recordStore interface {
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
	ListSleep(ctx context.Context, userID string, dr domain.DateRange) ([]domain.SleepRecord, error)
	ListWorkouts(ctx context.Context, userID string, dr domain.DateRange) ([]domain.WorkoutRecord, error)
	ListNutrition(ctx context.Context, userID string, dr domain.DateRange) ([]domain.NutritionRecord, error)
	ListProgress(ctx context.Context, userID string, dr domain.DateRange) ([]domain.ProgressRecord, error)
	AddSleep(ctx context.Context, record domain.SleepRecord) (*domain.SleepRecord, error)
	AddWorkout(ctx context.Context, record domain.WorkoutRecord) (*domain.WorkoutRecord, error)
	AddNutrition(ctx context.Context, record domain.NutritionRecord) (*domain.NutritionRecord, error)
	AddProgress(ctx context.Context, record domain.ProgressRecord) (*domain.ProgressRecord, error)
}

type biometricSource interface {
	Latest(ctx context.Context, userID string) (*domain.BiometricSample, error)
	Save(ctx context.Context, userID string, sample domain.BiometricSample) error
}

type snapshotStore interface {
	Put(snap snapshot.Snapshot) error
	Get(userID string) (*snapshot.Snapshot, bool, error)
}

type Params struct {
	Core       *Core
	Records    recordStore
	Biometrics biometricSource
	Snapshots  snapshotStore
	Metrics    *metrics.Manager
	// HistoryDays is how far back records are fetched.
	HistoryDays int
	// Clock defaults to time.Now in UTC.
	Clock func() time.Time
}

// Engine fetches a user's records, runs the core and keeps the latest
// snapshot. Biometrics are optional: a failing sync store only means no
// biometric insight.
type Engine struct {
	core        *Core
	records     recordStore
	biometrics  biometricSource
	snapshots   snapshotStore
	metrics     *metrics.Manager
	historyDays int
	clock       func() time.Time
}

func New(params Params) *Engine {
	if params.HistoryDays <= 0 {
		params.HistoryDays = DefaultHistoryDays
	}
	if params.Clock == nil {
		params.Clock = func() time.Time {
			return time.Now().UTC()
		}
	}
	return &Engine{
		core:        params.Core,
		records:     params.Records,
		biometrics:  params.Biometrics,
		snapshots:   params.Snapshots,
		metrics:     params.Metrics,
		historyDays: params.HistoryDays,
		clock:       params.Clock,
	}
}

// fetch loads the profile and every record log of the history window
// concurrently.
func (e *Engine) fetch(ctx context.Context, userID string) (_ *Input, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.fetch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return nil, ErrUserIDEmpty
	}

	now := e.clock()
	window := domain.LastDays(now, e.historyDays)
	in := &Input{Now: now}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, err := e.records.GetProfile(gctx, userID)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		in.Profile = *profile
		return nil
	})
	g.Go(func() (err error) {
		in.Sleep, err = e.records.ListSleep(gctx, userID, window)
		return wrap("list sleep", err)
	})
	g.Go(func() (err error) {
		in.Workouts, err = e.records.ListWorkouts(gctx, userID, window)
		return wrap("list workouts", err)
	})
	g.Go(func() (err error) {
		in.Nutrition, err = e.records.ListNutrition(gctx, userID, window)
		return wrap("list nutrition", err)
	})
	g.Go(func() (err error) {
		in.Progress, err = e.records.ListProgress(gctx, userID, window)
		return wrap("list progress", err)
	})
	g.Go(func() error {
		in.Biometrics = e.latestBiometrics(gctx, userID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("sleep_records", len(in.Sleep)),
		attribute.Int("workout_records", len(in.Workouts)),
		attribute.Int("nutrition_records", len(in.Nutrition)),
		attribute.Int("progress_records", len(in.Progress)),
	)
	return in, nil
}

func (e *Engine) latestBiometrics(ctx context.Context, userID string) *domain.BiometricSample {
	if e.biometrics == nil {
		return nil
	}
	sample, err := e.biometrics.Latest(ctx, userID)
	if err != nil {
		log.Warnf("biometrics for [%s] unavailable, continuing without: %s", userID, err)
		if e.metrics != nil {
			e.metrics.CounterBiometricsDegraded.Inc()
		}
		return nil
	}
	return sample
}

func wrap(msg string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// observe records the outcome of one engine operation.
func (e *Engine) observe(operation string, begin time.Time, err error) {
	if e.metrics == nil {
		return
	}
	outcome := "ok"
	switch {
	case errors.Is(err, domain.ErrInvalidProfile):
		outcome = "invalid_profile"
		e.metrics.CounterInvalidProfiles.Inc()
	case err != nil:
		outcome = "error"
	}
	e.metrics.CounterEngineRuns.With(prometheus.Labels{
		"operation": operation,
		"outcome":   outcome,
	}).Inc()
	e.metrics.HistEngineRunDuration.Observe(time.Since(begin).Seconds())
}

func (e *Engine) countInsights(report domain.InsightReport) {
	if e.metrics == nil {
		return
	}
	for _, in := range report.Insights {
		e.metrics.CounterInsights.With(prometheus.Labels{
			"category": string(in.Category),
			"priority": string(in.Priority),
		}).Inc()
	}
}

// Run computes everything for the user and stores it as the latest
// snapshot. candidate nil adapts the goal template.
func (e *Engine) Run(ctx context.Context, userID string, candidate *domain.Workout) (_ *snapshot.Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer func(begin time.Time) {
		e.observe("run", begin, err)
	}(time.Now())
	span.SetAttributes(attribute.String("user_id", userID))

	in, err := e.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}
	in.Workout = candidate

	out, err := e.core.Compute(*in)
	if err != nil {
		return nil, fmt.Errorf("compute for %s: %w", userID, err)
	}
	e.countInsights(out.Insights)

	snap := snapshot.Snapshot{
		UserID:     userID,
		ComputedAt: in.Now,
		Recovery:   out.Recovery,
		Insights:   out.Insights,
		Nutrition:  out.Nutrition,
		Workout:    out.Workout,
		Biometrics: in.Biometrics,
	}
	if e.snapshots != nil {
		if err := e.snapshots.Put(snap); err != nil {
			log.Errorf("store snapshot for [%s]: %s", userID, err)
		}
	}

	log.Debugf("engine run [%s]: recovery %d, %d insights, score %d, %d kcal",
		userID, out.Recovery.Overall, len(out.Insights.Insights), out.Insights.OptimizationScore, out.Nutrition.Calories)
	return &snap, nil
}

func (e *Engine) Recovery(ctx context.Context, userID string) (_ *domain.RecoveryScore, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.recovery")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer func(begin time.Time) {
		e.observe("recovery", begin, err)
	}(time.Now())

	in, err := e.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}
	score, _ := e.core.Recovery(*in)
	return &score, nil
}

func (e *Engine) Insights(ctx context.Context, userID string) (_ *domain.InsightReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.insights")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer func(begin time.Time) {
		e.observe("insights", begin, err)
	}(time.Now())

	in, err := e.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}
	score, sleepTracked := e.core.Recovery(*in)
	report := e.core.Insights(*in, score, sleepTracked, e.core.Trends(*in, score))
	e.countInsights(report)
	span.SetAttributes(attribute.Int("insights", len(report.Insights)))
	return &report, nil
}

// NutritionTargets only needs the profile.
func (e *Engine) NutritionTargets(ctx context.Context, userID string) (_ *domain.NutritionTargets, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.nutrition")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer func(begin time.Time) {
		e.observe("nutrition", begin, err)
	}(time.Now())

	if userID == "" {
		return nil, ErrUserIDEmpty
	}
	profile, err := e.records.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return e.core.Nutrition(*profile)
}

func (e *Engine) AdaptWorkout(ctx context.Context, userID string, candidate *domain.Workout) (_ *domain.AdaptedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.adapt-workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer func(begin time.Time) {
		e.observe("adapt_workout", begin, err)
	}(time.Now())

	in, err := e.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}
	in.Workout = candidate

	score, _ := e.core.Recovery(*in)
	report := e.core.Trends(*in, score)
	adapted, err := e.core.AdaptWorkout(*in, score, report.Flags)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("changes", len(adapted.Changes)))
	return &adapted, nil
}

// Latest returns the snapshot stored by the last Run.
func (e *Engine) Latest(ctx context.Context, userID string) (_ *snapshot.Snapshot, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return nil, ErrUserIDEmpty
	}
	if e.snapshots == nil {
		return nil, ErrSnapshotNotFound
	}
	snap, ok, err := e.snapshots.Get(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSnapshotNotFound
	}
	return snap, nil
}
