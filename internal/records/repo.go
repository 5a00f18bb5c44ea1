package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/recoverycoach/internal/domain"
	"github.com/2beens/recoverycoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Repo is the postgres backed record store.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Migrate creates the tables if they do not exist yet.
func (r *Repo) Migrate(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.migrate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err = r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (r *Repo) GetProfile(ctx context.Context, userID string) (_ *domain.UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	p := &domain.UserProfile{}
	err = r.db.
		QueryRow(ctx, `
			SELECT user_id, name, age, height_cm, weight_kg, body_fat_percent,
			       activity_level, goal_weight_kg, target_physique, goal, sex
			FROM user_profile
			WHERE user_id = $1
		`, userID).
		Scan(
			&p.UserID, &p.Name, &p.Age, &p.HeightCm, &p.WeightKg, &p.BodyFatPercent,
			&p.ActivityLevel, &p.GoalWeightKg, &p.TargetPhysique, &p.Goal, &p.Sex,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
		}
		return nil, err
	}
	return p, nil
}

func (r *Repo) SaveProfile(ctx context.Context, p domain.UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.profile.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", p.UserID))

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_profile (
			user_id, name, age, height_cm, weight_kg, body_fat_percent,
			activity_level, goal_weight_kg, target_physique, goal, sex
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			body_fat_percent = EXCLUDED.body_fat_percent,
			activity_level = EXCLUDED.activity_level,
			goal_weight_kg = EXCLUDED.goal_weight_kg,
			target_physique = EXCLUDED.target_physique,
			goal = EXCLUDED.goal,
			sex = EXCLUDED.sex,
			updated_at = now()
	`,
		p.UserID, p.Name, p.Age, p.HeightCm, p.WeightKg, p.BodyFatPercent,
		string(p.ActivityLevel), p.GoalWeightKg, p.TargetPhysique, string(p.Goal), string(p.Sex),
	)
	if err != nil {
		return fmt.Errorf("save profile %s: %w", p.UserID, err)
	}
	return nil
}

func (r *Repo) ListSleep(ctx context.Context, userID string, dr domain.DateRange) (_ []domain.SleepRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.sleep.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	setListAttributes(span, userID, dr)

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, date, hours_slept, quality, stress_level, caffeine_hours_before_bed
		FROM sleep_record
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`, userID, dr.From, dr.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.SleepRecord, 0)
	for rows.Next() {
		var s domain.SleepRecord
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Date, &s.HoursSlept, &s.Quality, &s.StressLevel, &s.CaffeineHoursBeforeBed,
		); err != nil {
			return nil, err
		}
		s.Date = s.Date.UTC()
		records = append(records, s)
	}
	return records, rows.Err()
}

func (r *Repo) ListWorkouts(ctx context.Context, userID string, dr domain.DateRange) (_ []domain.WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	setListAttributes(span, userID, dr)

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, date, duration_minutes, rpe, exercises
		FROM workout_record
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`, userID, dr.From, dr.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.WorkoutRecord, 0)
	for rows.Next() {
		var w domain.WorkoutRecord
		if err := rows.Scan(&w.ID, &w.UserID, &w.Date, &w.DurationMinutes, &w.RPE, &w.Exercises); err != nil {
			return nil, err
		}
		w.Date = w.Date.UTC()
		records = append(records, w)
	}
	return records, rows.Err()
}

func (r *Repo) ListNutrition(ctx context.Context, userID string, dr domain.DateRange) (_ []domain.NutritionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.nutrition.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	setListAttributes(span, userID, dr)

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, date, calories, protein_g, carbs_g, fat_g
		FROM nutrition_record
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`, userID, dr.From, dr.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.NutritionRecord, 0)
	for rows.Next() {
		var n domain.NutritionRecord
		if err := rows.Scan(&n.ID, &n.UserID, &n.Date, &n.Calories, &n.ProteinG, &n.CarbsG, &n.FatG); err != nil {
			return nil, err
		}
		n.Date = n.Date.UTC()
		records = append(records, n)
	}
	return records, rows.Err()
}

func (r *Repo) ListProgress(ctx context.Context, userID string, dr domain.DateRange) (_ []domain.ProgressRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.progress.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	setListAttributes(span, userID, dr)

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, date, weight_kg, body_fat_percent
		FROM progress_record
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`, userID, dr.From, dr.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.ProgressRecord, 0)
	for rows.Next() {
		var p domain.ProgressRecord
		if err := rows.Scan(&p.ID, &p.UserID, &p.Date, &p.WeightKg, &p.BodyFatPercent); err != nil {
			return nil, err
		}
		p.Date = p.Date.UTC()
		records = append(records, p)
	}
	return records, rows.Err()
}

func (r *Repo) AddSleep(ctx context.Context, s domain.SleepRecord) (_ *domain.SleepRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.sleep.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.ID = assignID(s.ID)
	_, err = r.db.Exec(ctx, `
		INSERT INTO sleep_record (id, user_id, date, hours_slept, quality, stress_level, caffeine_hours_before_bed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, s.ID, s.UserID, s.Date, s.HoursSlept, s.Quality, s.StressLevel, s.CaffeineHoursBeforeBed)
	if err != nil {
		return nil, insertErr(domain.RecordKindSleep, s.UserID, err)
	}
	return &s, nil
}

func (r *Repo) AddWorkout(ctx context.Context, w domain.WorkoutRecord) (_ *domain.WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.workout.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w.ID = assignID(w.ID)
	if w.Exercises == nil {
		w.Exercises = []domain.ExerciseLog{}
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO workout_record (id, user_id, date, duration_minutes, rpe, exercises)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, w.ID, w.UserID, w.Date, w.DurationMinutes, w.RPE, w.Exercises)
	if err != nil {
		return nil, insertErr(domain.RecordKindWorkout, w.UserID, err)
	}
	return &w, nil
}

func (r *Repo) AddNutrition(ctx context.Context, n domain.NutritionRecord) (_ *domain.NutritionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.nutrition.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	n.ID = assignID(n.ID)
	_, err = r.db.Exec(ctx, `
		INSERT INTO nutrition_record (id, user_id, date, calories, protein_g, carbs_g, fat_g)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, n.ID, n.UserID, n.Date, n.Calories, n.ProteinG, n.CarbsG, n.FatG)
	if err != nil {
		return nil, insertErr(domain.RecordKindNutrition, n.UserID, err)
	}
	return &n, nil
}

func (r *Repo) AddProgress(ctx context.Context, p domain.ProgressRecord) (_ *domain.ProgressRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.progress.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p.ID = assignID(p.ID)
	_, err = r.db.Exec(ctx, `
		INSERT INTO progress_record (id, user_id, date, weight_kg, body_fat_percent)
		VALUES ($1, $2, $3, $4, $5)
	`, p.ID, p.UserID, p.Date, p.WeightKg, p.BodyFatPercent)
	if err != nil {
		return nil, insertErr(domain.RecordKindProgress, p.UserID, err)
	}
	return &p, nil
}

func setListAttributes(span trace.Span, userID string, dr domain.DateRange) {
	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("from", dr.From.String()),
		attribute.String("to", dr.To.String()),
	)
}
