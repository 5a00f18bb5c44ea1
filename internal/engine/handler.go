package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/recoverycoach/internal/domain"
	"github.com/2beens/recoverycoach/internal/records"
	"github.com/2beens/recoverycoach/internal/snapshot"
	"github.com/2beens/recoverycoach/internal/telemetry/tracing"
	"github.com/2beens/recoverycoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=engine_test

const maxBodyBytes = 1 << 20

type service interface {
	Run(ctx context.Context, userID string, candidate *domain.Workout) (*snapshot.Snapshot, error)
	Recovery(ctx context.Context, userID string) (*domain.RecoveryScore, error)
	Insights(ctx context.Context, userID string) (*domain.InsightReport, error)
	NutritionTargets(ctx context.Context, userID string) (*domain.NutritionTargets, error)
	AdaptWorkout(ctx context.Context, userID string, candidate *domain.Workout) (*domain.AdaptedWorkout, error)
	Latest(ctx context.Context, userID string) (*snapshot.Snapshot, error)
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
	AddSleep(ctx context.Context, userID string, record domain.SleepRecord) (*domain.SleepRecord, error)
	AddWorkout(ctx context.Context, userID string, record domain.WorkoutRecord) (*domain.WorkoutRecord, error)
	AddNutrition(ctx context.Context, userID string, record domain.NutritionRecord) (*domain.NutritionRecord, error)
	AddProgress(ctx context.Context, userID string, record domain.ProgressRecord) (*domain.ProgressRecord, error)
	SaveBiometrics(ctx context.Context, userID string, sample domain.BiometricSample) error
}

// ProfileRequest is the onboarding payload. Labels are accepted in their
// display form ("Moderately Active", "Lean & Toned") and imperial units are
// converted.
type ProfileRequest struct {
	Name           string   `json:"name"`
	Age            int      `json:"age"`
	Height         float64  `json:"height"`
	Weight         float64  `json:"weight"`
	GoalWeight     *float64 `json:"goalWeight,omitempty"`
	BodyFatPercent float64  `json:"bodyFatPercent"`
	ActivityLevel  string   `json:"activityLevel"`
	TargetPhysique string   `json:"targetPhysique"`
	Goal           string   `json:"goal"`
	Sex            string   `json:"sex"`
	// Units is "metric" (kg, cm) or "imperial" (lb, in), metric when empty.
	Units string `json:"units"`
}

func (pr ProfileRequest) Profile(userID string) (domain.UserProfile, error) {
	profile := domain.UserProfile{
		UserID:         userID,
		Name:           pr.Name,
		Age:            pr.Age,
		HeightCm:       pr.Height,
		WeightKg:       pr.Weight,
		BodyFatPercent: pr.BodyFatPercent,
		TargetPhysique: pr.TargetPhysique,
		Sex:            domain.Sex(strings.ToLower(strings.TrimSpace(pr.Sex))),
	}
	if pr.GoalWeight != nil {
		gw := *pr.GoalWeight
		profile.GoalWeightKg = &gw
	}

	switch strings.ToLower(pr.Units) {
	case "", "metric":
	case "imperial":
		profile.HeightCm = domain.InchesToCm(pr.Height)
		profile.WeightKg = domain.PoundsToKg(pr.Weight)
		if profile.GoalWeightKg != nil {
			gw := domain.PoundsToKg(*profile.GoalWeightKg)
			profile.GoalWeightKg = &gw
		}
	default:
		return domain.UserProfile{}, fmt.Errorf("%w: unknown units %q", domain.ErrInvalidRecord, pr.Units)
	}

	if pr.ActivityLevel != "" {
		al, ok := domain.ParseActivityLevel(pr.ActivityLevel)
		if !ok {
			return domain.UserProfile{}, fmt.Errorf("%w: unknown activity level %q", domain.ErrInvalidRecord, pr.ActivityLevel)
		}
		profile.ActivityLevel = al
	}

	if pr.Goal != "" {
		profile.Goal = domain.ParseGoal(pr.Goal)
	} else {
		profile.Goal = domain.ParseGoal(pr.TargetPhysique)
	}

	return profile, nil
}

type Handler struct {
	engine service
}

func NewHandler(engine service) *Handler {
	return &Handler{
		engine: engine,
	}
}

// SetupRoutes registers the engine routes on the given router.
func (handler *Handler) SetupRoutes(r *mux.Router) {
	users := r.PathPrefix("/users/{id}").Subrouter()
	users.HandleFunc("/recovery", handler.HandleRecovery).Methods("GET", "OPTIONS").Name("recovery")
	users.HandleFunc("/insights", handler.HandleInsights).Methods("GET", "OPTIONS").Name("insights")
	users.HandleFunc("/nutrition", handler.HandleNutrition).Methods("GET", "OPTIONS").Name("nutrition")
	users.HandleFunc("/snapshot", handler.HandleSnapshot).Methods("GET", "OPTIONS").Name("snapshot")
	users.HandleFunc("/workouts/adapt", handler.HandleAdaptWorkout).Methods("POST", "OPTIONS").Name("adapt-workout")
	users.HandleFunc("/optimize", handler.HandleOptimize).Methods("POST", "OPTIONS").Name("optimize")
	users.HandleFunc("/records/{kind}", handler.HandleAddRecord).Methods("POST", "OPTIONS").Name("add-record")
	users.HandleFunc("/profile", handler.HandleSaveProfile).Methods("PUT", "OPTIONS").Name("save-profile")
	users.HandleFunc("/biometrics", handler.HandleSaveBiometrics).Methods("PUT", "OPTIONS").Name("save-biometrics")
}

func (handler *Handler) HandleRecovery(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.recovery")
	defer span.End()

	userID := mux.Vars(r)["id"]
	score, err := handler.engine.Recovery(ctx, userID)
	if err != nil {
		writeError(w, "recovery", userID, err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, score)
}

func (handler *Handler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.insights")
	defer span.End()

	userID := mux.Vars(r)["id"]
	report, err := handler.engine.Insights(ctx, userID)
	if err != nil {
		writeError(w, "insights", userID, err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, report)
}

func (handler *Handler) HandleNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.nutrition")
	defer span.End()

	userID := mux.Vars(r)["id"]
	targets, err := handler.engine.NutritionTargets(ctx, userID)
	if err != nil {
		writeError(w, "nutrition", userID, err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, targets)
}

func (handler *Handler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.snapshot")
	defer span.End()

	userID := mux.Vars(r)["id"]
	snap, err := handler.engine.Latest(ctx, userID)
	if err != nil {
		writeError(w, "snapshot", userID, err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, snap)
}

func (handler *Handler) HandleAdaptWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.adapt-workout")
	defer span.End()

	userID := mux.Vars(r)["id"]
	candidate, err := decodeCandidate(r)
	if err != nil {
		log.Errorf("adapt workout [%s], decode candidate: %s", userID, err)
		http.Error(w, "invalid workout payload", http.StatusBadRequest)
		return
	}

	adapted, err := handler.engine.AdaptWorkout(ctx, userID, candidate)
	if err != nil {
		writeError(w, "adapt workout", userID, err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, adapted)
}

func (handler *Handler) HandleOptimize(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.optimize")
	defer span.End()

	userID := mux.Vars(r)["id"]
	candidate, err := decodeCandidate(r)
	if err != nil {
		log.Errorf("optimize [%s], decode candidate: %s", userID, err)
		http.Error(w, "invalid workout payload", http.StatusBadRequest)
		return
	}

	snap, err := handler.engine.Run(ctx, userID, candidate)
	if err != nil {
		writeError(w, "optimize", userID, err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, snap)
}

func (handler *Handler) HandleAddRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.add-record")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["id"]
	kind := domain.RecordKind(vars["kind"])
	if !kind.IsValid() {
		http.Error(w, "error, unknown record kind", http.StatusBadRequest)
		return
	}
	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	added, err := handler.addRecord(ctx, userID, kind, io.LimitReader(r.Body, maxBodyBytes))
	if errors.Is(err, errPayload) {
		log.Errorf("add %s record [%s]: %s", kind, userID, err)
		http.Error(w, "error, invalid record payload", http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, "add "+string(kind)+" record", userID, err)
		return
	}

	log.Debugf("%s record added for [%s]", kind, userID)
	pkg.WriteJSONResponse(w, http.StatusCreated, added)
}

var errPayload = errors.New("unmarshal json payload")

func (handler *Handler) addRecord(ctx context.Context, userID string, kind domain.RecordKind, body io.Reader) (any, error) {
	decoder := json.NewDecoder(body)
	switch kind {
	case domain.RecordKindSleep:
		var record domain.SleepRecord
		if err := decoder.Decode(&record); err != nil {
			return nil, fmt.Errorf("%w: %s", errPayload, err)
		}
		return handler.engine.AddSleep(ctx, userID, record)
	case domain.RecordKindWorkout:
		var record domain.WorkoutRecord
		if err := decoder.Decode(&record); err != nil {
			return nil, fmt.Errorf("%w: %s", errPayload, err)
		}
		return handler.engine.AddWorkout(ctx, userID, record)
	case domain.RecordKindNutrition:
		var record domain.NutritionRecord
		if err := decoder.Decode(&record); err != nil {
			return nil, fmt.Errorf("%w: %s", errPayload, err)
		}
		return handler.engine.AddNutrition(ctx, userID, record)
	case domain.RecordKindProgress:
		var record domain.ProgressRecord
		if err := decoder.Decode(&record); err != nil {
			return nil, fmt.Errorf("%w: %s", errPayload, err)
		}
		return handler.engine.AddProgress(ctx, userID, record)
	default:
		return nil, fmt.Errorf("%w: record kind %s", domain.ErrInvalidRecord, kind)
	}
}

func (handler *Handler) HandleSaveProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.save-profile")
	defer span.End()

	userID := mux.Vars(r)["id"]
	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req ProfileRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		log.Errorf("save profile [%s], unmarshal json: %s", userID, err)
		http.Error(w, "error, invalid profile payload", http.StatusBadRequest)
		return
	}

	profile, err := req.Profile(userID)
	if err != nil {
		writeError(w, "save profile", userID, err)
		return
	}
	if err := handler.engine.SaveProfile(ctx, profile); err != nil {
		writeError(w, "save profile", userID, err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, profile)
}

func (handler *Handler) HandleSaveBiometrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.save-biometrics")
	defer span.End()

	userID := mux.Vars(r)["id"]
	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var sample domain.BiometricSample
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&sample); err != nil {
		log.Errorf("save biometrics [%s], unmarshal json: %s", userID, err)
		http.Error(w, "error, invalid biometrics payload", http.StatusBadRequest)
		return
	}

	if err := handler.engine.SaveBiometrics(ctx, userID, sample); err != nil {
		writeError(w, "save biometrics", userID, err)
		return
	}
	pkg.WriteResponse(w, pkg.ContentType.Text, "saved", http.StatusAccepted)
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// decodeCandidate reads an optional candidate workout. An empty body means
// the goal template is adapted.
func decodeCandidate(r *http.Request) (*domain.Workout, error) {
	if r.Body == nil || r.ContentLength == 0 {
		return nil, nil
	}
	var candidate domain.Workout
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&candidate)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(candidate.Exercises) == 0 {
		return nil, errors.New("candidate workout without exercises")
	}
	return &candidate, nil
}

// StatusCode maps engine errors to HTTP status codes.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrInvalidProfile):
		return http.StatusUnprocessableEntity
	case errors.Is(err, records.ErrProfileNotFound),
		errors.Is(err, ErrSnapshotNotFound):
		return http.StatusNotFound
	case errors.Is(err, records.ErrRecordExists):
		return http.StatusConflict
	case errors.Is(err, ErrUserIDEmpty),
		errors.Is(err, domain.ErrInvalidRecord):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, operation, userID string, err error) {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		log.Errorf("%s [%s]: %s", operation, userID, err)
		http.Error(w, fmt.Sprintf("error, %s failed", operation), status)
		return
	}

	log.Debugf("%s [%s] rejected with %d: %s", operation, userID, status, err)
	pkg.WriteJSONResponse(w, status, errorResponse{
		Error:  err.Error(),
		Status: status,
		Time:   time.Now().UTC(),
	})
}

type errorResponse struct {
	Error  string    `json:"error"`
	Status int       `json:"status"`
	Time   time.Time `json:"time"`
}
