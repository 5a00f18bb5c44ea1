package records

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/2beens/recoverycoach/internal/domain"
)

type userLog struct {
	profile   domain.UserProfile
	sleep     []domain.SleepRecord
	workouts  []domain.WorkoutRecord
	nutrition []domain.NutritionRecord
	progress  []domain.ProgressRecord
	ids       map[string]bool
}

// MemRepo keeps everything in memory. It has the same method set and error
// semantics as Repo and is used by tests and the local fixture runner.
type MemRepo struct {
	mutex sync.RWMutex
	users map[string]*userLog
}

func NewMemRepo() *MemRepo {
	return &MemRepo{
		users: make(map[string]*userLog),
	}
}

func (r *MemRepo) GetProfile(_ context.Context, userID string) (*domain.UserProfile, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
	}
	p := u.profile
	return &p, nil
}

func (r *MemRepo) SaveProfile(_ context.Context, p domain.UserProfile) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if u, ok := r.users[p.UserID]; ok {
		u.profile = p
		return nil
	}
	r.users[p.UserID] = &userLog{
		profile: p,
		ids:     make(map[string]bool),
	}
	return nil
}

func (r *MemRepo) ListSleep(_ context.Context, userID string, dr domain.DateRange) ([]domain.SleepRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	res := make([]domain.SleepRecord, 0)
	if u, ok := r.users[userID]; ok {
		for _, s := range u.sleep {
			if dr.Contains(s.Date) {
				res = append(res, s)
			}
		}
	}
	sortByDate(res, func(s domain.SleepRecord) time.Time { return s.Date })
	return res, nil
}

func (r *MemRepo) ListWorkouts(_ context.Context, userID string, dr domain.DateRange) ([]domain.WorkoutRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	res := make([]domain.WorkoutRecord, 0)
	if u, ok := r.users[userID]; ok {
		for _, w := range u.workouts {
			if dr.Contains(w.Date) {
				res = append(res, w)
			}
		}
	}
	sortByDate(res, func(w domain.WorkoutRecord) time.Time { return w.Date })
	return res, nil
}

func (r *MemRepo) ListNutrition(_ context.Context, userID string, dr domain.DateRange) ([]domain.NutritionRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	res := make([]domain.NutritionRecord, 0)
	if u, ok := r.users[userID]; ok {
		for _, n := range u.nutrition {
			if dr.Contains(n.Date) {
				res = append(res, n)
			}
		}
	}
	sortByDate(res, func(n domain.NutritionRecord) time.Time { return n.Date })
	return res, nil
}

func (r *MemRepo) ListProgress(_ context.Context, userID string, dr domain.DateRange) ([]domain.ProgressRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	res := make([]domain.ProgressRecord, 0)
	if u, ok := r.users[userID]; ok {
		for _, p := range u.progress {
			if dr.Contains(p.Date) {
				res = append(res, p)
			}
		}
	}
	sortByDate(res, func(p domain.ProgressRecord) time.Time { return p.Date })
	return res, nil
}

func (r *MemRepo) AddSleep(_ context.Context, s domain.SleepRecord) (*domain.SleepRecord, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	u, err := r.claim(domain.RecordKindSleep, s.UserID, &s.ID)
	if err != nil {
		return nil, err
	}
	u.sleep = append(u.sleep, s)
	return &s, nil
}

func (r *MemRepo) AddWorkout(_ context.Context, w domain.WorkoutRecord) (*domain.WorkoutRecord, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	u, err := r.claim(domain.RecordKindWorkout, w.UserID, &w.ID)
	if err != nil {
		return nil, err
	}
	if w.Exercises == nil {
		w.Exercises = []domain.ExerciseLog{}
	}
	u.workouts = append(u.workouts, w)
	return &w, nil
}

func (r *MemRepo) AddNutrition(_ context.Context, n domain.NutritionRecord) (*domain.NutritionRecord, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	u, err := r.claim(domain.RecordKindNutrition, n.UserID, &n.ID)
	if err != nil {
		return nil, err
	}
	u.nutrition = append(u.nutrition, n)
	return &n, nil
}

func (r *MemRepo) AddProgress(_ context.Context, p domain.ProgressRecord) (*domain.ProgressRecord, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	u, err := r.claim(domain.RecordKindProgress, p.UserID, &p.ID)
	if err != nil {
		return nil, err
	}
	u.progress = append(u.progress, p)
	return &p, nil
}

// claim resolves the user log and reserves the record id. Caller holds the
// write lock.
func (r *MemRepo) claim(kind domain.RecordKind, userID string, id *string) (*userLog, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("add %s record for %s: %w", kind, userID, ErrProfileNotFound)
	}
	*id = assignID(*id)
	if u.ids[*id] {
		return nil, fmt.Errorf("add %s record for %s: %w", kind, userID, ErrRecordExists)
	}
	u.ids[*id] = true
	return u, nil
}

func sortByDate[T any](records []T, date func(T) time.Time) {
	sort.SliceStable(records, func(i, j int) bool {
		return date(records[i]).Before(date(records[j]))
	})
}
