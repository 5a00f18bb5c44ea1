// Package snapshot keeps the latest computed engine output per user.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/recoverycoach/internal/domain"

	"github.com/coocood/freecache"
)

const (
	megabyte = 1024 * 1024
	// freecache caps a single entry at 1/1024 of the cache size
	minSizeMB = 16
)

// Snapshot is everything one engine run produced for a user.
type Snapshot struct {
	UserID     string                  `json:"userId"`
	ComputedAt time.Time               `json:"computedAt"`
	Recovery   domain.RecoveryScore    `json:"recovery"`
	Insights   domain.InsightReport    `json:"insights"`
	Nutrition  domain.NutritionTargets `json:"nutrition"`
	Workout    domain.AdaptedWorkout   `json:"workout"`
	Biometrics *domain.BiometricSample `json:"biometrics,omitempty"`
}

// Store is an explicitly injected userId -> latest snapshot cache. Entries
// expire after the configured TTL; a zero TTL keeps them until evicted.
type Store struct {
	cache *freecache.Cache
	ttl   time.Duration
}

func NewStore(sizeMB int, ttl time.Duration) *Store {
	if sizeMB < minSizeMB {
		sizeMB = minSizeMB
	}
	return &Store{
		cache: freecache.NewCache(sizeMB * megabyte),
		ttl:   ttl,
	}
}

// Put replaces the user's snapshot.
func (s *Store) Put(snap Snapshot) error {
	if snap.UserID == "" {
		return errors.New("snapshot without user id")
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.cache.Set([]byte(snap.UserID), raw, int(s.ttl.Seconds())); err != nil {
		return fmt.Errorf("cache snapshot for %s: %w", snap.UserID, err)
	}
	return nil
}

// Get returns the latest snapshot, ok is false when there is none.
func (s *Store) Get(userID string) (_ *Snapshot, ok bool, err error) {
	raw, err := s.cache.Get([]byte(userID))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get snapshot for %s: %w", userID, err)
	}

	snap := &Snapshot{}
	if err := json.Unmarshal(raw, snap); err != nil {
		return nil, false, fmt.Errorf("unmarshal snapshot for %s: %w", userID, err)
	}
	return snap, true, nil
}

func (s *Store) Delete(userID string) bool {
	return s.cache.Del([]byte(userID))
}

func (s *Store) Len() int64 {
	return s.cache.EntryCount()
}
