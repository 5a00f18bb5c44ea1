// Package biometrics reads the latest wearable sample written by the device
// sync into redis.
package biometrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/recoverycoach/internal/domain"
	"github.com/2beens/recoverycoach/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const (
	keyPrefix  = "biometrics::latest::"
	DefaultTTL = 48 * time.Hour
)

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		rdb: rdb,
		ttl: ttl,
	}
}

func key(userID string) string {
	return keyPrefix + userID
}

// Latest returns the most recent sample, or nil without an error when the
// user has none (never synced or expired).
func (s *Store) Latest(ctx context.Context, userID string) (_ *domain.BiometricSample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "biometrics.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	raw, err := s.rdb.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			span.SetAttributes(attribute.Bool("found", false))
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	sample := &domain.BiometricSample{}
	if err := json.Unmarshal(raw, sample); err != nil {
		return nil, fmt.Errorf("unmarshal biometric sample: %w", err)
	}
	span.SetAttributes(attribute.Bool("found", true))
	return sample, nil
}

// Save stores the sample as the user's latest one. Older samples than the
// stored one are ignored.
func (s *Store) Save(ctx context.Context, userID string, sample domain.BiometricSample) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "biometrics.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	current, err := s.Latest(ctx, userID)
	if err != nil {
		return err
	}
	if current != nil && sample.Timestamp.Before(current.Timestamp) {
		span.SetAttributes(attribute.Bool("stale", true))
		return nil
	}

	raw, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("marshal biometric sample: %w", err)
	}
	if err := s.rdb.Set(ctx, key(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
