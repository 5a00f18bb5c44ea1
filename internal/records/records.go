// Package records persists the user profile and the append-only record logs
// the engine reads: sleep, workouts, nutrition and progress.
package records

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/2beens/recoverycoach/internal/domain"
	"github.com/2beens/recoverycoach/pkg"

	"github.com/google/uuid"
)

//go:embed schema.sql
var Schema string

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrRecordExists    = errors.New("record already exists")
)

// assignID gives a record without an id a fresh one.
func assignID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// insertErr translates constraint violations into the package errors.
func insertErr(kind domain.RecordKind, userID string, err error) error {
	switch {
	case pkg.IsForeignKeyViolationError(err):
		return fmt.Errorf("add %s record for %s: %w", kind, userID, ErrProfileNotFound)
	case pkg.IsUniqueViolationError(err):
		return fmt.Errorf("add %s record for %s: %w", kind, userID, ErrRecordExists)
	default:
		return fmt.Errorf("add %s record for %s: %w", kind, userID, err)
	}
}
