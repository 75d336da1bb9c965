package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/store"
)

// persistenceError passes domain store errors through unchanged and marks
// everything else as ErrPersistence.
func persistenceError(err error) error {
	if err == nil ||
		errors.Is(err, ErrPersistence) ||
		errors.Is(err, store.ErrTaskNotFound) ||
		errors.Is(err, store.ErrUserNotFound) ||
		errors.Is(err, store.ErrEmailAlreadyExists) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

// timestamp is the precision every backend round-trips without loss.
func timestamp(now time.Time) time.Time {
	return now.UTC().Truncate(time.Microsecond)
}

// nextUpdatedAt returns a modification time strictly after previous.
func nextUpdatedAt(now, previous time.Time) time.Time {
	next := timestamp(now)
	if !next.After(previous) {
		next = previous.Add(time.Microsecond)
	}
	return next
}
