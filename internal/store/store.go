// Package store holds the portal's in-memory collections. Each store
// guards its own map with a sync.RWMutex and hands out copies; callers
// never alias shared state. Nothing is persisted; a restart starts
// from an empty portal.
package store

import "errors"

var (
	// ErrEmailTaken is returned when registering an email that already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned when no account matches the given email or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrJobNotFound is returned when a requested job posting does not exist.
	ErrJobNotFound = errors.New("job not found")
	// ErrApplicationNotFound is returned when a requested application does not exist.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrAlreadyApplied is returned when a seeker applies twice to the same job.
	ErrAlreadyApplied = errors.New("already applied to this job")
)
