package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("application version is not specified")

	// ErrNoUserInContext is returned by server services called without an
	// authenticated user.
	ErrNoUserInContext = errors.New("no user ID in context")

	// ErrForeignUser is returned when a progress payload names a user other
	// than the authenticated one.
	ErrForeignUser = errors.New("access to another user's progress")
)

// Client-side errors.
var (
	// ErrRemoteNotConfigured is returned by sync and migration operations when
	// the client runs in local-only mode.
	ErrRemoteNotConfigured = errors.New("remote store is not configured")

	// ErrNotAuthenticated is returned when an operation needs a signed-in user.
	ErrNotAuthenticated = errors.New("no authenticated user")

	// ErrMalformedOperation marks a queued operation that can never be
	// delivered.
	ErrMalformedOperation = errors.New("malformed sync operation")

	// ErrSyncServiceClosed is returned once the sync engine has been shut down.
	ErrSyncServiceClosed = errors.New("sync service is closed")

	// ErrInvalidMigrationTransition is returned when a migration step is
	// requested from a state that does not allow it.
	ErrInvalidMigrationTransition = errors.New("invalid migration state transition")

	// ErrMigrationFailed wraps the remote failure that aborted a migration.
	ErrMigrationFailed = errors.New("migration failed")
)
