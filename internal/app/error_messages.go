// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing messages the vocab client prints when
// a command fails.
//
// Errors coming out of the services, the remote adapter and the local store
// are wrapped several times on their way up. [Describe] walks the chain and
// picks one stable sentence, so the CLI never shows raw SQL or HTTP details
// to the learner. The full error is still written to the log file.
package app

import (
	"errors"

	"github.com/MKhiriev/go-vocab-keeper/internal/adapter"
	"github.com/MKhiriev/go-vocab-keeper/internal/service"
	"github.com/MKhiriev/go-vocab-keeper/internal/store"
	"github.com/MKhiriev/go-vocab-keeper/internal/validators"
)

const (
	// MsgRemoteNotConfigured is shown when a command needs the remote store
	// but no server address was given.
	MsgRemoteNotConfigured = "no remote store configured, pass --server or set ADAPTER_ADDRESS"

	// MsgNotAuthenticated is shown when a command needs a signed-in user.
	MsgNotAuthenticated = "not signed in, pass --token or set ADAPTER_ACCESS_TOKEN"

	// MsgTokenRejected is shown when the remote store rejects the access
	// token.
	MsgTokenRejected = "the remote store rejected the access token"

	// MsgRemoteUnavailable is shown when the remote store cannot be reached
	// or keeps failing. Local changes stay queued.
	MsgRemoteUnavailable = "the remote store is unavailable, changes stay queued locally"

	// MsgRemoteRejected is shown when the remote store refuses a request for
	// good, e.g. because the payload is invalid.
	MsgRemoteRejected = "the remote store rejected the request"

	// MsgCardNotFound is shown when a card id does not exist locally.
	MsgCardNotFound = "card not found"

	// MsgCardAlreadyExists is shown when a card with the same word exists.
	MsgCardAlreadyExists = "a card with this word already exists"

	// MsgInvalidCardsFile is shown when an import file has a version this
	// client cannot read.
	MsgInvalidCardsFile = "unsupported cards file version"

	// MsgInvalidData is shown when cards or progress fail validation.
	MsgInvalidData = "invalid data provided"

	// MsgMigrationState is shown when a migration step is run out of order.
	MsgMigrationState = "migration is not possible in the current state"

	// MsgMigrationFailed is shown when the remote store aborts a migration.
	// Local progress is kept.
	MsgMigrationFailed = "migration failed, local progress was kept"

	// MsgLocalStorage is shown for failures of the local database.
	MsgLocalStorage = "local storage error"
)

// Describe returns the user-facing message for err. Validation errors keep
// their details since they name the offending field. Unknown errors are
// returned as is.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrRemoteNotConfigured):
		return MsgRemoteNotConfigured
	case errors.Is(err, service.ErrNotAuthenticated):
		return MsgNotAuthenticated
	case errors.Is(err, service.ErrInvalidMigrationTransition):
		return MsgMigrationState
	case errors.Is(err, service.ErrMigrationFailed):
		return MsgMigrationFailed
	case errors.Is(err, adapter.ErrUnauthorized):
		return MsgTokenRejected
	case errors.Is(err, validators.ErrUnsupportedFileVersion):
		return MsgInvalidCardsFile
	case errors.Is(err, validators.ErrInvalidCard),
		errors.Is(err, validators.ErrEmptyCards),
		errors.Is(err, validators.ErrInvalidCardID):
		return err.Error()
	case errors.Is(err, service.ErrInvalidDataProvided):
		return MsgInvalidData
	case adapter.IsPermanent(err):
		return MsgRemoteRejected
	case errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrTooManyRequests):
		return MsgRemoteUnavailable
	case errors.Is(err, store.ErrCardNotFound):
		return MsgCardNotFound
	case errors.Is(err, store.ErrCardAlreadyExists):
		return MsgCardAlreadyExists
	case errors.Is(err, store.ErrTransient),
		errors.Is(err, store.ErrExecutingQuery),
		errors.Is(err, store.ErrExecutingStatement),
		errors.Is(err, store.ErrBeginningTransaction),
		errors.Is(err, store.ErrCommitingTransaction),
		errors.Is(err, store.ErrScanningRow),
		errors.Is(err, store.ErrScanningRows):
		return MsgLocalStorage
	default:
		return err.Error()
	}
}
