package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vocab-keeper/internal/service"
	"github.com/MKhiriev/go-vocab-keeper/internal/store"
)

// errorStatuses is checked in order; repository errors often wrap a generic
// query error together with a specific one, so the specific ones come first.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrNoUserInContext, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrForeignUser, http.StatusForbidden},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest},

	{store.ErrUnknownCard, http.StatusUnprocessableEntity},
	{store.ErrCardAlreadyExists, http.StatusConflict},
	{store.ErrCardNotFound, http.StatusNotFound},
	{store.ErrTransient, http.StatusServiceUnavailable},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
