// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-service/internal/store"
)

var errTrailingData = errors.New("unexpected data after JSON value")

// Fixed response messages. Clients match on them, so they never carry
// details of the underlying error.
const (
	msgInvalidData          = "Invalid data"
	msgFailedToFetchUsers   = "Failed to fetch users"
	msgFailedToFetchUser    = "Failed to fetch user"
	msgFailedToUpdateUser   = "Failed to update user"
	msgFailedToDeleteUser   = "Failed to delete user"
	msgUserNotFound         = "User not found"
	msgUserDeleted          = "User deleted successfully"
	msgNotFound             = "Not found"
	msgMethodNotAllowed     = "Method not allowed"
	msgInvalidGzipRequest   = "Invalid gzip data"
	msgInvalidJSONOnRequest = "Invalid JSON was passed"
)

// errorReply is a status code with the fixed message sent for it.
type errorReply struct {
	status  int
	message string
}

// routeErrors maps errors returned by the service layer onto the reply of a
// single route. Errors that match none of known get fallback.
type routeErrors struct {
	known    map[error]errorReply
	fallback errorReply
}

var notFoundReply = errorReply{status: http.StatusNotFound, message: msgUserNotFound}

var (
	createUserErrors = routeErrors{
		fallback: errorReply{status: http.StatusBadRequest, message: msgInvalidData},
	}

	listUsersErrors = routeErrors{
		fallback: errorReply{status: http.StatusInternalServerError, message: msgFailedToFetchUsers},
	}

	getUserErrors = routeErrors{
		known:    map[error]errorReply{store.ErrUserNotFound: notFoundReply},
		fallback: errorReply{status: http.StatusInternalServerError, message: msgFailedToFetchUser},
	}

	updateUserErrors = routeErrors{
		known:    map[error]errorReply{store.ErrUserNotFound: notFoundReply},
		fallback: errorReply{status: http.StatusBadRequest, message: msgFailedToUpdateUser},
	}

	deleteUserErrors = routeErrors{
		known:    map[error]errorReply{store.ErrUserNotFound: notFoundReply},
		fallback: errorReply{status: http.StatusInternalServerError, message: msgFailedToDeleteUser},
	}
)

// replyFor returns the reply of the route for err.
func (e routeErrors) replyFor(err error) errorReply {
	for target, reply := range e.known {
		if errors.Is(err, target) {
			return reply
		}
	}
	return e.fallback
}
