// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the users API.
//
// The primary abstraction is [UsersAPI], which decouples command-line code
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPUsersAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/users_api_mock.go -package=mock

// UsersAPI defines transport-agnostic access to the users service.
// Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type UsersAPI interface {
	// CreateUser sends user to the server and returns the stored record with
	// its server-assigned id.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// ListUsers returns every user known to the server.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns the user with the given id.
	GetUser(ctx context.Context, id string) (models.User, error)

	// UpdateUser sends the supplied fields of patch and returns the updated
	// record.
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error)

	// DeleteUser removes the user with the given id and returns the server's
	// confirmation message.
	DeleteUser(ctx context.Context, id string) (string, error)
}
