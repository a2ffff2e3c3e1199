package store

import (
	"context"

	"github.com/MKhiriev/go-user-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository persists [models.User] records.
//
// Every method performs a single database call except UpdateUser, which runs
// one read-modify-write transaction.
type UserRepository interface {
	// CreateUser assigns a new id to user, inserts it and returns the stored
	// record.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// ListUsers returns every stored user in database-native order.
	ListUsers(ctx context.Context) ([]models.User, error)

	// FindUserByID returns the user with the given id or [ErrUserNotFound].
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// UpdateUser loads the user with the given id, passes it to apply and
	// stores the record apply returns. An error from apply aborts the update
	// and is returned unchanged.
	UpdateUser(ctx context.Context, id string, apply func(models.User) (models.User, error)) (models.User, error)

	// DeleteUser removes the user with the given id and returns the removed
	// record, or [ErrUserNotFound].
	DeleteUser(ctx context.Context, id string) (models.User, error)
}

// ErrorClassificator maps driver-specific errors onto an
// [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
