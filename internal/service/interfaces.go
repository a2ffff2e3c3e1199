package service

import (
	"context"

	"github.com/MKhiriev/go-user-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_service_mock.go -package=mock

// UserService holds the business rules of the users resource.
//
// Validation failures are reported as [ErrInvalidDataProvided]; storage
// errors (store.ErrUserNotFound, store.ErrMalformedUserID, ...) are passed
// through unchanged.
type UserService interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}
