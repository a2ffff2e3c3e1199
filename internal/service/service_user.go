package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/store"
	"github.com/MKhiriev/go-user-service/internal/validators"
	"github.com/MKhiriev/go-user-service/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// CreateUser validates every field of user and stores it. The id of the
// input is ignored; the repository assigns a new one.
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := s.validator.Validate(ctx, user); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*userService.CreateUser").Msg("user is invalid")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.userRepository.CreateUser(ctx, user)
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

func (s *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, id)
}

// UpdateUser applies the supplied fields of patch to the stored user.
//
// The patch is checked before the user is looked up, so an invalid patch
// for a missing id reports invalid data rather than a missing user. The
// merged record is validated again inside the update transaction.
func (s *userService) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	log := logger.FromContext(ctx)

	if !patch.IsEmpty() {
		if err := s.validator.Validate(ctx, patch.Apply(models.User{}), suppliedFields(patch)...); err != nil {
			log.Debug().Err(err).Str("func", "*userService.UpdateUser").Msg("patch is invalid")
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	return s.userRepository.UpdateUser(ctx, id, func(current models.User) (models.User, error) {
		merged := patch.Apply(current)
		if err := s.validator.Validate(ctx, merged); err != nil {
			log.Debug().Err(err).Str("func", "*userService.UpdateUser").Msg("merged user is invalid")
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}

		return merged, nil
	})
}

// suppliedFields names the validator fields carried by patch.
func suppliedFields(patch models.UserPatch) []string {
	fields := make([]string, 0, 3)
	if patch.Name != nil {
		fields = append(fields, validators.FieldName)
	}
	if patch.Age != nil {
		fields = append(fields, validators.FieldAge)
	}
	if patch.Email != nil {
		fields = append(fields, validators.FieldEmail)
	}

	return fields
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	_, err := s.userRepository.DeleteUser(ctx, id)
	return err
}
