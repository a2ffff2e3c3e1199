package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/models"
)

// rowQuerier is satisfied by both *sql.DB and *sql.Tx.
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// userRepository is the database/sql implementation of [UserRepository].
// It works with any dialect configured in [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger      *logger.Logger
	db          *DB
	idGenerator IDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection. New ids are produced by idGenerator.
func NewUserRepository(db *DB, idGenerator IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:          db,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

// CreateUser assigns a fresh id to user and inserts it. The stored row is
// returned through the RETURNING clause.
//
// Error handling:
//   - constraint violation (NOT NULL, CHECK, PRIMARY KEY) → [ErrConstraintViolation].
//   - any other driver-level error → [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = r.idGenerator.Generate()

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := r.scanUser(ctx, r.db, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, err
	}

	return created, nil
}

// ListUsers returns every row of the users table. An empty table yields an
// empty, non-nil slice.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllUsersQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.ID, &user.Name, &user.Age, &user.Email); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// FindUserByID returns the user with the given id.
//
// Error handling:
//   - id is not a UUID → [ErrMalformedUserID], no query is sent.
//   - no such row → [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	userID, err := parseUserID(id)
	if err != nil {
		log.Debug().Str("func", "*userRepository.FindUserByID").Str("id", id).Msg("malformed user id")
		return models.User{}, err
	}

	user, err := r.findUserByID(ctx, r.db, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Str("id", userID).Msg("error finding user")
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser runs a read-modify-write cycle inside one transaction: the
// stored user is loaded, passed to apply and the result written back.
//
// An error returned by apply rolls the transaction back and is returned to
// the caller unchanged. The id of the stored record always wins over
// whatever apply puts into the ID field.
func (r *userRepository) UpdateUser(ctx context.Context, id string, apply func(models.User) (models.User, error)) (models.User, error) {
	log := logger.FromContext(ctx)

	userID, err := parseUserID(id)
	if err != nil {
		log.Debug().Str("func", "*userRepository.UpdateUser").Str("id", id).Msg("malformed user id")
		return models.User{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error beginning transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := r.findUserByID(ctx, tx, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("id", userID).Msg("error loading user")
		return models.User{}, err
	}

	updated, err := apply(current)
	if err != nil {
		return models.User{}, err
	}
	updated.ID = current.ID

	query, args, err := buildUpdateUserQuery(r.db.builder, updated)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stored, err := r.scanUser(ctx, tx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("id", userID).Msg("error updating user")
		return models.User{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return stored, nil
}

// DeleteUser removes the user with the given id and returns the deleted row.
//
// Error handling matches [userRepository.FindUserByID].
func (r *userRepository) DeleteUser(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	userID, err := parseUserID(id)
	if err != nil {
		log.Debug().Str("func", "*userRepository.DeleteUser").Str("id", id).Msg("malformed user id")
		return models.User{}, err
	}

	query, args, err := buildDeleteUserQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleted, err := r.scanUser(ctx, r.db, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("id", userID).Msg("error deleting user")
		return models.User{}, err
	}

	return deleted, nil
}

func (r *userRepository) findUserByID(ctx context.Context, q rowQuerier, id string) (models.User, error) {
	query, args, err := buildSelectUserByIDQuery(r.db.builder, id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanUser(ctx, q, query, args...)
}

// scanUser runs a single-row query and scans the users columns, mapping
// driver errors onto repository sentinels.
func (r *userRepository) scanUser(ctx context.Context, q rowQuerier, query string, args ...any) (models.User, error) {
	var user models.User

	row := q.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		return models.User{}, r.mapError(ctx, err, ErrExecutingQuery)
	}

	if err := row.Scan(&user.ID, &user.Name, &user.Age, &user.Email); err != nil {
		return models.User{}, r.mapError(ctx, err, ErrScanningRow)
	}

	return user, nil
}

// mapError turns a driver error into a repository error. fallback is used
// when the error is neither a missing row nor a constraint violation.
func (r *userRepository) mapError(ctx context.Context, err error, fallback error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}

	classification := r.db.errorClassificator.Classify(err)
	logger.FromContext(ctx).Debug().
		Str("func", "*userRepository.mapError").
		Str("classification", classification.String()).
		Msg("database error classified")

	if classification == ConstraintViolation {
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}

// parseUserID returns the canonical form of id or [ErrMalformedUserID].
func parseUserID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedUserID, err)
	}

	return parsed.String(), nil
}
