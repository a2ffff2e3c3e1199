package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/migrations"
)

func TestNewConnection_UnsupportedDSN(t *testing.T) {
	for _, dsn := range []string{"", "mysql://root@localhost/users", "mongodb://localhost:27017"} {
		_, err := NewConnection(context.Background(), config.DB{DSN: dsn}, logger.Nop())
		assert.ErrorIs(t, err, ErrUnsupportedDSN, dsn)
	}
}

func TestNewConnection_SQLiteMemory(t *testing.T) {
	db, err := NewConnection(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, migrations.DialectSQLite, db.dialect)
	assert.IsType(t, &SQLiteErrorClassifier{}, db.errorClassificator)

	var count int
	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM users").Scan(&count))
	assert.Zero(t, count)

	// applying migrations twice is a no-op
	assert.NoError(t, db.Migrate())
}

func TestNewConnection_SQLiteFile(t *testing.T) {
	path := t.TempDir() + "/users.db"

	db, err := NewConnection(context.Background(), config.DB{DSN: "sqlite://" + path}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// reopening the same file keeps the schema
	db, err = NewConnection(context.Background(), config.DB{DSN: "file:" + path}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()
}

func Test_sqliteSource(t *testing.T) {
	assert.Equal(t, "users.db", sqliteSource("sqlite://users.db"))
	assert.Equal(t, "file:users.db?cache=shared", sqliteSource("file:users.db?cache=shared"))
	assert.Equal(t, ":memory:", sqliteSource(":memory:"))
}

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		code string
		want ErrorClassification
	}{
		{pgerrcode.ConnectionFailure, Retryable},
		{pgerrcode.SerializationFailure, Retryable},
		{pgerrcode.DeadlockDetected, Retryable},
		{pgerrcode.CannotConnectNow, Retryable},
		{pgerrcode.CheckViolation, ConstraintViolation},
		{pgerrcode.NotNullViolation, ConstraintViolation},
		{pgerrcode.UniqueViolation, ConstraintViolation},
		{pgerrcode.SyntaxError, NonRetryable},
		{pgerrcode.UndefinedTable, NonRetryable},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(pgError(tt.code)))
		})
	}
}

func TestPostgresErrorClassifier_NonPgErrors(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, ConstraintViolation, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrError}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "constraint_violation", ConstraintViolation.String())
	assert.Equal(t, "non_retryable", NonRetryable.String())
}
