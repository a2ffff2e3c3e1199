package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-service/models"
)

var usersTable = models.User{}.TableName()

// userColumns is the column order every query returns and every scan expects.
var userColumns = []string{"id", "name", "age", "email"}

// returningUser is appended to write statements so the stored row comes back
// in the same round trip. Both PostgreSQL and SQLite (3.35+) understand it.
const returningUser = "RETURNING id, name, age, email"

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Age, user.Email).
		Suffix(returningUser).
		ToSql()
}

func buildSelectAllUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateUserQuery overwrites every mutable column of the row identified
// by user.ID.
func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update(usersTable).
		Set("name", user.Name).
		Set("age", user.Age).
		Set("email", user.Email).
		Where(sq.Eq{"id": user.ID}).
		Suffix(returningUser).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"id": id}).
		Suffix(returningUser).
		ToSql()
}
