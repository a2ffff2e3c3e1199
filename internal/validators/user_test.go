package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-user-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() models.User {
	return models.User{Name: "Ada", Age: 36, Email: "ada@lovelace.io"}
}

func TestUserValidator_User(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(u *models.User)
		wantErr error
	}{
		{
			name:   "valid user",
			mutate: func(u *models.User) {},
		},
		{
			name:   "exactly 18",
			mutate: func(u *models.User) { u.Age = 18 },
		},
		{
			name:    "missing name",
			mutate:  func(u *models.User) { u.Name = "" },
			wantErr: ErrNameRequired,
		},
		{
			name:    "missing age",
			mutate:  func(u *models.User) { u.Age = 0 },
			wantErr: ErrAgeRequired,
		},
		{
			name:    "age 17",
			mutate:  func(u *models.User) { u.Age = 17 },
			wantErr: ErrAgeTooLow,
		},
		{
			name:    "negative age",
			mutate:  func(u *models.User) { u.Age = -5 },
			wantErr: ErrAgeTooLow,
		},
		{
			name:    "missing email",
			mutate:  func(u *models.User) { u.Email = "" },
			wantErr: ErrEmailRequired,
		},
		{
			name:    "email without at sign",
			mutate:  func(u *models.User) { u.Email = "not-an-email" },
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "email without tld",
			mutate:  func(u *models.User) { u.Email = "ada@lovelace" },
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "email without local part",
			mutate:  func(u *models.User) { u.Email = "@lovelace.io" },
			wantErr: ErrEmailInvalid,
		},
		{
			name:   "at sign as local part",
			mutate: func(u *models.User) { u.Email = "@@lovelace.io" },
		},
		{
			name:   "loose email with subdomain",
			mutate: func(u *models.User) { u.Email = "a@b.c.d" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)

			err := v.Validate(ctx, u)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointer form behaves the same
			assert.ErrorIs(t, v.Validate(ctx, &u), tt.wantErr)
		})
	}
}

func TestUserValidator_UserFieldScoping(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	u := models.User{Name: "Ada", Age: 10, Email: "broken"}

	assert.NoError(t, v.Validate(ctx, u, FieldName))
	assert.ErrorIs(t, v.Validate(ctx, u, FieldAge), ErrAgeTooLow)
	assert.ErrorIs(t, v.Validate(ctx, u, FieldEmail), ErrEmailInvalid)
	assert.ErrorIs(t, v.Validate(ctx, u, "nickname"), ErrUnknownField)
}

// TestUserValidator_ScopedZeroValues covers supplied-but-empty fields of a
// partial update, which reach the validator as zero values.
func TestUserValidator_ScopedZeroValues(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	var blank models.User

	assert.ErrorIs(t, v.Validate(ctx, blank, FieldName), ErrNameRequired)
	assert.ErrorIs(t, v.Validate(ctx, blank, FieldAge), ErrAgeRequired)
	assert.ErrorIs(t, v.Validate(ctx, blank, FieldEmail), ErrEmailRequired)
	assert.ErrorIs(t, v.Validate(ctx, models.User{Age: 17}, FieldAge), ErrAgeTooLow)
	require.NoError(t, v.Validate(ctx, models.User{Age: 18, Email: "a@b.io"}, FieldAge, FieldEmail))
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, "user"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.User)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.UserPatch{}), ErrUnsupportedType)
}
