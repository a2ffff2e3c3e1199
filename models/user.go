package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// User is the only persisted entity of the service.
//
// ID is assigned by the storage layer when the record is created and is never
// changed afterwards. Name, Age and Email must satisfy the rules enforced by
// the validators package before a record reaches the database.
type User struct {
	// ID is the opaque identifier of the user (UUID string).
	ID string `json:"id"`

	// Name is the display name of the user. Required, non-empty.
	Name string `json:"name" validate:"required"`

	// Age is the age of the user in full years. Required, at least 18.
	Age int `json:"age" validate:"required,min=18"`

	// Email is the contact address of the user in the form local@domain.tld.
	Email string `json:"email" validate:"required,loose_email"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserPatch describes a partial update of a [User].
// Only non-nil fields are applied; nil means "leave the stored value as is".
//
// A field sent as JSON null is supplied with its zero value, so the user
// validation rejects it as missing instead of the field being skipped.
type UserPatch struct {
	Name  *string `json:"name,omitempty"`
	Age   *int    `json:"age,omitempty"`
	Email *string `json:"email,omitempty"`
}

// UnmarshalJSON decodes the known fields of a patch body. Unknown keys are
// ignored.
func (p *UserPatch) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var (
		patch UserPatch
		err   error
	)
	if patch.Name, err = decodePatchField[string](raw, "name"); err != nil {
		return err
	}
	if patch.Age, err = decodePatchField[int](raw, "age"); err != nil {
		return err
	}
	if patch.Email, err = decodePatchField[string](raw, "email"); err != nil {
		return err
	}

	*p = patch
	return nil
}

func decodePatchField[T any](raw map[string]json.RawMessage, key string) (*T, error) {
	value, ok := raw[key]
	if !ok {
		return nil, nil
	}

	field := new(T)
	if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return field, nil
	}
	if err := json.Unmarshal(value, field); err != nil {
		return nil, fmt.Errorf("patch field %q: %w", key, err)
	}

	return field, nil
}

// IsEmpty reports whether the patch carries no fields at all.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Age == nil && p.Email == nil
}

// Apply merges the supplied fields of the patch into user and returns the
// result. The ID of user is always preserved.
func (p UserPatch) Apply(user User) User {
	if p.Name != nil {
		user.Name = *p.Name
	}
	if p.Age != nil {
		user.Age = *p.Age
	}
	if p.Email != nil {
		user.Email = *p.Email
	}

	return user
}
