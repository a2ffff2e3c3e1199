package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-user-service/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of the user
// fields. They match the JSON names of [models.User].
const (
	// FieldName targets the display name of the user.
	FieldName = "name"

	// FieldAge targets the age of the user.
	FieldAge = "age"

	// FieldEmail targets the e-mail address of the user.
	FieldEmail = "email"
)

const looseEmailTag = "loose_email"

// looseEmail accepts anything of the form local@domain.tld: at least one
// character before "@", at least one after it, and at least one after the
// final dot.
var looseEmail = regexp.MustCompile(`.+@.+\..+`)

// fieldRules maps the struct field name reported by go-playground/validator
// and the failed tag onto the sentinel reason returned to callers.
var fieldRules = map[string]map[string]error{
	"Name": {
		"required": ErrNameRequired,
	},
	"Age": {
		"required": ErrAgeRequired,
		"min":      ErrAgeTooLow,
	},
	"Email": {
		"required":    ErrEmailRequired,
		looseEmailTag: ErrEmailInvalid,
	},
}

var structFields = map[string]string{
	FieldName:  "Name",
	FieldAge:   "Age",
	FieldEmail: "Email",
}

// UserValidator implements [Validator] for [models.User] using the
// `validate` struct tags declared on the model.
//
// Partial updates are checked by passing the names of the supplied fields.
type UserValidator struct {
	validate *validator.Validate
}

// NewUserValidator constructs a UserValidator with the loose_email rule
// registered and returns it as the Validator interface.
func NewUserValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// the pattern is static, registration cannot fail
	_ = v.RegisterValidation(looseEmailTag, func(fl validator.FieldLevel) bool {
		return looseEmail.MatchString(fl.Field().String())
	})

	return &UserValidator{validate: v}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types: models.User and *models.User.
//
// Returns ErrUnsupportedType if obj does not match any known model and
// ErrUnknownField for an unknown field name. When fields are omitted, all
// fields are validated.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateStruct(ctx, &value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error

	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			name, ok := structFields[f]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
			names = append(names, name)
		}
		err = v.validate.StructPartialCtx(ctx, obj, names...)
	}

	return translate(err)
}

// translate converts the first go-playground validation failure into the
// matching sentinel reason.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	fieldErr := validationErrs[0]
	if reason, ok := fieldRules[fieldErr.StructField()][fieldErr.Tag()]; ok {
		return reason
	}

	return fmt.Errorf("%s failed on %q rule", fieldErr.Field(), fieldErr.Tag())
}
