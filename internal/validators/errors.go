package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameRequired  = errors.New("name is required")
	ErrAgeRequired   = errors.New("age is required")
	ErrAgeTooLow     = errors.New("age must be at least 18")
	ErrEmailRequired = errors.New("email is required")
	ErrEmailInvalid  = errors.New("email must look like local@domain.tld")
)
