package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrNoContact        = errors.New("phone or email is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPhone     = errors.New("invalid phone")
	ErrFieldTooLong     = errors.New("field is too long")
	ErrTooManyServices  = errors.New("too many requested services")
	ErrEmptyService     = errors.New("requested service cannot be empty")
	ErrInvalidStatus    = errors.New("invalid request status")
	ErrInvalidRequestID = errors.New("invalid request id")
)
