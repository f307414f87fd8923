package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-request-inbox/models"
)

const (
	FieldName     = "name"
	FieldContact  = "contact"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldLengths  = "lengths"
	FieldServices = "services"
	FieldStatus   = "status"
	FieldID       = "id"
)

const (
	maxShortField = 200
	maxNotes      = 4000
	maxServices   = 20
)

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RequestPayload:
		return v.validatePayload(ctx, value, fields...)
	case *models.RequestPayload:
		return v.validatePayload(ctx, *value, fields...)

	case models.StatusUpdateRequest:
		return v.validateStatusUpdate(ctx, value, fields...)
	case *models.StatusUpdateRequest:
		return v.validateStatusUpdate(ctx, *value, fields...)

	case models.ListFilter:
		return v.validateListFilter(ctx, value, fields...)
	case *models.ListFilter:
		return v.validateListFilter(ctx, *value, fields...)

	case models.Request:
		return v.validateRequest(ctx, value, fields...)
	case *models.Request:
		return v.validateRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validatePayload(_ context.Context, p models.RequestPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldContact, FieldEmail, FieldPhone, FieldLengths, FieldServices}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(p.Name) == "" {
				return ErrEmptyName
			}
		case FieldContact:
			if strings.TrimSpace(p.Phone) == "" && strings.TrimSpace(p.Email) == "" {
				return ErrNoContact
			}
		case FieldEmail:
			if p.Email != "" && !isEmail(p.Email) {
				return ErrInvalidEmail
			}
		case FieldPhone:
			if p.Phone != "" && !isPhone(p.Phone) {
				return ErrInvalidPhone
			}
		case FieldLengths:
			for _, s := range []string{p.Name, p.Phone, p.Email, p.Address, p.City, p.SoilType} {
				if utf8.RuneCountInString(s) > maxShortField {
					return ErrFieldTooLong
				}
			}
			if utf8.RuneCountInString(p.Notes) > maxNotes {
				return ErrFieldTooLong
			}
		case FieldServices:
			if len(p.Services) > maxServices {
				return ErrTooManyServices
			}
			for _, s := range p.Services {
				if strings.TrimSpace(s) == "" {
					return ErrEmptyService
				}
				if utf8.RuneCountInString(s) > maxShortField {
					return ErrFieldTooLong
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateStatusUpdate(_ context.Context, r models.StatusUpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if !r.Status.IsValid() {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateListFilter(_ context.Context, filter models.ListFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus, FieldLengths}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if filter.Status != "" && !filter.Status.IsValid() {
				return ErrInvalidStatus
			}
		case FieldLengths:
			if utf8.RuneCountInString(filter.Query) > maxShortField {
				return ErrFieldTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateRequest checks a canonical request, e.g. one read back from
// storage before it is published.
func (v *RequestValidator) validateRequest(ctx context.Context, r models.Request, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(r.ID) == "" {
				return ErrInvalidRequestID
			}
		case FieldStatus:
			if !r.Status.IsValid() {
				return ErrInvalidStatus
			}
		default:
			if err := v.validatePayload(ctx, r.Payload, f); err != nil {
				return err
			}
		}
	}

	return nil
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// isPhone accepts digits with the usual separators and at least 7 digits.
func isPhone(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case strings.ContainsRune("+-() .", r):
		default:
			return false
		}
	}
	return digits >= 7
}
