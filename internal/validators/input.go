package validators

import (
	"context"
	"regexp"

	"github.com/Supreeth450/KodjobsSupreeth/models"
)

// Field name constants used for field-level scoping. Passing no fields
// validates everything relevant for the value's type.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldMessage  = "message"
)

// emailPattern matches the registration form's email check: something,
// an @, something, a dot, something — no whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinPasswordLength is the registration password floor.
const MinPasswordLength = 6

type inputValidator struct{}

// NewInputValidator constructs the Validator covering user accounts and
// contact queries.
func NewInputValidator() Validator {
	return &inputValidator{}
}

func (v *inputValidator) Validate(_ context.Context, value any, fields ...string) error {
	switch input := value.(type) {
	case models.User:
		return v.validateUser(input, fields...)
	case models.ContactQuery:
		return v.validateQuery(input, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *inputValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if user.Name == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if user.Email == "" {
				return ErrEmptyEmail
			}
			if !emailPattern.MatchString(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
			if len(user.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *inputValidator) validateQuery(query models.ContactQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldMessage}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if query.Name == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if query.Email == "" {
				return ErrEmptyEmail
			}
			if !emailPattern.MatchString(query.Email) {
				return ErrInvalidEmail
			}
		case FieldMessage:
			if query.Message == "" {
				return ErrEmptyMessage
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}
