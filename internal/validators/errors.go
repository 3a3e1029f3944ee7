package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName            = errors.New("name is required")
	ErrEmptyEmail           = errors.New("email is required")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrEmptyPassword        = errors.New("password is required")
	ErrPasswordTooShort     = errors.New("password must be at least 6 characters long")
	ErrPasswordsDoNotMatch  = errors.New("passwords do not match")
	ErrEmptyMessage         = errors.New("message is required")
	ErrEmptyAdminResponse   = errors.New("response text is required")
	ErrEmptyPage            = errors.New("page path is required")
	ErrEmptyVisitorID       = errors.New("visitor id is required")
	ErrNonPositivePageIndex = errors.New("page number must be positive")
)
