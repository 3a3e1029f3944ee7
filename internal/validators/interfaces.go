// Package validators provides input validation decoupled from the
// transport and storage layers.
//
// Validation errors are handled at the point of entry (the submitting
// form); valid data only ever reaches the repositories, which do not
// re-validate.
package validators

import "context"

// Validator validates arbitrary input values, optionally restricted to
// specific named fields (field-level scoping).
type Validator interface {
	Validate(context.Context, any, ...string) error
}
