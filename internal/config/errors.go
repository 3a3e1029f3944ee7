package config

import "errors"

// ErrInvalidConfig is returned by validation when the merged
// configuration violates a startup invariant.
var ErrInvalidConfig = errors.New("invalid configuration")
