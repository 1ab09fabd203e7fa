package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidEntity   = errors.New("invalid entity")
	ErrDuplicateLabel  = errors.New("duplicate label")
	ErrProviderFailure = errors.New("provider failure")
)
