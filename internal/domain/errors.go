package domain

import "errors"

var (
	ErrNotFound       = errors.New("resource not found")
	ErrTenantRequired = errors.New("tenant context required")
)
