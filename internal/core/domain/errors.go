package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every specific error below wraps exactly one of them so
// callers can branch on either the category or the precise condition.
var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("concurrent modification")
)

var (
	ErrPartNotFound     = fmt.Errorf("part %w", ErrNotFound)
	ErrSystemNotFound   = fmt.Errorf("system %w", ErrNotFound)
	ErrEmployeeNotFound = fmt.Errorf("employee %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
)

var (
	ErrDuplicateBarcode    = fmt.Errorf("barcode already exists: %w", ErrDuplicateKey)
	ErrDuplicateSerial     = fmt.Errorf("serial number already exists: %w", ErrDuplicateKey)
	ErrDuplicateName       = fmt.Errorf("system name already exists: %w", ErrDuplicateKey)
	ErrDuplicateEmployeeID = fmt.Errorf("employee id already exists: %w", ErrDuplicateKey)
	ErrDuplicateEmail      = fmt.Errorf("email already exists: %w", ErrDuplicateKey)
	ErrDuplicatePhone      = fmt.Errorf("phone already exists: %w", ErrDuplicateKey)
	ErrUserExists          = fmt.Errorf("user already exists: %w", ErrDuplicateKey)
)

var (
	ErrPartInUse           = fmt.Errorf("part is still attached to a system: %w", ErrInvalidState)
	ErrPartAlreadyAssigned = fmt.Errorf("part is already assigned to another system: %w", ErrInvalidState)
	ErrEmptyComposition    = fmt.Errorf("a system needs at least one part: %w", ErrInvalidState)
	ErrPartUnusable        = fmt.Errorf("part is marked unusable: %w", ErrInvalidState)
)

var (
	ErrUnknownPartType        = fmt.Errorf("unknown part type: %w", ErrValidation)
	ErrEmptyName              = fmt.Errorf("name must not be empty: %w", ErrValidation)
	ErrUnusableReasonRequired = fmt.Errorf("unusable reason is required: %w", ErrValidation)
	ErrInvalidStatus          = fmt.Errorf("invalid status: %w", ErrValidation)
	ErrInvalidEmployeeID      = fmt.Errorf("employee id must be a positive number: %w", ErrValidation)
	ErrInvalidCredentials     = fmt.Errorf("invalid credentials: %w", ErrValidation)
)
