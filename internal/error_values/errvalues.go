package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrProfileNotFound = errors.New("profile doesn't exist")
	ErrProfileExists   = errors.New("profile with such name already exists")
	ErrProfileLimit    = errors.New("profiles limit reached")
	ErrOwnerNotFound   = errors.New("owner doesn't exist")

	ErrContentNotFound = errors.New("content doesn't exist")
	ErrContentExists   = errors.New("content with such id already exists")
	ErrHistoryNotFound = errors.New("viewing history doesn't exist")

	ErrWrongOwner = errors.New("resource belongs to another user")
	ErrAdminOnly  = errors.New("admin privileges required")

	ErrValidation       = errors.New("validation failed")
	ErrStoreUnavailable = errors.New("database unavailable")
)

// ValidationError carries per-field messages and matches ErrValidation.
type ValidationError struct {
	Details []string
}

func (ve *ValidationError) Error() string {
	return ErrValidation.Error()
}

func (ve *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func NewValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}
