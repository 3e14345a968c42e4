package domain

import "errors"

var (
	ErrValidation = errors.New("validation error")
)

var (
	ErrStorage              = errors.New("storage error")
	ErrStorageNotConfigured = errors.New("database not configured")
	ErrUnknownCollection    = errors.New("unknown collection")
)

// StorageError wraps a failure reported by the document store.
type StorageError struct {
	Op  string
	Err error
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
