// Package apperrors defines the error taxonomy shared by services and
// controllers. Controllers match with errors.Is to pick the HTTP status.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrStorage    = errors.New("storage failure")
	ErrPeripheral = errors.New("peripheral failure")
)

// Validation wraps ErrValidation with a formatted detail message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound wraps ErrNotFound with a formatted detail message.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Conflict wraps ErrConflict with a formatted detail message.
func Conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// Storage wraps a storage-layer error, keeping the cause in the chain.
func Storage(op string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, cause)
}

// Peripheral wraps a peripheral (printer) error, keeping the cause in the chain.
func Peripheral(op string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrPeripheral, op, cause)
}
