package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound requested record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrInvalidCredentials wrong username or password
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrAccountInactive login attempt on a deactivated account
	ErrAccountInactive = errors.New("account is inactive")
	// ErrLastActiveAdmin the operation would leave no active admin
	ErrLastActiveAdmin = errors.New("cannot remove the last active admin")
	// ErrCaptchaInvalid captcha answer missing or wrong
	ErrCaptchaInvalid = errors.New("captcha verification failed")
)

// ValidationError malformed or missing input, raised before any store access
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConstraintError a data integrity rule was violated (uniqueness, date order)
type ConstraintError struct {
	Rule    string
	Message string
}

func (e *ConstraintError) Error() string {
	return e.Message
}

func newConstraintError(rule, message string) *ConstraintError {
	return &ConstraintError{Rule: rule, Message: message}
}
