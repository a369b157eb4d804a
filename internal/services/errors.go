package services

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to status codes with errors.Is; every
// concrete error below wraps exactly one kind.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
)

// Concrete errors.
var (
	ErrInvalidToken       = fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrDuplicateEmail     = fmt.Errorf("%w: email already exists", ErrConflict)
	ErrInvalidTransition  = fmt.Errorf("%w: image is not pending moderation", ErrConflict)
	ErrInvalidID          = fmt.Errorf("%w: invalid identifier", ErrValidation)
	ErrEmptyComment       = fmt.Errorf("%w: comment content is required", ErrValidation)
	ErrMissingImage       = fmt.Errorf("%w: missing image file", ErrValidation)
	ErrUnsupportedImage   = fmt.Errorf("%w: unsupported image format", ErrValidation)
	ErrInvalidVisibility  = fmt.Errorf("%w: visibility must be public or private", ErrValidation)
	ErrInvalidStatus      = fmt.Errorf("%w: unknown image status", ErrValidation)
	ErrPasswordTooLong    = fmt.Errorf("%w: password exceeds 72 bytes", ErrValidation)
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrImageNotFound      = fmt.Errorf("%w: image not found", ErrNotFound)
	ErrCommentNotFound    = fmt.Errorf("%w: comment not found", ErrNotFound)
)
