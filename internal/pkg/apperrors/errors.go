package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// User errors. Each wraps a base sentinel so the HTTP layer resolves the
// status from the base while the message stays specific.
var (
	ErrUserNotFound        error = &CustomError{Err: ErrResourceNotFound, Message: "user not found"}
	ErrUsernameAlreadyUsed error = &CustomError{Err: ErrConflict, Message: "username already taken"}
	ErrEmailAlreadyUsed    error = &CustomError{Err: ErrConflict, Message: "email already registered"}
)

// Content errors
var (
	ErrPaperNotFound    error = &CustomError{Err: ErrResourceNotFound, Message: "research paper not found"}
	ErrArticleNotFound  error = &CustomError{Err: ErrResourceNotFound, Message: "news article not found"}
	ErrAlreadyPublished error = &CustomError{Err: ErrConflict, Message: "article is already published"}
	ErrCategoryNotFound error = &CustomError{Err: ErrResourceNotFound, Message: "forum category not found"}
	ErrTopicNotFound    error = &CustomError{Err: ErrResourceNotFound, Message: "forum topic not found"}
	ErrTopicLocked      error = &CustomError{Err: ErrPermissionDenied, Message: "topic is locked"}
	ErrGroupNotFound    error = &CustomError{Err: ErrResourceNotFound, Message: "interest group not found"}
	ErrAlreadyMember    error = &CustomError{Err: ErrConflict, Message: "already a member of this group"}
	ErrEventNotFound    error = &CustomError{Err: ErrResourceNotFound, Message: "event not found"}
	ErrEventFull        error = &CustomError{Err: ErrValidationFailed, Message: "event is full"}
	ErrAlreadyAttending error = &CustomError{Err: ErrConflict, Message: "already registered for this event"}
)

// CustomError carries a user-facing message on top of a sentinel error so
// the HTTP layer can map the sentinel to a status while surfacing the
// message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a 400-mapped error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewConflictError creates a 409-mapped error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a 403-mapped error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewNotFoundError creates a 404-mapped error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}
