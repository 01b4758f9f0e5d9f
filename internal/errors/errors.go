package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeUnavailable indicates a backing store is currently unavailable
	CodeUnavailable Code = "unavailable"

	// CodeValidation indicates a validation error
	CodeValidation Code = "validation"

	// CodeNoCandidateBaseType indicates no base type satisfies the level/slot filter
	CodeNoCandidateBaseType Code = "no_candidate_base_type"

	// CodeAffixCapReached indicates the item cannot take any more affixes
	CodeAffixCapReached Code = "affix_cap_reached"

	// CodeNoAffixesPresent indicates an operation needs at least one affix
	CodeNoAffixesPresent Code = "no_affixes_present"

	// CodeUnknownSkill indicates the skill id is not registered
	CodeUnknownSkill Code = "unknown_skill"

	// CodeInvalidIndex indicates a reference to an instance or slot that does not exist
	CodeInvalidIndex Code = "invalid_index"

	// CodeAffixPoolExhausted indicates every applicable affix is already on the item
	CodeAffixPoolExhausted Code = "affix_pool_exhausted"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Preserve the code of an already tagged error
	var forgeErr *Error
	if errors.As(err, &forgeErr) {
		return &Error{
			Code:    forgeErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(forgeErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// NoCandidateBaseTypef reports that generation could not find a base type
func NoCandidateBaseTypef(format string, args ...any) *Error {
	return Newf(CodeNoCandidateBaseType, format, args...)
}

// AffixCapReachedf reports that an item is already at its rarity caps
func AffixCapReachedf(format string, args ...any) *Error {
	return Newf(CodeAffixCapReached, format, args...)
}

// NoAffixesPresentf reports an operation on an item without affixes
func NoAffixesPresentf(format string, args ...any) *Error {
	return Newf(CodeNoAffixesPresent, format, args...)
}

// UnknownSkillf reports a lookup of an unregistered skill
func UnknownSkillf(format string, args ...any) *Error {
	return Newf(CodeUnknownSkill, format, args...)
}

// InvalidIndexf reports a reference to a nonexistent instance, affix or slot
func InvalidIndexf(format string, args ...any) *Error {
	return Newf(CodeInvalidIndex, format, args...)
}

// AffixPoolExhaustedf reports that no further affix can be drawn
func AffixPoolExhaustedf(format string, args ...any) *Error {
	return Newf(CodeAffixPoolExhausted, format, args...)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var forgeErr *Error
	if errors.As(err, &forgeErr) {
		return forgeErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var forgeErr *Error
	if errors.As(err, &forgeErr) {
		return forgeErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var forgeErr *Error
	if errors.As(err, &forgeErr) {
		return forgeErr.Meta
	}
	return nil
}

// Reason returns the user-facing reason for a failed operation.
// A nil error has no reason.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	return string(GetCode(err))
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
