// Package errors defines the codec's closed error taxonomy and the helpers
// used to classify and compare them.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNullNotAllowed is returned when encoding a null into a column whose
	// schema entry does not admit nulls.
	ErrNullNotAllowed = NewErrorType("null not allowed")

	// ErrTypeMismatch is returned when a column value's dynamic type does not
	// match its schema entry's type tag.
	ErrTypeMismatch = NewErrorType("type mismatch")

	// ErrOutOfRange is returned when a buffer read or skip would pass the end
	// of the underlying byte sequence.
	ErrOutOfRange = NewErrorType("out of range")

	// ErrMalformedPadding is returned when the ordered byte-string decoder
	// finds a non-zero padding byte or fewer than 9 bytes left for a group.
	ErrMalformedPadding = NewErrorType("malformed padding")

	// ErrPrefixMismatch is returned when a decoded common_id differs from the
	// record codec's configured common_id.
	ErrPrefixMismatch = NewErrorType("key prefix mismatch")

	// ErrSchemaTooNew is returned when a decoded schema version exceeds the
	// record codec's configured schema version.
	ErrSchemaTooNew = NewErrorType("schema version too new")

	// ErrKeyOverflow is returned by EncodeMaxKeyPrefix when common_id is
	// already the maximum int64, since incrementing it would wrap.
	ErrKeyOverflow = NewErrorType("key overflow")

	// ErrUnsupportedKeyType is returned when a list column is marked as a
	// key, or when any key operation is invoked on a list codec.
	ErrUnsupportedKeyType = NewErrorType("unsupported key type")
)

// ErrorType represents a distinct category of errors.
// ErrorType 代表一种独特的错误类别。
type ErrorType string

// New creates a new error with a message derived from the ErrorType and optional arguments.
// New 创建一个新错误，其消息源自 ErrorType 和可选参数。
func (e ErrorType) New(args ...interface{}) error {
	msg := string(e)
	if len(args) > 0 {
		msg = msg + ": " + strings.TrimSuffix(fmt.Sprintln(args...), "\n")
	}
	return errors.New(msg)
}

// NewErrorType creates a new ErrorType.
// NewErrorType 创建一个新的 ErrorType。
func NewErrorType(msg string) ErrorType {
	return ErrorType(msg)
}

// Is checks if an error is of a specific ErrorType.
// Is 检查一个错误是否属于特定的 ErrorType。
func Is(err error, errType ErrorType) bool {
	if err == nil {
		return false
	}
	// Unwrap until the root cause is found or no more wrapping is possible
	for err != nil {
		if fmt.Sprintf("%v", err) == string(errType) {
			return true
		}
		// Check if the error message starts with the error type string
		if len(fmt.Sprintf("%v", err)) >= len(string(errType)) && fmt.Sprintf("%v", err)[:len(string(errType))] == string(errType) {
			return true
		}
		// Check if the underlying error is of this type (more robust approach needed for custom error types)
		// For now, relying on string comparison or wrapped errors.Is
		unwrappedErr := errors.Unwrap(err)
		if unwrappedErr == nil {
			break
		}
		err = unwrappedErr
	}
	return false
}

// IsAny checks if an error matches any of the provided ErrorTypes.
// IsAny 检查一个错误是否与提供的任何 ErrorType 匹配。
func IsAny(err error, errTypes ...ErrorType) bool {
	for _, errType := range errTypes {
		if Is(err, errType) {
			return true
		}
	}
	return false
}