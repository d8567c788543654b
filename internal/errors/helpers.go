package errors

import (
	"errors"
)

// GetCode returns the code of the outermost *Error in err's chain. nil is OK
// and errors from outside this package are Internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of the outermost *Error in err's chain
func GetMeta(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// FieldErrors returns the per field messages collected by a ValidationBuilder,
// or nil when err is not a validation failure
func FieldErrors(err error) map[string][]string {
	fields, _ := GetMeta(err)[metaValidationErrors].(map[string][]string)
	return fields
}

func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

// IsCanceled reports whether err came from an interrupted context
func IsCanceled(err error) bool {
	return GetCode(err) == CodeCanceled
}
