package restclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies client errors.
type ErrorCode int

const (
	// ErrCodeInvalidAddress indicates the target address is not a well-formed URL.
	ErrCodeInvalidAddress ErrorCode = iota
	// ErrCodeBadCredentialToken indicates the basic auth credentials could not be encoded.
	ErrCodeBadCredentialToken
	// ErrCodeTransportFailed indicates a transport-level failure (DNS, refused, timeout, TLS, cancellation).
	ErrCodeTransportFailed
	// ErrCodeNoResponse indicates the transport returned no response at all.
	ErrCodeNoResponse
	// ErrCodeMalformedResponse indicates the response could not be read as an HTTP response.
	ErrCodeMalformedResponse
	// ErrCodeUnhealthyStatus indicates a non-success HTTP status code.
	ErrCodeUnhealthyStatus
	// ErrCodeEmptyBody indicates a success response arrived without the body the caller expected.
	ErrCodeEmptyBody
	// ErrCodeDataCorrupted indicates structurally invalid JSON.
	ErrCodeDataCorrupted
	// ErrCodeKeyNotFound indicates a required field is absent from the JSON object.
	ErrCodeKeyNotFound
	// ErrCodeValueNotFound indicates a required field holds JSON null.
	ErrCodeValueNotFound
	// ErrCodeTypeMismatch indicates a JSON value whose type disagrees with the target type.
	ErrCodeTypeMismatch
	// ErrCodeDecoderFailed indicates a decode failure outside the classified cases.
	ErrCodeDecoderFailed
	// ErrCodeNoResult indicates a decode that completed without producing an instance.
	ErrCodeNoResult
	// ErrCodeInvalidValue indicates a value that cannot be encoded to JSON.
	ErrCodeInvalidValue
	// ErrCodeEncoderFailed indicates an encode failure outside the classified cases.
	ErrCodeEncoderFailed
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeInvalidAddress:
		return "invalid_address"
	case ErrCodeBadCredentialToken:
		return "bad_credential_token"
	case ErrCodeTransportFailed:
		return "transport_failed"
	case ErrCodeNoResponse:
		return "no_response"
	case ErrCodeMalformedResponse:
		return "malformed_response"
	case ErrCodeUnhealthyStatus:
		return "unhealthy_status"
	case ErrCodeEmptyBody:
		return "empty_body"
	case ErrCodeDataCorrupted:
		return "data_corrupted"
	case ErrCodeKeyNotFound:
		return "key_not_found"
	case ErrCodeValueNotFound:
		return "value_not_found"
	case ErrCodeTypeMismatch:
		return "type_mismatch"
	case ErrCodeDecoderFailed:
		return "decoder_failed"
	case ErrCodeNoResult:
		return "no_result"
	case ErrCodeInvalidValue:
		return "invalid_value"
	case ErrCodeEncoderFailed:
		return "encoder_failed"
	default:
		return "unknown"
	}
}

// Error is the structured client error. Every failure mode of the request,
// response, and codec pipeline is reported through this one type, carrying
// machine-usable context so callers can branch on Code without string matching.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the HTTP status code (0 for errors raised before a response).
	StatusCode int
	// Message is the raw diagnostic text (response body text, decode context, etc).
	Message string
	// Address is the offending target address (ErrCodeInvalidAddress).
	Address string
	// Key is the missing field's name (ErrCodeKeyNotFound).
	Key string
	// FieldType is the declared type of the offending field
	// (ErrCodeValueNotFound, ErrCodeTypeMismatch).
	FieldType string
	// Body is the raw response body text (ErrCodeKeyNotFound, ErrCodeUnhealthyStatus).
	Body string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("restclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("restclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewInvalidAddressError creates an error for a malformed target address.
func NewInvalidAddressError(address string) *Error {
	return &Error{
		Code:    ErrCodeInvalidAddress,
		Message: fmt.Sprintf("invalid address %q", address),
		Address: address,
	}
}

// NewBadCredentialTokenError creates an error for unencodable basic auth credentials.
func NewBadCredentialTokenError() *Error {
	return &Error{
		Code:    ErrCodeBadCredentialToken,
		Message: "credentials cannot be encoded as a basic auth token",
	}
}

// NewTransportFailedError creates a transport-level error.
func NewTransportFailedError(err error) *Error {
	return &Error{
		Code:    ErrCodeTransportFailed,
		Message: err.Error(),
		Err:     err,
	}
}

// NewNoResponseError creates an error for a transport that produced no response.
func NewNoResponseError() *Error {
	return &Error{
		Code:    ErrCodeNoResponse,
		Message: "transport returned no response",
	}
}

// NewMalformedResponseError creates an error for an uninterpretable HTTP response.
func NewMalformedResponseError(err error) *Error {
	return &Error{
		Code:    ErrCodeMalformedResponse,
		Message: "response could not be read as HTTP",
		Err:     err,
	}
}

// NewUnhealthyStatusError creates an error for a non-success status code
// whose body carried no usable diagnostic text.
func NewUnhealthyStatusError(statusCode int) *Error {
	return &Error{
		Code:       ErrCodeUnhealthyStatus,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
	}
}

// NewUnhealthyStatusMessageError creates an error for a non-success status code,
// preserving the response body text for diagnostics.
func NewUnhealthyStatusMessageError(statusCode int, text string) *Error {
	return &Error{
		Code:       ErrCodeUnhealthyStatus,
		StatusCode: statusCode,
		Message:    text,
		Body:       text,
	}
}

// NewEmptyBodyError creates an error for a success response with no body.
func NewEmptyBodyError(statusCode int) *Error {
	return &Error{
		Code:       ErrCodeEmptyBody,
		StatusCode: statusCode,
		Message:    "response body is empty",
	}
}

// NewDataCorruptedError creates an error for structurally invalid JSON.
func NewDataCorruptedError(context string, err error) *Error {
	return &Error{
		Code:    ErrCodeDataCorrupted,
		Message: context,
		Err:     err,
	}
}

// NewKeyNotFoundError creates an error for a required field absent from the
// JSON object. The full raw body text is preserved to aid debugging.
func NewKeyNotFoundError(key, context, rawBody string) *Error {
	return &Error{
		Code:    ErrCodeKeyNotFound,
		Message: fmt.Sprintf("key %q not found: %s", key, context),
		Key:     key,
		Body:    rawBody,
	}
}

// NewValueNotFoundError creates an error for a required field holding JSON null.
func NewValueNotFoundError(fieldType, context string) *Error {
	return &Error{
		Code:      ErrCodeValueNotFound,
		Message:   fmt.Sprintf("null value for required %s: %s", fieldType, context),
		FieldType: fieldType,
	}
}

// NewTypeMismatchError creates an error for a JSON value of the wrong type.
func NewTypeMismatchError(expectedType, context string, err error) *Error {
	return &Error{
		Code:      ErrCodeTypeMismatch,
		Message:   fmt.Sprintf("expected %s: %s", expectedType, context),
		FieldType: expectedType,
		Err:       err,
	}
}

// NewDecoderFailedError creates an error for an unclassified decode failure.
func NewDecoderFailedError(err error) *Error {
	return &Error{
		Code:    ErrCodeDecoderFailed,
		Message: err.Error(),
		Err:     err,
	}
}

// NewNoResultError creates an error for a decode that produced no instance.
func NewNoResultError(context string) *Error {
	return &Error{
		Code:    ErrCodeNoResult,
		Message: fmt.Sprintf("decode produced no result: %s", context),
	}
}

// NewInvalidValueError creates an error for a value that cannot be JSON-encoded.
func NewInvalidValueError(value any, context string, err error) *Error {
	return &Error{
		Code:      ErrCodeInvalidValue,
		Message:   fmt.Sprintf("unencodable value %v: %s", value, context),
		FieldType: context,
		Err:       err,
	}
}

// NewEncoderFailedError creates an error for an unclassified encode failure.
func NewEncoderFailedError(err error) *Error {
	return &Error{
		Code:    ErrCodeEncoderFailed,
		Message: err.Error(),
		Err:     err,
	}
}

// is checks whether err is an *Error with the given code.
func is(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsInvalidAddress checks if an error reports a malformed address.
func IsInvalidAddress(err error) bool { return is(err, ErrCodeInvalidAddress) }

// IsBadCredentialToken checks if an error reports unencodable credentials.
func IsBadCredentialToken(err error) bool { return is(err, ErrCodeBadCredentialToken) }

// IsTransportFailed checks if an error reports a transport failure.
func IsTransportFailed(err error) bool { return is(err, ErrCodeTransportFailed) }

// IsNoResponse checks if an error reports a missing response.
func IsNoResponse(err error) bool { return is(err, ErrCodeNoResponse) }

// IsMalformedResponse checks if an error reports an uninterpretable response.
func IsMalformedResponse(err error) bool { return is(err, ErrCodeMalformedResponse) }

// IsUnhealthyStatus checks if an error reports a non-success status code.
func IsUnhealthyStatus(err error) bool { return is(err, ErrCodeUnhealthyStatus) }

// IsEmptyBody checks if an error reports an unexpectedly empty body.
func IsEmptyBody(err error) bool { return is(err, ErrCodeEmptyBody) }

// IsDataCorrupted checks if an error reports invalid JSON.
func IsDataCorrupted(err error) bool { return is(err, ErrCodeDataCorrupted) }

// IsKeyNotFound checks if an error reports a missing required field.
func IsKeyNotFound(err error) bool { return is(err, ErrCodeKeyNotFound) }

// IsValueNotFound checks if an error reports a null required field.
func IsValueNotFound(err error) bool { return is(err, ErrCodeValueNotFound) }

// IsTypeMismatch checks if an error reports a JSON type mismatch.
func IsTypeMismatch(err error) bool { return is(err, ErrCodeTypeMismatch) }

// IsDecoderFailed checks if an error reports an unclassified decode failure.
func IsDecoderFailed(err error) bool { return is(err, ErrCodeDecoderFailed) }

// IsNoResult checks if an error reports a decode without a result.
func IsNoResult(err error) bool { return is(err, ErrCodeNoResult) }

// IsInvalidValue checks if an error reports an unencodable value.
func IsInvalidValue(err error) bool { return is(err, ErrCodeInvalidValue) }

// IsEncoderFailed checks if an error reports an unclassified encode failure.
func IsEncoderFailed(err error) bool { return is(err, ErrCodeEncoderFailed) }
