package restclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// The codec decodes JSON response bodies into caller-specified types and
// encodes caller values into JSON request bodies. Dates travel as RFC 3339
// strings (the JSON profile of ISO-8601), which is what time.Time speaks
// natively.
//
// Required fields are declared with `validate:"required"` tags. After a
// structurally successful decode the target is validated and each failure is
// cross-checked against the raw JSON: a key that is absent fails as
// key_not_found, a key holding null fails as value_not_found, and a key that
// is present with a zero value is accepted as-is.

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the singleton validator, configured to report field
// names by their json tags.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// decodeJSON decodes body into a value of type T, mapping every failure to a
// distinct error code.
func decodeJSON[T any](body []byte) (T, *Error) {
	var out T

	if err := json.Unmarshal(body, &out); err != nil {
		var synErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError

		switch {
		case errors.As(err, &synErr):
			return out, NewDataCorruptedError(
				fmt.Sprintf("invalid JSON at offset %d", synErr.Offset), err)
		case errors.As(err, &typeErr):
			return out, NewTypeMismatchError(
				typeErr.Type.String(), typeMismatchContext(typeErr), err)
		default:
			return out, NewDecoderFailedError(err)
		}
	}

	if reqErr := checkRequired(out, body); reqErr != nil {
		return out, reqErr
	}

	if rv := reflect.ValueOf(&out).Elem(); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return out, NewNoResultError(rv.Type().String())
	}

	return out, nil
}

// encodeJSON encodes v into a JSON body.
func encodeJSON(v any) ([]byte, *Error) {
	data, err := json.Marshal(v)
	if err != nil {
		var typeErr *json.UnsupportedTypeError
		var valueErr *json.UnsupportedValueError

		switch {
		case errors.As(err, &typeErr):
			return nil, NewInvalidValueError(v, typeErr.Type.String(), err)
		case errors.As(err, &valueErr):
			return nil, NewInvalidValueError(v, valueErr.Str, err)
		default:
			return nil, NewEncoderFailedError(err)
		}
	}

	return data, nil
}

// typeMismatchContext describes where a type mismatch occurred.
func typeMismatchContext(err *json.UnmarshalTypeError) string {
	if err.Field != "" {
		return fmt.Sprintf("field %q holds JSON %s", err.Field, err.Value)
	}
	return fmt.Sprintf("JSON %s", err.Value)
}

// checkRequired validates required-field tags on the decoded value, walking
// into slice elements so array responses are checked per element.
func checkRequired(v any, body []byte) *Error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return checkStructRequired(rv.Interface(), body, body)
	case reflect.Slice, reflect.Array:
		var elems []json.RawMessage
		if err := json.Unmarshal(body, &elems); err != nil {
			return nil
		}
		for i := 0; i < rv.Len() && i < len(elems); i++ {
			ev := rv.Index(i)
			for ev.Kind() == reflect.Pointer {
				if ev.IsNil() {
					break
				}
				ev = ev.Elem()
			}
			if ev.Kind() != reflect.Struct {
				return nil
			}
			if err := checkStructRequired(ev.Interface(), elems[i], body); err != nil {
				return err
			}
		}
	default:
	}

	return nil
}

// checkStructRequired runs the validator over one struct and classifies each
// required-tag failure against the raw JSON object it was decoded from.
// object is the JSON for this struct; full is the complete response body,
// preserved in key_not_found errors for debugging.
func checkStructRequired(v any, object, full []byte) *Error {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewDecoderFailedError(err)
	}

	for _, fe := range fieldErrs {
		if fe.Tag() != "required" {
			continue
		}

		// Namespace is tag-based with the root struct name first.
		path := strings.Split(fe.Namespace(), ".")[1:]
		if len(path) == 0 {
			continue
		}

		raw, present := lookupRaw(object, path)
		switch {
		case !present:
			return NewKeyNotFoundError(fe.Field(), fe.StructNamespace(), string(full))
		case isJSONNull(raw):
			return NewValueNotFoundError(fe.Type().String(), fe.StructNamespace())
		default:
			// Present with a zero value. That is valid JSON for the
			// declared type, not a decode failure.
		}
	}

	return nil
}

// lookupRaw walks a field path through nested JSON objects. It reports
// present=true when the path cannot be inspected, so only a definitively
// missing key is treated as absent.
func lookupRaw(object []byte, path []string) (json.RawMessage, bool) {
	cur := json.RawMessage(object)
	for _, key := range path {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(cur, &fields); err != nil {
			return nil, true
		}
		next, ok := fields[key]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// isJSONNull reports whether raw is the JSON null literal.
func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
