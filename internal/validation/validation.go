// Package validation turns request binding failures into field-level
// violations.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/django-nerd/ulin/internal/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	TypeMissing          = "missing"
	TypeGreaterThanEqual = "greater_than_equal"
	TypeLessThanEqual    = "less_than_equal"
	TypeTypeError        = "type_error"
	TypeJSONInvalid      = "json_invalid"
	TypeInvalid          = "value_error"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Violation describes one failed constraint of a request body.
type Violation struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Error lists every violation found in a request body.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, strings.Join(v.Loc, ".")+": "+v.Msg)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *Error) Is(target error) bool {
	return target == domain.ErrValidation
}

// fromDecodeError converts a failure to decode the request body as a JSON
// object into an *Error.
func fromDecodeError(err error) *Error {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)

	switch {
	case errors.As(err, &typeErr):
		return single([]string{"body"}, "body must be a JSON object", TypeTypeError)

	case errors.As(err, &syntaxErr):
		return single([]string{"body", fmt.Sprint(syntaxErr.Offset)}, "JSON decode error", TypeJSONInvalid)

	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return single([]string{"body"}, "request body is required", TypeMissing)

	default:
		return single([]string{"body"}, err.Error(), TypeInvalid)
	}
}

func single(loc []string, msg, typ string) *Error {
	return &Error{Violations: []Violation{{Loc: loc, Msg: msg, Type: typ}}}
}

func fromFieldError(fe validator.FieldError) Violation {
	loc := []string{"body", fe.Field()}

	switch fe.Tag() {
	case "required":
		return Violation{Loc: loc, Msg: "field required", Type: TypeMissing}
	case "gte", "min":
		return Violation{Loc: loc, Msg: "input should be greater than or equal to " + fe.Param(), Type: TypeGreaterThanEqual}
	case "lte", "max":
		return Violation{Loc: loc, Msg: "input should be less than or equal to " + fe.Param(), Type: TypeLessThanEqual}
	default:
		return Violation{Loc: loc, Msg: fmt.Sprintf("failed on the %q rule", fe.Tag()), Type: TypeInvalid}
	}
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Bool:
		return "boolean"
	default:
		return t.String()
	}
}
