// Package validation holds the single business error kind of the service:
// input that does not match its declared shape or type.
package validation

import (
	"fmt"
	"strings"
)

// Error types reported in FieldError.Type.
const (
	TypeMissing             = "missing"
	TypeStringType          = "string_type"
	TypeFloatType           = "float_type"
	TypeFloatParsing        = "float_parsing"
	TypeFiniteNumber        = "finite_number"
	TypeIntParsing          = "int_parsing"
	TypeJSONInvalid         = "json_invalid"
	TypeModelAttributesType = "model_attributes_type"
)

// Location roots used as the first element of FieldError.Loc.
const (
	InBody  = "body"
	InPath  = "path"
	InQuery = "query"
)

// FieldError describes one input that failed validation.
type FieldError struct {
	Type  string         `json:"type"`
	Loc   []any          `json:"loc"`
	Msg   string         `json:"msg"`
	Input any            `json:"input"`
	Ctx   map[string]any `json:"ctx,omitempty"`
}

func (f FieldError) String() string {
	parts := make([]string, 0, len(f.Loc))
	for _, l := range f.Loc {
		parts = append(parts, fmt.Sprint(l))
	}
	return strings.Join(parts, ".") + ": " + f.Msg
}

// Error is a ValidationError: the structured list of every field that failed.
type Error struct {
	Fields []FieldError
}

// Add appends a field error.
func (e *Error) Add(f FieldError) {
	e.Fields = append(e.Fields, f)
}

// Err returns e when it holds at least one field error, nil otherwise.
func (e *Error) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.String())
	}
	return fmt.Sprintf("%d validation error(s): %s", len(e.Fields), strings.Join(msgs, "; "))
}

// Is makes errors.Is(err, ErrValidation) true for every *Error.
func (e *Error) Is(target error) bool {
	return target == ErrValidation
}

// New wraps field errors into an *Error.
func New(fields ...FieldError) *Error {
	return &Error{Fields: fields}
}

// Missing reports a required input that was not supplied.
func Missing(input any, loc ...any) FieldError {
	return FieldError{Type: TypeMissing, Loc: loc, Msg: "Field required", Input: input}
}

// StringType reports a non-string value for a text field.
func StringType(input any, loc ...any) FieldError {
	return FieldError{Type: TypeStringType, Loc: loc, Msg: "Input should be a valid string", Input: input}
}

// FloatType reports a value that is neither a number nor a string.
func FloatType(input any, loc ...any) FieldError {
	return FieldError{Type: TypeFloatType, Loc: loc, Msg: "Input should be a valid number", Input: input}
}

// FloatParsing reports a string that does not parse as a number.
func FloatParsing(input any, loc ...any) FieldError {
	return FieldError{Type: TypeFloatParsing, Loc: loc, Msg: "Input should be a valid number, unable to parse string as a number", Input: input}
}

// FiniteNumber reports a number too large to be represented.
func FiniteNumber(input any, loc ...any) FieldError {
	return FieldError{Type: TypeFiniteNumber, Loc: loc, Msg: "Input should be a finite number", Input: input}
}

// IntParsing reports a string that does not parse as an integer.
func IntParsing(input any, loc ...any) FieldError {
	return FieldError{Type: TypeIntParsing, Loc: loc, Msg: "Input should be a valid integer, unable to parse string as an integer", Input: input}
}

// JSONInvalid reports a body that is not well-formed JSON.
func JSONInvalid(cause error, loc ...any) FieldError {
	return FieldError{
		Type:  TypeJSONInvalid,
		Loc:   loc,
		Msg:   "JSON decode error",
		Input: map[string]any{},
		Ctx:   map[string]any{"error": cause.Error()},
	}
}

// ModelAttributesType reports a body that is valid JSON but not an object.
func ModelAttributesType(input any, loc ...any) FieldError {
	return FieldError{Type: TypeModelAttributesType, Loc: loc, Msg: "Input should be a valid dictionary or object to extract fields from", Input: input}
}
