package user

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

type (
	FailureKind string
	Failure     struct {
		Kind    FailureKind
		Message string
	}
	// ValidationErrors maps each failing field to the reason it failed.
	ValidationErrors map[Field]Failure
)

const (
	MissingField  FailureKind = "missing_field"
	InvalidFormat FailureKind = "invalid_format"
)

const (
	OpList   = "list"
	OpCreate = "create"
)

var ErrInvalidUser = errors.New("invalid user")

// ValidationError is returned when a submit is attempted with failing fields.
type ValidationError struct {
	Fields ValidationErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: %s", ErrInvalidUser, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidUser }

// NetworkError is a failed read or create against the endpoint. Status is zero
// when no HTTP response was received.
type NetworkError struct {
	Op     string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s users: unexpected status %d %s", e.Op, e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("%s users: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Messages flattens the failures into field name -> message.
func (ve ValidationErrors) Messages() map[string]string {
	if len(ve) == 0 {
		return nil
	}
	out := make(map[string]string, len(ve))
	for f, fail := range ve {
		out[string(f)] = fail.Message
	}
	return out
}

// Only keeps the failure of a single field.
func (ve ValidationErrors) Only(f Field) ValidationErrors {
	fail, ok := ve[f]
	if !ok {
		return nil
	}
	return ValidationErrors{f: fail}
}
