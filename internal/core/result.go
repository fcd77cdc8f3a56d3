// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"errors"

	"github.com/toeirei/dataentry/internal/i18n"
)

// ErrInvalidAge is returned when the age text is not an integer.
var ErrInvalidAge = errors.New("age must be an integer")

// Kind classifies the outcome of an action.
type Kind int

const (
	// Success means the action completed.
	Success Kind = iota
	// InputError means the form content was rejected; the store was not touched.
	InputError
	// StorageError means the store call failed.
	StorageError
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case InputError:
		return "input_error"
	case StorageError:
		return "storage_error"
	default:
		return "unknown"
	}
}

// Result is what the presentation layer shows after an action: a title and
// message for the notification dialog. Silent results (Message == "") need no
// dialog.
type Result struct {
	Kind    Kind
	Title   string
	Message string
	Err     error
}

// OK reports whether the action succeeded.
func (r Result) OK() bool { return r.Kind == Success }

// Silent reports whether there is nothing to show.
func (r Result) Silent() bool { return r.Message == "" }

func successResult(message string) Result {
	return Result{
		Kind:    Success,
		Title:   i18n.T("result.success_title"),
		Message: message,
	}
}

func inputErrorResult(err error) Result {
	return Result{
		Kind:    InputError,
		Title:   i18n.T("result.input_error_title"),
		Message: i18n.T("result.invalid_age"),
		Err:     err,
	}
}

// storageErrorResult builds a "Database Error" result. messageID selects the
// "Error saving/retrieving data: ..." wording.
func storageErrorResult(messageID string, err error) Result {
	return Result{
		Kind:    StorageError,
		Title:   i18n.T("result.database_error_title"),
		Message: i18n.T(messageID, err),
		Err:     err,
	}
}

// ConnectionResult turns a startup connection failure into a result the UI
// can show before the first action.
func ConnectionResult(err error) Result {
	return storageErrorResult("result.error_connect", err)
}

// SchemaResult reports a failed schema bootstrap at startup.
func SchemaResult(err error) Result {
	return storageErrorResult("result.error_schema", err)
}

// AsError converts a failed result into an error for non-interactive
// callers. It returns nil for successful results.
func (r Result) AsError() error {
	if r.OK() {
		return nil
	}
	return &ResultError{Result: r}
}

// ResultError carries a failed Result through an error return.
type ResultError struct {
	Result Result
}

func (e *ResultError) Error() string {
	return e.Result.Title + ": " + e.Result.Message
}

func (e *ResultError) Unwrap() error {
	return e.Result.Err
}
