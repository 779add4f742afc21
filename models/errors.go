package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// DB related errors
var (
	ErrIgnoreRollBackError = errors.New("ignore rollback error")
)

// Action log related errors
var (
	// ErrUnknownActionType is returned when a logged action's type has no
	// registered implementation, e.g. the plugin that produced it was
	// removed. It is surfaced as a failed ActionOutcome, never as a crash
	// of the whole undo/redo pass.
	ErrUnknownActionType = errors.New("unknown action type")

	ErrActionUndoFailed = errors.New("action undo failed")
	ErrActionRedoFailed = errors.New("action redo failed")

	// ErrCleanupHookFailed aborts the retention pass; the failing action's
	// row survives and the error propagates to the scheduler.
	ErrCleanupHookFailed = errors.New("action cleanup hook failed")
)
