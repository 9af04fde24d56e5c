package main

import (
	"context"
	"errors"
	"log/slog"

	"hallApi/api"
	"hallApi/services"
	"hallApi/store"
)

type outcome int

const (
	storageError outcome = iota
	validationError
	unauthorized
	notFound
	conflict
)

const unexpectedErrorMessage = "Server has encountered an unexpected error"

// classify maps a service error to the single response outcome it produces, along
// with the message sent to the client. Storage failures are logged here and the
// client only sees a generic message.
func classify(ctx context.Context, op string, err error) (outcome, api.Error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		return validationError, api.Error{Message: err.Error()}
	case errors.Is(err, services.ErrUnauthorized):
		return unauthorized, api.Error{Message: err.Error()}
	case errors.Is(err, store.ErrNotFound):
		return notFound, api.Error{Message: err.Error()}
	case errors.Is(err, services.ErrConflict), errors.Is(err, store.ErrDuplicate):
		return conflict, api.Error{Message: err.Error()}
	default:
		slog.ErrorContext(ctx, "operation failed", "operation", op, "error", err.Error())
		return storageError, api.Error{Message: unexpectedErrorMessage}
	}
}
