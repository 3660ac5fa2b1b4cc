package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"evently/internal/delivery/http/helpers"
	"evently/internal/domain"
)

// errorMessages overrides the client message for sentinel errors on a single endpoint.
type errorMessages struct {
	notFound string
	internal string
}

// writeServiceError maps a service error to a JSON error response.
// Unmapped errors are logged and reported as 500 with msgs.internal.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, msgs errorMessages) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, verr.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Please check your input data")
	case errors.Is(err, domain.ErrCapacityExceeded):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Event is fully booked")
	case errors.Is(err, domain.ErrDuplicateRegistration):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "You are already registered for this event")
	case errors.Is(err, domain.ErrDuplicateEmail):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "User with this email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrUnauthorized):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "Invalid token")
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "Insufficient permissions")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		msg := msgs.notFound
		if msg == "" {
			msg = "Not found"
		}
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, msg)
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		msg := msgs.internal
		if msg == "" {
			msg = "Internal server error"
		}
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, msg)
	}
}
