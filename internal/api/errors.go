package api

import (
	"errors"
	"net/http"

	"github.com/pcmoraesmenezes/design-patterns-lab/internal/api/shared"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/catalog"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/patterns/factory"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/service/auth"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/solid/dip"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err),
		errors.Is(err, catalog.ErrDocumentNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, factory.ErrUnknownKind),
		errors.Is(err, dip.ErrUnknownChannel),
		errors.Is(err, dip.ErrEmptyRecipient),
		errors.Is(err, dip.ErrEmptyMessage),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Downstream delivery failures
	case errors.Is(err, dip.ErrDeliveryFailed):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"

	case errors.Is(err, store.ErrShapeNotFound):
		return "Shape not found"

	case errors.Is(err, catalog.ErrDocumentNotFound):
		return "Pattern document not found"

	case errors.Is(err, factory.ErrUnknownKind):
		return "Unknown shape kind"

	case errors.Is(err, dip.ErrUnknownChannel):
		return "Unknown notification channel"

	case errors.Is(err, dip.ErrEmptyRecipient):
		return "Recipient is required"

	case errors.Is(err, dip.ErrEmptyMessage):
		return "Message is required"

	case errors.Is(err, dip.ErrDeliveryFailed):
		return "Notification delivery failed"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid shape data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps an error to a status code and safe message, then
// writes the response. An explicit userMessage overrides the mapped one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	statusCode := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, statusCode, userMessage, err)
}
