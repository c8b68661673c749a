package httputil

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/flicks/internal/error_values"
)

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details ...string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Success: false,
		Error:   message,
		Details: details,
	}
	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	WriteMessageResponse(w, statusCode, "", data)
}

func WriteMessageResponse(w http.ResponseWriter, statusCode int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	sonic.ConfigDefault.NewEncoder(w).Encode(SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// StatusFor maps a service error onto the status code and the message exposed
// to the client. Unknown errors are reported as 500 without their text.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		return http.StatusBadRequest, errorvalues.ErrValidation.Error()
	case errors.Is(err, errorvalues.ErrInvalidToken),
		errors.Is(err, errorvalues.ErrWrongCredentials):
		return http.StatusUnauthorized, rootMessage(err)
	case errors.Is(err, errorvalues.ErrWrongOwner),
		errors.Is(err, errorvalues.ErrAdminOnly):
		return http.StatusForbidden, rootMessage(err)
	case errors.Is(err, errorvalues.ErrUserNotFound),
		errors.Is(err, errorvalues.ErrProfileNotFound),
		errors.Is(err, errorvalues.ErrContentNotFound),
		errors.Is(err, errorvalues.ErrHistoryNotFound):
		return http.StatusNotFound, rootMessage(err)
	case errors.Is(err, errorvalues.ErrUserExists),
		errors.Is(err, errorvalues.ErrProfileExists),
		errors.Is(err, errorvalues.ErrProfileLimit),
		errors.Is(err, errorvalues.ErrContentExists):
		return http.StatusConflict, rootMessage(err)
	case errors.Is(err, errorvalues.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, errorvalues.ErrStoreUnavailable.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// WriteServiceError writes the error envelope for err, including field
// details of validation failures.
func WriteServiceError(w http.ResponseWriter, err error) {
	status, message := StatusFor(err)
	var ve *errorvalues.ValidationError
	if errors.As(err, &ve) {
		WriteErrorResponse(w, status, message, ve.Details...)
		return
	}
	WriteErrorResponse(w, status, message)
}

var knownErrors = []error{
	errorvalues.ErrInvalidToken,
	errorvalues.ErrWrongCredentials,
	errorvalues.ErrWrongOwner,
	errorvalues.ErrAdminOnly,
	errorvalues.ErrUserNotFound,
	errorvalues.ErrProfileNotFound,
	errorvalues.ErrContentNotFound,
	errorvalues.ErrHistoryNotFound,
	errorvalues.ErrUserExists,
	errorvalues.ErrProfileExists,
	errorvalues.ErrProfileLimit,
	errorvalues.ErrContentExists,
}

// rootMessage strips wrapping context so repository details never leak.
func rootMessage(err error) string {
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return err.Error()
}
