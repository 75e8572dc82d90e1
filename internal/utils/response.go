package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

const (
	ErrCodeInvalidPayload  = "invalid_payload"
	ErrCodeValidation      = "validation_error"
	ErrCodeUnauthorized    = "unauthorized"
	ErrCodeTokenExpired    = "token_expired"
	ErrCodeInternal        = "internal_server_error"
	ErrCodeNotFound        = "not_found"
	ErrCodeEmailExists     = "email_exists"
	ErrCodeInvalidRole     = "invalid_role"
	ErrCodeUnknownCategory = "unknown_category"
	ErrCodeCardInUse       = "card_in_use"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondErrorWithCode builds a JSON error response with a standard
// code and message. The optional devErr is logged, never sent to the client.
func RespondErrorWithCode(
	w http.ResponseWriter,
	status int,
	errorCode string,
	publicMessage string,
	devErrs ...error,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Code:    errorCode,
		Message: publicMessage,
	})

	if len(devErrs) > 0 && devErrs[0] != nil {
		Logger.WithFields(logrus.Fields{
			"status": status,
			"error":  devErrs[0].Error(),
		}).Error(publicMessage)
	} else if status >= http.StatusInternalServerError {
		Logger.WithFields(logrus.Fields{
			"status": status,
		}).Error(publicMessage)
	}
}

// RespondWithJSON for successful cases
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
