package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// MessageBody is the error/status envelope used by nearly every endpoint.
// The optional Error field carries the underlying failure and is only
// populated when the service runs with Debug enabled.
type MessageBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ErrorKeyedBody is the envelope used by the projects-list endpoint family,
// which keys its failures by "error" instead of "message". The two shapes
// coexist deliberately; callers depend on each as-is.
type ErrorKeyedBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// RespondWithJSON for successful cases.
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondMessage writes {"message": msg} with the given status.
func RespondMessage(w http.ResponseWriter, status int, msg string) {
	RespondWithJSON(w, status, MessageBody{Message: msg})
}

// RespondError writes {"message": msg} and, when debug is set and err is
// non-nil, attaches the raw error string. 5xx responses are logged.
func RespondError(w http.ResponseWriter, status int, msg string, err error, debug bool) {
	body := MessageBody{Message: msg}
	if debug && err != nil {
		body.Error = err.Error()
	}
	RespondWithJSON(w, status, body)

	if status >= http.StatusInternalServerError {
		if err != nil {
			Logger.WithFields(logrus.Fields{
				"status": status,
				"error":  err.Error(),
			}).Error(msg)
		} else {
			Logger.WithFields(logrus.Fields{
				"status": status,
			}).Error(msg)
		}
	}
}

// RespondErrorKeyed is the {"error": msg} variant consumed by the projects
// listing family.
func RespondErrorKeyed(w http.ResponseWriter, status int, msg string, err error, debug bool) {
	body := ErrorKeyedBody{Error: msg}
	if debug && err != nil {
		body.Details = err.Error()
	}
	RespondWithJSON(w, status, body)

	if status >= http.StatusInternalServerError && err != nil {
		Logger.WithError(err).Error(msg)
	}
}
