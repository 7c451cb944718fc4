package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Envelope is the wire shape of every response: a human-readable message
// and the payload, null on errors.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// RespondWithJSON writes the envelope with the given status code,
// message and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Envelope{Message: message, Data: data}); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes an error envelope (null data) with the given
// status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, message, nil)
}

// RespondWithErrorAndLog writes an error envelope carrying only the safe
// message and logs the detailed error. 5xx responses log at ERROR level,
// 4xx at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, userMessage, nil)
}
